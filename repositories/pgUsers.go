package repositories

import (
	"workout-server/db"
	"workout-server/entities"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(user *entities.User) error {
	return r.db.GetDB().Create(user).Error
}

func (r *userPgRepository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (r *userPgRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *userPgRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.GetDB().Model(&entities.User{}).Where("id = ?", id).Updates(fields).Error
}
