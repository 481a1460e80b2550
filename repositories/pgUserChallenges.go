package repositories

import (
	"workout-server/db"
	"workout-server/entities"
)

type userChallengePgRepository struct {
	db db.Database
}

func NewUserChallengePgRepository(database db.Database) UserChallengeRepository {
	return &userChallengePgRepository{db: database}
}

func (r *userChallengePgRepository) Create(uc *entities.UserChallenge) error {
	return r.db.GetDB().Create(uc).Error
}

func (r *userChallengePgRepository) GetByID(id string) (*entities.UserChallenge, error) {
	var uc entities.UserChallenge
	err := r.db.GetDB().Where("id = ?", id).First(&uc).Error
	if err != nil {
		return nil, err
	}
	return &uc, nil
}

func (r *userChallengePgRepository) GetByUserAndChallenge(userID, challengeID string) (*entities.UserChallenge, error) {
	var uc entities.UserChallenge
	err := r.db.GetDB().Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&uc).Error
	if err != nil {
		return nil, err
	}
	return &uc, nil
}

func (r *userChallengePgRepository) GetByUserID(userID string) ([]entities.UserChallenge, error) {
	var ucs []entities.UserChallenge
	err := r.db.GetDB().Where("user_id = ?", userID).Order("joined_at DESC").Find(&ucs).Error
	return ucs, err
}

func (r *userChallengePgRepository) Save(uc *entities.UserChallenge) error {
	return r.db.GetDB().Save(uc).Error
}
