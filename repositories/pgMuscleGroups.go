package repositories

import (
	"workout-server/db"
	"workout-server/entities"
)

type muscleGroupPgRepository struct {
	db db.Database
}

func NewMuscleGroupPgRepository(database db.Database) MuscleGroupRepository {
	return &muscleGroupPgRepository{db: database}
}

func (r *muscleGroupPgRepository) Create(group *entities.MuscleGroup) error {
	return r.db.GetDB().Create(group).Error
}

func (r *muscleGroupPgRepository) GetByID(id string) (*entities.MuscleGroup, error) {
	var group entities.MuscleGroup
	err := r.db.GetDB().Where("id = ?", id).First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *muscleGroupPgRepository) GetAll() ([]entities.MuscleGroup, error) {
	var groups []entities.MuscleGroup
	err := r.db.GetDB().Order("name ASC").Find(&groups).Error
	return groups, err
}
