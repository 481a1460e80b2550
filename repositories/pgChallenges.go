package repositories

import (
	"workout-server/db"
	"workout-server/entities"
)

type challengePgRepository struct {
	db db.Database
}

func NewChallengePgRepository(database db.Database) ChallengeRepository {
	return &challengePgRepository{db: database}
}

func (r *challengePgRepository) Create(challenge *entities.Challenge) error {
	return r.db.GetDB().Create(challenge).Error
}

func (r *challengePgRepository) GetByID(id string) (*entities.Challenge, error) {
	var challenge entities.Challenge
	err := r.db.GetDB().Where("id = ?", id).First(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *challengePgRepository) GetAll() ([]entities.Challenge, error) {
	var challenges []entities.Challenge
	err := r.db.GetDB().Order("level ASC, name ASC").Find(&challenges).Error
	return challenges, err
}
