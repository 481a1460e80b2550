package repositories

import (
	"workout-server/db"
	"workout-server/entities"
)

type exercisePgRepository struct {
	db db.Database
}

func NewExercisePgRepository(database db.Database) ExerciseRepository {
	return &exercisePgRepository{db: database}
}

func (r *exercisePgRepository) Create(exercise *entities.Exercise) error {
	return r.db.GetDB().Create(exercise).Error
}

func (r *exercisePgRepository) GetByID(id string) (*entities.Exercise, error) {
	var exercise entities.Exercise
	err := r.db.GetDB().Where("id = ?", id).First(&exercise).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exercisePgRepository) GetByUserID(userID string) ([]entities.Exercise, error) {
	var exercises []entities.Exercise
	err := r.db.GetDB().Where("user_id = ?", userID).Order("updated_at DESC").Find(&exercises).Error
	return exercises, err
}

func (r *exercisePgRepository) GetByWorkoutID(workoutID string) ([]entities.Exercise, error) {
	var exercises []entities.Exercise
	err := r.db.GetDB().Where("workout_id = ?", workoutID).Order("updated_at DESC").Find(&exercises).Error
	return exercises, err
}

func (r *exercisePgRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.GetDB().Model(&entities.Exercise{}).Where("id = ?", id).Updates(fields).Error
}

func (r *exercisePgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Exercise{}).Error
}

func (r *exercisePgRepository) DeleteByWorkoutID(workoutID string) error {
	return r.db.GetDB().Where("workout_id = ?", workoutID).Delete(&entities.Exercise{}).Error
}
