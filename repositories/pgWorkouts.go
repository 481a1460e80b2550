package repositories

import (
	"workout-server/db"
	"workout-server/entities"
)

type workoutPgRepository struct {
	db db.Database
}

func NewWorkoutPgRepository(database db.Database) WorkoutRepository {
	return &workoutPgRepository{db: database}
}

func (r *workoutPgRepository) Create(workout *entities.Workout) error {
	return r.db.GetDB().Create(workout).Error
}

func (r *workoutPgRepository) GetByID(id string) (*entities.Workout, error) {
	var workout entities.Workout
	err := r.db.GetDB().Where("id = ?", id).First(&workout).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutPgRepository) GetByUserID(userID string) ([]entities.Workout, error) {
	var workouts []entities.Workout
	err := r.db.GetDB().Where("user_id = ?", userID).Order("updated_at DESC").Find(&workouts).Error
	return workouts, err
}

func (r *workoutPgRepository) GetRecentByUserID(userID string, limit int) ([]entities.Workout, error) {
	var workouts []entities.Workout
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&workouts).Error
	return workouts, err
}

func (r *workoutPgRepository) GetSharedByUserID(userID string, limit int) ([]entities.Workout, error) {
	var workouts []entities.Workout
	err := r.db.GetDB().Where("user_id = ? AND is_shared = ?", userID, true).Order("updated_at DESC").Limit(limit).Find(&workouts).Error
	return workouts, err
}

// GetSharedChallengeWorkouts returns shared workouts attached to a
// challenge; these are what the challenge listing shows.
func (r *workoutPgRepository) GetSharedChallengeWorkouts() ([]entities.Workout, error) {
	var workouts []entities.Workout
	err := r.db.GetDB().Where("is_shared = ? AND challenge_id IS NOT NULL", true).Order("updated_at DESC").Find(&workouts).Error
	return workouts, err
}

func (r *workoutPgRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.GetDB().Model(&entities.Workout{}).Where("id = ?", id).Updates(fields).Error
}

func (r *workoutPgRepository) Save(workout *entities.Workout) error {
	return r.db.GetDB().Save(workout).Error
}

func (r *workoutPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Workout{}).Error
}
