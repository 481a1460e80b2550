package repositories

import "workout-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
	CountByUsername(username string) (int64, error)
	CountByEmail(email string) (int64, error)
	UpdateFields(id string, fields map[string]interface{}) error
}

type WorkoutRepository interface {
	Create(workout *entities.Workout) error
	GetByID(id string) (*entities.Workout, error)
	GetByUserID(userID string) ([]entities.Workout, error)
	GetRecentByUserID(userID string, limit int) ([]entities.Workout, error)
	GetSharedByUserID(userID string, limit int) ([]entities.Workout, error)
	GetSharedChallengeWorkouts() ([]entities.Workout, error)
	UpdateFields(id string, fields map[string]interface{}) error
	Save(workout *entities.Workout) error
	Delete(id string) error
}

type MuscleGroupRepository interface {
	Create(group *entities.MuscleGroup) error
	GetByID(id string) (*entities.MuscleGroup, error)
	GetAll() ([]entities.MuscleGroup, error)
}

type ExerciseRepository interface {
	Create(exercise *entities.Exercise) error
	GetByID(id string) (*entities.Exercise, error)
	GetByUserID(userID string) ([]entities.Exercise, error)
	GetByWorkoutID(workoutID string) ([]entities.Exercise, error)
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
	DeleteByWorkoutID(workoutID string) error
}

type ChallengeRepository interface {
	Create(challenge *entities.Challenge) error
	GetByID(id string) (*entities.Challenge, error)
	GetAll() ([]entities.Challenge, error)
}

type UserChallengeRepository interface {
	Create(uc *entities.UserChallenge) error
	GetByID(id string) (*entities.UserChallenge, error)
	GetByUserAndChallenge(userID, challengeID string) (*entities.UserChallenge, error)
	GetByUserID(userID string) ([]entities.UserChallenge, error)
	Save(uc *entities.UserChallenge) error
}
