package usecases

import (
	"workout-server/entities"
	"workout-server/repositories"
	"workout-server/validators"
)

type WorkoutUseCase struct {
	workoutRepo  repositories.WorkoutRepository
	exerciseRepo repositories.ExerciseRepository
	stats        Invalidator
}

func NewWorkoutUseCase(workoutRepo repositories.WorkoutRepository, exerciseRepo repositories.ExerciseRepository, stats Invalidator) *WorkoutUseCase {
	return &WorkoutUseCase{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		stats:        stats,
	}
}

// New validates and creates a workout for the owning user.
func (uc *WorkoutUseCase) New(name, description, userID string) (Result[*entities.Workout], error) {
	errs := validators.Text("Name", name)
	errs = append(errs, validators.Text("Description", description)...)
	if len(errs) > 0 {
		return fail[*entities.Workout](errs), nil
	}

	workout := &entities.Workout{
		Name:        name,
		Description: description,
		UserID:      userID,
	}
	if err := uc.workoutRepo.Create(workout); err != nil {
		return Result[*entities.Workout]{}, err
	}
	return succeed(workout), nil
}

// Update applies the same rule set as New, then writes only the changed
// fields.
func (uc *WorkoutUseCase) Update(id, name, description string) (Result[*entities.Workout], error) {
	errs := validators.Text("Name", name)
	errs = append(errs, validators.Text("Description", description)...)
	if len(errs) > 0 {
		return fail[*entities.Workout](errs), nil
	}

	fields := map[string]interface{}{
		"name":        name,
		"description": description,
	}
	if err := uc.workoutRepo.UpdateFields(id, fields); err != nil {
		return Result[*entities.Workout]{}, err
	}
	workout, err := uc.workoutRepo.GetByID(id)
	if err != nil {
		return Result[*entities.Workout]{}, err
	}
	return succeed(workout), nil
}

// Get retrieves a workout by ID. Ownership is the caller's concern.
func (uc *WorkoutUseCase) Get(id string) (*entities.Workout, error) {
	return uc.workoutRepo.GetByID(id)
}

// ListByUser returns all workouts owned by a user, most recent first.
func (uc *WorkoutUseCase) ListByUser(userID string) ([]entities.Workout, error) {
	return uc.workoutRepo.GetByUserID(userID)
}

// RecentByUser returns the user's newest workouts for the dashboard.
func (uc *WorkoutUseCase) RecentByUser(userID string, limit int) ([]entities.Workout, error) {
	return uc.workoutRepo.GetRecentByUserID(userID, limit)
}

// SharedByUser returns the workouts a user has shared, for their public
// profile.
func (uc *WorkoutUseCase) SharedByUser(userID string, limit int) ([]entities.Workout, error) {
	return uc.workoutRepo.GetSharedByUserID(userID, limit)
}

// Exercises returns the exercises belonging to a workout.
func (uc *WorkoutUseCase) Exercises(workoutID string) ([]entities.Exercise, error) {
	return uc.exerciseRepo.GetByWorkoutID(workoutID)
}

// ToggleCompleted flips the completed flag.
func (uc *WorkoutUseCase) ToggleCompleted(id string) (*entities.Workout, error) {
	workout, err := uc.workoutRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	workout.Completed = !workout.Completed
	if err := uc.workoutRepo.Save(workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// ToggleShared flips the is_shared flag.
func (uc *WorkoutUseCase) ToggleShared(id string) (*entities.Workout, error) {
	workout, err := uc.workoutRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	workout.IsShared = !workout.IsShared
	if err := uc.workoutRepo.Save(workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// Delete removes a workout and cascades to its exercises.
func (uc *WorkoutUseCase) Delete(id, userID string) error {
	if err := uc.exerciseRepo.DeleteByWorkoutID(id); err != nil {
		return err
	}
	if err := uc.workoutRepo.Delete(id); err != nil {
		return err
	}
	if uc.stats != nil {
		uc.stats.Invalidate(userID)
	}
	return nil
}
