package usecases

import (
	"errors"

	"workout-server/entities"
	"workout-server/repositories"
	"workout-server/validators"
)

var (
	ErrWorkoutNotFound     = errors.New("workout not found")
	ErrMuscleGroupNotFound = errors.New("muscle group not found")
	ErrExerciseNotFound    = errors.New("exercise not found")
)

const msgRequiredFields = "All required fields are mandatory."

// ExerciseInput carries the raw form values for an exercise create or
// update. Variant fields arrive as strings and are parsed during
// validation.
type ExerciseInput struct {
	Type          entities.ExerciseType
	Name          string `form:"name" json:"name"`
	Description   string `form:"description" json:"description"`
	WorkoutID     string `form:"workout_id" json:"workout_id"`
	MuscleGroupID string `form:"muscle_group" json:"muscle_group"`
	UserID        string `form:"-" json:"-"`

	Weight          string `form:"weight" json:"weight"`
	Repetitions     string `form:"repetitions" json:"repetitions"`
	DurationMinutes string `form:"duration_minutes" json:"duration_minutes"`
	DistanceKM      string `form:"distance_km" json:"distance_km"`
	DifficultyLevel string `form:"difficulty_level" json:"difficulty_level"`
	StretchType     string `form:"stretch_type" json:"stretch_type"`
}

type ExerciseUseCase struct {
	exerciseRepo    repositories.ExerciseRepository
	workoutRepo     repositories.WorkoutRepository
	muscleGroupRepo repositories.MuscleGroupRepository
	stats           Invalidator
}

func NewExerciseUseCase(exerciseRepo repositories.ExerciseRepository, workoutRepo repositories.WorkoutRepository, muscleGroupRepo repositories.MuscleGroupRepository, stats Invalidator) *ExerciseUseCase {
	return &ExerciseUseCase{
		exerciseRepo:    exerciseRepo,
		workoutRepo:     workoutRepo,
		muscleGroupRepo: muscleGroupRepo,
		stats:           stats,
	}
}

// New validates and creates an exercise of the given variant. Base rules
// run first, then the variant's own checks; all violations are reported
// together.
func (uc *ExerciseUseCase) New(in ExerciseInput) (Result[*entities.Exercise], error) {
	if _, err := uc.workoutRepo.GetByID(in.WorkoutID); err != nil {
		return Result[*entities.Exercise]{}, ErrWorkoutNotFound
	}
	if _, err := uc.muscleGroupRepo.GetByID(in.MuscleGroupID); err != nil {
		return Result[*entities.Exercise]{}, ErrMuscleGroupNotFound
	}

	errs := validators.ExerciseBase(in.Name, in.Description, in.WorkoutID, in.MuscleGroupID)

	exercise := &entities.Exercise{
		Type:          in.Type,
		Name:          in.Name,
		Description:   in.Description,
		WorkoutID:     in.WorkoutID,
		MuscleGroupID: in.MuscleGroupID,
		UserID:        in.UserID,
	}
	errs = append(errs, uc.applyVariant(exercise, in)...)

	if len(errs) > 0 {
		return fail[*entities.Exercise](errs), nil
	}

	if err := uc.exerciseRepo.Create(exercise); err != nil {
		return Result[*entities.Exercise]{}, err
	}
	if uc.stats != nil {
		uc.stats.Invalidate(in.UserID)
	}
	return succeed(exercise), nil
}

// Update repeats the create validation, requires the target exercise, and
// writes only the validated fields rather than re-saving the whole row.
// The variant is fixed at creation; the stored type wins.
func (uc *ExerciseUseCase) Update(id string, in ExerciseInput) (Result[*entities.Exercise], error) {
	if id == "" {
		return fail[*entities.Exercise]([]string{msgRequiredFields}), nil
	}
	existing, err := uc.exerciseRepo.GetByID(id)
	if err != nil {
		return Result[*entities.Exercise]{}, ErrExerciseNotFound
	}
	if _, err := uc.workoutRepo.GetByID(in.WorkoutID); err != nil {
		return Result[*entities.Exercise]{}, ErrWorkoutNotFound
	}
	if _, err := uc.muscleGroupRepo.GetByID(in.MuscleGroupID); err != nil {
		return Result[*entities.Exercise]{}, ErrMuscleGroupNotFound
	}

	in.Type = existing.Type

	errs := validators.ExerciseBase(in.Name, in.Description, in.WorkoutID, in.MuscleGroupID)

	updated := &entities.Exercise{Type: existing.Type}
	errs = append(errs, uc.applyVariant(updated, in)...)

	if len(errs) > 0 {
		return fail[*entities.Exercise](errs), nil
	}

	fields := map[string]interface{}{
		"name":            in.Name,
		"description":     in.Description,
		"workout_id":      in.WorkoutID,
		"muscle_group_id": in.MuscleGroupID,
	}
	switch existing.Type {
	case entities.ExerciseStrength:
		fields["weight"] = *updated.Weight
		fields["repetitions"] = *updated.Repetitions
	case entities.ExerciseEndurance:
		fields["duration_minutes"] = *updated.DurationMinutes
		fields["distance_km"] = *updated.DistanceKM
	case entities.ExerciseBalance:
		fields["difficulty_level"] = updated.DifficultyLevel
	case entities.ExerciseFlexibility:
		fields["stretch_type"] = updated.StretchType
	}

	if err := uc.exerciseRepo.UpdateFields(id, fields); err != nil {
		return Result[*entities.Exercise]{}, err
	}
	if uc.stats != nil {
		uc.stats.Invalidate(existing.UserID)
	}
	result, err := uc.exerciseRepo.GetByID(id)
	if err != nil {
		return Result[*entities.Exercise]{}, err
	}
	return succeed(result), nil
}

// applyVariant runs the variant-specific checks for in.Type and fills the
// matching fields of exercise with the parsed values.
func (uc *ExerciseUseCase) applyVariant(exercise *entities.Exercise, in ExerciseInput) []string {
	var errs []string
	switch in.Type {
	case entities.ExerciseStrength:
		if in.Weight == "" || in.Repetitions == "" {
			errs = append(errs, msgRequiredFields)
			break
		}
		weight, weightErrs := validators.Decimal("Weight", in.Weight, 1, 9999)
		errs = append(errs, weightErrs...)
		reps, repErrs := validators.Integer("Repetitions", in.Repetitions, 1, 9999)
		errs = append(errs, repErrs...)
		if len(errs) == 0 {
			exercise.Weight = &weight
			exercise.Repetitions = &reps
		}
	case entities.ExerciseEndurance:
		if in.DurationMinutes == "" || in.DistanceKM == "" {
			errs = append(errs, msgRequiredFields)
			break
		}
		duration, durationErrs := validators.Integer("Duration", in.DurationMinutes, 1, 0)
		errs = append(errs, durationErrs...)
		distance, distanceErrs := validators.Decimal("Distance", in.DistanceKM, 1, 0)
		errs = append(errs, distanceErrs...)
		if len(errs) == 0 {
			exercise.DurationMinutes = &duration
			exercise.DistanceKM = &distance
		}
	case entities.ExerciseBalance:
		if in.DifficultyLevel == "" {
			errs = append(errs, msgRequiredFields)
			break
		}
		exercise.DifficultyLevel = in.DifficultyLevel
	case entities.ExerciseFlexibility:
		if in.StretchType == "" {
			errs = append(errs, msgRequiredFields)
			break
		}
		exercise.StretchType = in.StretchType
	default:
		errs = append(errs, "You must select an exercise type.")
	}
	return errs
}

// Get retrieves an exercise by ID. Ownership is the caller's concern.
func (uc *ExerciseUseCase) Get(id string) (*entities.Exercise, error) {
	exercise, err := uc.exerciseRepo.GetByID(id)
	if err != nil {
		return nil, ErrExerciseNotFound
	}
	return exercise, nil
}

// ListByUser returns all of a user's exercises, most recent first.
func (uc *ExerciseUseCase) ListByUser(userID string) ([]entities.Exercise, error) {
	return uc.exerciseRepo.GetByUserID(userID)
}

// Delete removes a single exercise.
func (uc *ExerciseUseCase) Delete(id, userID string) error {
	if err := uc.exerciseRepo.Delete(id); err != nil {
		return err
	}
	if uc.stats != nil {
		uc.stats.Invalidate(userID)
	}
	return nil
}
