package usecases

import (
	"errors"
	"strconv"

	"workout-server/entities"
	"workout-server/repositories"
	"workout-server/validators"

	"gorm.io/gorm"
)

var ErrChallengeNotFound = errors.New("challenge not found")

type ChallengeUseCase struct {
	challengeRepo     repositories.ChallengeRepository
	userChallengeRepo repositories.UserChallengeRepository
	workoutRepo       repositories.WorkoutRepository
	exerciseRepo      repositories.ExerciseRepository
}

func NewChallengeUseCase(challengeRepo repositories.ChallengeRepository, userChallengeRepo repositories.UserChallengeRepository, workoutRepo repositories.WorkoutRepository, exerciseRepo repositories.ExerciseRepository) *ChallengeUseCase {
	return &ChallengeUseCase{
		challengeRepo:     challengeRepo,
		userChallengeRepo: userChallengeRepo,
		workoutRepo:       workoutRepo,
		exerciseRepo:      exerciseRepo,
	}
}

// Create validates and stores a challenge template. Used by seeding
// tooling; challenges are global reference data.
func (uc *ChallengeUseCase) Create(name, level, description string) (Result[*entities.Challenge], error) {
	errs := validators.Text("Name", name)
	errs = append(errs, validators.Text("Description", description)...)

	lvl := 1
	if level != "" {
		parsed, parseErrs := validators.Integer("Level", level, 1, 0)
		errs = append(errs, parseErrs...)
		lvl = parsed
	}

	if len(errs) > 0 {
		return fail[*entities.Challenge](errs), nil
	}

	challenge := &entities.Challenge{
		Name:        name,
		Level:       lvl,
		Description: description,
	}
	if err := uc.challengeRepo.Create(challenge); err != nil {
		return Result[*entities.Challenge]{}, err
	}
	return succeed(challenge), nil
}

// ListShared returns the joinable challenge workouts: shared workouts
// attached to a challenge template.
func (uc *ChallengeUseCase) ListShared() ([]entities.Workout, error) {
	return uc.workoutRepo.GetSharedChallengeWorkouts()
}

// ListTemplates returns every challenge template, easiest levels first.
func (uc *ChallengeUseCase) ListTemplates() ([]entities.Challenge, error) {
	return uc.challengeRepo.GetAll()
}

// ListJoined returns the challenges a user has joined.
func (uc *ChallengeUseCase) ListJoined(userID string) ([]entities.UserChallenge, error) {
	return uc.userChallengeRepo.GetByUserID(userID)
}

// Join enrolls a user in the challenge behind a shared workout. Joining
// twice is not an error: the existing enrollment is returned with
// created=false. The completion-status list starts with one false entry
// per exercise in the challenge workout.
func (uc *ChallengeUseCase) Join(userID, workoutID string) (*entities.UserChallenge, bool, error) {
	workout, err := uc.workoutRepo.GetByID(workoutID)
	if err != nil || workout.ChallengeID == nil || !workout.IsShared {
		return nil, false, ErrChallengeNotFound
	}

	existing, err := uc.userChallengeRepo.GetByUserAndChallenge(userID, *workout.ChallengeID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	exercises, err := uc.exerciseRepo.GetByWorkoutID(workoutID)
	if err != nil {
		return nil, false, err
	}

	enrollment := &entities.UserChallenge{
		UserID:      userID,
		ChallengeID: *workout.ChallengeID,
		WorkoutID:   &workoutID,
	}
	enrollment.SetStatus(make([]bool, len(exercises)))
	if err := uc.userChallengeRepo.Create(enrollment); err != nil {
		return nil, false, err
	}
	return enrollment, true, nil
}

// ChallengeDetail is the challenge page payload: the template, the shared
// workout carrying it, its exercises, and the viewer's progress when
// joined.
type ChallengeDetail struct {
	Challenge *entities.Challenge `json:"challenge"`
	Workout   *entities.Workout   `json:"workout"`
	Exercises []entities.Exercise `json:"exercises"`
	Status    []bool              `json:"status,omitempty"`
	Joined    bool                `json:"joined"`
}

// View loads the detail for the challenge behind a shared workout. The
// viewer does not need to have joined; progress is attached when they
// have.
func (uc *ChallengeUseCase) View(userID, workoutID string) (*ChallengeDetail, error) {
	workout, err := uc.workoutRepo.GetByID(workoutID)
	if err != nil || workout.ChallengeID == nil {
		return nil, ErrChallengeNotFound
	}
	challenge, err := uc.challengeRepo.GetByID(*workout.ChallengeID)
	if err != nil {
		return nil, ErrChallengeNotFound
	}
	exercises, err := uc.exerciseRepo.GetByWorkoutID(workoutID)
	if err != nil {
		return nil, err
	}

	detail := &ChallengeDetail{
		Challenge: challenge,
		Workout:   workout,
		Exercises: exercises,
	}
	if enrollment, err := uc.userChallengeRepo.GetByUserAndChallenge(userID, challenge.ID); err == nil {
		detail.Joined = true
		detail.Status = enrollment.Status()
		// Workouts can gain exercises after enrollment; pad the list.
		for len(detail.Status) < len(exercises) {
			detail.Status = append(detail.Status, false)
		}
	}
	return detail, nil
}

// MarkExercise toggles one entry of the viewer's completion-status list.
func (uc *ChallengeUseCase) MarkExercise(userID, challengeID string, index int, done bool) (*entities.UserChallenge, error) {
	enrollment, err := uc.userChallengeRepo.GetByUserAndChallenge(userID, challengeID)
	if err != nil {
		return nil, ErrChallengeNotFound
	}
	status := enrollment.Status()
	if index < 0 || index >= len(status) {
		return nil, errors.New("exercise index out of range: " + strconv.Itoa(index))
	}
	status[index] = done
	enrollment.SetStatus(status)
	if err := uc.userChallengeRepo.Save(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}
