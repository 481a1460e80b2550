package httpHandler

import (
	"strconv"
	"time"

	"workout-server/entities"

	"gorm.io/gorm"
)

// Map-backed repositories for the route tests. Only the behavior the
// handlers rely on is modelled; contract edge cases live in the
// usecases tests.

var seq int

func nextID(prefix string) string {
	seq++
	return prefix + "-" + strconv.Itoa(seq)
}

type mapUserRepo struct {
	users map[string]*entities.User
}

func newMapUserRepo() *mapUserRepo {
	return &mapUserRepo{users: make(map[string]*entities.User)}
}

func (r *mapUserRepo) Create(user *entities.User) error {
	if user.ID == "" {
		user.ID = nextID("user")
	}
	r.users[user.ID] = user
	return nil
}

func (r *mapUserRepo) GetByID(id string) (*entities.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mapUserRepo) GetByUsername(username string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mapUserRepo) CountByUsername(username string) (int64, error) {
	var n int64
	for _, user := range r.users {
		if user.Username == username {
			n++
		}
	}
	return n, nil
}

func (r *mapUserRepo) CountByEmail(email string) (int64, error) {
	var n int64
	for _, user := range r.users {
		if user.Email == email {
			n++
		}
	}
	return n, nil
}

func (r *mapUserRepo) UpdateFields(id string, fields map[string]interface{}) error {
	user, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["username"]; ok {
		user.Username = v.(string)
	}
	if v, ok := fields["email"]; ok {
		user.Email = v.(string)
	}
	if v, ok := fields["password_hash"]; ok {
		user.PasswordHash = v.(string)
	}
	if v, ok := fields["profile_photo_url"]; ok {
		user.ProfilePhotoURL = v.(string)
	}
	if v, ok := fields["background_photo_url"]; ok {
		user.BackgroundPhotoURL = v.(string)
	}
	return nil
}

type mapWorkoutRepo struct {
	workouts map[string]*entities.Workout
}

func newMapWorkoutRepo() *mapWorkoutRepo {
	return &mapWorkoutRepo{workouts: make(map[string]*entities.Workout)}
}

func (r *mapWorkoutRepo) Create(workout *entities.Workout) error {
	if workout.ID == "" {
		workout.ID = nextID("workout")
	}
	workout.CreatedAt = time.Now()
	workout.UpdatedAt = workout.CreatedAt
	r.workouts[workout.ID] = workout
	return nil
}

func (r *mapWorkoutRepo) GetByID(id string) (*entities.Workout, error) {
	if workout, ok := r.workouts[id]; ok {
		copied := *workout
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mapWorkoutRepo) GetByUserID(userID string) ([]entities.Workout, error) {
	var out []entities.Workout
	for _, w := range r.workouts {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *mapWorkoutRepo) GetRecentByUserID(userID string, limit int) ([]entities.Workout, error) {
	out, _ := r.GetByUserID(userID)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *mapWorkoutRepo) GetSharedByUserID(userID string, limit int) ([]entities.Workout, error) {
	var out []entities.Workout
	for _, w := range r.workouts {
		if w.UserID == userID && w.IsShared {
			out = append(out, *w)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *mapWorkoutRepo) GetSharedChallengeWorkouts() ([]entities.Workout, error) {
	var out []entities.Workout
	for _, w := range r.workouts {
		if w.IsShared && w.ChallengeID != nil {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *mapWorkoutRepo) UpdateFields(id string, fields map[string]interface{}) error {
	workout, ok := r.workouts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["name"]; ok {
		workout.Name = v.(string)
	}
	if v, ok := fields["description"]; ok {
		workout.Description = v.(string)
	}
	workout.UpdatedAt = time.Now()
	return nil
}

func (r *mapWorkoutRepo) Save(workout *entities.Workout) error {
	copied := *workout
	r.workouts[workout.ID] = &copied
	return nil
}

func (r *mapWorkoutRepo) Delete(id string) error {
	delete(r.workouts, id)
	return nil
}

type mapMuscleGroupRepo struct {
	groups map[string]*entities.MuscleGroup
}

func newMapMuscleGroupRepo() *mapMuscleGroupRepo {
	return &mapMuscleGroupRepo{groups: make(map[string]*entities.MuscleGroup)}
}

func (r *mapMuscleGroupRepo) Create(group *entities.MuscleGroup) error {
	if group.ID == "" {
		group.ID = nextID("group")
	}
	r.groups[group.ID] = group
	return nil
}

func (r *mapMuscleGroupRepo) GetByID(id string) (*entities.MuscleGroup, error) {
	if group, ok := r.groups[id]; ok {
		return group, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mapMuscleGroupRepo) GetAll() ([]entities.MuscleGroup, error) {
	var out []entities.MuscleGroup
	for _, g := range r.groups {
		out = append(out, *g)
	}
	return out, nil
}

type mapExerciseRepo struct {
	exercises map[string]*entities.Exercise
}

func newMapExerciseRepo() *mapExerciseRepo {
	return &mapExerciseRepo{exercises: make(map[string]*entities.Exercise)}
}

func (r *mapExerciseRepo) Create(exercise *entities.Exercise) error {
	if exercise.ID == "" {
		exercise.ID = nextID("exercise")
	}
	exercise.CreatedAt = time.Now()
	exercise.UpdatedAt = exercise.CreatedAt
	r.exercises[exercise.ID] = exercise
	return nil
}

func (r *mapExerciseRepo) GetByID(id string) (*entities.Exercise, error) {
	if exercise, ok := r.exercises[id]; ok {
		copied := *exercise
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mapExerciseRepo) GetByUserID(userID string) ([]entities.Exercise, error) {
	var out []entities.Exercise
	for _, e := range r.exercises {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *mapExerciseRepo) GetByWorkoutID(workoutID string) ([]entities.Exercise, error) {
	var out []entities.Exercise
	for _, e := range r.exercises {
		if e.WorkoutID == workoutID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *mapExerciseRepo) UpdateFields(id string, fields map[string]interface{}) error {
	exercise, ok := r.exercises[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["name"]; ok {
		exercise.Name = v.(string)
	}
	if v, ok := fields["description"]; ok {
		exercise.Description = v.(string)
	}
	if v, ok := fields["weight"]; ok {
		value := v.(float64)
		exercise.Weight = &value
	}
	if v, ok := fields["repetitions"]; ok {
		value := v.(int)
		exercise.Repetitions = &value
	}
	exercise.UpdatedAt = time.Now()
	return nil
}

func (r *mapExerciseRepo) Delete(id string) error {
	delete(r.exercises, id)
	return nil
}

func (r *mapExerciseRepo) DeleteByWorkoutID(workoutID string) error {
	for id, e := range r.exercises {
		if e.WorkoutID == workoutID {
			delete(r.exercises, id)
		}
	}
	return nil
}

type mapChallengeRepo struct {
	challenges map[string]*entities.Challenge
}

func newMapChallengeRepo() *mapChallengeRepo {
	return &mapChallengeRepo{challenges: make(map[string]*entities.Challenge)}
}

func (r *mapChallengeRepo) Create(challenge *entities.Challenge) error {
	if challenge.ID == "" {
		challenge.ID = nextID("challenge")
	}
	r.challenges[challenge.ID] = challenge
	return nil
}

func (r *mapChallengeRepo) GetByID(id string) (*entities.Challenge, error) {
	if challenge, ok := r.challenges[id]; ok {
		return challenge, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mapChallengeRepo) GetAll() ([]entities.Challenge, error) {
	var out []entities.Challenge
	for _, c := range r.challenges {
		out = append(out, *c)
	}
	return out, nil
}

type mapUserChallengeRepo struct {
	enrollments map[string]*entities.UserChallenge
}

func newMapUserChallengeRepo() *mapUserChallengeRepo {
	return &mapUserChallengeRepo{enrollments: make(map[string]*entities.UserChallenge)}
}

func (r *mapUserChallengeRepo) Create(uc *entities.UserChallenge) error {
	if uc.ID == "" {
		uc.ID = nextID("enrollment")
	}
	r.enrollments[uc.ID] = uc
	return nil
}

func (r *mapUserChallengeRepo) GetByID(id string) (*entities.UserChallenge, error) {
	if enrollment, ok := r.enrollments[id]; ok {
		return enrollment, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mapUserChallengeRepo) GetByUserAndChallenge(userID, challengeID string) (*entities.UserChallenge, error) {
	for _, e := range r.enrollments {
		if e.UserID == userID && e.ChallengeID == challengeID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mapUserChallengeRepo) GetByUserID(userID string) ([]entities.UserChallenge, error) {
	var out []entities.UserChallenge
	for _, e := range r.enrollments {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *mapUserChallengeRepo) Save(uc *entities.UserChallenge) error {
	r.enrollments[uc.ID] = uc
	return nil
}
