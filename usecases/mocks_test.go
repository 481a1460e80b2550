package usecases

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"workout-server/entities"

	"gorm.io/gorm"
)

// In-memory repositories backing the manager tests. They mirror the
// Postgres implementations' contracts, including gorm.ErrRecordNotFound
// on missing rows.

type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entities.User)}
}

func (r *memUserRepo) nextID() string {
	r.seq++
	return "user-" + strconv.Itoa(r.seq)
}

func (r *memUserRepo) Create(user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = r.nextID()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByUsername(username string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) CountByUsername(username string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, user := range r.users {
		if user.Username == username {
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) CountByEmail(email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, user := range r.users {
		if user.Email == email {
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) UpdateFields(id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "username":
			user.Username = value.(string)
		case "email":
			user.Email = value.(string)
		case "password_hash":
			user.PasswordHash = value.(string)
		case "profile_photo_url":
			user.ProfilePhotoURL = value.(string)
		case "background_photo_url":
			user.BackgroundPhotoURL = value.(string)
		}
	}
	return nil
}

type memWorkoutRepo struct {
	mu       sync.Mutex
	seq      int
	workouts map[string]*entities.Workout
}

func newMemWorkoutRepo() *memWorkoutRepo {
	return &memWorkoutRepo{workouts: make(map[string]*entities.Workout)}
}

func (r *memWorkoutRepo) Create(workout *entities.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if workout.ID == "" {
		r.seq++
		workout.ID = "workout-" + strconv.Itoa(r.seq)
	}
	workout.CreatedAt = time.Now()
	workout.UpdatedAt = workout.CreatedAt
	copied := *workout
	r.workouts[workout.ID] = &copied
	return nil
}

func (r *memWorkoutRepo) GetByID(id string) (*entities.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	workout, ok := r.workouts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *workout
	return &copied, nil
}

func (r *memWorkoutRepo) byUser(userID string, sharedOnly bool) []entities.Workout {
	var out []entities.Workout
	for _, w := range r.workouts {
		if w.UserID != userID {
			continue
		}
		if sharedOnly && !w.IsShared {
			continue
		}
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *memWorkoutRepo) GetByUserID(userID string) ([]entities.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byUser(userID, false), nil
}

func (r *memWorkoutRepo) GetRecentByUserID(userID string, limit int) ([]entities.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.byUser(userID, false)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memWorkoutRepo) GetSharedByUserID(userID string, limit int) ([]entities.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.byUser(userID, true)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memWorkoutRepo) GetSharedChallengeWorkouts() ([]entities.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Workout
	for _, w := range r.workouts {
		if w.IsShared && w.ChallengeID != nil {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *memWorkoutRepo) UpdateFields(id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	workout, ok := r.workouts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			workout.Name = value.(string)
		case "description":
			workout.Description = value.(string)
		}
	}
	workout.UpdatedAt = time.Now()
	return nil
}

func (r *memWorkoutRepo) Save(workout *entities.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	workout.UpdatedAt = time.Now()
	copied := *workout
	r.workouts[workout.ID] = &copied
	return nil
}

func (r *memWorkoutRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workouts, id)
	return nil
}

type memMuscleGroupRepo struct {
	mu     sync.Mutex
	seq    int
	groups map[string]*entities.MuscleGroup
}

func newMemMuscleGroupRepo() *memMuscleGroupRepo {
	return &memMuscleGroupRepo{groups: make(map[string]*entities.MuscleGroup)}
}

func (r *memMuscleGroupRepo) Create(group *entities.MuscleGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if group.ID == "" {
		r.seq++
		group.ID = "group-" + strconv.Itoa(r.seq)
	}
	copied := *group
	r.groups[group.ID] = &copied
	return nil
}

func (r *memMuscleGroupRepo) GetByID(id string) (*entities.MuscleGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	group, ok := r.groups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *group
	return &copied, nil
}

func (r *memMuscleGroupRepo) GetAll() ([]entities.MuscleGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.MuscleGroup
	for _, g := range r.groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memExerciseRepo struct {
	mu        sync.Mutex
	seq       int
	exercises map[string]*entities.Exercise
}

func newMemExerciseRepo() *memExerciseRepo {
	return &memExerciseRepo{exercises: make(map[string]*entities.Exercise)}
}

func (r *memExerciseRepo) Create(exercise *entities.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if exercise.ID == "" {
		r.seq++
		exercise.ID = "exercise-" + strconv.Itoa(r.seq)
	}
	exercise.CreatedAt = time.Now()
	exercise.UpdatedAt = exercise.CreatedAt
	copied := *exercise
	r.exercises[exercise.ID] = &copied
	return nil
}

func (r *memExerciseRepo) GetByID(id string) (*entities.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exercise, ok := r.exercises[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *exercise
	return &copied, nil
}

func (r *memExerciseRepo) GetByUserID(userID string) ([]entities.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Exercise
	for _, e := range r.exercises {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memExerciseRepo) GetByWorkoutID(workoutID string) ([]entities.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Exercise
	for _, e := range r.exercises {
		if e.WorkoutID == workoutID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memExerciseRepo) UpdateFields(id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	exercise, ok := r.exercises[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			exercise.Name = value.(string)
		case "description":
			exercise.Description = value.(string)
		case "workout_id":
			exercise.WorkoutID = value.(string)
		case "muscle_group_id":
			exercise.MuscleGroupID = value.(string)
		case "weight":
			v := value.(float64)
			exercise.Weight = &v
		case "repetitions":
			v := value.(int)
			exercise.Repetitions = &v
		case "duration_minutes":
			v := value.(int)
			exercise.DurationMinutes = &v
		case "distance_km":
			v := value.(float64)
			exercise.DistanceKM = &v
		case "difficulty_level":
			exercise.DifficultyLevel = value.(string)
		case "stretch_type":
			exercise.StretchType = value.(string)
		}
	}
	exercise.UpdatedAt = time.Now()
	return nil
}

func (r *memExerciseRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.exercises, id)
	return nil
}

func (r *memExerciseRepo) DeleteByWorkoutID(workoutID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.exercises {
		if e.WorkoutID == workoutID {
			delete(r.exercises, id)
		}
	}
	return nil
}

type memChallengeRepo struct {
	mu         sync.Mutex
	seq        int
	challenges map[string]*entities.Challenge
}

func newMemChallengeRepo() *memChallengeRepo {
	return &memChallengeRepo{challenges: make(map[string]*entities.Challenge)}
}

func (r *memChallengeRepo) Create(challenge *entities.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if challenge.ID == "" {
		r.seq++
		challenge.ID = "challenge-" + strconv.Itoa(r.seq)
	}
	copied := *challenge
	r.challenges[challenge.ID] = &copied
	return nil
}

func (r *memChallengeRepo) GetByID(id string) (*entities.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	challenge, ok := r.challenges[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *challenge
	return &copied, nil
}

func (r *memChallengeRepo) GetAll() ([]entities.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Challenge
	for _, c := range r.challenges {
		out = append(out, *c)
	}
	return out, nil
}

type memUserChallengeRepo struct {
	mu          sync.Mutex
	seq         int
	enrollments map[string]*entities.UserChallenge
}

func newMemUserChallengeRepo() *memUserChallengeRepo {
	return &memUserChallengeRepo{enrollments: make(map[string]*entities.UserChallenge)}
}

func (r *memUserChallengeRepo) Create(uc *entities.UserChallenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if uc.ID == "" {
		r.seq++
		uc.ID = "enrollment-" + strconv.Itoa(r.seq)
	}
	copied := *uc
	r.enrollments[uc.ID] = &copied
	return nil
}

func (r *memUserChallengeRepo) GetByID(id string) (*entities.UserChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	enrollment, ok := r.enrollments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *enrollment
	return &copied, nil
}

func (r *memUserChallengeRepo) GetByUserAndChallenge(userID, challengeID string) (*entities.UserChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.enrollments {
		if e.UserID == userID && e.ChallengeID == challengeID {
			copied := *e
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserChallengeRepo) GetByUserID(userID string) ([]entities.UserChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.UserChallenge
	for _, e := range r.enrollments {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memUserChallengeRepo) Save(uc *entities.UserChallenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *uc
	r.enrollments[uc.ID] = &copied
	return nil
}

// recordingInvalidator counts cache invalidations per user.
type recordingInvalidator struct {
	mu    sync.Mutex
	calls map[string]int
}

func newRecordingInvalidator() *recordingInvalidator {
	return &recordingInvalidator{calls: make(map[string]int)}
}

func (r *recordingInvalidator) Invalidate(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[userID]++
}

func (r *recordingInvalidator) count(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[userID]
}
