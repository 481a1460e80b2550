// Package services holds derived read models computed from the
// repositories, currently the per-user exercise statistics.
package services

import (
	"sort"
	"strings"
	"time"

	"workout-server/cache"
	"workout-server/entities"
	"workout-server/repositories"
)

// listingPageSize is how many exercises one statistics page lists.
const listingPageSize = 12

// Breakdown is a labelled count series over three windows.
type Breakdown struct {
	Labels    []string `json:"labels"`
	AllTime   []int    `json:"all_time"`
	LastWeek  []int    `json:"last_week"`
	LastMonth []int    `json:"last_month"`
}

// Statistics is the statistics page payload for one user.
type Statistics struct {
	TotalExercises int       `json:"total_exercises"`
	ByType         Breakdown `json:"by_type"`
	ByMuscleGroup  Breakdown `json:"by_muscle_group"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// StatisticsService computes per-user exercise aggregates and caches the
// snapshots. Writers invalidate through the usecases.Invalidator hook.
type StatisticsService struct {
	exerciseRepo    repositories.ExerciseRepository
	muscleGroupRepo repositories.MuscleGroupRepository
	workoutRepo     repositories.WorkoutRepository
	snapshots       *cache.Cache[*Statistics]
	now             func() time.Time
}

func NewStatisticsService(exerciseRepo repositories.ExerciseRepository, muscleGroupRepo repositories.MuscleGroupRepository, workoutRepo repositories.WorkoutRepository, ttl time.Duration) *StatisticsService {
	return &StatisticsService{
		exerciseRepo:    exerciseRepo,
		muscleGroupRepo: muscleGroupRepo,
		workoutRepo:     workoutRepo,
		snapshots:       cache.New[*Statistics](ttl),
		now:             time.Now,
	}
}

// Invalidate drops the cached snapshot for a user. Called after every
// workout or exercise write.
func (s *StatisticsService) Invalidate(userID string) {
	s.snapshots.Invalidate(userID)
}

// ForUser returns the user's statistics, computing and caching them when
// no fresh snapshot exists.
func (s *StatisticsService) ForUser(userID string) (*Statistics, error) {
	if snapshot, ok := s.snapshots.Get(userID); ok {
		return snapshot, nil
	}

	exercises, err := s.exerciseRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	groups, err := s.muscleGroupRepo.GetAll()
	if err != nil {
		return nil, err
	}

	snapshot := s.compute(exercises, groups)
	s.snapshots.Set(userID, snapshot)
	return snapshot, nil
}

// ListedExercise is one row of the statistics exercise listing, with the
// names the sortable columns need resolved.
type ListedExercise struct {
	entities.Exercise
	WorkoutName     string `json:"workout_name"`
	MuscleGroupName string `json:"muscle_group_name"`
}

// ExercisePage is one page of the sortable exercise listing.
type ExercisePage struct {
	Exercises  []ListedExercise `json:"exercises"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	Count      int              `json:"count"`
	Sort       string           `json:"sort"`
	Direction  string           `json:"direction"`
}

// ExerciseListing returns the user's exercises sorted by the requested
// column, twelve per page. Unknown sort fields fall back to updated_at;
// any direction other than "asc" sorts descending.
func (s *StatisticsService) ExerciseListing(userID, sortField, direction string, page int) (*ExercisePage, error) {
	exercises, err := s.exerciseRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	groups, err := s.muscleGroupRepo.GetAll()
	if err != nil {
		return nil, err
	}
	workouts, err := s.workoutRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	groupNames := make(map[string]string, len(groups))
	for _, g := range groups {
		groupNames[g.ID] = g.Name
	}
	workoutNames := make(map[string]string, len(workouts))
	for _, w := range workouts {
		workoutNames[w.ID] = w.Name
	}

	listed := make([]ListedExercise, 0, len(exercises))
	for _, e := range exercises {
		listed = append(listed, ListedExercise{
			Exercise:        e,
			WorkoutName:     workoutNames[e.WorkoutID],
			MuscleGroupName: groupNames[e.MuscleGroupID],
		})
	}

	compare := func(a, b ListedExercise) int {
		switch sortField {
		case "name":
			return strings.Compare(a.Name, b.Name)
		case "workout_name":
			return strings.Compare(a.WorkoutName, b.WorkoutName)
		case "muscle_group":
			return strings.Compare(a.MuscleGroupName, b.MuscleGroupName)
		default:
			switch {
			case a.UpdatedAt.Before(b.UpdatedAt):
				return -1
			case a.UpdatedAt.After(b.UpdatedAt):
				return 1
			}
			return 0
		}
	}
	asc := direction == "asc"
	sort.SliceStable(listed, func(i, j int) bool {
		if asc {
			return compare(listed[i], listed[j]) < 0
		}
		return compare(listed[i], listed[j]) > 0
	})

	totalPages := (len(listed) + listingPageSize - 1) / listingPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * listingPageSize
	end := start + listingPageSize
	if start > len(listed) {
		start = len(listed)
	}
	if end > len(listed) {
		end = len(listed)
	}

	return &ExercisePage{
		Exercises:  listed[start:end],
		Page:       page,
		TotalPages: totalPages,
		Count:      len(listed),
		Sort:       sortField,
		Direction:  direction,
	}, nil
}

func (s *StatisticsService) compute(exercises []entities.Exercise, groups []entities.MuscleGroup) *Statistics {
	now := s.now()
	weekCutoff := now.Add(-7 * 24 * time.Hour)
	monthCutoff := now.Add(-30 * 24 * time.Hour)

	types := entities.ExerciseTypes()
	typeIndex := make(map[entities.ExerciseType]int, len(types))
	byType := Breakdown{
		AllTime:   make([]int, len(types)),
		LastWeek:  make([]int, len(types)),
		LastMonth: make([]int, len(types)),
	}
	for i, t := range types {
		typeIndex[t] = i
		byType.Labels = append(byType.Labels, t.Label())
	}

	groupIndex := make(map[string]int, len(groups))
	byGroup := Breakdown{
		AllTime:   make([]int, len(groups)),
		LastWeek:  make([]int, len(groups)),
		LastMonth: make([]int, len(groups)),
	}
	for i, g := range groups {
		groupIndex[g.ID] = i
		byGroup.Labels = append(byGroup.Labels, g.Name)
	}

	for _, e := range exercises {
		if i, ok := typeIndex[e.Type]; ok {
			tally(&byType, i, e.UpdatedAt, weekCutoff, monthCutoff)
		}
		if i, ok := groupIndex[e.MuscleGroupID]; ok {
			tally(&byGroup, i, e.UpdatedAt, weekCutoff, monthCutoff)
		}
	}

	return &Statistics{
		TotalExercises: len(exercises),
		ByType:         byType,
		ByMuscleGroup:  byGroup,
		GeneratedAt:    now,
	}
}

func tally(b *Breakdown, i int, at, weekCutoff, monthCutoff time.Time) {
	b.AllTime[i]++
	if at.After(weekCutoff) {
		b.LastWeek[i]++
	}
	if at.After(monthCutoff) {
		b.LastMonth[i]++
	}
}
