package httpHandler

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"workout-server/entities"
	"workout-server/usecases"

	"github.com/gin-gonic/gin"
)

// historyPageSize is how many entries one history page holds.
const historyPageSize = 12

type HistoryHandler struct {
	workoutUseCase  *usecases.WorkoutUseCase
	exerciseUseCase *usecases.ExerciseUseCase
}

func NewHistoryHandler(workoutUseCase *usecases.WorkoutUseCase, exerciseUseCase *usecases.ExerciseUseCase) *HistoryHandler {
	return &HistoryHandler{
		workoutUseCase:  workoutUseCase,
		exerciseUseCase: exerciseUseCase,
	}
}

type historyEntry struct {
	Kind      string             `json:"kind"` // "workout" or "exercise"
	Timestamp time.Time          `json:"timestamp"`
	Workout   *entities.Workout  `json:"workout,omitempty"`
	Exercise  *entities.Exercise `json:"exercise,omitempty"`
}

// GetHistory handles GET /api/v1/history?page=1
//
// Merges the user's workouts and exercises into one timeline, newest
// first, twelve entries per page.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	userID := currentUserID(c)

	workouts, err := h.workoutUseCase.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve history",
		})
		return
	}
	exercises, err := h.exerciseUseCase.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve history",
		})
		return
	}

	entries := make([]historyEntry, 0, len(workouts)+len(exercises))
	for i := range workouts {
		entries = append(entries, historyEntry{
			Kind:      "workout",
			Timestamp: workouts[i].UpdatedAt,
			Workout:   &workouts[i],
		})
	}
	for i := range exercises {
		entries = append(entries, historyEntry{
			Kind:      "exercise",
			Timestamp: exercises[i].UpdatedAt,
			Exercise:  &exercises[i],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	totalPages := (len(entries) + historyPageSize - 1) / historyPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * historyPageSize
	end := start + historyPageSize
	if start > len(entries) {
		start = len(entries)
	}
	if end > len(entries) {
		end = len(entries)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        entries[start:end],
		"page":        page,
		"total_pages": totalPages,
		"count":       len(entries),
	})
}
