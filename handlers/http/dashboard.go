package httpHandler

import (
	"net/http"

	"workout-server/usecases"

	"github.com/gin-gonic/gin"
)

// recentWorkoutLimit is how many workouts the dashboard shows.
const recentWorkoutLimit = 4

type DashboardHandler struct {
	workoutUseCase   *usecases.WorkoutUseCase
	challengeUseCase *usecases.ChallengeUseCase
}

func NewDashboardHandler(workoutUseCase *usecases.WorkoutUseCase, challengeUseCase *usecases.ChallengeUseCase) *DashboardHandler {
	return &DashboardHandler{
		workoutUseCase:   workoutUseCase,
		challengeUseCase: challengeUseCase,
	}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID := currentUserID(c)

	workouts, err := h.workoutUseCase.RecentByUser(userID, recentWorkoutLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve workouts",
		})
		return
	}

	challenges, err := h.challengeUseCase.ListJoined(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve challenges",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recent_workouts":   workouts,
		"joined_challenges": challenges,
	})
}
