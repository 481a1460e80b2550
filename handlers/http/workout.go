package httpHandler

import (
	"net/http"

	"workout-server/usecases"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	useCase *usecases.WorkoutUseCase
}

func NewWorkoutHandler(useCase *usecases.WorkoutUseCase) *WorkoutHandler {
	return &WorkoutHandler{
		useCase: useCase,
	}
}

type workoutInput struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

// CreateWorkout handles POST /api/v1/workouts
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var in workoutInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	res, err := h.useCase.New(in.Name, in.Description, currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create workout",
		})
		return
	}
	if !res.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": res.Errors,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Workout created successfully",
		"data":    res.Value,
	})
}

// GetAllWorkouts handles GET /api/v1/workouts
func (h *WorkoutHandler) GetAllWorkouts(c *gin.Context) {
	workouts, err := h.useCase.ListByUser(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve workouts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  workouts,
		"count": len(workouts),
	})
}

// GetWorkout handles GET /api/v1/workouts/:id
//
// Owners always see their workout; everyone else only when it is shared.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Workout not found",
		})
		return
	}
	if workout.UserID != currentUserID(c) && !workout.IsShared {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not have permission to view this workout.",
		})
		return
	}

	exercises, err := h.useCase.Exercises(workout.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve exercises",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      workout,
		"exercises": exercises,
	})
}

// UpdateWorkout handles PUT /api/v1/workouts/:id
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	workout, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Workout not found",
		})
		return
	}
	if workout.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not have permission to edit this workout.",
		})
		return
	}

	var in workoutInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	res, err := h.useCase.Update(workout.ID, in.Name, in.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update workout",
		})
		return
	}
	if !res.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": res.Errors,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Workout updated successfully",
		"data":    res.Value,
	})
}

// DeleteWorkout handles DELETE /api/v1/workouts/:id
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	workout, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Workout not found",
		})
		return
	}
	if workout.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not have permission to delete this workout.",
		})
		return
	}

	if err := h.useCase.Delete(workout.ID, currentUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete workout",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Workout deleted successfully",
	})
}

// CompleteWorkout handles POST /api/v1/workouts/:id/complete
func (h *WorkoutHandler) CompleteWorkout(c *gin.Context) {
	workout, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Workout not found",
		})
		return
	}
	if workout.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not have permission to complete this workout.",
		})
		return
	}

	updated, err := h.useCase.ToggleCompleted(workout.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update workout",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
	})
}

// ShareWorkout handles POST /api/v1/workouts/:id/share
func (h *WorkoutHandler) ShareWorkout(c *gin.Context) {
	workout, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Workout not found",
		})
		return
	}
	if workout.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not have permission to share this workout.",
		})
		return
	}

	updated, err := h.useCase.ToggleShared(workout.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update workout",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
	})
}
