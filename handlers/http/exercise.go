package httpHandler

import (
	"errors"
	"net/http"

	"workout-server/entities"
	"workout-server/usecases"

	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	useCase        *usecases.ExerciseUseCase
	workoutUseCase *usecases.WorkoutUseCase
}

func NewExerciseHandler(useCase *usecases.ExerciseUseCase, workoutUseCase *usecases.WorkoutUseCase) *ExerciseHandler {
	return &ExerciseHandler{
		useCase:        useCase,
		workoutUseCase: workoutUseCase,
	}
}

// GetExerciseTypes handles GET /api/v1/exercises/types
//
// Lists the variants with the inputs a client form should render for
// each.
func (h *ExerciseHandler) GetExerciseTypes(c *gin.Context) {
	types := entities.ExerciseTypes()
	data := make([]gin.H, 0, len(types))
	for _, t := range types {
		data = append(data, gin.H{
			"type":   t,
			"label":  t.Label(),
			"fields": t.FormFields(),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"data": data,
	})
}

// CreateExercise handles POST /api/v1/exercises?type=strength
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var in usecases.ExerciseInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	exerciseType, ok := entities.ParseExerciseType(c.Query("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []string{"You must select an exercise type."},
		})
		return
	}
	in.Type = exerciseType
	in.UserID = currentUserID(c)

	workout, err := h.workoutUseCase.Get(in.WorkoutID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Workout not found",
		})
		return
	}
	if workout.UserID != in.UserID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not have permission to edit this workout.",
		})
		return
	}

	res, err := h.useCase.New(in)
	if err != nil {
		h.writeError(c, err, "Failed to create exercise")
		return
	}
	if !res.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": res.Errors,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Exercise created successfully",
		"data":    res.Value,
	})
}

// GetExercise handles GET /api/v1/exercises/:id
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Exercise not found",
		})
		return
	}
	if exercise.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not have permission to view this exercise.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    exercise,
		"display": exercise.Data(),
	})
}

// UpdateExercise handles PUT /api/v1/exercises/:id
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	exercise, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Exercise not found",
		})
		return
	}
	if exercise.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not have permission to edit this exercise.",
		})
		return
	}

	var in usecases.ExerciseInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}
	in.UserID = currentUserID(c)

	// The target workout must be the caller's too, or the exercise could
	// be re-attached to someone else's workout.
	workout, err := h.workoutUseCase.Get(in.WorkoutID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Workout not found",
		})
		return
	}
	if workout.UserID != in.UserID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not have permission to edit this workout.",
		})
		return
	}

	res, err := h.useCase.Update(exercise.ID, in)
	if err != nil {
		h.writeError(c, err, "Failed to update exercise")
		return
	}
	if !res.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": res.Errors,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Exercise updated successfully",
		"data":    res.Value,
	})
}

// DeleteExercise handles DELETE /api/v1/exercises/:id
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	exercise, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Exercise not found",
		})
		return
	}
	if exercise.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not have permission to delete this exercise.",
		})
		return
	}

	if err := h.useCase.Delete(exercise.ID, currentUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete exercise",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Exercise deleted successfully",
	})
}

func (h *ExerciseHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, usecases.ErrWorkoutNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
	case errors.Is(err, usecases.ErrMuscleGroupNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Muscle group not found"})
	case errors.Is(err, usecases.ErrExerciseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Exercise not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
