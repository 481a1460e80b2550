package httpHandler

import (
	"net/http"

	"workout-server/usecases"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	userUseCase    *usecases.UserUseCase
	workoutUseCase *usecases.WorkoutUseCase
}

func NewProfileHandler(userUseCase *usecases.UserUseCase, workoutUseCase *usecases.WorkoutUseCase) *ProfileHandler {
	return &ProfileHandler{
		userUseCase:    userUseCase,
		workoutUseCase: workoutUseCase,
	}
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.userUseCase.Get(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
		return
	}

	workouts, err := h.workoutUseCase.ListByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve workouts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     user,
		"workouts": workouts,
	})
}

// GetUserProfile handles GET /api/v1/profile/:id
//
// Other users' profiles only expose what they have shared.
func (h *ProfileHandler) GetUserProfile(c *gin.Context) {
	user, err := h.userUseCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
		return
	}

	if user.ID == currentUserID(c) {
		h.GetProfile(c)
		return
	}

	workouts, err := h.workoutUseCase.SharedByUser(user.ID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve workouts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     user,
		"workouts": workouts,
	})
}

// UpdateProfile handles PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var in usecases.UpdateProfileInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	res, err := h.userUseCase.Update(currentUserID(c), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update profile",
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
		"message": "Profile updated successfully",
		"data":    res.Value,
	})
}

// UpdatePassword handles PUT /api/v1/profile/password
func (h *ProfileHandler) UpdatePassword(c *gin.Context) {
	var in usecases.UpdatePasswordInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	res, err := h.userUseCase.UpdatePassword(currentUserID(c), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update password",
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
		"message": "Password updated successfully",
	})
}
