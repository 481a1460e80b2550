package httpHandler

import (
	"net/http"

	"workout-server/usecases"

	"github.com/gin-gonic/gin"
)

type MuscleGroupHandler struct {
	useCase *usecases.MuscleGroupUseCase
}

func NewMuscleGroupHandler(useCase *usecases.MuscleGroupUseCase) *MuscleGroupHandler {
	return &MuscleGroupHandler{
		useCase: useCase,
	}
}

type muscleGroupInput struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

// CreateMuscleGroup handles POST /api/v1/muscle-groups
//
// Muscle groups are global reference data; this endpoint exists for
// seeding tools, not for regular users.
func (h *MuscleGroupHandler) CreateMuscleGroup(c *gin.Context) {
	var in muscleGroupInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	res, err := h.useCase.Create(in.Name, in.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create muscle group",
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
		"message": "Muscle group created successfully",
		"data":    res.Value,
	})
}

// GetAllMuscleGroups handles GET /api/v1/muscle-groups
func (h *MuscleGroupHandler) GetAllMuscleGroups(c *gin.Context) {
	groups, err := h.useCase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve muscle groups",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  groups,
		"count": len(groups),
	})
}
