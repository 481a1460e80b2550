package httpHandler

import (
	"errors"
	"net/http"

	"workout-server/usecases"

	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	useCase *usecases.ChallengeUseCase
}

func NewChallengeHandler(useCase *usecases.ChallengeUseCase) *ChallengeHandler {
	return &ChallengeHandler{
		useCase: useCase,
	}
}

type challengeInput struct {
	Name        string `form:"name" json:"name"`
	Level       string `form:"level" json:"level"`
	Description string `form:"description" json:"description"`
}

// CreateChallenge handles POST /api/v1/challenges
//
// Challenges are global reference data; this endpoint exists for seeding
// tools.
func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	var in challengeInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	res, err := h.useCase.Create(in.Name, in.Level, in.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create challenge",
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
		"message": "Challenge created successfully",
		"data":    res.Value,
	})
}

// GetSharedChallenges handles GET /api/v1/challenges
//
// Returns the joinable challenge workouts: shared workouts carrying a
// challenge template.
func (h *ChallengeHandler) GetSharedChallenges(c *gin.Context) {
	workouts, err := h.useCase.ListShared()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve challenges",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  workouts,
		"count": len(workouts),
	})
}

// GetChallengeTemplates handles GET /api/v1/challenges/templates
func (h *ChallengeHandler) GetChallengeTemplates(c *gin.Context) {
	templates, err := h.useCase.ListTemplates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve challenges",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  templates,
		"count": len(templates),
	})
}

// GetJoinedChallenges handles GET /api/v1/challenges/joined
func (h *ChallengeHandler) GetJoinedChallenges(c *gin.Context) {
	enrollments, err := h.useCase.ListJoined(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve challenges",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  enrollments,
		"count": len(enrollments),
	})
}

// ViewChallenge handles GET /api/v1/challenges/workout/:id
//
// The path ID is the shared workout carrying the challenge.
func (h *ChallengeHandler) ViewChallenge(c *gin.Context) {
	detail, err := h.useCase.View(currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecases.ErrChallengeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Challenge not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve challenge",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": detail,
	})
}

// JoinChallenge handles POST /api/v1/challenges/workout/:id/join
//
// Joining an already-joined challenge is a no-op, not an error.
func (h *ChallengeHandler) JoinChallenge(c *gin.Context) {
	enrollment, created, err := h.useCase.Join(currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecases.ErrChallengeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Challenge not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to join challenge",
		})
		return
	}

	status := http.StatusOK
	message := "Already joined this challenge"
	if created {
		status = http.StatusCreated
		message = "Challenge joined successfully"
	}
	c.JSON(status, gin.H{
		"message": message,
		"data":    enrollment,
	})
}

type progressInput struct {
	Index int  `form:"index" json:"index"`
	Done  bool `form:"done" json:"done"`
}

// MarkProgress handles POST /api/v1/challenges/:id/progress
//
// The path ID is the challenge template; the body names which exercise
// to mark.
func (h *ChallengeHandler) MarkProgress(c *gin.Context) {
	var in progressInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	enrollment, err := h.useCase.MarkExercise(currentUserID(c), c.Param("id"), in.Index, in.Done)
	if err != nil {
		if errors.Is(err, usecases.ErrChallengeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Challenge not found",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": enrollment,
	})
}
