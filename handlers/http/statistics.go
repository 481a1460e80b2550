package httpHandler

import (
	"net/http"
	"strconv"

	"workout-server/services"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	service *services.StatisticsService
}

func NewStatisticsHandler(service *services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{
		service: service,
	}
}

// GetStatistics handles GET /api/v1/statistics?sort=name&direction=asc&page=1
//
// Alongside the aggregate counts it returns the user's exercises as a
// sortable, paginated listing.
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	userID := currentUserID(c)

	stats, err := h.service.ForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute statistics",
		})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	listing, err := h.service.ExerciseListing(
		userID,
		c.DefaultQuery("sort", "updated_at"),
		c.DefaultQuery("direction", "desc"),
		page,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute statistics",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      stats,
		"exercises": listing,
	})
}
