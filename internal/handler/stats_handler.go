package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/broadstreet/cholera-dashboard-go/internal/service"
	"github.com/broadstreet/cholera-dashboard-go/pkg/response"
)

// StatsHandler handles HTTP requests for outbreak statistics
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStatistics handles GET /api/v1/stats
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	stats, err := h.statsService.GetOutbreakStatistics()
	if err != nil {
		response.Unavailable(c, err.Error())
		return
	}

	response.Success(c, stats)
}
