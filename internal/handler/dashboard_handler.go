package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/broadstreet/cholera-dashboard-go/internal/models"
	"github.com/broadstreet/cholera-dashboard-go/internal/service"
)

// DashboardHandler serves the dashboard page
type DashboardHandler struct {
	statsService *service.StatsService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(statsService *service.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

// Index handles GET /. When the dataset failed to load the page still
// renders, showing the error panel in place of the map and statistics;
// the sidebar about text is unconditional.
func (h *DashboardHandler) Index(c *gin.Context) {
	data := gin.H{
		"Bounds": models.DefaultOptionBounds(),
	}

	stats, err := h.statsService.GetOutbreakStatistics()
	if err != nil {
		data["LoadError"] = err.Error()
	} else {
		data["Stats"] = stats
	}

	c.HTML(http.StatusOK, "dashboard.html", data)
}
