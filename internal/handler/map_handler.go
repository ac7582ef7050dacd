package handler

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/broadstreet/cholera-dashboard-go/internal/models"
	"github.com/broadstreet/cholera-dashboard-go/internal/service"
	"github.com/broadstreet/cholera-dashboard-go/pkg/response"
)

// MapHandler handles HTTP requests for the composed map
type MapHandler struct {
	maps *service.MapService
}

// NewMapHandler creates a new map handler
func NewMapHandler(maps *service.MapService) *MapHandler {
	return &MapHandler{maps: maps}
}

// ParseMapOptions reads the display options from query parameters.
// Absent or malformed values keep their defaults; the range sliders on the
// page enforce the numeric bounds, so out-of-range values are only clamped.
func ParseMapOptions(c *gin.Context) models.MapOptions {
	opts := models.DefaultMapOptions()

	if v := c.Query("heatmap"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.ShowHeatmap = b
		}
	}
	if v := c.Query("markers"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.ShowDeathMarkers = b
		}
	}
	if v := c.Query("pump_labels"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.ShowPumpLabels = b
		}
	}
	if v := c.Query("radius"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.HeatmapRadius = n
		}
	}
	if v := c.Query("blur"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.HeatmapBlur = n
		}
	}
	if v := c.Query("opacity"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.HeatmapOpacity = f
		}
	}

	opts.Clamp()
	return opts
}

// GetLayers handles GET /api/v1/map/layers
func (h *MapHandler) GetLayers(c *gin.Context) {
	doc, err := h.maps.ComposeMap(ParseMapOptions(c))
	if err != nil {
		response.Unavailable(c, err.Error())
		return
	}

	response.Success(c, doc)
}

// GetOptions handles GET /api/v1/map/options
func (h *MapHandler) GetOptions(c *gin.Context) {
	response.Success(c, models.DefaultOptionBounds())
}

// RenderMap handles GET /map, serving the composed map as a
// self-contained HTML document embedded by the dashboard page
func (h *MapHandler) RenderMap(c *gin.Context) {
	doc, err := h.maps.ComposeMap(ParseMapOptions(c))
	if err != nil {
		c.HTML(http.StatusServiceUnavailable, "map.html", gin.H{
			"Error": err.Error(),
		})
		return
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "map.html", gin.H{
			"Error": err.Error(),
		})
		return
	}

	c.HTML(http.StatusOK, "map.html", gin.H{
		"DocJSON": template.JS(payload),
	})
}
