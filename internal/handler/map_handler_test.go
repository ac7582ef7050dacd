package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/broadstreet/cholera-dashboard-go/internal/models"
)

func optionsForQuery(t *testing.T, query string) models.MapOptions {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/map"+query, nil)
	return ParseMapOptions(c)
}

func TestParseMapOptions_Defaults(t *testing.T) {
	opts := optionsForQuery(t, "")
	assert.Equal(t, models.DefaultMapOptions(), opts)
}

func TestParseMapOptions_Toggles(t *testing.T) {
	opts := optionsForQuery(t, "?heatmap=0&markers=false&pump_labels=0")
	assert.False(t, opts.ShowHeatmap)
	assert.False(t, opts.ShowDeathMarkers)
	assert.False(t, opts.ShowPumpLabels)

	opts = optionsForQuery(t, "?heatmap=true")
	assert.True(t, opts.ShowHeatmap)
}

func TestParseMapOptions_Numeric(t *testing.T) {
	opts := optionsForQuery(t, "?radius=22&blur=7&opacity=0.4")
	assert.Equal(t, 22, opts.HeatmapRadius)
	assert.Equal(t, 7, opts.HeatmapBlur)
	assert.Equal(t, 0.4, opts.HeatmapOpacity)
}

func TestParseMapOptions_ClampsOutOfRange(t *testing.T) {
	opts := optionsForQuery(t, "?radius=99&blur=1&opacity=5")
	assert.Equal(t, models.MaxHeatmapRadius, opts.HeatmapRadius)
	assert.Equal(t, models.MinHeatmapBlur, opts.HeatmapBlur)
	assert.Equal(t, models.MaxHeatmapOpacity, opts.HeatmapOpacity)
}

func TestParseMapOptions_MalformedValuesKeepDefaults(t *testing.T) {
	opts := optionsForQuery(t, "?heatmap=maybe&radius=wide&opacity=solid")
	assert.Equal(t, models.DefaultMapOptions(), opts)
}
