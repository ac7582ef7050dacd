package api

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/broadstreet/cholera-dashboard-go/internal/config"
	"github.com/broadstreet/cholera-dashboard-go/internal/handler"
	"github.com/broadstreet/cholera-dashboard-go/internal/middleware"
	"github.com/broadstreet/cholera-dashboard-go/internal/observability"
	"github.com/broadstreet/cholera-dashboard-go/internal/service"
	"github.com/broadstreet/cholera-dashboard-go/web"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, datasets *service.DatasetService, metrics *observability.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	if metrics != nil {
		r.Use(metrics.Middleware())
	}

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	mapService := service.NewMapService(datasets)
	statsService := service.NewStatsService(datasets)

	dashboardHandler := handler.NewDashboardHandler(statsService)
	mapHandler := handler.NewMapHandler(mapService)
	statsHandler := handler.NewStatsHandler(statsService)

	// 页面
	r.GET("/", dashboardHandler.Index)
	r.GET("/map", mapHandler.RenderMap)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Cholera Dashboard API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(300, time.Minute))
	{
		api.GET("/map/layers", mapHandler.GetLayers)
		api.GET("/map/options", mapHandler.GetOptions)
		api.GET("/stats", statsHandler.GetStatistics)
	}

	return r
}
