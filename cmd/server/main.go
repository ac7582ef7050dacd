package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/broadstreet/cholera-dashboard-go/internal/api"
	"github.com/broadstreet/cholera-dashboard-go/internal/config"
	"github.com/broadstreet/cholera-dashboard-go/internal/database"
	"github.com/broadstreet/cholera-dashboard-go/internal/observability"
	"github.com/broadstreet/cholera-dashboard-go/internal/repository"
	"github.com/broadstreet/cholera-dashboard-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// 初始化缓存数据库；失败时不带缓存继续运行
	var layerRepo *repository.LayerRepository
	_ = os.MkdirAll(filepath.Dir(cfg.CacheDBPath), 0o755)
	if err := database.Init(database.Config{Path: cfg.CacheDBPath}); err != nil {
		logrus.WithError(err).Warn("cache database unavailable, continuing without warm cache")
	} else {
		layerRepo = repository.NewLayerRepository(database.GetDB())
		defer database.Close()
	}

	datasets := service.NewDatasetService(cfg.DataPath, layerRepo)

	// Load once up front so the dataset gauges reflect reality before the
	// first request arrives. A failed load still serves the error page.
	metrics := observability.NewMetrics()
	if ds, err := datasets.Dataset(); err != nil {
		metrics.ObserveDataset(0, 0, true)
	} else {
		metrics.ObserveDataset(len(ds.Deaths), len(ds.Pumps), false)
	}

	// 初始化路由
	router := api.SetupRouter(cfg, datasets, metrics)

	// 启动服务器
	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := router.Run(cfg.Port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
