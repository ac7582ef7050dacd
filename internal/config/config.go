package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port        string
	DataPath    string // 数据集目录（两个图层）
	CacheDBPath string
	LogLevel    string
}

// Load 加载配置
func Load() *Config {
	// Optional .env for local development, ignored when absent
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "./data/cholera-deaths"
	}

	cacheDBPath := os.Getenv("CACHE_DB_PATH")
	if cacheDBPath == "" {
		cacheDBPath = "./data/cache/layers.db"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		Port:        port,
		DataPath:    dataPath,
		CacheDBPath: cacheDBPath,
		LogLevel:    logLevel,
	}
}
