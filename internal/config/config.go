package config

import (
	"log/slog"
	"os"
	"strings"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	SaveDir     string
	Backend     string
	RedisAddr   string
	Environment string
	LogLevel    slog.Level
}

func Load() *Config {
	return &Config{
		SaveDir:     getEnv("SAVE_DIR", "./saving"),
		Backend:     strings.ToLower(getEnv("STORAGE_BACKEND", BackendFile)),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
