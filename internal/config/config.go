// Package config centralises configuration parsing for fittracker.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values.
type Config struct {
	DataDir        string
	DBPath         string
	HTTPAddress    string
	ReportSchedule string  // cron spec; empty runs the report once
	UserWeight     float64 // kg, used for FIT imports
	UserHeight     float64 // cm, used for FIT imports
	LogLevel       slog.Level
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("No .env file found, using system environment variables")
	}

	cfg := Config{
		DataDir:        getEnv("DATA_DIR", "./data"),
		HTTPAddress:    getEnv("HTTP_ADDRESS", ":8888"),
		ReportSchedule: strings.TrimSpace(os.Getenv("REPORT_SCHEDULE")),
		UserWeight:     getFloatEnv("USER_WEIGHT_KG", 75),
		UserHeight:     getFloatEnv("USER_HEIGHT_CM", 175),
		LogLevel:       getLevelEnv("LOG_LEVEL", slog.LevelInfo),
	}

	// Fallback to DATA_DIR/fittracker.db if DB_PATH not set
	cfg.DBPath = getEnv("DB_PATH", filepath.Join(cfg.DataDir, "fittracker.db"))
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getLevelEnv(key string, fallback slog.Level) slog.Level {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return fallback
}
