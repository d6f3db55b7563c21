package config

import (
	"os"
	"strings"
	"time"
)

// Config keeps runtime settings for the engine.
type Config struct {
	DatabaseURL    string
	ExportPath     string
	ExportAt       string // HH:MM; takes precedence over the interval
	ExportInterval time.Duration
	LookbackDays   int
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ExportPath:     strings.TrimSpace(os.Getenv("TRAINING_EXPORT_PATH")),
		ExportAt:       strings.TrimSpace(os.Getenv("TRAINING_EXPORT_AT")),
		ExportInterval: parseInterval(strings.TrimSpace(os.Getenv("TRAINING_EXPORT_INTERVAL_HOURS"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "habit_engine.db"
	}

	if cfg.ExportPath == "" {
		cfg.ExportPath = "training_rows.jsonl"
	}

	if cfg.ExportInterval == 0 {
		cfg.ExportInterval = 24 * time.Hour
	}

	cfg.LookbackDays = 30

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
