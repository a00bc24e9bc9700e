package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/AliAmouz/rustyPromodo/internal/model"
)

type Config struct {
	DBPath        string
	Port          string
	CORSOrigins   []string
	WorkDuration  time.Duration
	BreakDuration time.Duration
}

func Load() Config {
	return Config{
		DBPath:        getEnv("POMODORO_DB_PATH", defaultDBPath()),
		Port:          getEnv("POMODORO_PORT", "8080"),
		CORSOrigins:   getEnvList("POMODORO_CORS_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"}),
		WorkDuration:  getEnvDuration("POMODORO_WORK_DURATION", model.DefaultWorkDuration),
		BreakDuration: getEnvDuration("POMODORO_BREAK_DURATION", model.DefaultBreakDuration),
	}
}

func defaultDBPath() string {
	return filepath.Join(xdg.DataHome, "rustyPromodo", "sessions.db")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
