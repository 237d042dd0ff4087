package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort        string
	DatabaseType      string
	DatabasePath      string
	DatabaseURL       string
	MigrationsPath    string
	ScoringWebhookURL string
	ScoringTimeout    time.Duration
	TimeZone          *time.Location
	CORSOrigins       []string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("PORT", "8000"),
		DatabaseType:      getEnv("DB_TYPE", "sqlite"),
		DatabasePath:      getEnv("DB_PATH", "./vocab.db"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "./migrations"),
		ScoringWebhookURL: getEnv("SCORING_WEBHOOK_URL", "http://n8n:5678/webhook/vocab-scoring"),
		ScoringTimeout:    time.Duration(getEnvInt("SCORING_TIMEOUT_SECONDS", 30)) * time.Second,
		TimeZone:          fixedZone(getEnvInt("TZ_OFFSET_HOURS", 7)),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")),
	}
}

// fixedZone builds the civil time zone used for date boundaries and record
// timestamps. Practice dates are calendar dates in this zone, not UTC.
func fixedZone(offsetHours int) *time.Location {
	return time.FixedZone("UTC"+formatOffset(offsetHours), offsetHours*3600)
}

func formatOffset(hours int) string {
	if hours >= 0 {
		return "+" + strconv.Itoa(hours)
	}
	return strconv.Itoa(hours)
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// splitList parses a comma-separated environment value
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
