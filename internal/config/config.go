package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath string

	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

// Load reads an optional .env file and resolves every knob with a
// default, so a bare `quiz-cli` run needs no environment at all.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:        get("QUIZ_DB_PATH", "quiz_app_db.db"),
		LogLevel:      get("LOG_LEVEL", "info"),
		LogFile:       get("LOG_FILE", "quiz_app.log"),
		LogMaxSizeMB:  atoi(get("LOG_MAX_SIZE_MB", "10")),
		LogMaxBackups: atoi(get("LOG_MAX_BACKUPS", "3")),
		LogMaxAgeDays: atoi(get("LOG_MAX_AGE_DAYS", "28")),
		LogCompress:   parseBool(get("LOG_COMPRESS", "true")),
	}
}

func get(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func atoi(value string) int       { i, _ := strconv.Atoi(value); return i }
func parseBool(value string) bool { b, _ := strconv.ParseBool(value); return b }
