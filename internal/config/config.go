package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DBPath            string
	LogLevel          string
	AIBaseURL         string
	AIAPIKey          string
	AITimeoutSeconds  int
	EnrichWorkerCount int
	EnrichQueueSize   int
	MaintenanceHour   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:              envOr("ADDR", ":8080"),
		DBPath:            envOr("DB_PATH", "file:lexgym.db"),
		LogLevel:          envOr("LOG_LEVEL", "INFO"),
		AIBaseURL:         envOr("AI_BASE_URL", "http://localhost:9090"),
		AIAPIKey:          envOr("AI_API_KEY", ""),
		AITimeoutSeconds:  envIntOr("AI_TIMEOUT_SECONDS", 60),
		EnrichWorkerCount: envIntOr("ENRICH_WORKER_COUNT", 2),
		EnrichQueueSize:   envIntOr("ENRICH_QUEUE_SIZE", 32),
		MaintenanceHour:   envIntOr("MAINTENANCE_HOUR", 4),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
