package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ADDR", "DB_PATH", "LOG_LEVEL", "AI_BASE_URL", "AI_API_KEY",
		"AI_TIMEOUT_SECONDS", "ENRICH_WORKER_COUNT", "ENRICH_QUEUE_SIZE", "MAINTENANCE_HOUR",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:lexgym.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "http://localhost:9090", cfg.AIBaseURL)
	assert.Equal(t, 60, cfg.AITimeoutSeconds)
	assert.Equal(t, 2, cfg.EnrichWorkerCount)
	assert.Equal(t, 32, cfg.EnrichQueueSize)
	assert.Equal(t, 4, cfg.MaintenanceHour)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("AI_TIMEOUT_SECONDS", "15")
	t.Setenv("MAINTENANCE_HOUR", "2")

	cfg := Load()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 15, cfg.AITimeoutSeconds)
	assert.Equal(t, 2, cfg.MaintenanceHour)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("ENRICH_WORKER_COUNT", "lots")

	cfg := Load()
	assert.Equal(t, 2, cfg.EnrichWorkerCount)
}
