package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, 3, cfg.AuditMaxRetries)
	assert.Equal(t, 30*time.Second, cfg.AuditRetryBackoff)
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTTL)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("AUDIT_MAX_RETRIES", "5")
	t.Setenv("AUDIT_RETRY_BACKOFF", "2s")

	cfg := Load()
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 8, cfg.WorkerCount)
	assert.Equal(t, 5, cfg.AuditMaxRetries)
	assert.Equal(t, 2*time.Second, cfg.AuditRetryBackoff)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("WORKER_COUNT", "not-a-number")
	t.Setenv("AUDIT_RETRY_BACKOFF", "soon")

	cfg := Load()
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, 30*time.Second, cfg.AuditRetryBackoff)
}
