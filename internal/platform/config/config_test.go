package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)

	// Declared policies stay off unless explicitly enabled.
	assert.False(t, cfg.RetryEnabled)
	assert.False(t, cfg.BreakerEnabled)
	assert.Zero(t, cfg.ThrottlePerMinute)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ACODELAB_API_URL", "https://api.acodelab.com")
	t.Setenv("ACODELAB_TIMEOUT", "30s")
	t.Setenv("ACODELAB_RETRY_ENABLED", "true")
	t.Setenv("ACODELAB_RETRY_ATTEMPTS", "5")
	t.Setenv("ACODELAB_THROTTLE_PER_MINUTE", "60")

	cfg := FromEnv()

	assert.Equal(t, "https://api.acodelab.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.RetryEnabled)
	assert.Equal(t, 5, cfg.RetryAttempts)
	assert.Equal(t, 60, cfg.ThrottlePerMinute)
}

func TestFromEnvRejectsInvalidNumerics(t *testing.T) {
	t.Setenv("ACODELAB_RETRY_ATTEMPTS", "many")
	t.Setenv("ACODELAB_TIMEOUT", "-3s")

	cfg := FromEnv()

	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}
