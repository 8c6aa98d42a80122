// Package config loads client configuration from the environment so main
// stays lean. Everything has a development default; nothing is required.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Pagination defaults understood by every list endpoint.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Client captures gateway and session level configuration.
//
// The retry, throttle and breaker knobs default to off: enabling a policy
// is an explicit decision, never an implicit default.
type Client struct {
	BaseURL  string
	Timeout  time.Duration
	LogLevel string

	SessionFile string

	RetryEnabled  bool
	RetryAttempts int
	RetryDelay    time.Duration

	ThrottlePerMinute int
	BreakerEnabled    bool
}

// FromEnv builds a Client config from ACODELAB_* environment variables.
func FromEnv() Client {
	return Client{
		BaseURL:       getEnv("ACODELAB_API_URL", "http://localhost:8000"),
		Timeout:       getDuration("ACODELAB_TIMEOUT", 10*time.Second),
		LogLevel:      getEnv("ACODELAB_LOG_LEVEL", "info"),
		SessionFile:   getEnv("ACODELAB_SESSION_FILE", defaultSessionFile()),
		RetryEnabled:  getBool("ACODELAB_RETRY_ENABLED"),
		RetryAttempts: getInt("ACODELAB_RETRY_ATTEMPTS", 3),
		RetryDelay:    getDuration("ACODELAB_RETRY_DELAY", time.Second),

		ThrottlePerMinute: getInt("ACODELAB_THROTTLE_PER_MINUTE", 0),
		BreakerEnabled:    getBool("ACODELAB_BREAKER_ENABLED"),
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".acodelab-session.json"
	}
	return filepath.Join(dir, "acodelab", "session.json")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string) bool {
	return os.Getenv(key) == "true"
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
