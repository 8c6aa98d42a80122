package gateway

import (
	"log/slog"
	"net/http"
	"time"

	"acodelab/internal/platform/metrics"
	"acodelab/pkg/platform/circuit"

	"golang.org/x/time/rate"
)

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithHTTPClient substitutes the underlying transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithOnUnauthorized installs the hook invoked after any 401 has cleared the
// session. The CLI uses it to tell the user to log in again; an interactive
// frontend would navigate to its login boundary here.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// WithRetry enables retry of idempotent requests on transport errors and 5xx
// responses. Off unless requested; the platform contract promises no retry
// by default.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.retryAttempts = attempts
			c.retryDelay = delay
		}
	}
}

// WithThrottle caps outbound request rate.
func WithThrottle(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// WithBreaker installs a circuit breaker consulted before every request.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}
