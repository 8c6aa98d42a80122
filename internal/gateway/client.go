// Package gateway is the single HTTP client every domain service calls
// through. It owns the cross-cutting request behavior: bearer token
// injection, request IDs, error decoding, the global 401 session clear, and
// the opt-in retry/throttle/breaker policies.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"acodelab/internal/platform/config"
	"acodelab/internal/platform/metrics"
	"acodelab/pkg/apierrors"
	"acodelab/pkg/platform/circuit"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

// TokenSource yields the current bearer token and clears the stored session
// when the server rejects it. session.Accessor satisfies it.
type TokenSource interface {
	Token() string
	Clear() error
}

// Client is an explicitly constructed API client. There is no package-level
// instance; everything that talks to the platform holds a *Client reference.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource

	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer

	// onUnauthorized is the login-boundary hook: invoked after any 401 has
	// cleared the session, before the error is returned to the caller.
	onUnauthorized func()

	retryAttempts int
	retryDelay    time.Duration
	limiter       *rate.Limiter
	breaker       *circuit.Breaker
}

// New builds a Client from config. The retry, throttle and breaker policies
// activate only when the config enables them explicitly.
func New(cfg config.Client, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
		logger:  slog.Default(),
		tracer:  otel.Tracer("acodelab/gateway"),
	}
	if cfg.RetryEnabled && cfg.RetryAttempts > 0 {
		c.retryAttempts = cfg.RetryAttempts
		c.retryDelay = cfg.RetryDelay
	}
	if cfg.ThrottlePerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(float64(cfg.ThrottlePerMinute)/60.0), cfg.ThrottlePerMinute)
	}
	if cfg.BreakerEnabled {
		c.breaker = circuit.New("gateway")
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
// Pass nil for either side when the endpoint takes or returns nothing.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do performs one API call. Every outgoing request carries a request ID and,
// when a token is stored, the Authorization header. Any 401 response clears
// the session and fires the unauthorized hook; the error is still returned
// so the caller's own failure path runs.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, span := c.tracer.Start(ctx, "gateway "+method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	if c.breaker != nil && c.breaker.IsOpen() {
		err := apierrors.New(apierrors.CodeUnavailable, "service unavailable")
		span.SetStatus(otelcodes.Error, "circuit open")
		return err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return apierrors.Wrap(err, apierrors.CodeRateLimited, "request throttled")
		}
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return apierrors.Wrap(err, apierrors.CodeInternal, "encode request body")
		}
	}

	attempts := 1
	if c.retryAttempts > 0 && idempotent(method) {
		attempts = c.retryAttempts + 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if c.metrics != nil {
				c.metrics.Retries.Inc()
			}
			select {
			case <-ctx.Done():
				return apierrors.Wrap(ctx.Err(), apierrors.CodeUnavailable, "request canceled")
			case <-time.After(c.retryDelay):
			}
		}

		status, err := c.once(ctx, method, path, query, payload, out)
		if err == nil {
			if c.breaker != nil {
				c.breaker.RecordSuccess()
			}
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			return nil
		}
		lastErr = err

		retryable := status == 0 || status >= 500
		if c.breaker != nil && retryable {
			if _, change := c.breaker.RecordFailure(); change.Opened {
				c.logger.Warn("gateway circuit opened", "method", method, "path", path)
			}
		}
		if !retryable {
			break
		}
	}

	span.SetStatus(otelcodes.Error, apierrors.Detail(lastErr))
	return lastErr
}

// once performs a single request attempt. A returned status of 0 means the
// request never produced an HTTP response.
func (c *Client) once(ctx context.Context, method, path string, query url.Values, payload []byte, out any) (int, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, apierrors.Wrap(err, apierrors.CodeInternal, "build request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, "transport_error", start)
		return 0, apierrors.Wrap(err, apierrors.CodeUnavailable, "request failed")
	}
	defer resp.Body.Close()

	c.observe(method, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return resp.StatusCode, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, apierrors.Wrap(err, apierrors.CodeInternal, "decode response")
		}
		return resp.StatusCode, nil
	}

	apiErr := c.decodeError(resp)
	if resp.StatusCode == http.StatusUnauthorized {
		c.forceLogout(method, path)
	}
	return resp.StatusCode, apiErr
}

// decodeError extracts the server's detail message, falling back to the
// generic status text when the body carries none.
func (c *Client) decodeError(resp *http.Response) error {
	message := http.StatusText(resp.StatusCode)

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(data) > 0 {
		var body struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(data, &body) == nil && body.Detail != "" {
			message = body.Detail
		}
	}
	return apierrors.New(apierrors.FromStatus(resp.StatusCode), message)
}

// forceLogout clears the session and routes the caller to the login
// boundary. It runs for a 401 from any endpoint, independent of which
// service issued the call.
func (c *Client) forceLogout(method, path string) {
	if err := c.tokens.Clear(); err != nil {
		c.logger.Error("clear session after 401", "error", err)
	}
	if c.metrics != nil {
		c.metrics.SessionClears.Inc()
	}
	c.logger.Info("session cleared after unauthorized response", "method", method, "path", path)
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

func (c *Client) observe(method, code string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveRequest(method, code, time.Since(start))
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// Path joins URL segments, escaping each one.
func Path(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
