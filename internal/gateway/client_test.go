package gateway

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"acodelab/internal/platform/config"
	"acodelab/internal/session"
	"acodelab/pkg/apierrors"
	"acodelab/pkg/platform/circuit"
	"acodelab/pkg/sentinel"
	"acodelab/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, stub *testutil.StubAPI, store session.Store, opts ...Option) *Client {
	t.Helper()
	cfg := config.Client{
		BaseURL: stub.Server.URL,
		Timeout: 5 * time.Second,
	}
	return New(cfg, session.Accessor{Store: store}, opts...)
}

func TestDo_AttachesBearerTokenAndRequestID(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodGet, "/api/auth/me", http.StatusOK, map[string]string{"id": "u1"})

	store := session.NewMemoryStore()
	require.NoError(t, store.Save(session.Session{Token: "tok-abc"}))

	client := newTestClient(t, stub, store)
	var out map[string]string
	require.NoError(t, client.Get(context.Background(), "/api/auth/me", nil, &out))

	req := stub.LastRequest(t)
	assert.Equal(t, "Bearer tok-abc", req.Authorization)
	assert.NotEmpty(t, req.RequestID)
	assert.Equal(t, "u1", out["id"])
}

func TestDo_NoAuthorizationHeaderWithoutSession(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodGet, "/api/questions", http.StatusOK, []any{})

	client := newTestClient(t, stub, session.NewMemoryStore())
	require.NoError(t, client.Get(context.Background(), "/api/questions", nil, nil))

	assert.Empty(t, stub.LastRequest(t).Authorization)
}

func TestDo_UnauthorizedClearsSessionAndFiresHook(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodGet, "/api/store/inventory", http.StatusUnauthorized, testutil.Detail("Token expirado"))

	store := session.NewMemoryStore()
	require.NoError(t, store.Save(session.Session{Token: "stale"}))

	hookFired := false
	client := newTestClient(t, stub, store, WithOnUnauthorized(func() { hookFired = true }))

	err := client.Get(context.Background(), "/api/store/inventory", nil, nil)

	// The caller still sees the original error.
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrUnauthorized)
	assert.Equal(t, "Token expirado", apierrors.Detail(err))

	// And the session is gone regardless of which service issued the call.
	_, ok, _ := store.Load()
	assert.False(t, ok)
	assert.True(t, hookFired)
}

func TestDo_ServerDetailBecomesErrorMessage(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodPost, "/api/connect/posts/p1/like", http.StatusConflict, testutil.Detail("Você já curtiu este post"))

	client := newTestClient(t, stub, session.NewMemoryStore())
	err := client.Post(context.Background(), "/api/connect/posts/p1/like", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrConflict)
	assert.Equal(t, "Você já curtiu este post", apierrors.Detail(err))
}

func TestDo_MissingDetailFallsBackToStatusText(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodGet, "/api/jobs/x", http.StatusNotFound, nil)

	client := newTestClient(t, stub, session.NewMemoryStore())
	err := client.Get(context.Background(), "/api/jobs/x", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	assert.Equal(t, "Not Found", apierrors.Detail(err))
}

func TestDo_QueryParameters(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodGet, "/api/questions", http.StatusOK, []any{})

	client := newTestClient(t, stub, session.NewMemoryStore())
	q := url.Values{}
	q.Set("skip", "0")
	q.Set("limit", "20")
	q.Set("search", "goroutines")
	require.NoError(t, client.Get(context.Background(), "/api/questions", q, nil))

	assert.Equal(t, "limit=20&search=goroutines&skip=0", stub.LastRequest(t).Query)
}

func TestDo_TransportErrorIsUnavailable(t *testing.T) {
	cfg := config.Client{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}
	client := New(cfg, session.Accessor{Store: session.NewMemoryStore()})

	err := client.Get(context.Background(), "/api/questions", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
}

func TestDo_NoRetryByDefault(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodGet, "/api/articles", http.StatusInternalServerError, nil)

	client := newTestClient(t, stub, session.NewMemoryStore())
	err := client.Get(context.Background(), "/api/articles", nil, nil)

	require.Error(t, err)
	assert.Len(t, stub.Requests(), 1, "default policy must not retry")
}

func TestDo_RetryWhenEnabledAndIdempotent(t *testing.T) {
	stub := testutil.NewStubAPI(t)
	stub.On(http.MethodGet, "/api/articles", http.StatusBadGateway, nil)
	stub.On(http.MethodPost, "/api/articles", http.StatusBadGateway, nil)

	client := newTestClient(t, stub, session.NewMemoryStore(),
		WithRetry(2, time.Millisecond))

	_ = client.Get(context.Background(), "/api/articles", nil, nil)
	assert.Len(t, stub.Requests(), 3, "GET retries up to the configured attempts")

	_ = client.Post(context.Background(), "/api/articles", map[string]string{"title": "x"}, nil)
	assert.Len(t, stub.Requests(), 4, "POST is never retried")
}

func TestDo_OpenBreakerFailsFast(t *testing.T) {
	stub := testutil.NewStubAPI(t)

	breaker := circuit.New("gateway", circuit.WithFailureThreshold(1))
	breaker.RecordFailure()
	require.True(t, breaker.IsOpen())

	client := newTestClient(t, stub, session.NewMemoryStore(), WithBreaker(breaker))
	err := client.Get(context.Background(), "/api/questions", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	assert.Empty(t, stub.Requests(), "open circuit must not reach the network")
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/api/questions/q%2F1/answers", Path("api", "questions", "q/1", "answers"))
}
