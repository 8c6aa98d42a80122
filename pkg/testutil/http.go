// Package testutil provides common helpers for client and service tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Route keys a stub response by "METHOD /path".
type Route string

// StubResponse is what the stub API returns for one route.
type StubResponse struct {
	Status int
	Body   any
}

// StubAPI is an httptest-backed fake of the platform API. Tests register
// routes up front and inspect the requests the client actually sent.
type StubAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	routes   map[Route]StubResponse
	requests []RecordedRequest
}

// RecordedRequest captures one request as seen by the stub.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
	Body          []byte
}

// NewStubAPI starts a stub API server. It is shut down with the test.
func NewStubAPI(t *testing.T) *StubAPI {
	t.Helper()
	stub := &StubAPI{routes: make(map[Route]StubResponse)}
	stub.Server = httptest.NewServer(http.HandlerFunc(stub.handle))
	t.Cleanup(stub.Server.Close)
	return stub
}

// On registers the response for a method and path. The body is sent as JSON.
func (s *StubAPI) On(method, path string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[Route(method+" "+path)] = StubResponse{Status: status, Body: body}
}

// Requests returns a copy of everything the client sent so far.
func (s *StubAPI) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// LastRequest fails the test when nothing was recorded.
func (s *StubAPI) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()
	reqs := s.Requests()
	require.NotEmpty(t, reqs, "stub API received no requests")
	return reqs[len(reqs)-1]
}

func (s *StubAPI) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		RequestID:     r.Header.Get("X-Request-ID"),
		Body:          body,
	})
	resp, ok := s.routes[Route(r.Method+" "+r.URL.Path)]
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "rota não encontrada"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	if resp.Body != nil {
		_ = json.NewEncoder(w).Encode(resp.Body)
	}
}

// Detail builds a FastAPI-style error body.
func Detail(message string) map[string]string {
	return map[string]string{"detail": message}
}
