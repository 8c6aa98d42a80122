// Package auth owns the client session lifecycle: verifying a stored token
// on startup, logging in and out, and exposing the derived role flags views
// read. Errors never cross its public boundary as exceptions — operations
// return a Result so callers need no recovery path of their own.
package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"acodelab/internal/api"
	"acodelab/internal/session"
	"acodelab/pkg/apierrors"
)

// State of the session lifecycle. Transitions:
// unknown -> verifying -> {authenticated, anonymous};
// authenticated -> anonymous on logout or a 401-triggered clear.
type State string

const (
	StateUnknown       State = "unknown"
	StateVerifying     State = "verifying"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Result is the outcome of a lifecycle operation. Error carries the server's
// detail message when one exists, otherwise a generic display string.
type Result struct {
	Success bool
	Error   string
}

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks acodelab/internal/auth Service

// Service is the slice of the auth API the manager consumes.
type Service interface {
	Login(ctx context.Context, creds api.Credentials) (api.TokenResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (api.TokenResponse, error)
	CurrentUser(ctx context.Context) (api.User, error)
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) (api.User, error)
	ChangePassword(ctx context.Context, change api.PasswordChange) error
}

// Manager drives the session state machine over an auth service and a
// session store.
type Manager struct {
	mu        sync.RWMutex
	svc       Service
	store     session.Store
	logger    *slog.Logger
	state     State
	user      *api.User
	lastError string
}

type Option func(*Manager)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func NewManager(svc Service, store session.Store, opts ...Option) *Manager {
	m := &Manager{
		svc:    svc,
		store:  store,
		logger: slog.Default(),
		state:  StateUnknown,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// VerifyOnLoad resolves a rehydrated session against the server. A stored
// token is never trusted until this succeeds once; any failure clears the
// store. The state always lands on authenticated or anonymous.
func (m *Manager) VerifyOnLoad(ctx context.Context) State {
	sess, ok, err := m.store.Load()
	if err != nil || !ok || sess.Token == "" {
		m.setAnonymous()
		return StateAnonymous
	}

	m.setState(StateVerifying)

	user, err := m.svc.CurrentUser(ctx)
	if err != nil {
		m.logger.Info("stored session rejected, clearing", "error", apierrors.Detail(err))
		if clearErr := m.store.Clear(); clearErr != nil {
			m.logger.Error("clear rejected session", "error", clearErr)
		}
		m.setAnonymous()
		return StateAnonymous
	}

	m.cacheUser(sess.Token, user)
	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = &user
	m.mu.Unlock()
	return StateAuthenticated
}

func (m *Manager) Login(ctx context.Context, creds api.Credentials) Result {
	resp, err := m.svc.Login(ctx, creds)
	if err != nil {
		return m.fail(err, "Erro ao fazer login")
	}
	return m.establish(resp)
}

func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) Result {
	resp, err := m.svc.Register(ctx, req)
	if err != nil {
		return m.fail(err, "Erro ao registrar")
	}
	return m.establish(resp)
}

// Logout clears the session synchronously. No server call is made; the
// access token is not revoked server-side from this flow.
func (m *Manager) Logout() {
	if err := m.store.Clear(); err != nil {
		m.logger.Error("clear session on logout", "error", err)
	}
	m.setAnonymous()
}

// UpdateProfile saves profile changes and refreshes the cached user
// snapshot, both in memory and in the persisted session.
func (m *Manager) UpdateProfile(ctx context.Context, update api.ProfileUpdate) Result {
	user, err := m.svc.UpdateProfile(ctx, update)
	if err != nil {
		return m.fail(err, "Erro ao atualizar perfil")
	}

	sess, ok, loadErr := m.store.Load()
	if loadErr == nil && ok {
		m.cacheUser(sess.Token, user)
	}

	m.mu.Lock()
	m.user = &user
	m.lastError = ""
	m.mu.Unlock()
	return Result{Success: true}
}

func (m *Manager) ChangePassword(ctx context.Context, change api.PasswordChange) Result {
	if err := m.svc.ChangePassword(ctx, change); err != nil {
		return m.fail(err, "Erro ao alterar senha")
	}
	m.clearLastError()
	return Result{Success: true}
}

// ForceAnonymous is wired to the gateway's unauthorized hook so a 401 from
// any domain service moves the lifecycle to anonymous. The gateway has
// already cleared the store by the time this runs.
func (m *Manager) ForceAnonymous() {
	m.setAnonymous()
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// User returns a copy of the cached user snapshot. It can be stale relative
// to server state until the next verification.
func (m *Manager) User() (api.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return api.User{}, false
	}
	return *m.user, true
}

func (m *Manager) IsAuthenticated() bool {
	_, ok := m.User()
	return ok
}

func (m *Manager) IsCompany() bool {
	u, ok := m.User()
	return ok && u.HasRole(api.RoleCompany)
}

func (m *Manager) IsAdmin() bool {
	u, ok := m.User()
	return ok && u.HasRole(api.RoleAdmin)
}

// ErrorMessage returns the display message of the last failed operation.
func (m *Manager) ErrorMessage() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastError
}

func (m *Manager) ClearError() {
	m.clearLastError()
}

func (m *Manager) establish(resp api.TokenResponse) Result {
	m.cacheUser(resp.AccessToken, resp.User)

	m.mu.Lock()
	m.state = StateAuthenticated
	user := resp.User
	m.user = &user
	m.lastError = ""
	m.mu.Unlock()
	return Result{Success: true}
}

func (m *Manager) fail(err error, fallback string) Result {
	// Server-described failures surface their detail; transport and 5xx
	// failures get the generic display string.
	message := apierrors.Detail(err)
	switch apierrors.CodeFor(err) {
	case apierrors.CodeInternal, apierrors.CodeUnavailable:
		message = fallback
	default:
		if message == "" {
			message = fallback
		}
	}
	m.mu.Lock()
	m.lastError = message
	m.mu.Unlock()
	return Result{Success: false, Error: message}
}

// cacheUser persists token plus user snapshot under the fixed storage keys.
func (m *Manager) cacheUser(token string, user api.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		m.logger.Error("encode user snapshot", "error", err)
		raw = nil
	}
	if err := m.store.Save(session.Session{Token: token, User: raw}); err != nil {
		m.logger.Error("persist session", "error", err)
	}
}

func (m *Manager) setAnonymous() {
	m.mu.Lock()
	m.state = StateAnonymous
	m.user = nil
	m.lastError = ""
	m.mu.Unlock()
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

func (m *Manager) clearLastError() {
	m.mu.Lock()
	m.lastError = ""
	m.mu.Unlock()
}
