// Package session persists the authenticated session: an opaque bearer token
// plus a cached snapshot of the user, stored under the fixed keys shared with
// the platform's other clients.
package session

import "encoding/json"

// Session is the persisted pair. User is kept as the raw JSON the server
// returned; the cached snapshot is never trusted until the auth manager has
// verified the token against the server at least once.
type Session struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user,omitempty"`
}

// Store saves and restores the session across runs.
//
// Load reports ok=false when no session is persisted. Clear on an already
// empty store is a no-op.
type Store interface {
	Save(s Session) error
	Load() (Session, bool, error)
	Clear() error
}

// Token returns the stored bearer token, or "" when no session exists.
func Token(store Store) string {
	s, ok, err := store.Load()
	if err != nil || !ok {
		return ""
	}
	return s.Token
}

// Accessor adapts a Store to the gateway's needs: token reads on every
// outgoing request, forced clears when the server answers 401.
type Accessor struct {
	Store Store
}

func (a Accessor) Token() string { return Token(a.Store) }
func (a Accessor) Clear() error  { return a.Store.Clear() }
