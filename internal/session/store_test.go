package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "session.json")),
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Load()
			require.NoError(t, err)
			assert.False(t, ok, "fresh store must be empty")

			sess := Session{
				Token: "tok-123",
				User:  json.RawMessage(`{"id":"u1","username":"ana"}`),
			}
			require.NoError(t, store.Save(sess))

			got, ok, err := store.Load()
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "tok-123", got.Token)
			assert.JSONEq(t, `{"id":"u1","username":"ana"}`, string(got.User))

			require.NoError(t, store.Clear())
			_, ok, err = store.Load()
			require.NoError(t, err)
			assert.False(t, ok, "cleared store must be empty")

			// Clearing twice is a no-op.
			require.NoError(t, store.Clear())
		})
	}
}

func TestToken(t *testing.T) {
	store := NewMemoryStore()
	assert.Empty(t, Token(store))

	require.NoError(t, store.Save(Session{Token: "tok-9"}))
	assert.Equal(t, "tok-9", Token(store))
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	first := NewFileStore(path)
	require.NoError(t, first.Save(Session{Token: "persisted"}))

	second := NewFileStore(path)
	got, ok, err := second.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "persisted", got.Token)
}

func TestFileStore_CorruptFileLoadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, ok, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.False(t, ok)
}
