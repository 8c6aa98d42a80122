package session

import "sync"

// MemoryStore keeps the session in process memory. Used by tests and by
// callers that do not want credentials on disk.
type MemoryStore struct {
	mu      sync.RWMutex
	session Session
	present bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = sess
	s.present = true
	return nil
}

func (s *MemoryStore) Load() (Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.present {
		return Session{}, false, nil
	}
	return s.session, true, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{}
	s.present = false
	return nil
}
