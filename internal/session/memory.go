package session

import (
	"context"
	"sync"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
)

// MemoryStore is an in-process Store used in tests and as a dev fallback.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.Session)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, sid string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sid]
	if !ok {
		return nil, ErrNotFound
	}
	copied := sess
	return &copied, nil
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, sid string, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = sess
	return nil
}

// Clear implements Store.
func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}
