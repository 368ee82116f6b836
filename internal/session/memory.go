package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. It is used when no Redis
// address is configured and in tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]memoryEntry
	now      func() time.Time
}

type memoryEntry struct {
	session  Session
	deadline time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]memoryEntry),
		now:      time.Now,
	}
}

// Save stores a copy of s for ttl.
func (m *MemoryStore) Save(_ context.Context, s *Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.ID] = memoryEntry{session: *s, deadline: m.now().Add(ttl)}
	return nil
}

// Get returns a copy of the session, or ErrNoSession when missing or expired.
func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}
	if !m.now().Before(e.deadline) {
		delete(m.sessions, id)
		return nil, ErrNoSession
	}

	s := e.session
	return &s, nil
}

// Delete removes the session.
func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}
