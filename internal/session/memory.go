package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for tests and local development.
// A nil entry is a cleared session: the token exists but carries no
// user, mirroring the Redis store's empty payload.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*int64)}
}

func (m *MemoryStore) Set(_ context.Context, token string, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := userID
	m.sessions[token] = &id
	return nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (int64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.sessions[token]
	if !exists || id == nil {
		return 0, false, nil
	}
	return *id, true, nil
}

func (m *MemoryStore) Clear(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[token]; exists {
		m.sessions[token] = nil
	}
	return nil
}
