package user

import (
	"context"
	"sync"
)

// MemoryStore keeps users in insertion order, matching the first-match
// semantics of the SQL store. Intended for tests and local development.
type MemoryStore struct {
	mu    sync.RWMutex
	users []User
	next  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{next: 1}
}

// Add inserts a user and returns its assigned id.
func (s *MemoryStore) Add(username string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.users = append(s.users, User{ID: id, Username: username})
	return id
}

// Remove deletes a user by id. Used to simulate accounts that vanish
// while a session still references them.
func (s *MemoryStore) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return
		}
	}
}

func (s *MemoryStore) FindByUsername(_ context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			match := u
			return &match, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			match := u
			return &match, nil
		}
	}
	return nil, nil
}
