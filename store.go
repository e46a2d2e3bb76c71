package basicauth

import (
	"context"
	"sync"
)

// MemoryUserStore is an in-memory UserStore for single process deployments.
// State is lost on restart by design.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryUserStore will create an empty MemoryUserStore
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[string]User),
	}
}

// Add stores a new user. Check and insert happen under one critical section
// so two concurrent Add calls for the same email cannot both succeed.
func (s *MemoryUserStore) Add(_ context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return ErrUserAlreadyExists
	}

	s.users[user.Email] = user
	return nil
}

// Get returns a copy of the stored record, so callers cannot mutate store
// state through the returned value.
func (s *MemoryUserStore) Get(_ context.Context, email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return User{}, ErrIdentityNotFound
	}

	return user, nil
}

// Exists reports whether an identity is stored for the given email
func (s *MemoryUserStore) Exists(_ context.Context, email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[email]
	return ok
}

var _ UserStore = (*MemoryUserStore)(nil)
