package memory

import (
	"context"
	"strings"
	"sync"

	"pdv/internal/core/apperror"
	"pdv/pkg/auth"
)

// UserStore is an in-memory auth.UserStore keyed by username.
type UserStore struct {
	mu    sync.RWMutex
	items map[string]*auth.User
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{items: make(map[string]*auth.User)}
}

func cloneUser(u *auth.User) *auth.User {
	cp := *u
	return &cp
}

// Create stores a new user. Usernames are case-insensitive.
func (s *UserStore) Create(ctx context.Context, user *auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Username)
	if _, ok := s.items[key]; ok {
		return apperror.NewConflict("username already taken").WithDetail("username", user.Username)
	}
	s.items[key] = cloneUser(user)
	return nil
}

// GetByUsername retrieves a user by username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.items[strings.ToLower(username)]
	if !ok {
		return nil, apperror.NewNotFound("user", username)
	}
	return cloneUser(user), nil
}
