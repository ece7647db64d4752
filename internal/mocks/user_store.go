package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/store"
)

// InMemoryUserStore implements store.UserStore backed by maps.
type InMemoryUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

var _ store.UserStore = (*InMemoryUserStore)(nil)

// NewInMemoryUserStore creates an empty in-memory user store.
func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[uuid.UUID]*domain.User)}
}

// Create implements store.UserStore.Create, enforcing the username and email
// uniqueness the real store gets from its constraints.
func (s *InMemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	copied := *user
	s.users[user.ID] = &copied
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *InMemoryUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.NewNotFoundError("User", "id", id)
	}
	copied := *user
	return &copied, nil
}

// GetByUsername implements store.UserStore.GetByUsername.
func (s *InMemoryUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.NewNotFoundError("User", "username", username)
}

// WithTx returns the store itself; the in-memory fake has no transactions.
func (s *InMemoryUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return s
}
