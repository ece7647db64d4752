package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/bloghq/blog-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store, including its role set.
	// The user must already carry a hashed password.
	// Returns ErrUsernameExists or ErrEmailExists on uniqueness violations.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns a NotFoundError matching ErrNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username, including the role
	// set. This is the identity-resolution path of the authentication
	// pipeline: the token subject is a username.
	// Returns a NotFoundError matching ErrNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
