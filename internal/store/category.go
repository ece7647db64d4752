package store

import (
	"context"
	"database/sql"

	"github.com/bloghq/blog-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category, assigning its ID.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its ID.
	// Returns a NotFoundError matching ErrNotFound if the category does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// List returns all categories ordered by ID.
	List(ctx context.Context) ([]*domain.Category, error)

	// Update persists the mutable fields of an existing category.
	// Returns a NotFoundError if the category does not exist.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category. Returns ErrCategoryInUse if posts still
	// reference it and a NotFoundError if it does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new CategoryStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CategoryStore
}
