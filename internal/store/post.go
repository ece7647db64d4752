package store

import (
	"context"
	"database/sql"

	"github.com/bloghq/blog-api/internal/domain"
)

// ListOptions describes one offset-paginated, sorted page request over the
// post collection.
type ListOptions struct {
	// Offset is the number of rows to skip (pageNo * pageSize).
	Offset int

	// Limit is the maximum number of rows to return (pageSize).
	Limit int

	// SortBy is the requested sort field. Implementations must map it onto a
	// whitelisted column; unknown fields fall back to the id column.
	SortBy string

	// Ascending selects ascending order when true, descending otherwise.
	Ascending bool
}

// PostPage is one page of posts plus the total element count needed to
// derive pagination metadata.
type PostPage struct {
	Posts         []*domain.Post
	TotalElements int64
}

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post, assigning its ID.
	// Returns ErrTitleExists if the title is already taken (store-enforced
	// unique constraint) and ErrInvalidEntity if the category reference is
	// broken at the constraint level.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its ID, with its comments attached.
	// Returns a NotFoundError matching ErrNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// List returns one page of posts plus the total count. Comments are not
	// loaded on the list path.
	List(ctx context.Context, opts ListOptions) (*PostPage, error)

	// ListByCategory returns all posts referencing the given category,
	// unsorted and unpaginated.
	ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error)

	// Update persists the mutable fields of an existing post.
	// Returns a NotFoundError if the post does not exist and ErrTitleExists
	// on a title collision.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post. Its comments are removed by the store's cascade
	// constraint. Returns a NotFoundError if the post does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new PostStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PostStore
}
