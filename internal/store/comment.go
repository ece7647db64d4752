package store

import (
	"context"
	"database/sql"

	"github.com/bloghq/blog-api/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// Create saves a new comment, assigning its ID.
	// Returns ErrInvalidEntity if the parent post reference is broken at the
	// constraint level.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment by its ID. The returned comment carries
	// its parent post reference for ownership checks.
	// Returns a NotFoundError matching ErrNotFound if the comment does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)

	// ListByPost returns all comments attached to the given post. An absent
	// post yields an empty slice, not an error.
	ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error)

	// Update persists the mutable fields of an existing comment.
	// Returns a NotFoundError if the comment does not exist.
	Update(ctx context.Context, comment *domain.Comment) error

	// Delete removes a comment.
	// Returns a NotFoundError if the comment does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new CommentStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CommentStore
}
