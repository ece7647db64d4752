package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/platform/logger"
	"github.com/bloghq/blog-api/internal/store"
)

// CommentService provides comment-related operations. Every operation that
// addresses a comment through a post path verifies both existence and
// ownership: a comment reachable under the wrong post is ErrCommentNotOwned.
type CommentService interface {
	// Create attaches a new comment to an existing post.
	// Returns a Post NotFoundError if the post does not exist.
	Create(ctx context.Context, postID int64, name, email, body string) (*domain.Comment, error)

	// ListByPost returns all comments for the post. No post-existence check
	// is performed: an absent post yields an empty list. This mirrors the
	// read path's long-standing behavior and is relied upon after cascade
	// deletes.
	ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error)

	// GetByID returns the comment after verifying post existence, comment
	// existence, and ownership.
	GetByID(ctx context.Context, postID, commentID int64) (*domain.Comment, error)

	// Update replaces name/email/body after the same checks as GetByID.
	Update(ctx context.Context, postID, commentID int64, name, email, body string) (*domain.Comment, error)

	// Delete removes the comment after the same checks as GetByID.
	Delete(ctx context.Context, postID, commentID int64) error
}

// commentServiceImpl implements the CommentService interface.
type commentServiceImpl struct {
	db           *sql.DB
	commentStore store.CommentStore
	postStore    store.PostStore
	logger       *slog.Logger
	runTx        txRunner
}

// Ensure commentServiceImpl implements CommentService interface
var _ CommentService = (*commentServiceImpl)(nil)

// NewCommentService creates a new CommentService with the given dependencies.
// If log is nil, a default logger will be used.
func NewCommentService(
	db *sql.DB,
	commentStore store.CommentStore,
	postStore store.PostStore,
	log *slog.Logger,
) CommentService {
	if log == nil {
		log = slog.Default()
	}
	return &commentServiceImpl{
		db:           db,
		commentStore: commentStore,
		postStore:    postStore,
		logger:       log.With(slog.String("component", "comment_service")),
		runTx:        store.RunInTransaction,
	}
}

// Create implements CommentService.Create
func (s *commentServiceImpl) Create(
	ctx context.Context,
	postID int64,
	name, email, body string,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	comment, err := domain.NewComment(postID, name, email, body)
	if err != nil {
		return nil, err
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.postStore.WithTx(tx).GetByID(ctx, postID); err != nil {
			return err
		}
		return s.commentStore.WithTx(tx).Create(ctx, comment)
	})
	if err != nil {
		log.Debug("comment creation failed",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()))
		return nil, err
	}

	return comment, nil
}

// ListByPost implements CommentService.ListByPost
func (s *commentServiceImpl) ListByPost(
	ctx context.Context,
	postID int64,
) ([]*domain.Comment, error) {
	return s.commentStore.ListByPost(ctx, postID)
}

// GetByID implements CommentService.GetByID
func (s *commentServiceImpl) GetByID(
	ctx context.Context,
	postID, commentID int64,
) (*domain.Comment, error) {
	return s.resolve(ctx, s.postStore, s.commentStore, postID, commentID)
}

// Update implements CommentService.Update
func (s *commentServiceImpl) Update(
	ctx context.Context,
	postID, commentID int64,
	name, email, body string,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var comment *domain.Comment
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		commentStore := s.commentStore.WithTx(tx)

		var err error
		comment, err = s.resolve(ctx, s.postStore.WithTx(tx), commentStore, postID, commentID)
		if err != nil {
			return err
		}

		if err := comment.Update(name, email, body); err != nil {
			return err
		}

		return commentStore.Update(ctx, comment)
	})
	if err != nil {
		log.Debug("comment update failed",
			slog.Int64("post_id", postID),
			slog.Int64("comment_id", commentID),
			slog.String("error", err.Error()))
		return nil, err
	}

	return comment, nil
}

// Delete implements CommentService.Delete
func (s *commentServiceImpl) Delete(ctx context.Context, postID, commentID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		commentStore := s.commentStore.WithTx(tx)
		if _, err := s.resolve(ctx, s.postStore.WithTx(tx), commentStore, postID, commentID); err != nil {
			return err
		}
		return commentStore.Delete(ctx, commentID)
	})
	if err != nil {
		log.Debug("comment deletion failed",
			slog.Int64("post_id", postID),
			slog.Int64("comment_id", commentID),
			slog.String("error", err.Error()))
		return err
	}

	return nil
}

// resolve runs the shared existence and ownership checks: the post must
// exist, the comment must exist, and the comment must belong to the post.
func (s *commentServiceImpl) resolve(
	ctx context.Context,
	postStore store.PostStore,
	commentStore store.CommentStore,
	postID, commentID int64,
) (*domain.Comment, error) {
	if _, err := postStore.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := commentStore.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.PostID != postID {
		return nil, ErrCommentNotOwned
	}

	return comment, nil
}
