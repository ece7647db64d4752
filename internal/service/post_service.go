package service

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/platform/logger"
	"github.com/bloghq/blog-api/internal/store"
)

// Pagination defaults, applied when a list request omits the parameters.
const (
	DefaultPageNo   = 0
	DefaultPageSize = 10
	DefaultSortBy   = "id"
	DefaultSortDir  = "asc"
)

// PostPage is one page of posts plus the pagination metadata callers need to
// walk the collection.
type PostPage struct {
	Posts         []*domain.Post
	PageNo        int
	PageSize      int
	TotalElements int64
	TotalPages    int
	Last          bool
}

// PostService provides post-related operations.
type PostService interface {
	// Create validates the category reference and persists a new post.
	// Returns a Category NotFoundError if the category does not exist and
	// store.ErrTitleExists if the title is already taken.
	Create(ctx context.Context, title, description, content string, categoryID int64) (*domain.Post, error)

	// List returns one zero-based page of posts. sortDir matching "asc"
	// case-insensitively selects ascending order; anything else descending.
	List(ctx context.Context, pageNo, pageSize int, sortBy, sortDir string) (*PostPage, error)

	// GetByID returns the post with its comments, or a Post NotFoundError.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// Update replaces title/description/content/category of an existing
	// post. The ID and comments are untouched. Returns NotFoundErrors for a
	// missing post or category.
	Update(ctx context.Context, id int64, title, description, content string, categoryID int64) (*domain.Post, error)

	// Delete removes a post and, through the store's cascade, its comments.
	Delete(ctx context.Context, id int64) error

	// ListByCategory returns all posts in the given category, unsorted and
	// unpaginated. Returns a Category NotFoundError if the category is absent.
	ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error)
}

// txRunner executes a function within a database transaction. Injectable so
// tests can run services over in-memory stores without a real database.
type txRunner func(ctx context.Context, db *sql.DB, fn store.TxFn) error

// postServiceImpl implements the PostService interface.
type postServiceImpl struct {
	db            *sql.DB
	postStore     store.PostStore
	categoryStore store.CategoryStore
	logger        *slog.Logger
	runTx         txRunner
}

// Ensure postServiceImpl implements PostService interface
var _ PostService = (*postServiceImpl)(nil)

// NewPostService creates a new PostService with the given dependencies.
// If log is nil, a default logger will be used.
func NewPostService(
	db *sql.DB,
	postStore store.PostStore,
	categoryStore store.CategoryStore,
	log *slog.Logger,
) PostService {
	if log == nil {
		log = slog.Default()
	}
	return &postServiceImpl{
		db:            db,
		postStore:     postStore,
		categoryStore: categoryStore,
		logger:        log.With(slog.String("component", "post_service")),
		runTx:         store.RunInTransaction,
	}
}

// Create implements PostService.Create
func (s *postServiceImpl) Create(
	ctx context.Context,
	title, description, content string,
	categoryID int64,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := domain.NewPost(title, description, content, categoryID)
	if err != nil {
		return nil, err
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.categoryStore.WithTx(tx).GetByID(ctx, categoryID); err != nil {
			return err
		}
		return s.postStore.WithTx(tx).Create(ctx, post)
	})
	if err != nil {
		log.Debug("post creation failed",
			slog.String("title", title),
			slog.String("error", err.Error()))
		return nil, err
	}

	return post, nil
}

// List implements PostService.List
func (s *postServiceImpl) List(
	ctx context.Context,
	pageNo, pageSize int,
	sortBy, sortDir string,
) (*PostPage, error) {
	if pageNo < 0 {
		pageNo = DefaultPageNo
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if sortBy == "" {
		sortBy = DefaultSortBy
	}

	page, err := s.postStore.List(ctx, store.ListOptions{
		Offset:    pageNo * pageSize,
		Limit:     pageSize,
		SortBy:    sortBy,
		Ascending: strings.EqualFold(sortDir, "asc"),
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((page.TotalElements + int64(pageSize) - 1) / int64(pageSize))

	return &PostPage{
		Posts:         page.Posts,
		PageNo:        pageNo,
		PageSize:      pageSize,
		TotalElements: page.TotalElements,
		TotalPages:    totalPages,
		Last:          pageNo >= totalPages-1,
	}, nil
}

// GetByID implements PostService.GetByID
func (s *postServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.postStore.GetByID(ctx, id)
}

// Update implements PostService.Update
func (s *postServiceImpl) Update(
	ctx context.Context,
	id int64,
	title, description, content string,
	categoryID int64,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var post *domain.Post
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		postStore := s.postStore.WithTx(tx)

		var err error
		post, err = postStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if _, err := s.categoryStore.WithTx(tx).GetByID(ctx, categoryID); err != nil {
			return err
		}

		if err := post.Update(title, description, content, categoryID); err != nil {
			return err
		}

		return postStore.Update(ctx, post)
	})
	if err != nil {
		log.Debug("post update failed",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	return post, nil
}

// Delete implements PostService.Delete
func (s *postServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		postStore := s.postStore.WithTx(tx)
		if _, err := postStore.GetByID(ctx, id); err != nil {
			return err
		}
		return postStore.Delete(ctx, id)
	})
	if err != nil {
		log.Debug("post deletion failed",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
		return err
	}

	return nil
}

// ListByCategory implements PostService.ListByCategory
func (s *postServiceImpl) ListByCategory(
	ctx context.Context,
	categoryID int64,
) ([]*domain.Post, error) {
	if _, err := s.categoryStore.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.postStore.ListByCategory(ctx, categoryID)
}
