package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/platform/logger"
	"github.com/bloghq/blog-api/internal/store"
)

// CategoryService provides category-related operations.
type CategoryService interface {
	// Create persists a new category.
	Create(ctx context.Context, name, description string) (*domain.Category, error)

	// GetByID returns a category or a Category NotFoundError.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// List returns all categories.
	List(ctx context.Context) ([]*domain.Category, error)

	// Update replaces name/description of an existing category.
	Update(ctx context.Context, id int64, name, description string) (*domain.Category, error)

	// Delete removes a category. Returns store.ErrCategoryInUse if posts
	// still reference it; a category is never allowed to orphan posts.
	Delete(ctx context.Context, id int64) error
}

// categoryServiceImpl implements the CategoryService interface.
type categoryServiceImpl struct {
	db            *sql.DB
	categoryStore store.CategoryStore
	logger        *slog.Logger
	runTx         txRunner
}

// Ensure categoryServiceImpl implements CategoryService interface
var _ CategoryService = (*categoryServiceImpl)(nil)

// NewCategoryService creates a new CategoryService with the given dependencies.
// If log is nil, a default logger will be used.
func NewCategoryService(
	db *sql.DB,
	categoryStore store.CategoryStore,
	log *slog.Logger,
) CategoryService {
	if log == nil {
		log = slog.Default()
	}
	return &categoryServiceImpl{
		db:            db,
		categoryStore: categoryStore,
		logger:        log.With(slog.String("component", "category_service")),
		runTx:         store.RunInTransaction,
	}
}

// Create implements CategoryService.Create
func (s *categoryServiceImpl) Create(
	ctx context.Context,
	name, description string,
) (*domain.Category, error) {
	category, err := domain.NewCategory(name, description)
	if err != nil {
		return nil, err
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.categoryStore.WithTx(tx).Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// GetByID implements CategoryService.GetByID
func (s *categoryServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categoryStore.GetByID(ctx, id)
}

// List implements CategoryService.List
func (s *categoryServiceImpl) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryStore.List(ctx)
}

// Update implements CategoryService.Update
func (s *categoryServiceImpl) Update(
	ctx context.Context,
	id int64,
	name, description string,
) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var category *domain.Category
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		categoryStore := s.categoryStore.WithTx(tx)

		var err error
		category, err = categoryStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		category.Name = name
		category.Description = description
		if err := category.Validate(); err != nil {
			return err
		}

		return categoryStore.Update(ctx, category)
	})
	if err != nil {
		log.Debug("category update failed",
			slog.Int64("category_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	return category, nil
}

// Delete implements CategoryService.Delete
func (s *categoryServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		categoryStore := s.categoryStore.WithTx(tx)
		if _, err := categoryStore.GetByID(ctx, id); err != nil {
			return err
		}
		return categoryStore.Delete(ctx, id)
	})
	if err != nil {
		log.Debug("category deletion failed",
			slog.Int64("category_id", id),
			slog.String("error", err.Error()))
		return err
	}

	return nil
}
