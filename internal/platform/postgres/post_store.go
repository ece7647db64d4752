package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/platform/logger"
	"github.com/bloghq/blog-api/internal/store"
)

// sortColumns whitelists the fields callers may sort the post collection by.
// Unknown fields fall back to the id column; user input is never interpolated
// into SQL directly.
var sortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"description": "description",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, log *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: log.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create
// Returns store.ErrTitleExists if the title is already taken and
// store.ErrInvalidEntity if the category reference is broken.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO posts (title, description, content, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		post.Title,
		post.Description,
		post.Content,
		post.CategoryID,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID)

	if err != nil {
		if isUniqueViolation(err, "posts_title_key") {
			log.Warn("duplicate title during post creation",
				slog.String("title", post.Title))
			return store.ErrTitleExists
		}
		if isForeignKeyViolation(err, "posts_category_id_fkey") {
			log.Warn("foreign key violation during post creation",
				slog.Int64("category_id", post.CategoryID))
			return fmt.Errorf("%w: category with ID %d not found",
				store.ErrInvalidEntity, post.CategoryID)
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("title", post.Title))
		return err
	}

	log.Info("post created successfully",
		slog.Int64("post_id", post.ID),
		slog.String("title", post.Title))
	return nil
}

// GetByID implements store.PostStore.GetByID
// The returned post carries its comments, eagerly loaded.
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, content, category_id, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Description,
		&post.Content,
		&post.CategoryID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, store.NewNotFoundError("Post", "id", id)
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, err
	}

	comments, err := s.loadComments(ctx, post.ID)
	if err != nil {
		log.Error("failed to load post comments",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, err
	}
	post.Comments = comments

	return &post, nil
}

// List implements store.PostStore.List
func (s *PostgresPostStore) List(
	ctx context.Context,
	opts store.ListOptions,
) (*store.PostPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	column, ok := sortColumns[opts.SortBy]
	if !ok {
		column = "id"
	}
	direction := "DESC"
	if opts.Ascending {
		direction = "ASC"
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		log.Error("failed to count posts", slog.String("error", err.Error()))
		return nil, err
	}

	// column and direction come from fixed whitelists above, never from the
	// request.
	query := fmt.Sprintf(`
		SELECT id, title, description, content, category_id, created_at, updated_at
		FROM posts
		ORDER BY %s %s
		LIMIT $1 OFFSET $2
	`, column, direction)

	rows, err := s.db.QueryContext(ctx, query, opts.Limit, opts.Offset)
	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, err
	}

	return &store.PostPage{Posts: posts, TotalElements: total}, nil
}

// ListByCategory implements store.PostStore.ListByCategory
func (s *PostgresPostStore) ListByCategory(
	ctx context.Context,
	categoryID int64,
) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, content, category_id, created_at, updated_at
		FROM posts
		WHERE category_id = $1
	`
	rows, err := s.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		log.Error("failed to list posts by category",
			slog.String("error", err.Error()),
			slog.Int64("category_id", categoryID))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanPosts(rows)
}

// Update implements store.PostStore.Update
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return err
	}

	query := `
		UPDATE posts
		SET title = $2, description = $3, content = $4, category_id = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.Title,
		post.Description,
		post.Content,
		post.CategoryID,
		post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "posts_title_key") {
			log.Warn("duplicate title during post update",
				slog.Int64("post_id", post.ID),
				slog.String("title", post.Title))
			return store.ErrTitleExists
		}
		if isForeignKeyViolation(err, "posts_category_id_fkey") {
			return fmt.Errorf("%w: category with ID %d not found",
				store.ErrInvalidEntity, post.CategoryID)
		}
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.NewNotFoundError("Post", "id", post.ID)
	}

	log.Info("post updated successfully", slog.Int64("post_id", post.ID))
	return nil
}

// Delete implements store.PostStore.Delete
// The post's comments are removed by the ON DELETE CASCADE constraint on
// comments.post_id.
func (s *PostgresPostStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM posts WHERE id = $1`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.NewNotFoundError("Post", "id", id)
	}

	log.Info("post deleted successfully", slog.Int64("post_id", id))
	return nil
}

// WithTx implements store.PostStore.WithTx
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *PostgresPostStore) loadComments(
	ctx context.Context,
	postID int64,
) ([]domain.Comment, error) {
	query := `
		SELECT id, post_id, name, email, body, created_at, updated_at
		FROM comments
		WHERE post_id = $1
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.Name,
			&comment.Email,
			&comment.Body,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func scanPosts(rows *sql.Rows) ([]*domain.Post, error) {
	posts := []*domain.Post{}
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Description,
			&post.Content,
			&post.CategoryID,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}
