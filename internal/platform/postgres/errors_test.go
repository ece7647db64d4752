package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	uniqueErr := pgError(pgUniqueViolationCode, "posts_title_key")

	assert.True(t, isUniqueViolation(uniqueErr, "posts_title_key"))
	assert.True(t, isUniqueViolation(uniqueErr, ""), "empty constraint matches any unique violation")
	assert.False(t, isUniqueViolation(uniqueErr, "users_email_key"))

	// Wrapped errors are still recognized.
	wrapped := fmt.Errorf("insert failed: %w", uniqueErr)
	assert.True(t, isUniqueViolation(wrapped, "posts_title_key"))

	assert.False(t, isUniqueViolation(pgError(pgForeignKeyViolationCode, "posts_title_key"), ""))
	assert.False(t, isUniqueViolation(errors.New("plain error"), ""))
	assert.False(t, isUniqueViolation(nil, ""))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	fkErr := pgError(pgForeignKeyViolationCode, "comments_post_id_fkey")

	assert.True(t, isForeignKeyViolation(fkErr, "comments_post_id_fkey"))
	assert.True(t, isForeignKeyViolation(fkErr, ""))
	assert.False(t, isForeignKeyViolation(fkErr, "posts_category_id_fkey"))

	assert.False(t, isForeignKeyViolation(pgError(pgUniqueViolationCode, ""), ""))
	assert.False(t, isForeignKeyViolation(errors.New("plain error"), ""))
}
