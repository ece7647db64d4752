package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("Post", "id", int64(42))

	assert.Equal(t, "Post not found with id: '42'", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFoundError(err))

	wrapped := fmt.Errorf("lookup failed: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotFound)

	var notFound *NotFoundError
	assert.True(t, errors.As(wrapped, &notFound))
	assert.Equal(t, "Post", notFound.Entity)
}

func TestDuplicateErrors(t *testing.T) {
	t.Parallel()

	for _, err := range []error{ErrTitleExists, ErrUsernameExists, ErrEmailExists} {
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.True(t, IsDuplicateError(err))
	}

	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(ErrCategoryInUse))
}

func TestStoreErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("post", "create", "insert failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "create operation on post failed")
	assert.Contains(t, err.Error(), "connection reset")
}
