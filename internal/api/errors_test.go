package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bloghq/blog-api/internal/service"
	"github.com/bloghq/blog-api/internal/service/auth"
	"github.com/bloghq/blog-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", store.NewNotFoundError("Post", "id", int64(1)), http.StatusNotFound},
		{"comment ownership mismatch", service.ErrCommentNotOwned, http.StatusBadRequest},
		{"duplicate title", store.ErrTitleExists, http.StatusConflict},
		{"duplicate username", store.ErrUsernameExists, http.StatusConflict},
		{"category in use", store.ErrCategoryInUse, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	// Internal errors must never leak their details.
	assert.Equal(t, "An internal error occurred",
		GetSafeErrorMessage(errors.New("pq: connection refused on 10.0.0.3")))

	// Not-found messages carry the entity and lookup value.
	assert.Equal(t, "Comment not found with id: '7'",
		GetSafeErrorMessage(store.NewNotFoundError("Comment", "id", int64(7))))

	// The ownership message is a fixed contract string.
	assert.Equal(t, "Comment does not belong to post",
		GetSafeErrorMessage(service.ErrCommentNotOwned))

	assert.Equal(t, "A post with this title already exists",
		GetSafeErrorMessage(store.ErrTitleExists))
}
