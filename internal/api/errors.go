// Package api contains the HTTP handlers, request/response models, and the
// error-to-status mapping for the REST surface.
package api

import (
	"errors"
	"net/http"

	"github.com/bloghq/blog-api/internal/api/shared"
	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/service"
	"github.com/bloghq/blog-api/internal/service/auth"
	"github.com/bloghq/blog-api/internal/store"
)

// MapErrorToStatusCode translates service and store errors into HTTP status
// codes. Unknown errors map to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrCommentNotOwned):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrCategoryInUse):
		return http.StatusConflict
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for the given error.
// Domain and store errors carry messages that are safe to surface; anything
// unrecognized is replaced with a generic message so internal details never
// leak into responses.
func GetSafeErrorMessage(err error) string {
	status := MapErrorToStatusCode(err)
	if status >= http.StatusInternalServerError {
		return "An internal error occurred"
	}

	// "Comment does not belong to post" is a fixed contract message.
	if errors.Is(err, service.ErrCommentNotOwned) {
		return "Comment does not belong to post"
	}

	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error()
	}

	switch {
	case errors.Is(err, store.ErrTitleExists):
		return "A post with this title already exists"
	case errors.Is(err, store.ErrUsernameExists):
		return "Username is already taken"
	case errors.Is(err, store.ErrEmailExists):
		return "Email is already registered"
	case errors.Is(err, store.ErrCategoryInUse):
		return "Category is still referenced by existing posts"
	}

	return err.Error()
}

// HandleServiceError writes the appropriate error response for an error
// returned by the service layer, logging the raw error alongside the
// sanitized message sent to the client.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
