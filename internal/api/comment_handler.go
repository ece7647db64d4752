package api

import (
	"log/slog"
	"net/http"

	"github.com/bloghq/blog-api/internal/api/shared"
	"github.com/bloghq/blog-api/internal/service"
)

// CommentHandler handles comment-related HTTP requests. Comments are a
// sub-resource of posts: every route carries the owning post's ID.
type CommentHandler struct {
	commentService service.CommentService
	logger         *slog.Logger
}

// NewCommentHandler creates a new CommentHandler with the given dependencies.
func NewCommentHandler(commentService service.CommentService, log *slog.Logger) *CommentHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CommentHandler{
		commentService: commentService,
		logger:         log.With(slog.String("component", "comment_handler")),
	}
}

// Create handles POST /api/v1/posts/{postId}/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var req CommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, "Validation failed", shared.ValidationDetails(err))
		return
	}

	comment, err := h.commentService.Create(r.Context(), postID, req.Name, req.Email, req.Body)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toCommentDTO(comment))
}

// ListByPost handles GET /api/v1/posts/{postId}/comments.
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	comments, err := h.commentService.ListByPost(r.Context(), postID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toCommentDTOs(comments))
}

// GetByID handles GET /api/v1/posts/{postId}/comments/{commentId}.
func (h *CommentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := commentPath(w, r)
	if !ok {
		return
	}

	comment, err := h.commentService.GetByID(r.Context(), postID, commentID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toCommentDTO(comment))
}

// Update handles PUT /api/v1/posts/{postId}/comments/{commentId}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := commentPath(w, r)
	if !ok {
		return
	}

	var req CommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, "Validation failed", shared.ValidationDetails(err))
		return
	}

	comment, err := h.commentService.Update(r.Context(), postID, commentID, req.Name, req.Email, req.Body)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toCommentDTO(comment))
}

// Delete handles DELETE /api/v1/posts/{postId}/comments/{commentId}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := commentPath(w, r)
	if !ok {
		return
	}

	if err := h.commentService.Delete(r.Context(), postID, commentID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Comment deleted successfully",
	})
}

// commentPath parses both path IDs, writing a 400 response and returning
// ok=false on a malformed ID.
func commentPath(w http.ResponseWriter, r *http.Request) (postID, commentID int64, ok bool) {
	postID, err := pathID(r, "postId")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid post ID")
		return 0, 0, false
	}
	commentID, err = pathID(r, "commentId")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid comment ID")
		return 0, 0, false
	}
	return postID, commentID, true
}
