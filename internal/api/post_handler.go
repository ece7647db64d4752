package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bloghq/blog-api/internal/api/shared"
	"github.com/bloghq/blog-api/internal/service"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	postService service.PostService
	logger      *slog.Logger
}

// NewPostHandler creates a new PostHandler with the given dependencies.
func NewPostHandler(postService service.PostService, log *slog.Logger) *PostHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PostHandler{
		postService: postService,
		logger:      log.With(slog.String("component", "post_handler")),
	}
}

// pathID parses the named chi URL parameter as an int64 identifier.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// Create handles POST /api/v1/posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, "Validation failed", shared.ValidationDetails(err))
		return
	}

	post, err := h.postService.Create(r.Context(), req.Title, req.Description, req.Content, req.CategoryID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toPostDTO(post))
}

// List handles GET /api/v1/posts with pagination and sorting query
// parameters. Missing or unparsable parameters fall back to the defaults.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	pageNo := queryInt(query.Get("pageNo"), service.DefaultPageNo)
	pageSize := queryInt(query.Get("pageSize"), service.DefaultPageSize)
	sortBy := query.Get("sortBy")
	if sortBy == "" {
		sortBy = service.DefaultSortBy
	}
	sortDir := query.Get("sortDir")
	if sortDir == "" {
		sortDir = service.DefaultSortDir
	}

	page, err := h.postService.List(r.Context(), pageNo, pageSize, sortBy, sortDir)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toPostPageResponse(page))
}

// GetByID handles GET /api/v1/posts/{id}.
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.postService.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toPostDTO(post))
}

// GetByIDV2 handles GET /api/v2/posts/{id}, the tagged post representation.
func (h *PostHandler) GetByIDV2(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.postService.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toPostDTOV2(post))
}

// Update handles PUT /api/v1/posts/{id}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, "Validation failed", shared.ValidationDetails(err))
		return
	}

	post, err := h.postService.Update(r.Context(), id, req.Title, req.Description, req.Content, req.CategoryID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toPostDTO(post))
}

// Delete handles DELETE /api/v1/posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := h.postService.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Post entity deleted successfully",
	})
}

// ListByCategory handles GET /api/v1/posts/category/{id}.
func (h *PostHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid category ID")
		return
	}

	posts, err := h.postService.ListByCategory(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	dtos := make([]PostDTO, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, toPostDTO(post))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dtos)
}

// queryInt parses an integer query parameter, falling back to the default
// when the parameter is absent or malformed.
func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
