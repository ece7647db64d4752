package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/service"
)

// stubPostService implements service.PostService for handler tests. Each
// method delegates to its Fn field; unset methods panic so a test cannot
// silently exercise an endpoint it did not stub.
type stubPostService struct {
	CreateFn         func(ctx context.Context, title, description, content string, categoryID int64) (*domain.Post, error)
	ListFn           func(ctx context.Context, pageNo, pageSize int, sortBy, sortDir string) (*service.PostPage, error)
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Post, error)
	UpdateFn         func(ctx context.Context, id int64, title, description, content string, categoryID int64) (*domain.Post, error)
	DeleteFn         func(ctx context.Context, id int64) error
	ListByCategoryFn func(ctx context.Context, categoryID int64) ([]*domain.Post, error)
}

var _ service.PostService = (*stubPostService)(nil)

func (s *stubPostService) Create(ctx context.Context, title, description, content string, categoryID int64) (*domain.Post, error) {
	return s.CreateFn(ctx, title, description, content, categoryID)
}

func (s *stubPostService) List(ctx context.Context, pageNo, pageSize int, sortBy, sortDir string) (*service.PostPage, error) {
	return s.ListFn(ctx, pageNo, pageSize, sortBy, sortDir)
}

func (s *stubPostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.GetByIDFn(ctx, id)
}

func (s *stubPostService) Update(ctx context.Context, id int64, title, description, content string, categoryID int64) (*domain.Post, error) {
	return s.UpdateFn(ctx, id, title, description, content, categoryID)
}

func (s *stubPostService) Delete(ctx context.Context, id int64) error {
	return s.DeleteFn(ctx, id)
}

func (s *stubPostService) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error) {
	return s.ListByCategoryFn(ctx, categoryID)
}

// stubCommentService implements service.CommentService for handler tests.
type stubCommentService struct {
	CreateFn     func(ctx context.Context, postID int64, name, email, body string) (*domain.Comment, error)
	ListByPostFn func(ctx context.Context, postID int64) ([]*domain.Comment, error)
	GetByIDFn    func(ctx context.Context, postID, commentID int64) (*domain.Comment, error)
	UpdateFn     func(ctx context.Context, postID, commentID int64, name, email, body string) (*domain.Comment, error)
	DeleteFn     func(ctx context.Context, postID, commentID int64) error
}

var _ service.CommentService = (*stubCommentService)(nil)

func (s *stubCommentService) Create(ctx context.Context, postID int64, name, email, body string) (*domain.Comment, error) {
	return s.CreateFn(ctx, postID, name, email, body)
}

func (s *stubCommentService) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	return s.ListByPostFn(ctx, postID)
}

func (s *stubCommentService) GetByID(ctx context.Context, postID, commentID int64) (*domain.Comment, error) {
	return s.GetByIDFn(ctx, postID, commentID)
}

func (s *stubCommentService) Update(ctx context.Context, postID, commentID int64, name, email, body string) (*domain.Comment, error) {
	return s.UpdateFn(ctx, postID, commentID, name, email, body)
}

func (s *stubCommentService) Delete(ctx context.Context, postID, commentID int64) error {
	return s.DeleteFn(ctx, postID, commentID)
}

// stubCategoryService implements service.CategoryService for handler tests.
type stubCategoryService struct {
	CreateFn  func(ctx context.Context, name, description string) (*domain.Category, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Category, error)
	ListFn    func(ctx context.Context) ([]*domain.Category, error)
	UpdateFn  func(ctx context.Context, id int64, name, description string) (*domain.Category, error)
	DeleteFn  func(ctx context.Context, id int64) error
}

var _ service.CategoryService = (*stubCategoryService)(nil)

func (s *stubCategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	return s.CreateFn(ctx, name, description)
}

func (s *stubCategoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.GetByIDFn(ctx, id)
}

func (s *stubCategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.ListFn(ctx)
}

func (s *stubCategoryService) Update(ctx context.Context, id int64, name, description string) (*domain.Category, error) {
	return s.UpdateFn(ctx, id, name, description)
}

func (s *stubCategoryService) Delete(ctx context.Context, id int64) error {
	return s.DeleteFn(ctx, id)
}

// newPostRouter mounts the post and comment handlers the way the server
// does, so tests exercise real URL parameter extraction.
func newPostRouter(posts service.PostService, comments service.CommentService) http.Handler {
	postHandler := NewPostHandler(posts, nil)
	commentHandler := NewCommentHandler(comments, nil)

	r := chi.NewRouter()
	r.Route("/api/v1/posts", func(r chi.Router) {
		r.Get("/", postHandler.List)
		r.Post("/", postHandler.Create)
		r.Get("/{id}", postHandler.GetByID)
		r.Put("/{id}", postHandler.Update)
		r.Delete("/{id}", postHandler.Delete)
		r.Get("/category/{id}", postHandler.ListByCategory)

		r.Route("/{postId}/comments", func(r chi.Router) {
			r.Post("/", commentHandler.Create)
			r.Get("/", commentHandler.ListByPost)
			r.Get("/{commentId}", commentHandler.GetByID)
			r.Put("/{commentId}", commentHandler.Update)
			r.Delete("/{commentId}", commentHandler.Delete)
		})
	})
	r.Get("/api/v2/posts/{id}", postHandler.GetByIDV2)
	return r
}

// doJSON performs a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func doJSON(t *testing.T, handler http.Handler, method, target string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, target, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}
