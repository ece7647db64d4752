package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/service"
	"github.com/bloghq/blog-api/internal/store"
)

func newCategoryRouter(categories service.CategoryService) http.Handler {
	handler := NewCategoryHandler(categories, nil)

	r := chi.NewRouter()
	r.Route("/api/v1/categories", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.List)
		r.Get("/{id}", handler.GetByID)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
	return r
}

func TestCategoryHandlerCreate(t *testing.T) {
	t.Parallel()

	categories := &stubCategoryService{
		CreateFn: func(ctx context.Context, name, description string) (*domain.Category, error) {
			return &domain.Category{ID: 1, Name: name, Description: description}, nil
		},
	}
	router := newCategoryRouter(categories)

	var dto CategoryDTO
	rec := doJSON(t, router, http.MethodPost, "/api/v1/categories", CategoryRequest{
		Name:        "Go",
		Description: "articles about Go",
	}, &dto)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Go", dto.Name)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/categories", CategoryRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoryHandlerGetAndList(t *testing.T) {
	t.Parallel()

	categories := &stubCategoryService{
		GetByIDFn: func(ctx context.Context, id int64) (*domain.Category, error) {
			if id != 1 {
				return nil, store.NewNotFoundError("Category", "id", id)
			}
			return &domain.Category{ID: 1, Name: "Go"}, nil
		},
		ListFn: func(ctx context.Context) ([]*domain.Category, error) {
			return []*domain.Category{{ID: 1, Name: "Go"}, {ID: 2, Name: "AWS"}}, nil
		},
	}
	router := newCategoryRouter(categories)

	var dto CategoryDTO
	rec := doJSON(t, router, http.MethodGet, "/api/v1/categories/1", nil, &dto)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Go", dto.Name)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/categories/42", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var dtos []CategoryDTO
	rec = doJSON(t, router, http.MethodGet, "/api/v1/categories", nil, &dtos)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dtos, 2)
}

func TestCategoryHandlerDeleteInUse(t *testing.T) {
	t.Parallel()

	categories := &stubCategoryService{
		DeleteFn: func(ctx context.Context, id int64) error {
			return store.ErrCategoryInUse
		},
	}
	router := newCategoryRouter(categories)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/categories/1", nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCategoryHandlerDelete(t *testing.T) {
	t.Parallel()

	categories := &stubCategoryService{
		DeleteFn: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	router := newCategoryRouter(categories)

	var resp MessageResponse
	rec := doJSON(t, router, http.MethodDelete, "/api/v1/categories/1", nil, &resp)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Category deleted successfully", resp.Message)
}
