package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/store"
)

// InMemoryCategoryStore implements store.CategoryStore backed by a map.
// A sibling post store can be attached so Delete can enforce the
// category-in-use restriction the real store gets from its FK constraint.
type InMemoryCategoryStore struct {
	mu         sync.Mutex
	categories map[int64]*domain.Category
	nextID     int64

	// PostStore, when set, is consulted on Delete to reject categories that
	// still have posts.
	PostStore *InMemoryPostStore
}

var _ store.CategoryStore = (*InMemoryCategoryStore)(nil)

// NewInMemoryCategoryStore creates an empty in-memory category store.
func NewInMemoryCategoryStore() *InMemoryCategoryStore {
	return &InMemoryCategoryStore{categories: make(map[int64]*domain.Category), nextID: 1}
}

// Create implements store.CategoryStore.Create.
func (s *InMemoryCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.nextID
	s.nextID++

	copied := *category
	s.categories[category.ID] = &copied
	return nil
}

// GetByID implements store.CategoryStore.GetByID.
func (s *InMemoryCategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, store.NewNotFoundError("Category", "id", id)
	}
	copied := *category
	return &copied, nil
}

// List implements store.CategoryStore.List.
func (s *InMemoryCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]*domain.Category, 0, len(s.categories))
	for _, category := range s.categories {
		copied := *category
		categories = append(categories, &copied)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

// Update implements store.CategoryStore.Update.
func (s *InMemoryCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[category.ID]; !ok {
		return store.NewNotFoundError("Category", "id", category.ID)
	}
	copied := *category
	s.categories[category.ID] = &copied
	return nil
}

// Delete implements store.CategoryStore.Delete.
func (s *InMemoryCategoryStore) Delete(ctx context.Context, id int64) error {
	if s.PostStore != nil {
		posts, _ := s.PostStore.ListByCategory(ctx, id)
		if len(posts) > 0 {
			return store.ErrCategoryInUse
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return store.NewNotFoundError("Category", "id", id)
	}
	delete(s.categories, id)
	return nil
}

// WithTx returns the store itself; the in-memory fake has no transactions.
func (s *InMemoryCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return s
}
