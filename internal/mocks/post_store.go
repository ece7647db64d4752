package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/store"
)

// InMemoryPostStore implements store.PostStore backed by a map.
type InMemoryPostStore struct {
	mu     sync.Mutex
	posts  map[int64]*domain.Post
	nextID int64
}

var _ store.PostStore = (*InMemoryPostStore)(nil)

// NewInMemoryPostStore creates an empty in-memory post store.
func NewInMemoryPostStore() *InMemoryPostStore {
	return &InMemoryPostStore{posts: make(map[int64]*domain.Post), nextID: 1}
}

// Create implements store.PostStore.Create, enforcing title uniqueness the
// real store gets from its constraint.
func (s *InMemoryPostStore) Create(ctx context.Context, post *domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.posts {
		if existing.Title == post.Title {
			return store.ErrTitleExists
		}
	}

	post.ID = s.nextID
	s.nextID++

	copied := *post
	s.posts[post.ID] = &copied
	return nil
}

// GetByID implements store.PostStore.GetByID.
func (s *InMemoryPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, store.NewNotFoundError("Post", "id", id)
	}
	copied := *post
	return &copied, nil
}

// List implements store.PostStore.List with in-memory sorting and paging.
// Only the id and title sort fields are supported; anything else falls back
// to id, matching the real store's whitelist behavior.
func (s *InMemoryPostStore) List(ctx context.Context, opts store.ListOptions) (*store.PostPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]*domain.Post, 0, len(s.posts))
	for _, post := range s.posts {
		copied := *post
		all = append(all, &copied)
	}

	sort.Slice(all, func(i, j int) bool {
		var less bool
		switch opts.SortBy {
		case "title":
			less = all[i].Title < all[j].Title
		default:
			less = all[i].ID < all[j].ID
		}
		if !opts.Ascending {
			return !less
		}
		return less
	})

	total := int64(len(all))

	start := opts.Offset
	if start > len(all) {
		start = len(all)
	}
	end := start + opts.Limit
	if end > len(all) {
		end = len(all)
	}

	return &store.PostPage{Posts: all[start:end], TotalElements: total}, nil
}

// ListByCategory implements store.PostStore.ListByCategory.
func (s *InMemoryPostStore) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]*domain.Post, 0)
	for _, post := range s.posts {
		if post.CategoryID == categoryID {
			copied := *post
			posts = append(posts, &copied)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

// Update implements store.PostStore.Update.
func (s *InMemoryPostStore) Update(ctx context.Context, post *domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.ID]; !ok {
		return store.NewNotFoundError("Post", "id", post.ID)
	}

	for _, existing := range s.posts {
		if existing.ID != post.ID && existing.Title == post.Title {
			return store.ErrTitleExists
		}
	}

	copied := *post
	s.posts[post.ID] = &copied
	return nil
}

// Delete implements store.PostStore.Delete.
func (s *InMemoryPostStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return store.NewNotFoundError("Post", "id", id)
	}
	delete(s.posts, id)
	return nil
}

// WithTx returns the store itself; the in-memory fake has no transactions.
func (s *InMemoryPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return s
}
