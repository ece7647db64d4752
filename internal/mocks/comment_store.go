package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/store"
)

// InMemoryCommentStore implements store.CommentStore backed by a map.
type InMemoryCommentStore struct {
	mu       sync.Mutex
	comments map[int64]*domain.Comment
	nextID   int64
}

var _ store.CommentStore = (*InMemoryCommentStore)(nil)

// NewInMemoryCommentStore creates an empty in-memory comment store.
func NewInMemoryCommentStore() *InMemoryCommentStore {
	return &InMemoryCommentStore{comments: make(map[int64]*domain.Comment), nextID: 1}
}

// Create implements store.CommentStore.Create.
func (s *InMemoryCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment.ID = s.nextID
	s.nextID++

	copied := *comment
	s.comments[comment.ID] = &copied
	return nil
}

// GetByID implements store.CommentStore.GetByID.
func (s *InMemoryCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return nil, store.NewNotFoundError("Comment", "id", id)
	}
	copied := *comment
	return &copied, nil
}

// ListByPost implements store.CommentStore.ListByPost. An absent post yields
// an empty slice, matching the real store.
func (s *InMemoryCommentStore) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := make([]*domain.Comment, 0)
	for _, comment := range s.comments {
		if comment.PostID == postID {
			copied := *comment
			comments = append(comments, &copied)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

// Update implements store.CommentStore.Update.
func (s *InMemoryCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[comment.ID]; !ok {
		return store.NewNotFoundError("Comment", "id", comment.ID)
	}
	copied := *comment
	s.comments[comment.ID] = &copied
	return nil
}

// Delete implements store.CommentStore.Delete.
func (s *InMemoryCommentStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return store.NewNotFoundError("Comment", "id", id)
	}
	delete(s.comments, id)
	return nil
}

// DeleteByPost removes all comments attached to a post, mirroring the
// database cascade for tests that delete posts.
func (s *InMemoryCommentStore) DeleteByPost(postID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, comment := range s.comments {
		if comment.PostID == postID {
			delete(s.comments, id)
		}
	}
}

// WithTx returns the store itself; the in-memory fake has no transactions.
func (s *InMemoryCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return s
}
