package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/mocks"
	"github.com/bloghq/blog-api/internal/store"
)

type commentServiceFixture struct {
	service      CommentService
	postStore    *mocks.InMemoryPostStore
	commentStore *mocks.InMemoryCommentStore
}

func newCommentServiceFixture(t *testing.T) *commentServiceFixture {
	t.Helper()

	postStore := mocks.NewInMemoryPostStore()
	commentStore := mocks.NewInMemoryCommentStore()

	svc := NewCommentService(nil, commentStore, postStore, nil)
	svc.(*commentServiceImpl).runTx = passthroughTx

	return &commentServiceFixture{
		service:      svc,
		postStore:    postStore,
		commentStore: commentStore,
	}
}

func (f *commentServiceFixture) seedPost(t *testing.T, title string) int64 {
	t.Helper()

	post, err := domain.NewPost(title, "a description", "some content", 1)
	require.NoError(t, err)
	require.NoError(t, f.postStore.Create(context.Background(), post))
	return post.ID
}

func TestCommentServiceCreateAndGet(t *testing.T) {
	t.Parallel()

	f := newCommentServiceFixture(t)
	ctx := context.Background()
	postID := f.seedPost(t, "First Post")

	created, err := f.service.Create(ctx, postID, "Reader", "reader@example.com", "a comment long enough")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, postID, created.PostID)

	got, err := f.service.GetByID(ctx, postID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reader", got.Name)
}

func TestCommentServiceCreateMissingPost(t *testing.T) {
	t.Parallel()

	f := newCommentServiceFixture(t)

	_, err := f.service.Create(context.Background(), 99, "Reader", "reader@example.com", "a comment long enough")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCommentServiceOwnershipMismatch(t *testing.T) {
	t.Parallel()

	f := newCommentServiceFixture(t)
	ctx := context.Background()
	firstPost := f.seedPost(t, "First Post")
	secondPost := f.seedPost(t, "Second Post")

	comment, err := f.service.Create(ctx, firstPost, "Reader", "reader@example.com", "a comment long enough")
	require.NoError(t, err)

	// Addressing the comment through the wrong post is a client error, not a
	// not-found.
	_, err = f.service.GetByID(ctx, secondPost, comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotOwned)

	_, err = f.service.Update(ctx, secondPost, comment.ID, "Reader", "reader@example.com", "updated comment body")
	assert.ErrorIs(t, err, ErrCommentNotOwned)

	err = f.service.Delete(ctx, secondPost, comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotOwned)
}

func TestCommentServiceListByPost(t *testing.T) {
	t.Parallel()

	f := newCommentServiceFixture(t)
	ctx := context.Background()
	postID := f.seedPost(t, "First Post")

	_, err := f.service.Create(ctx, postID, "Reader", "reader@example.com", "first comment body")
	require.NoError(t, err)
	_, err = f.service.Create(ctx, postID, "Other", "other@example.com", "second comment body")
	require.NoError(t, err)

	comments, err := f.service.ListByPost(ctx, postID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestCommentServiceListByPostAbsentPost(t *testing.T) {
	t.Parallel()

	f := newCommentServiceFixture(t)

	// The list path performs no post-existence check: an absent post yields
	// an empty list, not an error.
	comments, err := f.service.ListByPost(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentServiceUpdate(t *testing.T) {
	t.Parallel()

	f := newCommentServiceFixture(t)
	ctx := context.Background()
	postID := f.seedPost(t, "First Post")

	created, err := f.service.Create(ctx, postID, "Reader", "reader@example.com", "original comment body")
	require.NoError(t, err)

	updated, err := f.service.Update(ctx, postID, created.ID, "Renamed", "new@example.com", "updated comment body")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "updated comment body", updated.Body)
}

func TestCommentServiceDelete(t *testing.T) {
	t.Parallel()

	f := newCommentServiceFixture(t)
	ctx := context.Background()
	postID := f.seedPost(t, "First Post")

	created, err := f.service.Create(ctx, postID, "Reader", "reader@example.com", "a comment long enough")
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, postID, created.ID))

	_, err = f.service.GetByID(ctx, postID, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
