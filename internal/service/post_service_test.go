package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloghq/blog-api/internal/mocks"
	"github.com/bloghq/blog-api/internal/store"
)

// passthroughTx runs the transactional function directly. The in-memory
// stores ignore the nil transaction, so services can be exercised without a
// database.
func passthroughTx(ctx context.Context, db *sql.DB, fn store.TxFn) error {
	return fn(ctx, nil)
}

type postServiceFixture struct {
	service       PostService
	postStore     *mocks.InMemoryPostStore
	categoryStore *mocks.InMemoryCategoryStore
}

func newPostServiceFixture(t *testing.T) *postServiceFixture {
	t.Helper()

	postStore := mocks.NewInMemoryPostStore()
	categoryStore := mocks.NewInMemoryCategoryStore()
	categoryStore.PostStore = postStore

	svc := NewPostService(nil, postStore, categoryStore, nil)
	svc.(*postServiceImpl).runTx = passthroughTx

	return &postServiceFixture{
		service:       svc,
		postStore:     postStore,
		categoryStore: categoryStore,
	}
}

func (f *postServiceFixture) seedCategory(t *testing.T, name string) int64 {
	t.Helper()

	svc := NewCategoryService(nil, f.categoryStore, nil)
	svc.(*categoryServiceImpl).runTx = passthroughTx
	category, err := svc.Create(context.Background(), name, "")
	require.NoError(t, err)
	return category.ID
}

func TestPostServiceCreateAndGet(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()
	categoryID := f.seedCategory(t, "Go")

	created, err := f.service.Create(ctx, "First Post", "a description", "some content", categoryID)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := f.service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "First Post", got.Title)
	assert.Equal(t, categoryID, got.CategoryID)
}

func TestPostServiceCreateMissingCategory(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)

	_, err := f.service.Create(context.Background(), "First Post", "a description", "some content", 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostServiceCreateDuplicateTitle(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()
	categoryID := f.seedCategory(t, "Go")

	_, err := f.service.Create(ctx, "First Post", "a description", "some content", categoryID)
	require.NoError(t, err)

	_, err = f.service.Create(ctx, "First Post", "another description", "other content", categoryID)
	assert.ErrorIs(t, err, store.ErrTitleExists)
}

func TestPostServiceGetByIDNotFound(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)

	_, err := f.service.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostServiceListPagination(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()
	categoryID := f.seedCategory(t, "Go")

	for _, title := range []string{"Post A", "Post B", "Post C", "Post D", "Post E"} {
		_, err := f.service.Create(ctx, title, "a description", "some content", categoryID)
		require.NoError(t, err)
	}

	page, err := f.service.List(ctx, 0, 2, "id", "asc")
	require.NoError(t, err)
	assert.Len(t, page.Posts, 2)
	assert.Equal(t, 0, page.PageNo)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.Last)

	last, err := f.service.List(ctx, 2, 2, "id", "asc")
	require.NoError(t, err)
	assert.Len(t, last.Posts, 1)
	assert.True(t, last.Last)
}

func TestPostServiceListSortDirection(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()
	categoryID := f.seedCategory(t, "Go")

	for _, title := range []string{"Alpha", "Bravo", "Charlie"} {
		_, err := f.service.Create(ctx, title, "a description", "some content", categoryID)
		require.NoError(t, err)
	}

	// The direction match is case-insensitive; anything but "asc" sorts
	// descending.
	page, err := f.service.List(ctx, 0, 10, "title", "ASC")
	require.NoError(t, err)
	require.Len(t, page.Posts, 3)
	assert.Equal(t, "Alpha", page.Posts[0].Title)

	page, err = f.service.List(ctx, 0, 10, "title", "desc")
	require.NoError(t, err)
	require.Len(t, page.Posts, 3)
	assert.Equal(t, "Charlie", page.Posts[0].Title)
}

func TestPostServiceListNormalizesParams(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()
	categoryID := f.seedCategory(t, "Go")

	_, err := f.service.Create(ctx, "Only Post", "a description", "some content", categoryID)
	require.NoError(t, err)

	page, err := f.service.List(ctx, -3, 0, "", "asc")
	require.NoError(t, err)
	assert.Equal(t, DefaultPageNo, page.PageNo)
	assert.Equal(t, DefaultPageSize, page.PageSize)
	assert.Len(t, page.Posts, 1)
}

func TestPostServiceUpdate(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()
	categoryID := f.seedCategory(t, "Go")
	otherCategoryID := f.seedCategory(t, "AWS")

	created, err := f.service.Create(ctx, "First Post", "a description", "some content", categoryID)
	require.NoError(t, err)

	updated, err := f.service.Update(ctx, created.ID, "Renamed", "new description", "new content", otherCategoryID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, otherCategoryID, updated.CategoryID)

	got, err := f.service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestPostServiceUpdateMissingCategory(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()
	categoryID := f.seedCategory(t, "Go")

	created, err := f.service.Create(ctx, "First Post", "a description", "some content", categoryID)
	require.NoError(t, err)

	_, err = f.service.Update(ctx, created.ID, "Renamed", "new description", "new content", 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostServiceDelete(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()
	categoryID := f.seedCategory(t, "Go")

	created, err := f.service.Create(ctx, "First Post", "a description", "some content", categoryID)
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, created.ID))

	_, err = f.service.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = f.service.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostServiceListByCategory(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	ctx := context.Background()
	goID := f.seedCategory(t, "Go")
	awsID := f.seedCategory(t, "AWS")

	_, err := f.service.Create(ctx, "Go Post", "a description", "some content", goID)
	require.NoError(t, err)
	_, err = f.service.Create(ctx, "AWS Post", "a description", "some content", awsID)
	require.NoError(t, err)

	posts, err := f.service.ListByCategory(ctx, goID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Go Post", posts[0].Title)

	_, err = f.service.ListByCategory(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
