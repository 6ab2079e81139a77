package bookmarks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queelius/btk-graph/errors"
	testdb "github.com/queelius/btk-graph/internal/testing"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()
	return NewSQLStore(testdb.CreateMigratedTestDB(t), nil)
}

func TestPutAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, Bookmark{
		ID:      1,
		URL:     "https://example.com/docs",
		Title:   "Example Docs",
		Tags:    []string{"reference", "docs"},
		Starred: true,
	}))

	b, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/docs", b.URL)
	assert.Equal(t, "Example Docs", b.Title)
	assert.True(t, b.Starred)
	assert.Equal(t, []string{"docs", "reference"}, b.Tags)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAllReturnsOrderedWithTags(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, Bookmark{ID: 2, URL: "https://b.example.com", Tags: []string{"two"}}))
	require.NoError(t, store.Put(ctx, Bookmark{ID: 1, URL: "https://a.example.com"}))

	bms, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, bms, 2)
	assert.Equal(t, int64(1), bms[0].ID)
	assert.Equal(t, int64(2), bms[1].ID)
	assert.Empty(t, bms[0].Tags)
	assert.Equal(t, []string{"two"}, bms[1].Tags)
}

func TestAllEmptyStore(t *testing.T) {
	store := newTestStore(t)

	bms, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bms)
}

func TestCachedContent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, Bookmark{ID: 1, URL: "https://example.com"}))

	// Missing content is an empty string, not an error
	content, err := store.CachedContent(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, content)

	require.NoError(t, store.SetContent(ctx, 1, "See https://other.example.com for details."))
	content, err = store.CachedContent(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, content, "other.example.com")

	// SetContent replaces prior content
	require.NoError(t, store.SetContent(ctx, 1, "updated"))
	content, err = store.CachedContent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "updated", content)
}
