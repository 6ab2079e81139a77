package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queelius/btk-graph/bookmarks"
	"github.com/queelius/btk-graph/errors"
	testdb "github.com/queelius/btk-graph/internal/testing"
)

func newPersistentFixture(t *testing.T) (*Graph, *bookmarks.SQLStore) {
	t.Helper()

	database := testdb.CreateMigratedTestDB(t)
	store := bookmarks.NewSQLStore(database, nil)
	g := New(store, database, DefaultConfig(), nil)
	return g, store
}

func seedFixtureBookmarks(t *testing.T, store *bookmarks.SQLStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, bookmarks.Bookmark{
		ID: 1, URL: "https://x.com/a/b", Tags: []string{"go", "db"},
	}))
	require.NoError(t, store.Put(ctx, bookmarks.Bookmark{
		ID: 2, URL: "https://x.com/a/c", Tags: []string{"go"}, Starred: true,
	}))
	require.NoError(t, store.Put(ctx, bookmarks.Bookmark{
		ID: 3, URL: "https://y.org/post",
	}))
	require.NoError(t, store.SetContent(ctx, 3, "Look at https://x.com/a/b"))
}

func TestLoadBeforeAnySaveFailsWithNotBuilt(t *testing.T) {
	g, _ := newPersistentFixture(t)

	err := g.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsNotBuiltError(err))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g, store := newPersistentFixture(t)
	seedFixtureBookmarks(t, store)
	ctx := context.Background()

	_, err := g.Build(ctx, nil)
	require.NoError(t, err)
	require.NotZero(t, g.EdgeCount())
	built := make(map[Pair]Edge, len(g.edges))
	for k, v := range g.edges {
		built[k] = v
	}

	require.NoError(t, g.Save(ctx))

	// Fresh graph over the same database
	loaded := New(store, g.db, DefaultConfig(), nil)
	require.NoError(t, loaded.Load(ctx))

	assert.Equal(t, built, loaded.edges)
}

func TestSaveReplacesPriorState(t *testing.T) {
	g, store := newPersistentFixture(t)
	seedFixtureBookmarks(t, store)
	ctx := context.Background()

	_, err := g.Build(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, g.Save(ctx))

	// Build with a threshold nothing can meet, then save the empty set
	empty := New(store, g.db, Config{MinEdgeWeight: 1e9}, nil)
	_, err = empty.Build(ctx, nil)
	require.NoError(t, err)
	require.Zero(t, empty.EdgeCount())
	require.NoError(t, empty.Save(ctx))

	// The table exists, so Load succeeds with zero edges
	loaded := New(store, g.db, DefaultConfig(), nil)
	require.NoError(t, loaded.Load(ctx))
	assert.Zero(t, loaded.EdgeCount())
}

func TestPersistedRowsUseCanonicalOrdering(t *testing.T) {
	g, store := newPersistentFixture(t)
	seedFixtureBookmarks(t, store)
	ctx := context.Background()

	_, err := g.Build(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, g.Save(ctx))

	rows, err := g.db.Query("SELECT bookmark1_id, bookmark2_id FROM bookmark_graph")
	require.NoError(t, err)
	defer rows.Close()

	for rows.Next() {
		var id1, id2 int64
		require.NoError(t, rows.Scan(&id1, &id2))
		assert.Less(t, id1, id2)
	}
	require.NoError(t, rows.Err())
}
