package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queelius/btk-graph/bookmarks"
)

func buildQueryFixture(t *testing.T) *Graph {
	t.Helper()

	store := bookmarks.NewMemStore()
	store.Add(bookmarks.Bookmark{ID: 1, URL: "https://x.com/a/b", Tags: []string{"go", "db"}})
	store.Add(bookmarks.Bookmark{ID: 2, URL: "https://x.com/a/c", Tags: []string{"go"}})
	store.Add(bookmarks.Bookmark{ID: 3, URL: "https://x.com/d", Tags: []string{"db"}})
	store.Add(bookmarks.Bookmark{ID: 4, URL: "https://elsewhere.org"})

	g := New(store, nil, DefaultConfig(), nil)
	_, err := g.Build(context.Background(), nil)
	require.NoError(t, err)
	return g
}

func TestNeighborsSortedDescending(t *testing.T) {
	g := buildQueryFixture(t)

	neighbors := g.Neighbors(1, 0, 0)
	require.NotEmpty(t, neighbors)
	for i := 1; i < len(neighbors); i++ {
		assert.GreaterOrEqual(t, neighbors[i-1].Weight, neighbors[i].Weight)
	}
	for _, n := range neighbors {
		assert.NotEqual(t, int64(1), n.BookmarkID, "a node is not its own neighbor")
	}
}

func TestNeighborsLimit(t *testing.T) {
	g := buildQueryFixture(t)

	all := g.Neighbors(1, 0, 100)
	require.Greater(t, len(all), 1)

	limited := g.Neighbors(1, 0, 1)
	require.Len(t, limited, 1)
	assert.Equal(t, all[0].BookmarkID, limited[0].BookmarkID)
}

func TestNeighborsMinWeight(t *testing.T) {
	g := buildQueryFixture(t)

	// An absurd threshold yields an empty sequence, not an error
	assert.Empty(t, g.Neighbors(1, 100000, 0))
}

func TestNeighborsUnknownNode(t *testing.T) {
	g := buildQueryFixture(t)

	assert.Empty(t, g.Neighbors(999, 0, 0))
}

func TestNeighborsIsolatedNode(t *testing.T) {
	g := buildQueryFixture(t)

	// Bookmark 4 shares nothing with the x.com cluster
	assert.Empty(t, g.Neighbors(4, 0, 0))
}

func TestNeighborsCarryComponents(t *testing.T) {
	g := buildQueryFixture(t)

	neighbors := g.Neighbors(1, 0, 0)
	require.NotEmpty(t, neighbors)
	for _, n := range neighbors {
		assert.InDelta(t, n.Components.Total(), n.Weight, 1e-9)
	}
}
