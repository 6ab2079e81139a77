package graph

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queelius/btk-graph/bookmarks"
)

func TestBuildEmptyCollection(t *testing.T) {
	g := New(bookmarks.NewMemStore(), nil, DefaultConfig(), nil)

	stats, err := g.Build(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalBookmarks)
	assert.Equal(t, 0, stats.TotalEdges)
	assert.Zero(t, stats.AvgEdgeWeight)
	assert.Zero(t, stats.MaxEdgeWeight)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBuildScenarioSharedPath(t *testing.T) {
	// Two bookmarks on the same host sharing one leading path segment and
	// no tags: only the domain component fires.
	store := bookmarks.NewMemStore()
	store.Add(bookmarks.Bookmark{ID: 1, URL: "https://x.com/a/b"})
	store.Add(bookmarks.Bookmark{ID: 2, URL: "https://x.com/a/c"})

	g := New(store, nil, DefaultConfig(), nil)
	stats, err := g.Build(context.Background(), nil)
	require.NoError(t, err)

	require.Equal(t, 1, stats.TotalEdges)
	edge, ok := g.edges[NewPair(1, 2)]
	require.True(t, ok)

	// 1.0 base + 0.5 subdomain bonus + 1 shared segment * 0.3
	assert.InDelta(t, 1.8, edge.Components.Domain, 1e-9)
	assert.Zero(t, edge.Components.Tag)
	assert.Zero(t, edge.Components.DirectLink)
	assert.InDelta(t, 1.8, edge.Weight, 1e-9)
	assert.Equal(t, 1, stats.ComponentCounts["domain"])
	assert.Equal(t, 0, stats.ComponentCounts["tag"])
}

func TestBuildWeightEqualsComponentSum(t *testing.T) {
	store := bookmarks.NewMemStore()
	store.Add(bookmarks.Bookmark{ID: 1, URL: "https://x.com/a", Tags: []string{"go", "db"}})
	store.Add(bookmarks.Bookmark{ID: 2, URL: "https://x.com/b", Tags: []string{"go"}})
	store.Add(bookmarks.Bookmark{ID: 3, URL: "https://y.org", Tags: []string{"go", "db"}})
	store.SetContent(1, "see https://y.org for more")

	g := New(store, nil, DefaultConfig(), nil)
	_, err := g.Build(context.Background(), nil)
	require.NoError(t, err)

	require.NotZero(t, g.EdgeCount())
	for pair, e := range g.edges {
		assert.InDelta(t, e.Components.Total(), e.Weight, 1e-9, "pair %v", pair)
		assert.GreaterOrEqual(t, e.Weight, g.config.MinEdgeWeight, "pair %v", pair)
		assert.Less(t, pair.A, pair.B, "canonical ordering for %v", pair)
	}
}

func TestBuildDirectLinkBonus(t *testing.T) {
	store := bookmarks.NewMemStore()
	store.Add(bookmarks.Bookmark{ID: 1, URL: "https://a.com/post"})
	store.Add(bookmarks.Bookmark{ID: 2, URL: "https://b.org/article"})
	// Link direction 2 -> 1 must count just like 1 -> 2
	store.SetContent(2, "As discussed in [this post](https://a.com/post).")

	g := New(store, nil, DefaultConfig(), nil)
	stats, err := g.Build(context.Background(), nil)
	require.NoError(t, err)

	require.Equal(t, 1, stats.TotalEdges)
	edge := g.edges[NewPair(1, 2)]
	assert.InDelta(t, g.config.DirectLinkWeight, edge.Components.DirectLink, 1e-9)
	assert.Zero(t, edge.Components.Domain)
	assert.Equal(t, 1, stats.ComponentCounts["direct_link"])
}

func TestBuildThresholdFiltering(t *testing.T) {
	store := bookmarks.NewMemStore()
	store.Add(bookmarks.Bookmark{ID: 1, URL: "https://a.com", Tags: []string{"go"}})
	store.Add(bookmarks.Bookmark{ID: 2, URL: "https://b.org", Tags: []string{"go", "db", "web", "cli"}})

	config := DefaultConfig()
	config.MinEdgeWeight = 0.5 // Jaccard 1/4 * weight 1.0 = 0.25, below threshold

	g := New(store, nil, config, nil)
	stats, err := g.Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalEdges)

	// Negative threshold admits everything, including zero-weight pairs
	config.MinEdgeWeight = -1.0
	g = New(store, nil, config, nil)
	stats, err = g.Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalEdges)
}

func TestBuildZeroWeightSkipsComponent(t *testing.T) {
	store := bookmarks.NewMemStore()
	store.Add(bookmarks.Bookmark{ID: 1, URL: "https://x.com/a", Tags: []string{"go"}})
	store.Add(bookmarks.Bookmark{ID: 2, URL: "https://x.com/b", Tags: []string{"go"}})

	config := DefaultConfig()
	config.TagWeight = 0
	config.MinEdgeWeight = 0

	g := New(store, nil, config, nil)
	_, err := g.Build(context.Background(), nil)
	require.NoError(t, err)

	edge := g.edges[NewPair(1, 2)]
	// Identical tags, but the component is disabled: present as exactly 0
	assert.Zero(t, edge.Components.Tag)
	assert.NotZero(t, edge.Components.Domain)
}

func TestBuildIsIdempotent(t *testing.T) {
	store := bookmarks.NewMemStore()
	store.Add(bookmarks.Bookmark{ID: 1, URL: "https://x.com/a", Tags: []string{"go", "db"}})
	store.Add(bookmarks.Bookmark{ID: 2, URL: "https://x.com/b", Tags: []string{"go"}})
	store.Add(bookmarks.Bookmark{ID: 3, URL: "https://y.org/c", Tags: []string{"db"}})
	store.SetContent(1, "https://y.org/c")

	g := New(store, nil, DefaultConfig(), nil)
	_, err := g.Build(context.Background(), nil)
	require.NoError(t, err)
	first := make(map[Pair]Edge, len(g.edges))
	for k, v := range g.edges {
		first[k] = v
	}

	_, err = g.Build(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, first, g.edges)
}

func TestBuildProgressCallback(t *testing.T) {
	store := bookmarks.NewMemStore()
	for i := int64(1); i <= 4; i++ {
		store.Add(bookmarks.Bookmark{ID: i, URL: "https://x.com"})
	}

	g := New(store, nil, DefaultConfig(), nil)

	var calls int
	var lastDone, lastTotal int
	_, err := g.Build(context.Background(), func(done, total, edges int) {
		calls++
		lastDone = done
		lastTotal = total
		assert.LessOrEqual(t, done, total)
	})
	require.NoError(t, err)

	// One call per outer-loop bookmark
	assert.Equal(t, 4, calls)
	assert.Equal(t, 6, lastTotal) // C(4,2)
	assert.Equal(t, lastTotal, lastDone)
}

func TestBuildStats(t *testing.T) {
	store := bookmarks.NewMemStore()
	store.Add(bookmarks.Bookmark{ID: 1, URL: "https://x.com/a", Tags: []string{"go"}})
	store.Add(bookmarks.Bookmark{ID: 2, URL: "https://x.com/b", Tags: []string{"go"}})
	store.Add(bookmarks.Bookmark{ID: 3, URL: "https://x.com/c"})

	g := New(store, nil, DefaultConfig(), nil)
	stats, err := g.Build(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalBookmarks)
	assert.Equal(t, 3, stats.TotalEdges)

	var sum, max float64
	for _, e := range g.edges {
		sum += e.Weight
		max = math.Max(max, e.Weight)
	}
	assert.InDelta(t, sum/3, stats.AvgEdgeWeight, 1e-9)
	assert.InDelta(t, max, stats.MaxEdgeWeight, 1e-9)
	assert.Equal(t, 3, stats.ComponentCounts["domain"])
	assert.Equal(t, 1, stats.ComponentCounts["tag"])
	assert.Equal(t, 0, stats.ComponentCounts["indirect_link"])
}
