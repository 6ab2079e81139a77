package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queelius/btk-graph/graph"
)

func layoutEdges() []graph.Edge {
	return []graph.Edge{
		{Pair: graph.NewPair(1, 2), Weight: 2.0},
		{Pair: graph.NewPair(2, 3), Weight: 1.0},
	}
}

func TestComputeLayoutBounds(t *testing.T) {
	cfg := defaultLayoutConfig(1200, 800, 42)
	positions := computeLayout([]int64{1, 2, 3, 4, 5}, layoutEdges(), cfg)

	require.Len(t, positions, 5)
	for id, p := range positions {
		assert.GreaterOrEqual(t, p[0], cfg.margin, "node %d x", id)
		assert.LessOrEqual(t, p[0], cfg.width-cfg.margin, "node %d x", id)
		assert.GreaterOrEqual(t, p[1], cfg.margin, "node %d y", id)
		assert.LessOrEqual(t, p[1], cfg.height-cfg.margin, "node %d y", id)
	}
}

func TestComputeLayoutSeededIsDeterministic(t *testing.T) {
	cfg := defaultLayoutConfig(1200, 800, 7)

	first := computeLayout([]int64{1, 2, 3}, layoutEdges(), cfg)
	second := computeLayout([]int64{1, 2, 3}, layoutEdges(), cfg)

	assert.Equal(t, first, second)
}

func TestComputeLayoutDifferentSeedsDiffer(t *testing.T) {
	a := computeLayout([]int64{1, 2, 3}, layoutEdges(), defaultLayoutConfig(1200, 800, 1))
	b := computeLayout([]int64{1, 2, 3}, layoutEdges(), defaultLayoutConfig(1200, 800, 2))

	assert.NotEqual(t, a, b)
}

func TestComputeLayoutEmpty(t *testing.T) {
	positions := computeLayout(nil, nil, defaultLayoutConfig(1200, 800, 1))
	assert.Empty(t, positions)
}

func TestComputeLayoutSingleNode(t *testing.T) {
	positions := computeLayout([]int64{1}, nil, defaultLayoutConfig(1200, 800, 1))
	require.Len(t, positions, 1)
}

func TestComputeLayoutPullsLinkedNodesCloser(t *testing.T) {
	// 1-2 are linked heavily, 3 floats free. Averaged over the
	// simulation the linked pair should end up closer than either is
	// to the stray.
	edges := []graph.Edge{{Pair: graph.NewPair(1, 2), Weight: 8.0}}
	positions := computeLayout([]int64{1, 2, 3}, edges, defaultLayoutConfig(1200, 800, 99))

	dist := func(a, b [2]float64) float64 {
		dx := a[0] - b[0]
		dy := a[1] - b[1]
		return dx*dx + dy*dy
	}
	linked := dist(positions[1], positions[2])
	stray := dist(positions[1], positions[3])
	assert.Less(t, linked, stray)
}
