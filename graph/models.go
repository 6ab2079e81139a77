package graph

// Pair is the canonical unordered edge key: A always holds the smaller
// bookmark ID. Both the in-memory edge map and the persisted table use
// this ordering, so swapped-order duplicates cannot occur.
type Pair struct {
	A int64
	B int64
}

// NewPair returns the canonical pair for two bookmark IDs.
func NewPair(id1, id2 int64) Pair {
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return Pair{A: id1, B: id2}
}

// Other returns the endpoint opposite id, and whether id is an endpoint
// of this pair at all.
func (p Pair) Other(id int64) (int64, bool) {
	switch id {
	case p.A:
		return p.B, true
	case p.B:
		return p.A, true
	}
	return 0, false
}

// Components holds the named similarity contributions that sum to an
// edge's total weight. IndirectLink is always zero while multi-hop
// scoring is disabled, but stays in the struct so every export format
// sees the same shape.
type Components struct {
	Domain       float64 `json:"domain"`
	Tag          float64 `json:"tag"`
	DirectLink   float64 `json:"direct_link"`
	IndirectLink float64 `json:"indirect_link"`
}

// Total returns the sum of all components.
func (c Components) Total() float64 {
	return c.Domain + c.Tag + c.DirectLink + c.IndirectLink
}

// Edge is a weighted undirected similarity edge between two bookmarks.
// Invariant: Weight == Components.Total() within floating-point tolerance.
type Edge struct {
	Pair       Pair
	Weight     float64
	Components Components
}

// Neighbor is one adjacency result from a neighbor query.
type Neighbor struct {
	BookmarkID int64      `json:"bookmark_id"`
	Weight     float64    `json:"weight"`
	Components Components `json:"components"`
}

// Stats summarizes a completed build.
type Stats struct {
	TotalBookmarks int     `json:"total_bookmarks"`
	TotalEdges     int     `json:"total_edges"`
	AvgEdgeWeight  float64 `json:"avg_edge_weight"`
	MaxEdgeWeight  float64 `json:"max_edge_weight"`

	// ComponentCounts counts how many edges had a non-zero contribution
	// from each component, keyed by component name.
	ComponentCounts map[string]int `json:"component_counts"`
}

// ProgressFunc observes a running build. It is invoked synchronously on
// the caller's goroutine after each outer-loop bookmark completes its
// inner comparisons; it must not block the builder indefinitely.
type ProgressFunc func(comparisonsDone, totalComparisons, edgesFound int)
