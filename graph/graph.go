// Package graph computes a weighted, undirected similarity graph over a
// bookmark collection. Edges are scored from domain, tag, and direct-link
// signals, thresholded, and kept in memory; Save and Load move the edge
// set to and from the bookmark_graph table.
//
// A Graph is not safe for concurrent use. Callers must serialize Build,
// Save, and Load against the same instance.
package graph

import (
	"database/sql"
	"sort"

	"go.uber.org/zap"

	"github.com/queelius/btk-graph/bookmarks"
)

// Graph owns the edge set plus the derived lookup indexes rebuilt on each
// Build call.
type Graph struct {
	store  bookmarks.Store
	db     *sql.DB
	config Config
	logger *zap.SugaredLogger

	edges map[Pair]Edge

	// Derived per-build: outbound links extracted from cached content,
	// and the reverse URL lookup used for direct-link detection.
	linkIndex map[int64]map[string]struct{}
	urlToID   map[string]int64
}

// New creates an empty graph over the given bookmark store. The database
// handle is used only by Save and Load; it may be nil for in-memory use.
func New(store bookmarks.Store, db *sql.DB, config Config, logger *zap.SugaredLogger) *Graph {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Graph{
		store:  store,
		db:     db,
		config: config,
		logger: logger.Named("graph"),
		edges:  make(map[Pair]Edge),
	}
}

// Config returns the scoring configuration the graph was created with.
func (g *Graph) Config() Config {
	return g.config
}

// EdgeCount returns the number of edges currently in memory.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Edges returns all edges sorted by canonical pair for deterministic output.
func (g *Graph) Edges() []Edge {
	return g.FilteredEdges(g.config.MinEdgeWeight)
}

// FilteredEdges returns the edges with weight >= minWeight, sorted by
// canonical pair for deterministic output.
func (g *Graph) FilteredEdges(minWeight float64) []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e.Weight >= minWeight {
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Pair.A != edges[j].Pair.A {
			return edges[i].Pair.A < edges[j].Pair.A
		}
		return edges[i].Pair.B < edges[j].Pair.B
	})
	return edges
}
