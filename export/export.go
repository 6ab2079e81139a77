// Package export renders a built similarity graph into interchange
// formats: node-link JSON for D3-style consumers, self-contained SVG with
// an embedded force-directed layout, and GEXF/GraphML/GML attributed-graph
// formats.
//
// GEXF, GraphML, GML, and SVG require at least one post-filter edge and
// return errors.ErrEmptyGraph otherwise. JSON does not: an empty edge set
// exports as nodes with an empty links array.
package export

import (
	"context"

	"github.com/queelius/btk-graph/bookmarks"
	"github.com/queelius/btk-graph/errors"
	"github.com/queelius/btk-graph/graph"
)

// collect assembles the export inputs: every bookmark in the store as a
// node, and the graph's edges at or above minWeight, restricted to edges
// whose endpoints still exist. Edges come pre-sorted by canonical pair.
func collect(ctx context.Context, g *graph.Graph, store bookmarks.Store, minWeight float64) ([]bookmarks.Bookmark, []graph.Edge, error) {
	nodes, err := store.All(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "fetch bookmarks for export")
	}

	known := make(map[int64]struct{}, len(nodes))
	for _, b := range nodes {
		known[b.ID] = struct{}{}
	}

	var edges []graph.Edge
	for _, e := range g.FilteredEdges(minWeight) {
		if _, ok := known[e.Pair.A]; !ok {
			continue
		}
		if _, ok := known[e.Pair.B]; !ok {
			continue
		}
		edges = append(edges, e)
	}

	return nodes, edges, nil
}

// requireEdges enforces the shared hard contract of the edge-bearing
// formats.
func requireEdges(edges []graph.Edge, minWeight float64) error {
	if len(edges) == 0 {
		return errors.Wrapf(errors.ErrEmptyGraph, "min weight %g", minWeight)
	}
	return nil
}
