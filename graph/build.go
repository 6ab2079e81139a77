package graph

import (
	"context"

	"gonum.org/v1/gonum/stat"

	"github.com/queelius/btk-graph/errors"
	"github.com/queelius/btk-graph/sym"
)

// scaleWarnThreshold is where the O(n²) comparison loop starts to hurt.
const scaleWarnThreshold = 10000

// Build performs a full rebuild of the edge set: fetch all bookmarks,
// build the link indexes, then score every unordered pair and keep edges
// meeting the minimum weight. Prior edges are discarded first — Build is
// never additive. An empty collection yields zero stats, not an error.
//
// The progress callback, if non-nil, fires synchronously after each outer
// bookmark finishes its inner loop. Complexity is O(n²) comparisons and
// O(n²) worst-case edge storage; collections past the low tens of
// thousands will be slow.
func (g *Graph) Build(ctx context.Context, progress ProgressFunc) (Stats, error) {
	bms, err := g.store.All(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "fetch bookmarks")
	}

	if len(bms) >= scaleWarnThreshold {
		g.logger.Warnw("Large collection: pairwise comparison is O(n²)",
			"symbol", sym.Graph,
			"bookmarks", len(bms),
			"comparisons", len(bms)*(len(bms)-1)/2,
		)
	}

	g.edges = make(map[Pair]Edge)
	g.buildIndexes(ctx, bms)

	total := len(bms) * (len(bms) - 1) / 2
	done := 0
	for i := range bms {
		for j := i + 1; j < len(bms); j++ {
			weight, components := g.scorePair(bms[i], bms[j])
			if weight >= g.config.MinEdgeWeight {
				pair := NewPair(bms[i].ID, bms[j].ID)
				g.edges[pair] = Edge{
					Pair:       pair,
					Weight:     weight,
					Components: components,
				}
			}
			done++
		}
		if progress != nil {
			progress(done, total, len(g.edges))
		}
	}

	stats := g.computeStats(len(bms))
	g.logger.Infow("Graph built",
		"symbol", sym.Graph,
		"bookmarks", stats.TotalBookmarks,
		"edges", stats.TotalEdges,
		"avg_weight", stats.AvgEdgeWeight,
		"max_weight", stats.MaxEdgeWeight,
	)
	return stats, nil
}

func (g *Graph) computeStats(totalBookmarks int) Stats {
	stats := Stats{
		TotalBookmarks: totalBookmarks,
		TotalEdges:     len(g.edges),
		ComponentCounts: map[string]int{
			"domain":        0,
			"tag":           0,
			"direct_link":   0,
			"indirect_link": 0,
		},
	}

	if len(g.edges) == 0 {
		return stats
	}

	weights := make([]float64, 0, len(g.edges))
	for _, e := range g.edges {
		weights = append(weights, e.Weight)
		if e.Weight > stats.MaxEdgeWeight {
			stats.MaxEdgeWeight = e.Weight
		}
		if e.Components.Domain != 0 {
			stats.ComponentCounts["domain"]++
		}
		if e.Components.Tag != 0 {
			stats.ComponentCounts["tag"]++
		}
		if e.Components.DirectLink != 0 {
			stats.ComponentCounts["direct_link"]++
		}
		if e.Components.IndirectLink != 0 {
			stats.ComponentCounts["indirect_link"]++
		}
	}
	stats.AvgEdgeWeight = stat.Mean(weights, nil)

	return stats
}
