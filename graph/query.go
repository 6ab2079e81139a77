package graph

import "sort"

// DefaultNeighborLimit caps neighbor query results when the caller does
// not specify a limit.
const DefaultNeighborLimit = 10

// Neighbors returns the edges adjacent to a bookmark, filtered by minimum
// weight, sorted descending by weight (ties stable), and truncated to
// limit. A limit <= 0 uses DefaultNeighborLimit. Unknown or isolated
// bookmarks yield an empty slice, never an error.
//
// This scans the full edge set; no adjacency index is maintained.
func (g *Graph) Neighbors(bookmarkID int64, minWeight float64, limit int) []Neighbor {
	if limit <= 0 {
		limit = DefaultNeighborLimit
	}

	neighbors := []Neighbor{}
	for pair, e := range g.edges {
		other, ok := pair.Other(bookmarkID)
		if !ok || e.Weight < minWeight {
			continue
		}
		neighbors = append(neighbors, Neighbor{
			BookmarkID: other,
			Weight:     e.Weight,
			Components: e.Components,
		})
	}

	// Secondary ID order makes results deterministic across runs even
	// though map iteration is not
	sort.SliceStable(neighbors, func(i, j int) bool {
		if neighbors[i].Weight != neighbors[j].Weight {
			return neighbors[i].Weight > neighbors[j].Weight
		}
		return neighbors[i].BookmarkID < neighbors[j].BookmarkID
	})

	if len(neighbors) > limit {
		neighbors = neighbors[:limit]
	}
	return neighbors
}
