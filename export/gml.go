package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/queelius/btk-graph/bookmarks"
	"github.com/queelius/btk-graph/graph"
)

// GML exports the graph in plain-text GML format, undirected. Requires at
// least one post-filter edge.
func GML(ctx context.Context, g *graph.Graph, store bookmarks.Store, minWeight float64) ([]byte, error) {
	nodes, edges, err := collect(ctx, g, store, minWeight)
	if err != nil {
		return nil, err
	}
	if err := requireEdges(edges, minWeight); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("graph [\n")
	sb.WriteString("  directed 0\n")

	for _, b := range nodes {
		label := b.Title
		if label == "" {
			label = b.URL
		}
		starred := 0
		if b.Starred {
			starred = 1
		}
		fmt.Fprintf(&sb, "  node [\n")
		fmt.Fprintf(&sb, "    id %d\n", b.ID)
		fmt.Fprintf(&sb, "    label %q\n", escapeGML(label))
		fmt.Fprintf(&sb, "    url %q\n", escapeGML(b.URL))
		fmt.Fprintf(&sb, "    tags %q\n", escapeGML(strings.Join(b.Tags, ",")))
		fmt.Fprintf(&sb, "    starred %d\n", starred)
		fmt.Fprintf(&sb, "  ]\n")
	}

	for _, e := range edges {
		fmt.Fprintf(&sb, "  edge [\n")
		fmt.Fprintf(&sb, "    source %d\n", e.Pair.A)
		fmt.Fprintf(&sb, "    target %d\n", e.Pair.B)
		fmt.Fprintf(&sb, "    weight %g\n", e.Weight)
		fmt.Fprintf(&sb, "    domain %g\n", e.Components.Domain)
		fmt.Fprintf(&sb, "    tag %g\n", e.Components.Tag)
		fmt.Fprintf(&sb, "    directLink %g\n", e.Components.DirectLink)
		fmt.Fprintf(&sb, "  ]\n")
	}

	sb.WriteString("]\n")
	return []byte(sb.String()), nil
}

// escapeGML strips characters GML string values cannot carry. %q handles
// the quoting; GML itself has no escape for embedded quotes.
func escapeGML(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
