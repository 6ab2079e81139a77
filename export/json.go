package export

import (
	"context"
	"encoding/json"

	"github.com/queelius/btk-graph/bookmarks"
	"github.com/queelius/btk-graph/errors"
	"github.com/queelius/btk-graph/graph"
)

// nodeLinkDoc is the D3-compatible node-link envelope.
type nodeLinkDoc struct {
	Nodes []nodeJSON `json:"nodes"`
	Links []linkJSON `json:"links"`
}

type nodeJSON struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Tags    []string `json:"tags"`
	Starred bool     `json:"starred"`
}

type linkJSON struct {
	Source     int64   `json:"source"`
	Target     int64   `json:"target"`
	Weight     float64 `json:"weight"`
	Domain     float64 `json:"domain"`
	Tag        float64 `json:"tag"`
	DirectLink float64 `json:"direct_link"`
}

// NodeLink exports the graph as node-link JSON. Unlike the XML formats it
// tolerates an empty edge set: every bookmark appears as a node and links
// is an empty array. The indirect-link component is omitted since it is
// always zero.
func NodeLink(ctx context.Context, g *graph.Graph, store bookmarks.Store, minWeight float64) ([]byte, error) {
	nodes, edges, err := collect(ctx, g, store, minWeight)
	if err != nil {
		return nil, err
	}

	doc := nodeLinkDoc{
		Nodes: make([]nodeJSON, 0, len(nodes)),
		Links: make([]linkJSON, 0, len(edges)),
	}

	for _, b := range nodes {
		tags := b.Tags
		if tags == nil {
			tags = []string{}
		}
		doc.Nodes = append(doc.Nodes, nodeJSON{
			ID:      b.ID,
			Title:   b.Title,
			URL:     b.URL,
			Tags:    tags,
			Starred: b.Starred,
		})
	}

	for _, e := range edges {
		doc.Links = append(doc.Links, linkJSON{
			Source:     e.Pair.A,
			Target:     e.Pair.B,
			Weight:     e.Weight,
			Domain:     e.Components.Domain,
			Tag:        e.Components.Tag,
			DirectLink: e.Components.DirectLink,
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal node-link document")
	}
	return out, nil
}
