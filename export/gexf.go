package export

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/queelius/btk-graph/bookmarks"
	"github.com/queelius/btk-graph/errors"
	"github.com/queelius/btk-graph/graph"
)

// GEXF 1.2 draft document structure
type gexfDoc struct {
	XMLName xml.Name  `xml:"gexf"`
	Xmlns   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	Meta    gexfMeta  `xml:"meta"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfMeta struct {
	LastModified string `xml:"lastmodifieddate,attr"`
	Creator      string `xml:"creator"`
	Description  string `xml:"description"`
}

type gexfGraph struct {
	Mode            string           `xml:"mode,attr"`
	DefaultEdgeType string           `xml:"defaultedgetype,attr"`
	Attributes      []gexfAttributes `xml:"attributes"`
	Nodes           gexfNodes        `xml:"nodes"`
	Edges           gexfEdges        `xml:"edges"`
}

type gexfAttributes struct {
	Class      string          `xml:"class,attr"`
	Attributes []gexfAttribute `xml:"attribute"`
}

type gexfAttribute struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type gexfNodes struct {
	Nodes []gexfNode `xml:"node"`
}

type gexfNode struct {
	ID        string          `xml:"id,attr"`
	Label     string          `xml:"label,attr"`
	AttValues []gexfAttValue `xml:"attvalues>attvalue"`
}

type gexfEdges struct {
	Edges []gexfEdge `xml:"edge"`
}

type gexfEdge struct {
	ID        string         `xml:"id,attr"`
	Source    string         `xml:"source,attr"`
	Target    string         `xml:"target,attr"`
	Weight    string         `xml:"weight,attr"`
	AttValues []gexfAttValue `xml:"attvalues>attvalue"`
}

type gexfAttValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

// GEXF exports the graph in GEXF 1.2 draft format, undirected. Requires
// at least one post-filter edge.
func GEXF(ctx context.Context, g *graph.Graph, store bookmarks.Store, minWeight float64) ([]byte, error) {
	nodes, edges, err := collect(ctx, g, store, minWeight)
	if err != nil {
		return nil, err
	}
	if err := requireEdges(edges, minWeight); err != nil {
		return nil, err
	}

	doc := gexfDoc{
		Xmlns:   "http://www.gexf.net/1.2draft",
		Version: "1.2",
		Meta: gexfMeta{
			LastModified: time.Now().Format("2006-01-02"),
			Creator:      "btk-graph",
			Description:  "Bookmark similarity graph",
		},
		Graph: gexfGraph{
			Mode:            "static",
			DefaultEdgeType: "undirected",
			Attributes: []gexfAttributes{
				{
					Class: "node",
					Attributes: []gexfAttribute{
						{ID: "0", Title: "url", Type: "string"},
						{ID: "1", Title: "tags", Type: "string"},
						{ID: "2", Title: "starred", Type: "boolean"},
					},
				},
				{
					Class: "edge",
					Attributes: []gexfAttribute{
						{ID: "0", Title: "domain", Type: "double"},
						{ID: "1", Title: "tag", Type: "double"},
						{ID: "2", Title: "direct_link", Type: "double"},
					},
				},
			},
		},
	}

	for _, b := range nodes {
		label := b.Title
		if label == "" {
			label = b.URL
		}
		doc.Graph.Nodes.Nodes = append(doc.Graph.Nodes.Nodes, gexfNode{
			ID:    strconv.FormatInt(b.ID, 10),
			Label: label,
			AttValues: []gexfAttValue{
				{For: "0", Value: b.URL},
				{For: "1", Value: strings.Join(b.Tags, ",")},
				{For: "2", Value: strconv.FormatBool(b.Starred)},
			},
		})
	}

	for i, e := range edges {
		doc.Graph.Edges.Edges = append(doc.Graph.Edges.Edges, gexfEdge{
			ID:     strconv.Itoa(i),
			Source: strconv.FormatInt(e.Pair.A, 10),
			Target: strconv.FormatInt(e.Pair.B, 10),
			Weight: formatFloat(e.Weight),
			AttValues: []gexfAttValue{
				{For: "0", Value: formatFloat(e.Components.Domain)},
				{For: "1", Value: formatFloat(e.Components.Tag)},
				{For: "2", Value: formatFloat(e.Components.DirectLink)},
			},
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal gexf document")
	}
	return append([]byte(xml.Header), out...), nil
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
