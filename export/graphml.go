package export

import (
	"context"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/queelius/btk-graph/bookmarks"
	"github.com/queelius/btk-graph/errors"
	"github.com/queelius/btk-graph/graph"
)

// GraphML document structure
type graphmlDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	Xmlns   string       `xml:"xmlns,attr"`
	Keys    []graphmlKey `xml:"key"`
	Graph   graphmlGraph `xml:"graph"`
}

type graphmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphmlGraph struct {
	ID          string        `xml:"id,attr"`
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphmlNode `xml:"node"`
	Edges       []graphmlEdge `xml:"edge"`
}

type graphmlNode struct {
	ID   string         `xml:"id,attr"`
	Data []graphmlDatum `xml:"data"`
}

type graphmlEdge struct {
	ID     string         `xml:"id,attr"`
	Source string         `xml:"source,attr"`
	Target string         `xml:"target,attr"`
	Data   []graphmlDatum `xml:"data"`
}

type graphmlDatum struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// GraphML exports the graph in GraphML format, undirected. Requires at
// least one post-filter edge.
func GraphML(ctx context.Context, g *graph.Graph, store bookmarks.Store, minWeight float64) ([]byte, error) {
	nodes, edges, err := collect(ctx, g, store, minWeight)
	if err != nil {
		return nil, err
	}
	if err := requireEdges(edges, minWeight); err != nil {
		return nil, err
	}

	doc := graphmlDoc{
		Xmlns: "http://graphml.graphdrawing.org/xmlns",
		Keys: []graphmlKey{
			{ID: "title", For: "node", AttrName: "title", AttrType: "string"},
			{ID: "url", For: "node", AttrName: "url", AttrType: "string"},
			{ID: "tags", For: "node", AttrName: "tags", AttrType: "string"},
			{ID: "starred", For: "node", AttrName: "starred", AttrType: "boolean"},
			{ID: "weight", For: "edge", AttrName: "weight", AttrType: "double"},
			{ID: "domain", For: "edge", AttrName: "domain", AttrType: "double"},
			{ID: "tag", For: "edge", AttrName: "tag", AttrType: "double"},
			{ID: "direct_link", For: "edge", AttrName: "direct_link", AttrType: "double"},
		},
		Graph: graphmlGraph{
			ID:          "bookmarks",
			EdgeDefault: "undirected",
		},
	}

	for _, b := range nodes {
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphmlNode{
			ID: "n" + strconv.FormatInt(b.ID, 10),
			Data: []graphmlDatum{
				{Key: "title", Value: b.Title},
				{Key: "url", Value: b.URL},
				{Key: "tags", Value: strings.Join(b.Tags, ",")},
				{Key: "starred", Value: strconv.FormatBool(b.Starred)},
			},
		})
	}

	for i, e := range edges {
		doc.Graph.Edges = append(doc.Graph.Edges, graphmlEdge{
			ID:     "e" + strconv.Itoa(i),
			Source: "n" + strconv.FormatInt(e.Pair.A, 10),
			Target: "n" + strconv.FormatInt(e.Pair.B, 10),
			Data: []graphmlDatum{
				{Key: "weight", Value: formatFloat(e.Weight)},
				{Key: "domain", Value: formatFloat(e.Components.Domain)},
				{Key: "tag", Value: formatFloat(e.Components.Tag)},
				{Key: "direct_link", Value: formatFloat(e.Components.DirectLink)},
			},
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal graphml document")
	}
	return append([]byte(xml.Header), out...), nil
}
