package export

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/queelius/btk-graph/bookmarks"
	"github.com/queelius/btk-graph/graph"
)

// SVGOptions configures the SVG exporter.
type SVGOptions struct {
	Width     int
	Height    int
	MinWeight float64
	Labels    bool

	// Seed drives the layout's random initial placement. Zero seeds from
	// the clock, making layouts non-reproducible across runs.
	Seed int64
}

// DefaultSVGOptions returns the standard canvas configuration.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:  1200,
		Height: 800,
		Labels: true,
	}
}

const (
	svgBackground   = "#15171e"
	svgEdgeColor    = "#8899aa"
	svgStarStroke   = "#f1c40f"
	svgPlainStroke  = "#2c3640"
	svgLabelColor   = "#c8d0d8"
	svgUntaggedFill = "#7f8c8d"
	svgNodeRadius   = 8.0
	svgLabelMaxLen  = 30
)

// SVG exports the graph as a self-contained SVG with an embedded
// force-directed layout. Requires at least one post-filter edge.
func SVG(ctx context.Context, g *graph.Graph, store bookmarks.Store, opts SVGOptions) ([]byte, error) {
	nodes, edges, err := collect(ctx, g, store, opts.MinWeight)
	if err != nil {
		return nil, err
	}
	if err := requireEdges(edges, opts.MinWeight); err != nil {
		return nil, err
	}

	// Only connected nodes are drawn; isolated bookmarks add nothing to
	// the picture
	connected := make(map[int64]struct{}, len(edges)*2)
	for _, e := range edges {
		connected[e.Pair.A] = struct{}{}
		connected[e.Pair.B] = struct{}{}
	}
	var drawn []bookmarks.Bookmark
	var ids []int64
	for _, b := range nodes {
		if _, ok := connected[b.ID]; ok {
			drawn = append(drawn, b)
			ids = append(ids, b.ID)
		}
	}

	width := float64(opts.Width)
	height := float64(opts.Height)
	positions := computeLayout(ids, edges, defaultLayoutConfig(width, height, opts.Seed))

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	fmt.Fprintf(&sb, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", opts.Width, opts.Height, svgBackground)

	sb.WriteString(`  <g id="edges">` + "\n")
	for _, e := range edges {
		p1, ok1 := positions[e.Pair.A]
		p2, ok2 := positions[e.Pair.B]
		if !ok1 || !ok2 {
			continue
		}
		strokeWidth := math.Max(0.5, math.Sqrt(e.Weight))
		opacity := math.Min(e.Weight/10.0, 0.8)
		fmt.Fprintf(&sb,
			`    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f"/>`+"\n",
			p1[0], p1[1], p2[0], p2[1], svgEdgeColor, strokeWidth, opacity)
	}
	sb.WriteString("  </g>\n")

	sb.WriteString(`  <g id="nodes">` + "\n")
	for _, b := range drawn {
		p := positions[b.ID]
		fill := svgUntaggedFill
		if len(b.Tags) > 0 {
			fill = tagColor(b.Tags[0])
		}
		stroke := svgPlainStroke
		strokeWidth := 1.0
		if b.Starred {
			// Starred bookmarks get the highlighted outline
			stroke = svgStarStroke
			strokeWidth = 3.0
		}
		fmt.Fprintf(&sb,
			`    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
			p[0], p[1], svgNodeRadius, fill, stroke, strokeWidth)

		if opts.Labels {
			label := b.Title
			if label == "" {
				label = b.URL
			}
			if runes := []rune(label); len(runes) > svgLabelMaxLen {
				label = string(runes[:svgLabelMaxLen])
			}
			fmt.Fprintf(&sb,
				`    <text x="%.1f" y="%.1f" font-size="10" font-family="sans-serif" fill="%s">%s</text>`+"\n",
				p[0]+svgNodeRadius+3, p[1]+3, svgLabelColor, escapeXML(label))
		}
	}
	sb.WriteString("  </g>\n")
	sb.WriteString("</svg>\n")

	return []byte(sb.String()), nil
}

// tagColor maps a tag name to a deterministic color: hash the tag to a
// hue, fix saturation and lightness, convert HSL to RGB.
func tagColor(tag string) string {
	h := fnv.New32a()
	h.Write([]byte(tag))
	hue := float64(h.Sum32() % 360)
	r, g, b := hslToRGB(hue, 0.6, 0.55)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// hslToRGB converts hue [0,360), saturation [0,1], lightness [0,1] to
// 8-bit RGB.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return uint8(math.Round((r + m) * 255)),
		uint8(math.Round((g + m) * 255)),
		uint8(math.Round((b + m) * 255))
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
