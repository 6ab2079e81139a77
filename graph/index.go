package graph

import (
	"context"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/queelius/btk-graph/bookmarks"
	"github.com/queelius/btk-graph/sym"
)

// bareURLPattern catches plain-text http(s) URLs in content that the
// markdown parser does not surface as link nodes.
var bareURLPattern = regexp.MustCompile(`https?://[^\s<>"'` + "`" + `\)\]]+`)

var markdown = goldmark.New()

// buildIndexes populates the per-bookmark outbound-link sets and the
// URL-to-ID lookup from cached page content. Runs in O(total content size),
// independent of the pairwise comparison step. A bookmark with no cached
// content simply contributes no outbound links.
func (g *Graph) buildIndexes(ctx context.Context, bms []bookmarks.Bookmark) {
	g.linkIndex = make(map[int64]map[string]struct{}, len(bms))
	g.urlToID = make(map[string]int64, len(bms))

	totalLinks := 0
	for _, b := range bms {
		g.urlToID[b.URL] = b.ID

		content, err := g.store.CachedContent(ctx, b.ID)
		if err != nil {
			// One bookmark's broken content must never abort the build
			g.logger.Warnw("Skipping cached content",
				"bookmark_id", b.ID,
				"error", err,
			)
			continue
		}
		if content == "" {
			continue
		}

		links := extractLinks(content)
		if len(links) > 0 {
			g.linkIndex[b.ID] = links
			totalLinks += len(links)
		}
	}

	g.logger.Debugw("Link index built",
		"symbol", sym.Link,
		"bookmarks", len(bms),
		"bookmarks_with_links", len(g.linkIndex),
		"total_links", totalLinks,
	)
}

// extractLinks returns the set of http(s) URLs occurring in a cached
// content blob. Content is markdown/plain text (already de-HTML'd), so
// links come from two passes: a goldmark AST walk for markdown link,
// autolink, and image destinations, then a regexp scan for bare URLs.
func extractLinks(content string) map[string]struct{} {
	links := make(map[string]struct{})
	add := func(raw string) {
		u := strings.TrimRight(raw, ".,;:!?")
		if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
			links[u] = struct{}{}
		}
	}

	source := []byte(content)
	doc := markdown.Parser().Parse(text.NewReader(source))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			add(string(node.Destination))
		case *ast.AutoLink:
			add(string(node.URL(source)))
		case *ast.Image:
			add(string(node.Destination))
		}
		return ast.WalkContinue, nil
	})

	for _, match := range bareURLPattern.FindAllString(content, -1) {
		add(match)
	}

	return links
}
