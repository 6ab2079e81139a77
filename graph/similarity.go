package graph

import (
	"net/url"
	"strings"

	"github.com/queelius/btk-graph/bookmarks"
)

// scorePair computes the similarity between two bookmarks. Components with
// a zero configured weight are skipped entirely but still appear as 0 in
// the result. Deterministic: no randomness, no global state, inputs are
// never mutated.
func (g *Graph) scorePair(b1, b2 bookmarks.Bookmark) (float64, Components) {
	var c Components

	if g.config.DomainWeight > 0 {
		c.Domain = domainSimilarity(b1.URL, b2.URL, g.config) * g.config.DomainWeight
	}
	if g.config.TagWeight > 0 {
		c.Tag = tagSimilarity(b1.Tags, b2.Tags) * g.config.TagWeight
	}
	if g.config.DirectLinkWeight > 0 && g.hasDirectLink(b1, b2) {
		// Flat bonus, not scaled further
		c.DirectLink = g.config.DirectLinkWeight
	}
	// IndirectLink stays 0: multi-hop BFS scoring is disabled in this
	// version. The field is kept so exports see a stable component set.

	return c.Total(), c
}

// domainSimilarity compares two URLs by site. Different base domains score
// 0. The same base domain starts at 1.0, gains the subdomain bonus when
// the full hosts match exactly, and gains PathDepthWeight per leading path
// segment the two URLs share. Malformed URLs score 0 rather than failing
// the build.
func domainSimilarity(url1, url2 string, config Config) float64 {
	u1, err := url.Parse(url1)
	if err != nil || u1.Hostname() == "" {
		return 0.0
	}
	u2, err := url.Parse(url2)
	if err != nil || u2.Hostname() == "" {
		return 0.0
	}

	host1 := strings.ToLower(u1.Hostname())
	host2 := strings.ToLower(u2.Hostname())

	if baseDomain(host1) != baseDomain(host2) {
		return 0.0
	}

	score := 1.0
	if host1 == host2 {
		score += config.SubdomainBonus
	}
	score += float64(commonPathSegments(u1.Path, u2.Path)) * config.PathDepthWeight
	return score
}

// baseDomain returns the last two dot-separated labels of a hostname
// (api.docs.example.com -> example.com). Hosts with fewer than two labels
// are returned unchanged.
func baseDomain(host string) string {
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return host
	}
	return strings.Join(labels[len(labels)-2:], ".")
}

// commonPathSegments counts path segments matching contiguously from the
// start until the first mismatch. Empty segments are stripped before
// comparison.
func commonPathSegments(path1, path2 string) int {
	seg1 := splitPath(path1)
	seg2 := splitPath(path2)

	common := 0
	for i := 0; i < len(seg1) && i < len(seg2); i++ {
		if seg1[i] != seg2[i] {
			break
		}
		common++
	}
	return common
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// tagSimilarity is the Jaccard index over the two tag-name sets. Either
// side being empty scores 0 — including both sides empty.
func tagSimilarity(tags1, tags2 []string) float64 {
	if len(tags1) == 0 || len(tags2) == 0 {
		return 0.0
	}

	set1 := make(map[string]struct{}, len(tags1))
	for _, t := range tags1 {
		set1[t] = struct{}{}
	}
	set2 := make(map[string]struct{}, len(tags2))
	for _, t := range tags2 {
		set2[t] = struct{}{}
	}

	intersection := 0
	for t := range set1 {
		if _, ok := set2[t]; ok {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// hasDirectLink reports whether either bookmark's cached content links to
// the other's URL. Lookups go through the prebuilt link index; content is
// never re-parsed at score time.
func (g *Graph) hasDirectLink(b1, b2 bookmarks.Bookmark) bool {
	if links, ok := g.linkIndex[b1.ID]; ok {
		if _, hit := links[b2.URL]; hit {
			return true
		}
	}
	if links, ok := g.linkIndex[b2.ID]; ok {
		if _, hit := links[b1.URL]; hit {
			return true
		}
	}
	return false
}
