// Package bookmarks defines the bookmark store boundary consumed by the
// graph engine. The engine only ever reads from a Store; full bookmark
// management (import/export, tag editing, enrichment) lives elsewhere.
package bookmarks

import "context"

// Bookmark is a read-only bookmark record. The graph engine never mutates it.
type Bookmark struct {
	ID      int64    `json:"id"`
	URL     string   `json:"url"`
	Title   string   `json:"title"`
	Tags    []string `json:"tags"`
	Starred bool     `json:"starred"`
}

// Store provides read access to a bookmark collection.
type Store interface {
	// All returns every bookmark in the collection, ordered by ID.
	All(ctx context.Context) ([]Bookmark, error)

	// Get returns a single bookmark by ID, or errors.ErrNotFound.
	Get(ctx context.Context, id int64) (*Bookmark, error)

	// CachedContent returns the cached page content (markdown/plain text)
	// for a bookmark, or "" with a nil error when none has been cached.
	CachedContent(ctx context.Context, id int64) (string, error)
}
