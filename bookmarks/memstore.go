package bookmarks

import (
	"context"
	"sort"

	"github.com/queelius/btk-graph/errors"
)

// MemStore is an in-memory Store implementation. It backs tests and makes
// the engine usable without a database.
type MemStore struct {
	bms     map[int64]Bookmark
	content map[int64]string
}

// NewMemStore creates an empty in-memory bookmark store.
func NewMemStore() *MemStore {
	return &MemStore{
		bms:     make(map[int64]Bookmark),
		content: make(map[int64]string),
	}
}

// Add inserts or replaces a bookmark.
func (m *MemStore) Add(b Bookmark) {
	m.bms[b.ID] = b
}

// SetContent attaches cached page content to a bookmark ID.
func (m *MemStore) SetContent(id int64, content string) {
	m.content[id] = content
}

// All returns every bookmark ordered by ID.
func (m *MemStore) All(ctx context.Context) ([]Bookmark, error) {
	ids := make([]int64, 0, len(m.bms))
	for id := range m.bms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	bms := make([]Bookmark, 0, len(ids))
	for _, id := range ids {
		bms = append(bms, m.bms[id])
	}
	return bms, nil
}

// Get returns a bookmark by ID or errors.ErrNotFound.
func (m *MemStore) Get(ctx context.Context, id int64) (*Bookmark, error) {
	b, ok := m.bms[id]
	if !ok {
		return nil, errors.NewNotFoundError("bookmark %d", id)
	}
	return &b, nil
}

// CachedContent returns the cached content for a bookmark, or "".
func (m *MemStore) CachedContent(ctx context.Context, id int64) (string, error) {
	return m.content[id], nil
}
