package bookmarks

import (
	"context"
	"database/sql"
	"sort"

	"go.uber.org/zap"

	"github.com/queelius/btk-graph/errors"
)

// Query constants
const (
	bookmarkSelectAllQuery = `
		SELECT id, url, title, starred FROM bookmarks ORDER BY id`

	bookmarkSelectQuery = `
		SELECT id, url, title, starred FROM bookmarks WHERE id = ?`

	bookmarkTagsAllQuery = `
		SELECT bookmark_id, tag FROM bookmark_tags`

	bookmarkTagsQuery = `
		SELECT tag FROM bookmark_tags WHERE bookmark_id = ? ORDER BY tag`

	bookmarkInsertQuery = `
		INSERT INTO bookmarks (id, url, title, starred) VALUES (?, ?, ?, ?)`

	bookmarkTagInsertQuery = `
		INSERT OR IGNORE INTO bookmark_tags (bookmark_id, tag) VALUES (?, ?)`

	contentSelectQuery = `
		SELECT content FROM bookmark_content WHERE bookmark_id = ?`

	contentUpsertQuery = `
		INSERT INTO bookmark_content (bookmark_id, content) VALUES (?, ?)
		ON CONFLICT(bookmark_id) DO UPDATE SET content = excluded.content,
			fetched_at = CURRENT_TIMESTAMP`
)

// SQLStore implements the Store interface over the migrated SQLite
// schema. It is the thin feeding layer for the graph engine, not a full
// CRUD surface.
type SQLStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewSQLStore creates a new SQL-based bookmark store
func NewSQLStore(db *sql.DB, logger *zap.SugaredLogger) *SQLStore {
	return &SQLStore{
		db:     db,
		logger: logger,
	}
}

// All returns every bookmark ordered by ID, with tags attached.
func (s *SQLStore) All(ctx context.Context) ([]Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, bookmarkSelectAllQuery)
	if err != nil {
		return nil, errors.Wrap(err, "query bookmarks")
	}
	defer rows.Close()

	var bms []Bookmark
	index := make(map[int64]int)
	for rows.Next() {
		var b Bookmark
		var starred int
		if err := rows.Scan(&b.ID, &b.URL, &b.Title, &starred); err != nil {
			return nil, errors.Wrap(err, "scan bookmark")
		}
		b.Starred = starred != 0
		index[b.ID] = len(bms)
		bms = append(bms, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate bookmarks")
	}

	// Attach tags in one pass rather than one query per bookmark
	tagRows, err := s.db.QueryContext(ctx, bookmarkTagsAllQuery)
	if err != nil {
		return nil, errors.Wrap(err, "query bookmark tags")
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var id int64
		var tag string
		if err := tagRows.Scan(&id, &tag); err != nil {
			return nil, errors.Wrap(err, "scan bookmark tag")
		}
		if i, ok := index[id]; ok {
			bms[i].Tags = append(bms[i].Tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate bookmark tags")
	}

	for i := range bms {
		sort.Strings(bms[i].Tags)
	}

	return bms, nil
}

// Get returns a single bookmark by ID with tags attached,
// or errors.ErrNotFound when it does not exist.
func (s *SQLStore) Get(ctx context.Context, id int64) (*Bookmark, error) {
	var b Bookmark
	var starred int
	err := s.db.QueryRowContext(ctx, bookmarkSelectQuery, id).Scan(&b.ID, &b.URL, &b.Title, &starred)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("bookmark %d", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "query bookmark %d", id)
	}
	b.Starred = starred != 0

	rows, err := s.db.QueryContext(ctx, bookmarkTagsQuery, id)
	if err != nil {
		return nil, errors.Wrapf(err, "query tags for bookmark %d", id)
	}
	defer rows.Close()

	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, errors.Wrap(err, "scan tag")
		}
		b.Tags = append(b.Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate tags")
	}

	return &b, nil
}

// CachedContent returns the cached page content for a bookmark.
// Missing content is not an error: the engine treats it as "no outbound links".
func (s *SQLStore) CachedContent(ctx context.Context, id int64) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx, contentSelectQuery, id).Scan(&content)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "query content for bookmark %d", id)
	}
	return content, nil
}

// Put inserts a bookmark and its tags. Used by tests and the CLI seed path.
func (s *SQLStore) Put(ctx context.Context, b Bookmark) error {
	starred := 0
	if b.Starred {
		starred = 1
	}
	if _, err := s.db.ExecContext(ctx, bookmarkInsertQuery, b.ID, b.URL, b.Title, starred); err != nil {
		return errors.Wrapf(err, "insert bookmark %d", b.ID)
	}
	for _, tag := range b.Tags {
		if _, err := s.db.ExecContext(ctx, bookmarkTagInsertQuery, b.ID, tag); err != nil {
			return errors.Wrapf(err, "insert tag %q for bookmark %d", tag, b.ID)
		}
	}
	return nil
}

// SetContent stores cached page content for a bookmark, replacing any
// previous content.
func (s *SQLStore) SetContent(ctx context.Context, id int64, content string) error {
	if _, err := s.db.ExecContext(ctx, contentUpsertQuery, id, content); err != nil {
		return errors.Wrapf(err, "set content for bookmark %d", id)
	}
	return nil
}
