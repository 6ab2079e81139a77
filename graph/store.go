package graph

import (
	"context"

	"github.com/queelius/btk-graph/errors"
	"github.com/queelius/btk-graph/sym"
)

// Query constants
const (
	graphCreateTableQuery = `
		CREATE TABLE IF NOT EXISTS bookmark_graph (
			bookmark1_id INTEGER NOT NULL,
			bookmark2_id INTEGER NOT NULL,
			weight REAL NOT NULL,
			domain_component REAL NOT NULL,
			tag_component REAL NOT NULL,
			direct_link_component REAL NOT NULL,
			indirect_link_component REAL NOT NULL,
			PRIMARY KEY (bookmark1_id, bookmark2_id)
		)`

	graphDeleteAllQuery = `DELETE FROM bookmark_graph`

	graphInsertQuery = `
		INSERT INTO bookmark_graph (
			bookmark1_id, bookmark2_id, weight,
			domain_component, tag_component,
			direct_link_component, indirect_link_component
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	graphSelectAllQuery = `
		SELECT bookmark1_id, bookmark2_id, weight,
			domain_component, tag_component,
			direct_link_component, indirect_link_component
		FROM bookmark_graph`

	graphTableExistsQuery = `
		SELECT EXISTS(
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name = 'bookmark_graph'
		)`
)

// Save fully replaces the persisted edge set with the current in-memory
// one inside a single transaction. The bookmark_graph table is created on
// first save; Load relies on its absence to signal that no build has ever
// been saved.
func (g *Graph) Save(ctx context.Context) error {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin save transaction")
	}

	if _, err := tx.Exec(graphCreateTableQuery); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "create bookmark_graph table")
	}
	if _, err := tx.Exec(graphDeleteAllQuery); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "clear persisted edges")
	}

	stmt, err := tx.Prepare(graphInsertQuery)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "prepare edge insert")
	}
	defer stmt.Close()

	for pair, e := range g.edges {
		_, err := stmt.Exec(
			pair.A, pair.B, e.Weight,
			e.Components.Domain, e.Components.Tag,
			e.Components.DirectLink, e.Components.IndirectLink,
		)
		if err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "insert edge (%d, %d)", pair.A, pair.B)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit save transaction")
	}

	g.logger.Infow("Graph saved",
		"symbol", sym.DB,
		"edges", len(g.edges),
	)
	return nil
}

// Load replaces the in-memory edge set with the persisted one. Loading
// before any build has ever been saved returns ErrNotBuilt — this is a
// user-facing signal, not silently an empty graph. An existing but empty
// table loads an empty edge set.
func (g *Graph) Load(ctx context.Context) error {
	var exists bool
	if err := g.db.QueryRowContext(ctx, graphTableExistsQuery).Scan(&exists); err != nil {
		return errors.Wrap(err, "check bookmark_graph table")
	}
	if !exists {
		return errors.WithHint(
			errors.Wrap(errors.ErrNotBuilt, "no persisted graph"),
			"run 'btk-graph build' first",
		)
	}

	rows, err := g.db.QueryContext(ctx, graphSelectAllQuery)
	if err != nil {
		return errors.Wrap(err, "query persisted edges")
	}
	defer rows.Close()

	edges := make(map[Pair]Edge)
	for rows.Next() {
		var e Edge
		err := rows.Scan(
			&e.Pair.A, &e.Pair.B, &e.Weight,
			&e.Components.Domain, &e.Components.Tag,
			&e.Components.DirectLink, &e.Components.IndirectLink,
		)
		if err != nil {
			return errors.Wrap(err, "scan edge")
		}
		// Persisted rows already hold the canonical ordering, but
		// normalize anyway so a hand-edited table cannot poison the map
		e.Pair = NewPair(e.Pair.A, e.Pair.B)
		edges[e.Pair] = e
	}
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "iterate persisted edges")
	}

	g.edges = edges
	g.logger.Infow("Graph loaded",
		"symbol", sym.DB,
		"edges", len(g.edges),
	)
	return nil
}
