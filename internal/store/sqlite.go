// Package store persists finished navigation graphs: a SQLite snapshot for
// tooling that wants queryable output, and CSV files for the flat format the
// downstream consumers read.
package store

import (
	"database/sql"
	"fmt"

	"github.com/agentic-research/pathgraph/api"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS paths (
	idx INTEGER PRIMARY KEY,
	path TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS connections (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	src INTEGER NOT NULL,
	dst INTEGER NOT NULL,
	hits INTEGER NOT NULL
);
`

// Save writes a graph snapshot to a SQLite file, replacing any previous
// snapshot. Path order, connection order and duplicate connections are
// preserved exactly; a Load of the written file reproduces the graph.
func Save(dbPath string, g *api.Graph) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer db.Close()

	// Bulk-insert tuning; the file is rewritten whole, so durability of
	// intermediate states does not matter.
	if _, err := db.Exec("PRAGMA synchronous = OFF"); err != nil {
		return fmt.Errorf("set synchronous: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := db.Exec("DELETE FROM connections"); err != nil {
		return fmt.Errorf("clear previous connections: %w", err)
	}
	if _, err := db.Exec("DELETE FROM paths"); err != nil {
		return fmt.Errorf("clear previous paths: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmtPath, err := tx.Prepare("INSERT INTO paths (idx, path) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare paths insert: %w", err)
	}
	defer stmtPath.Close()
	for i, p := range g.Paths {
		if _, err := stmtPath.Exec(i, p); err != nil {
			return fmt.Errorf("insert path %d: %w", i, err)
		}
	}

	stmtConn, err := tx.Prepare("INSERT INTO connections (src, dst, hits) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare connections insert: %w", err)
	}
	defer stmtConn.Close()
	for i, c := range g.Connections {
		if _, err := stmtConn.Exec(c.From, c.To, c.Count); err != nil {
			return fmt.Errorf("insert connection %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load reads a snapshot written by Save.
func Load(dbPath string) (*api.Graph, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer db.Close()

	g := &api.Graph{}

	rows, err := db.Query("SELECT path FROM paths ORDER BY idx")
	if err != nil {
		return nil, fmt.Errorf("query paths: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan path: %w", err)
		}
		g.Paths = append(g.Paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate paths: %w", err)
	}

	conns, err := db.Query("SELECT src, dst, hits FROM connections ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("query connections: %w", err)
	}
	defer conns.Close()
	for conns.Next() {
		var c api.Connection
		if err := conns.Scan(&c.From, &c.To, &c.Count); err != nil {
			return nil, fmt.Errorf("scan connection: %w", err)
		}
		g.Connections = append(g.Connections, c)
	}
	if err := conns.Err(); err != nil {
		return nil, fmt.Errorf("iterate connections: %w", err)
	}

	return g, nil
}
