// Package db provides the SQLite store holding persisted vibration
// sample rows. The ingest daemon is the only writer; the dashboard
// reads the samples table independently, so the schema is a durable
// contract managed by versioned migrations.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite handle for the samples store.
type DB struct {
	*sql.DB
}

// Open opens (creating if needed) the database at path, verifies the
// connection, and applies any pending schema migrations.
func Open(path string) (*DB, error) {
	sdb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := sdb.Ping(); err != nil {
		sdb.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	db := &DB{sdb}
	if err := db.migrateUp(); err != nil {
		sdb.Close()
		return nil, err
	}
	return db, nil
}
