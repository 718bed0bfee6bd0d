// Package storage keeps parsed uploads and their normalized games in a
// local SQLite file, so every command can re-aggregate the full history
// without touching the original exports again.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// DB is a handle to the history database.
type DB struct {
	conn *sql.DB
}

// Open connects to the SQLite file at path, creating it if needed, and
// makes sure the schema exists. WAL keeps concurrent reads cheap.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", "file:"+path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close releases the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
