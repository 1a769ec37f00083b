package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/qiwen/planner-mcp/migrations"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection serializes writes and keeps :memory: databases
	// coherent across the pool.
	db.SetMaxOpenConns(1)

	// WAL keeps the synchronous flush-per-mutation pattern cheap.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations applies the embedded schema. Idempotent.
func (db *DB) RunMigrations() error {
	data, err := migrations.FS.ReadFile("001_initial_schema.up.sql")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	if _, err := db.Exec(string(data)); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
