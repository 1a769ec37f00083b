package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/qiwen/planner-mcp/internal/repository"
)

// KVStore implements repository.KV on the kv_store table.
type KVStore struct {
	db *DB
}

// NewKVStore creates a new KVStore
func NewKVStore(db *DB) *KVStore {
	return &KVStore{db: db}
}

// Get retrieves the value stored under key
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, nil
}

// Set writes value under key, replacing any previous value
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting a missing key is a no-op
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
