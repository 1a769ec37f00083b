package repository

import "context"

// KV is the durable key-value storage the persistence gateway writes through.
// Values are opaque strings; the gateway owns their encoding.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
