// Package kv abstracts the durable key-value substrate the custom product
// store persists into. One logical key holds the entire serialized custom
// product sequence; drivers exist for a local file, Redis and a SQL
// database, plus an in-memory implementation for tests.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("kv: key not found")

// Store is the durable blob store consumed by the custom product store.
// Save must be atomic: a failed save leaves the previously stored blob
// intact.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}
