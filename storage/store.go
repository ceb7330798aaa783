// Package storage defines the key/value store the editor persists documents
// to. Adapters live in the memory and sqlite subpackages.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// Store is a string key/value store.
type Store interface {
	// Get returns the value under key. The boolean is false when the key
	// is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases the store. Further calls return ErrClosed.
	Close() error
}
