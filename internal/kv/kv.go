// Package kv defines the textual key-value contract every persistence
// backend implements. Values are opaque text; parsing and validation happen
// in the tracker on every read.
package kv

import "context"

// Store is the persistence port. Each Set is atomic for its single key;
// there is no multi-key atomicity and no locking beyond what the backend
// gives for free. The tracker is the only writer.
type Store interface {
	// Get returns the raw value for key, reporting absence via ok.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes the raw value for key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
