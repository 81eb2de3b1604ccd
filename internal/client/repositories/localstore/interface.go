// Package localstore is the client's durable key/value slot, the terminal
// counterpart of a browser's localStorage. Values survive restarts; at most
// one value lives under a key at a time.
package localstore

import "context"

type Repository interface {
	// Get returns the value under key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error
}
