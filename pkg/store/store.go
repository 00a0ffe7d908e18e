// Package store persists the note between editor sessions.
//
// The store is a small key-value interface with a file-backed
// implementation for the CLI and a null implementation for when saving is
// disabled. The editor keeps its note under [NoteKey].
package store

import "context"

// NoteKey is the key the editor saves its note under.
const NoteKey = "chaoticNote"

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close() error
}
