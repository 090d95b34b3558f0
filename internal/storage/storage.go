// Package storage provides durable per-key storage for the storefront state.
package storage

import "errors"

// ErrKeyNotFound is returned when no value has been saved under the given key.
var ErrKeyNotFound = errors.New("key not found")

// Storage is an interface for durable key/value persistence.
// It abstracts the underlying medium, allowing for different implementations (e.g., in-memory, filesystem).
type Storage interface {
	// Load retrieves the raw value saved under key.
	// Returns ErrKeyNotFound if nothing has been saved under the key.
	Load(key string) ([]byte, error)

	// Save durably writes value under key, replacing any previous value.
	Save(key string, value []byte) error
}
