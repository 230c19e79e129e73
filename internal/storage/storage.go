// Package storage provides the small key-value persistence layer that backs
// client-side state: the auth token, the cached profile, and the cart blob.
// Values are opaque byte slices; callers own their encoding.
package storage

// Store is a minimal key-value store for persisted client state.
// A missing key is not an error: Get reports ok=false.
type Store interface {
	// Get returns the value stored under key, if any.
	Get(key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	// The write is synchronous: when Set returns, the value is persisted.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error
}
