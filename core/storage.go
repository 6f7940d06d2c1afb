package core

// StorageProvider is a flat key-value store holding serialized values under string keys.
// Reads are full-value snapshots and writes replace the previous value (last write wins).
type StorageProvider interface {
	// Get returns the value stored under key. found is false when the key was never set.
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	// Delete forgets key; deleting a missing key is not an error.
	Delete(key string) error
}
