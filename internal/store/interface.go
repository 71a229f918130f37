package store

// KeyedStore is the process-wide persistent key-value area. It is injected
// into every component so tests can substitute the in-memory implementation.
//
// The contract is deliberately error-free: a store failure must never crash a
// flow. Put is a no-op when the medium is unavailable, Get reports absent for
// missing, unavailable, or corrupted values, and Remove ignores missing keys.
// Failures are logged inside the implementation.
type KeyedStore interface {
	// Put serializes value as JSON and persists it under key.
	Put(key string, value any)

	// Get deserializes the value stored under key into dest and reports
	// whether a usable value was found.
	Get(key string, dest any) bool

	// Remove deletes the entry under key.
	Remove(key string)

	Close() error
}
