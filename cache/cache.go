package cache

import "fmt"

var ErrNegativeCapacity = fmt.Errorf("capacity cannot be negative")

// DefaultCapacity is a reasonable bound for callers that do not
// care to size the cache themselves.
const DefaultCapacity = 3

// Options configures a cache at construction time. Capacity is the
// maximum number of resident entries and is fixed for the lifetime
// of the cache. A capacity of 0 is legal and yields a cache that
// never retains anything.
type Options struct {
	Capacity int
}

// Cache is a fixed-capacity key value store with least recently used
// eviction. Values are stored by reference, the cache never copies
// them, so mutating a stored pointer or slice from outside is visible
// through the cache.
//
// The cache does no internal locking. Callers sharing one instance
// across goroutines must serialize access themselves.
type Cache[K comparable, V any] interface {
	// Put inserts key or overwrites its value. Overwriting an existing
	// key never evicts, only a genuinely new key at full capacity does.
	Put(key K, value V)
	// Get returns the value for key and marks it most recently used.
	// A miss returns the zero value, false and leaves the cache untouched.
	Get(key K) (V, bool)
	// Update behaves like Put for a missing key. For a resident key it
	// replaces the value and marks it most recently used.
	Update(key K, value V)
	// Delete removes key if resident and reports whether it was.
	Delete(key K) bool
	// Contains reports presence without counting as a use.
	Contains(key K) bool
	// Keys returns resident keys ordered from least to most recently used.
	Keys() []K
	// Range walks entries from least to most recently used until
	// onEach returns false. Iteration does not count as a use.
	Range(onEach func(K, V) bool)
	// Purge drops every resident entry.
	Purge()
	Size() int
	Capacity() int
	Stats() Stats
}
