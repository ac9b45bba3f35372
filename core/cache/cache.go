package cache

import "errors"

var (
	ErrInvalidCapacity = errors.New("cache capacity must be positive")
)

// Cache is the port implemented by every cache in this package.
//
// Get may mutate internal state (an LRU promotes the key it returns), so
// implementations must be safe for concurrent use even for read-only callers.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, val V)
	Delete(key K) bool
}
