// Package cache provides a bounded, concurrency-safe LRU cache.
//
// The package defines:
//
//   - [Cache]: the Get/Put/Delete port
//   - [LRU]: fixed-capacity least-recently-used cache
//   - [Nop]: a cache that never stores anything
//   - [Loader]: a read-through front that fills misses from a [LoadFunc]
//
// # LRU
//
// [LRU] keeps a map for lookup and a doubly linked list for recency, both
// guarded by a single mutex, so every operation sees and leaves both
// structures in agreement. Promotion and eviction are O(1).
//
//	users, err := cache.New[string, *User](1000)
//	if err != nil {
//	    return err
//	}
//
//	users.Put("user:123", user)
//	if u, ok := users.Get("user:123"); ok {
//	    // u is now the most recently used entry
//	}
//
// Get is not read-only: a hit promotes the key, which changes what gets
// evicted next. Use [LRU.Peek] or [LRU.Contains] to look without promoting.
//
// A capacity <= 0 is rejected with [ErrInvalidCapacity]; use [NewNop] for a
// cache that retains nothing.
//
// # Read-through
//
//	loader := cache.NewLoader[*User](users, loadUser, cache.LoaderOpts{Name: "users"})
//	u, err := loader.Get(ctx, "user:123")
//
// Concurrent misses for the same key share one call to the load function.
package cache
