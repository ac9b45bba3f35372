// Package sf provides a generic single-flight mechanism for deduplicating
// concurrent function calls with the same key.
//
// Single-flight ensures that only one execution of a function is in-flight
// for a given key at a time. If multiple goroutines call [Singleflight.Do]
// with the same key concurrently, only the first call executes the function;
// subsequent callers block until the first call completes and then receive
// the same result.
//
// The cache [Loader] uses it so that a burst of misses for one key triggers
// a single load.
//
// # Usage
//
//	flight := sf.New[*User]()
//
//	user, _, err := flight.Do("user:123", func() (*User, error) {
//	    return db.GetUser(ctx, "123")
//	})
//
// [Loader]: github.com/codewandler/lru-go/core/cache.Loader
package sf
