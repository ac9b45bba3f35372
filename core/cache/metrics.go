package cache

import "github.com/codewandler/lru-go/core/metrics"

// Metrics defines the metrics interface for caches. The name argument is the
// cache name from LRUOpts.Name. Implementations must be thread-safe.
//
// Entries is called while the cache lock is held and must not call back
// into the cache.
type Metrics interface {
	// Lookups
	Hit(name string)
	Miss(name string)

	// Capacity
	Eviction(name string)
	Entries(name string, n int)

	// Loader
	LoadDuration(name string) metrics.Timer
	Load(name string, success bool)
}

// nopMetrics is a no-op implementation of Metrics.
type nopMetrics struct{}

func (nopMetrics) Hit(string)  {}
func (nopMetrics) Miss(string) {}

func (nopMetrics) Eviction(string)     {}
func (nopMetrics) Entries(string, int) {}

func (nopMetrics) LoadDuration(string) metrics.Timer { return metrics.NopTimer() }
func (nopMetrics) Load(string, bool)                 {}

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
