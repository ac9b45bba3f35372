// Package prometheus provides a Prometheus implementation of the cache
// metrics interface.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/lru-go/core/cache"
	"github.com/codewandler/lru-go/core/metrics"
)

// timer wraps a Prometheus histogram to implement the Timer interface.
type timer struct {
	h     prometheus.Observer
	start time.Time
}

func newTimer(h prometheus.Observer) metrics.Timer {
	return &timer{h: h, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

// Default histogram buckets for latency metrics (in seconds).
var defaultBuckets = []float64{
	.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10,
}

// cacheMetrics implements cache.Metrics using Prometheus.
type cacheMetrics struct {
	hits      *prometheus.CounterVec
	misses    *prometheus.CounterVec
	evictions *prometheus.CounterVec
	entries   *prometheus.GaugeVec

	loadDuration *prometheus.HistogramVec
	loads        *prometheus.CounterVec
}

// NewCacheMetrics creates a new Prometheus implementation of cache.Metrics.
// All series carry a "cache" label with the cache name.
func NewCacheMetrics(reg prometheus.Registerer) cache.Metrics {
	m := &cacheMetrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lru_cache_hits_total",
			Help: "Total number of cache hits",
		}, []string{"cache"}),

		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lru_cache_misses_total",
			Help: "Total number of cache misses",
		}, []string{"cache"}),

		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lru_cache_evictions_total",
			Help: "Total number of entries evicted because the cache was full",
		}, []string{"cache"}),

		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lru_cache_entries",
			Help: "Current number of cached entries",
		}, []string{"cache"}),

		loadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lru_cache_load_duration_seconds",
			Help:    "Read-through load latency in seconds",
			Buckets: defaultBuckets,
		}, []string{"cache"}),

		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lru_cache_loads_total",
			Help: "Total number of read-through loads",
		}, []string{"cache", "success"}),
	}

	reg.MustRegister(
		m.hits,
		m.misses,
		m.evictions,
		m.entries,
		m.loadDuration,
		m.loads,
	)

	return m
}

func (m *cacheMetrics) Hit(name string) {
	m.hits.WithLabelValues(name).Inc()
}

func (m *cacheMetrics) Miss(name string) {
	m.misses.WithLabelValues(name).Inc()
}

func (m *cacheMetrics) Eviction(name string) {
	m.evictions.WithLabelValues(name).Inc()
}

func (m *cacheMetrics) Entries(name string, n int) {
	m.entries.WithLabelValues(name).Set(float64(n))
}

func (m *cacheMetrics) LoadDuration(name string) metrics.Timer {
	return newTimer(m.loadDuration.WithLabelValues(name))
}

func (m *cacheMetrics) Load(name string, success bool) {
	m.loads.WithLabelValues(name, boolToStr(success)).Inc()
}

func boolToStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

var _ cache.Metrics = (*cacheMetrics)(nil)
