package prometheus

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewandler/lru-go/core/cache"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()

	mfs, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]float64)
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				out[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[mf.GetName()] += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				out[mf.GetName()] += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return out
}

func TestNewCacheMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCacheMetrics(reg)

	require.NotNil(t, m)

	m.Hit("users")
	m.Miss("users")
	m.Eviction("users")
	m.Entries("users", 3)

	timer := m.LoadDuration("users")
	assert.NotNil(t, timer)
	timer.ObserveDuration()

	m.Load("users", true)
	m.Load("users", false)

	got := gather(t, reg)
	assert.Equal(t, 1.0, got["lru_cache_hits_total"])
	assert.Equal(t, 1.0, got["lru_cache_misses_total"])
	assert.Equal(t, 1.0, got["lru_cache_evictions_total"])
	assert.Equal(t, 3.0, got["lru_cache_entries"])
	assert.Equal(t, 1.0, got["lru_cache_load_duration_seconds"])
	assert.Equal(t, 2.0, got["lru_cache_loads_total"])
}

func TestCacheMetrics_WiredIntoLRU(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCacheMetrics(reg)

	l := cache.MustNewLRU(cache.LRUOpts[int, string]{Capacity: 2, Name: "demo", Metrics: m})
	l.Put(1, "one")
	l.Put(2, "two")
	l.Get(1)
	l.Get(3)
	l.Put(3, "three")

	loader := cache.NewLoader[string](cache.NewNop[string, string](), func(context.Context, string) (string, error) {
		return "x", nil
	}, cache.LoaderOpts{Name: "demo", Metrics: m})
	_, err := loader.Get(t.Context(), "k")
	require.NoError(t, err)

	got := gather(t, reg)
	assert.Equal(t, 1.0, got["lru_cache_hits_total"])
	assert.Equal(t, 1.0, got["lru_cache_misses_total"])
	assert.Equal(t, 1.0, got["lru_cache_evictions_total"])
	assert.Equal(t, 2.0, got["lru_cache_entries"])
	assert.Equal(t, 1.0, got["lru_cache_loads_total"])
}

func TestNewCacheMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCacheMetrics(reg)
	assert.Panics(t, func() { NewCacheMetrics(reg) })
}

func TestBoolToStr(t *testing.T) {
	assert.Equal(t, "true", boolToStr(true))
	assert.Equal(t, "false", boolToStr(false))
}
