package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codewandler/lru-go/core/sf"
)

// LoadFunc fetches the value for key from the source of truth.
type LoadFunc[V any] func(ctx context.Context, key string) (V, error)

type LoaderOpts struct {
	Name    string
	Log     *slog.Logger
	Metrics Metrics
}

// Loader is a read-through front for a Cache. Misses are filled by calling
// the LoadFunc, with concurrent misses for the same key sharing one load.
type Loader[V any] struct {
	cache   Cache[string, V]
	load    LoadFunc[V]
	flight  *sf.Singleflight[V]
	name    string
	log     *slog.Logger
	metrics Metrics
}

func NewLoader[V any](c Cache[string, V], load LoadFunc[V], opts LoaderOpts) *Loader[V] {
	if opts.Name == "" {
		opts.Name = "default"
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	if opts.Metrics == nil {
		opts.Metrics = NopMetrics()
	}
	return &Loader[V]{
		cache:   c,
		load:    load,
		flight:  sf.New[V](),
		name:    opts.Name,
		log:     opts.Log.With(slog.String("cache", opts.Name)),
		metrics: opts.Metrics,
	}
}

// Get returns the cached value for key, loading and caching it on a miss.
// Failed loads are not cached. Callers joining an in-flight load share the
// context of the caller that started it.
func (l *Loader[V]) Get(ctx context.Context, key string) (V, error) {
	if v, ok := l.cache.Get(key); ok {
		return v, nil
	}

	v, shared, err := l.flight.Do(key, func() (V, error) {
		timer := l.metrics.LoadDuration(l.name)
		v, err := l.load(ctx, key)
		timer.ObserveDuration()
		l.metrics.Load(l.name, err == nil)
		if err != nil {
			return v, err
		}
		l.cache.Put(key, v)
		return v, nil
	})
	if err != nil {
		l.log.Warn("load failed", slog.String("key", key), slog.Any("error", err))
		return v, fmt.Errorf("load %q: %w", key, err)
	}
	if shared {
		l.log.Debug("load shared", slog.String("key", key))
	}
	return v, nil
}

// Invalidate drops key so the next Get loads it again.
func (l *Loader[V]) Invalidate(key string) bool {
	return l.cache.Delete(key)
}
