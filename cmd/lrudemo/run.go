package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	promadapter "github.com/codewandler/lru-go/adapters/prometheus"
	"github.com/codewandler/lru-go/core/cache"
)

type config struct {
	Capacity    int
	Workers     int
	Ops         int
	Keys        int
	MetricsAddr string
}

var seed = []struct {
	key int
	val string
}{
	{1, "one"},
	{2, "two"},
	{3, "three"},
}

// printer serializes output lines from concurrent workers.
type printer struct {
	mu  sync.Mutex
	out io.Writer
}

func (p *printer) Printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func run(ctx context.Context, log *slog.Logger, out io.Writer, cfg config) error {
	if cfg.Workers <= 0 || cfg.Ops < 0 || cfg.Keys <= 0 {
		return errors.New("workers and keys must be positive, ops must not be negative")
	}

	log = log.With(slog.String("run", gonanoid.Must(6)))

	var (
		metrics   = cache.NopMetrics()
		evictions atomic.Int64
	)

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics = promadapter.NewCacheMetrics(reg)
		stopMetrics := serveMetrics(log, cfg.MetricsAddr, reg)
		defer stopMetrics()
	}

	lru, err := cache.NewLRU(cache.LRUOpts[int, string]{
		Capacity: cfg.Capacity,
		Name:     "demo",
		Log:      log,
		Metrics:  metrics,
		OnEvict: func(int, string) {
			evictions.Add(1)
		},
	})
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}

	log.Info("starting", slog.Any("config", cfg))

	for _, s := range seed {
		lru.Put(s.key, s.val)
	}

	p := &printer{out: out}
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Workers; i++ {
		g.Go(func() error {
			return work(gctx, lru, p, i, cfg)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p.Printf("")
	p.Printf("Final cache contents:")
	for key := 1; key <= cfg.Keys; key++ {
		if v, ok := lru.Peek(key); ok {
			p.Printf("  %d => %s", key, v)
		} else {
			p.Printf("  %d => <evicted>", key)
		}
	}

	log.Info("done", slog.Int("entries", lru.Len()), slog.Int64("evictions", evictions.Load()))
	return nil
}

func work(ctx context.Context, lru *cache.LRU[int, string], p *printer, worker int, cfg config) error {
	for j := 0; j < cfg.Ops; j++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		key := (worker + j) % cfg.Keys
		lru.Put(key, fmt.Sprintf("value-%d", key))
		p.Printf("worker %d inserted key %d", worker, key)
	}

	for j := 0; j < cfg.Ops; j++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		key := (worker + j) % cfg.Keys
		if v, ok := lru.Get(key); ok {
			p.Printf("worker %d read key %d -> %s", worker, key, v)
		} else {
			p.Printf("worker %d read key %d -> <miss>", worker, key)
		}
	}
	return nil
}

func serveMetrics(log *slog.Logger, addr string, reg *prometheus.Registry) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("serving metrics", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", slog.Any("error", err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
