// Command lrudemo exercises one LRU cache from several concurrent workers and
// prints what each worker saw, followed by the final cache contents.
//
// Run with: go run ./cmd/lrudemo --workers 3 --ops 5
//
// Every flag can also be set through its LRU_* environment variable. With
// --metrics-addr set, Prometheus metrics are served at /metrics while the
// demo runs.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

func newApp(out io.Writer, logOut io.Writer) *cli.App {
	return &cli.App{
		Name:  "lrudemo",
		Usage: "run concurrent workers against a shared LRU cache",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "capacity",
				Value:   3,
				Usage:   "maximum number of cache entries",
				EnvVars: []string{"LRU_CAPACITY"},
			},
			&cli.IntFlag{
				Name:    "workers",
				Value:   3,
				Usage:   "number of concurrent workers",
				EnvVars: []string{"LRU_WORKERS"},
			},
			&cli.IntFlag{
				Name:    "ops",
				Value:   5,
				Usage:   "inserts (and reads) per worker",
				EnvVars: []string{"LRU_OPS"},
			},
			&cli.IntFlag{
				Name:    "keys",
				Value:   5,
				Usage:   "size of the key space workers draw from",
				EnvVars: []string{"LRU_KEYS"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"LRU_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "metrics-addr",
				Usage:   "serve Prometheus metrics on this address, e.g. :2121",
				EnvVars: []string{"LRU_METRICS_ADDR"},
			},
		},
		Action: func(c *cli.Context) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

			return run(c.Context, log, out, config{
				Capacity:    c.Int("capacity"),
				Workers:     c.Int("workers"),
				Ops:         c.Int("ops"),
				Keys:        c.Int("keys"),
				MetricsAddr: c.String("metrics-addr"),
			})
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
