// Package kv defines the key/value store port a read-through cache can sit
// in front of, plus an in-memory implementation.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
)

type Entry struct {
	Data []byte
}

type Store interface {
	Put(ctx context.Context, key string, entry Entry) error
	Get(ctx context.Context, key string) (entry Entry, err error)
	Delete(ctx context.Context, key string) error
}

func Put[T any](ctx context.Context, store Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Put(ctx, key, Entry{Data: data})
}

func Get[T any](ctx context.Context, store Store, key string) (out T, err error) {
	entry, err := store.Get(ctx, key)
	if err != nil {
		return
	}
	err = json.Unmarshal(entry.Data, &out)
	if err != nil {
		return out, fmt.Errorf("decode %q: %w", key, err)
	}
	return
}

// Loader returns a function that reads JSON-encoded values of type T from
// store. Its signature matches cache.LoadFunc.
func Loader[T any](store Store) func(ctx context.Context, key string) (T, error) {
	return func(ctx context.Context, key string) (T, error) {
		return Get[T](ctx, store, key)
	}
}
