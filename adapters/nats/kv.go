package nats

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/codewandler/lru-go/ports/kv"
)

type KvConfig struct {
	Connect Connector
	Bucket  string
	// MaxBytes caps the bucket size. Defaults to 1 MiB.
	MaxBytes int64
}

// KvStore is a kv.Store backed by a JetStream key/value bucket.
type KvStore struct {
	kv    jetstream.KeyValue
	close closeFunc
}

func NewKvStore(ctx context.Context, cfg KvConfig) (*KvStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket is required")
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 1024 * 1024
	}

	doConnect := cfg.Connect
	if doConnect == nil {
		doConnect = ConnectDefault()
	}

	nc, closeConn, err := doConnect()
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		closeConn()
		return nil, err
	}

	bucket, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:   cfg.Bucket,
		Storage:  jetstream.FileStorage,
		MaxBytes: cfg.MaxBytes,
	})
	if err != nil {
		closeConn()
		return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
	}

	return &KvStore{kv: bucket, close: closeConn}, nil
}

func (k *KvStore) Put(ctx context.Context, key string, entry kv.Entry) error {
	if _, err := k.kv.Put(ctx, key, entry.Data); err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

func (k *KvStore) Get(ctx context.Context, key string) (kv.Entry, error) {
	v, err := k.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return kv.Entry{}, kv.ErrNotFound
		}
		return kv.Entry{}, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return kv.Entry{Data: v.Value()}, nil
}

func (k *KvStore) Delete(ctx context.Context, key string) error {
	if err := k.kv.Delete(ctx, key); err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection lease.
func (k *KvStore) Close() {
	k.close()
}

var _ kv.Store = (*KvStore)(nil)
