package nats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codewandler/lru-go/core/cache"
	"github.com/codewandler/lru-go/ports/kv"
)

func TestKV(t *testing.T) {
	type fooBar struct {
		Fruit string
		Count int
	}
	connectNats := NewTestContainer(t)
	store, err := NewKvStore(t.Context(), KvConfig{
		Bucket:  "fruits",
		Connect: connectNats,
	})
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, kv.Put(t.Context(), store, "apple", fooBar{Fruit: "apple", Count: 10}))

	v, err := kv.Get[fooBar](t.Context(), store, "apple")
	require.NoError(t, err)
	require.Equal(t, fooBar{Fruit: "apple", Count: 10}, v)

	require.NoError(t, store.Delete(t.Context(), "apple"))
	_, err = kv.Get[fooBar](t.Context(), store, "apple")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestKV_ReadThroughCache(t *testing.T) {
	connectNats := NewTestContainer(t)
	store, err := NewKvStore(t.Context(), KvConfig{
		Bucket:  "users",
		Connect: connectNats,
	})
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, kv.Put(t.Context(), store, "u1", "alice"))

	lru := cache.MustNewLRU(cache.LRUOpts[string, string]{Capacity: 8})
	users := cache.NewLoader[string](lru, kv.Loader[string](store), cache.LoaderOpts{Name: "users"})

	v, err := users.Get(t.Context(), "u1")
	require.NoError(t, err)
	require.Equal(t, "alice", v)

	// served from the cache even after the bucket entry is gone
	require.NoError(t, store.Delete(t.Context(), "u1"))
	v, err = users.Get(t.Context(), "u1")
	require.NoError(t, err)
	require.Equal(t, "alice", v)

	users.Invalidate("u1")
	_, err = users.Get(t.Context(), "u1")
	require.ErrorIs(t, err, kv.ErrNotFound)
}
