package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNop(t *testing.T) {
	n := NewNop[string, string]()
	n.Put("key", "val")
	val, ok := n.Get("key")
	require.False(t, ok)
	require.Empty(t, val)
}

func TestNop_Delete(t *testing.T) {
	n := NewNop[int, *int]()
	n.Put(1, new(int))
	require.False(t, n.Delete(1))
	val, ok := n.Get(1)
	require.False(t, ok)
	require.Nil(t, val)
}
