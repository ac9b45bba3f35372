package cache

// Nop is a cache that never retains anything. Every Get is a miss.
type Nop[K comparable, V any] struct{}

func (n *Nop[K, V]) Get(K) (val V, ok bool) {
	return val, false
}

func (n *Nop[K, V]) Put(K, V) {
}

func (n *Nop[K, V]) Delete(K) bool {
	return false
}

func NewNop[K comparable, V any]() *Nop[K, V] {
	return &Nop[K, V]{}
}

var _ Cache[string, any] = (*Nop[string, any])(nil)
