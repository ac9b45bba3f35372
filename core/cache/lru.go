package cache

import (
	"container/list"
	"log/slog"
	"sync"
)

type LRUOpts[K comparable, V any] struct {
	// Capacity is the maximum number of entries. Must be > 0.
	Capacity int
	// Name labels the cache in logs and metrics. Defaults to "default".
	Name    string
	Log     *slog.Logger
	Metrics Metrics
	// OnEvict is called for every entry evicted because the cache was over
	// capacity. It runs after the cache lock has been released, so it may use
	// the cache. Delete and Purge do not trigger it.
	OnEvict func(key K, val V)
}

type entry[K comparable, V any] struct {
	key K
	val V
}

// LRU is a fixed-capacity cache that evicts the least recently used entry
// once the capacity is exceeded. It is safe for concurrent use.
//
// Both Put and Get count as use: Get promotes the key it returns, so reads
// change eviction order. Use Peek or Contains to inspect without promoting.
type LRU[K comparable, V any] struct {
	name    string
	log     *slog.Logger
	metrics Metrics
	onEvict func(K, V)

	// mu guards capacity, items and order together; every key in items has
	// exactly one element in order and vice versa.
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List // front = most recently used, back = least recently used
}

// New creates an LRU holding at most capacity entries.
func New[K comparable, V any](capacity int) (*LRU[K, V], error) {
	return NewLRU(LRUOpts[K, V]{Capacity: capacity})
}

func NewLRU[K comparable, V any](opts LRUOpts[K, V]) (*LRU[K, V], error) {
	if opts.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if opts.Name == "" {
		opts.Name = "default"
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	if opts.Metrics == nil {
		opts.Metrics = NopMetrics()
	}

	return &LRU[K, V]{
		name:     opts.Name,
		log:      opts.Log.With(slog.String("cache", opts.Name)),
		metrics:  opts.Metrics,
		onEvict:  opts.OnEvict,
		capacity: opts.Capacity,
		items:    make(map[K]*list.Element, opts.Capacity),
		order:    list.New(),
	}, nil
}

// MustNewLRU is like NewLRU but panics on an invalid capacity.
func MustNewLRU[K comparable, V any](opts LRUOpts[K, V]) *LRU[K, V] {
	l, err := NewLRU(opts)
	if err != nil {
		panic(err)
	}
	return l
}

// Put inserts or overwrites key and makes it the most recently used entry.
// Inserting a new key into a full cache evicts exactly one entry, the least
// recently used one.
func (l *LRU[K, V]) Put(key K, val V) {
	l.mu.Lock()

	if el, ok := l.items[key]; ok {
		el.Value.(*entry[K, V]).val = val
		l.order.MoveToFront(el)
		l.mu.Unlock()
		return
	}

	l.items[key] = l.order.PushFront(&entry[K, V]{key: key, val: val})

	var evicted *entry[K, V]
	if l.order.Len() > l.capacity {
		evicted = l.removeLocked(l.order.Back())
	}
	l.metrics.Entries(l.name, len(l.items))
	l.mu.Unlock()

	if evicted != nil {
		l.metrics.Eviction(l.name)
		l.log.Debug("evicted", slog.Any("key", evicted.key))
		if l.onEvict != nil {
			l.onEvict(evicted.key, evicted.val)
		}
	}
}

// Get returns the value stored for key and promotes key to most recently
// used. A miss leaves the cache untouched.
func (l *LRU[K, V]) Get(key K) (val V, ok bool) {
	l.mu.Lock()
	el, ok := l.items[key]
	if ok {
		l.order.MoveToFront(el)
		val = el.Value.(*entry[K, V]).val
	}
	l.mu.Unlock()

	if ok {
		l.metrics.Hit(l.name)
	} else {
		l.metrics.Miss(l.name)
	}
	return val, ok
}

// Peek returns the value stored for key without promoting it.
func (l *LRU[K, V]) Peek(key K) (val V, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	el, ok := l.items[key]
	if !ok {
		return val, false
	}
	return el.Value.(*entry[K, V]).val, true
}

// Contains reports whether key is cached, without promoting it.
func (l *LRU[K, V]) Contains(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.items[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (l *LRU[K, V]) Delete(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	el, ok := l.items[key]
	if !ok {
		return false
	}
	l.removeLocked(el)
	l.metrics.Entries(l.name, len(l.items))
	return true
}

// Purge removes all entries.
func (l *LRU[K, V]) Purge() {
	l.mu.Lock()
	defer l.mu.Unlock()

	clear(l.items)
	l.order.Init()
	l.metrics.Entries(l.name, 0)
}

func (l *LRU[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

func (l *LRU[K, V]) Cap() int { return l.capacity }

// Keys returns the cached keys ordered from most to least recently used.
func (l *LRU[K, V]) Keys() []K {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]K, 0, l.order.Len())
	for el := l.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*entry[K, V]).key)
	}
	return out
}

func (l *LRU[K, V]) removeLocked(el *list.Element) *entry[K, V] {
	e := l.order.Remove(el).(*entry[K, V])
	delete(l.items, e.key)
	return e
}

var _ Cache[string, any] = (*LRU[string, any])(nil)
