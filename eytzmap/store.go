package eytzmap

import (
	"slices"

	"github.com/forestrie/go-eytzinger/layout"
)

// slot is a key position in the backing array. The zero slot is a sentinel:
// it holds no key and compares greater than every key.
type slot[K any] struct {
	key  K
	real bool
}

// store is the backing array of a built map. It is immutable once built, a
// rebuild replaces the whole store.
type store[K, V any] struct {
	// keys and vals are parallel, in breadth-first order, len == capacity
	keys []slot[K]
	vals []V

	n      int
	height int
}

// newStore lays out sorted, distinct entries in breadth-first order.
func newStore[K, V any](sorted []Entry[K, V]) *store[K, V] {
	capacity := layout.Capacity(uint64(len(sorted)))
	s := &store[K, V]{
		keys:   make([]slot[K], capacity),
		vals:   make([]V, capacity),
		n:      len(sorted),
		height: layout.Height(capacity),
	}
	n := uint64(s.n)
	layout.Place(capacity, func(index, rank uint64) {
		if rank >= n {
			return
		}
		s.keys[index] = slot[K]{key: sorted[rank].Key, real: true}
		s.vals[index] = sorted[rank].Value
	})
	return s
}

func (s *store[K, V]) size() int {
	if s == nil {
		return 0
	}
	return s.n
}

func (s *store[K, V]) capacity() uint64 {
	if s == nil {
		return 0
	}
	return uint64(len(s.keys))
}

// index returns the breadth-first index of a real rank
func (s *store[K, V]) index(rank int) uint64 {
	return layout.IndexOfRank(uint64(rank), uint64(len(s.keys)))
}

func (s *store[K, V]) key(rank int) K {
	return s.keys[s.index(rank)].key
}

func (s *store[K, V]) value(rank int) V {
	return s.vals[s.index(rank)]
}

func (s *store[K, V]) entry(rank int) Entry[K, V] {
	i := s.index(rank)
	return Entry[K, V]{Key: s.keys[i].key, Value: s.vals[i]}
}

// clone duplicates the backing arrays verbatim, they are already laid out.
func (s *store[K, V]) clone() *store[K, V] {
	if s == nil {
		return nil
	}
	return &store[K, V]{
		keys:   slices.Clone(s.keys),
		vals:   slices.Clone(s.vals),
		n:      s.n,
		height: s.height,
	}
}
