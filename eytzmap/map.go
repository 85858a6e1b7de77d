package eytzmap

import (
	"cmp"
	"iter"
	"slices"
)

// Map is a fixed-capacity sorted map laid out in breadth-first order.
//
// The zero value is an empty map without an ordering: it answers queries but
// Assign panics until an ordering is provided, use New or NewFunc instead.
//
// A Map is not safe for concurrent mutation. Concurrent read only queries and
// iteration are safe while no goroutine replaces the contents.
type Map[K, V any] struct {
	ord  Ordering[K]
	s    *store[K, V]
	opts Options
}

// New builds a map ordered by the natural ordering of K. Entries may be in any
// order and may repeat keys, see WithDuplicates. The entries slice is not
// retained or modified.
func New[K cmp.Ordered, V any](entries []Entry[K, V], opts ...Option) *Map[K, V] {
	return NewFunc[K, V](Natural[K]{}, entries, opts...)
}

// NewFunc builds a map using the provided ordering.
func NewFunc[K, V any](ord Ordering[K], entries []Entry[K, V], opts ...Option) *Map[K, V] {
	m := &Map[K, V]{ord: ord, opts: NewOptions(opts...)}
	m.Assign(entries)
	return m
}

// Collect builds a naturally ordered map from a key/value sequence, for
// example maps.All or slices.All.
func Collect[K cmp.Ordered, V any](seq iter.Seq2[K, V], opts ...Option) *Map[K, V] {
	return CollectFunc[K, V](Natural[K]{}, seq, opts...)
}

// CollectFunc builds a map from a key/value sequence using the provided
// ordering.
func CollectFunc[K, V any](ord Ordering[K], seq iter.Seq2[K, V], opts ...Option) *Map[K, V] {
	m := &Map[K, V]{ord: ord, opts: NewOptions(opts...)}
	m.AssignSeq(seq)
	return m
}

// Assign rebuilds the map from entries, replacing the previous contents as a
// whole. Existing iterators are invalidated.
func (m *Map[K, V]) Assign(entries []Entry[K, V]) {
	m.s = build(m.ord, slices.Clone(entries), m.opts)
}

// AssignSeq is Assign for a key/value sequence.
func (m *Map[K, V]) AssignSeq(seq iter.Seq2[K, V]) {
	var buf []Entry[K, V]
	for k, v := range seq {
		buf = append(buf, Entry[K, V]{Key: k, Value: v})
	}
	m.s = build(m.ord, buf, m.opts)
}

// Ordering returns the ordering the map was built with
func (m *Map[K, V]) Ordering() Ordering[K] { return m.ord }

// Len returns the number of distinct keys
func (m *Map[K, V]) Len() int { return m.s.size() }

// Empty is true when the map holds no entries
func (m *Map[K, V]) Empty() bool { return m.s.size() == 0 }

// Capacity returns the padded slot count of the backing array.
func (m *Map[K, V]) Capacity() int { return int(m.s.capacity()) }

func (m *Map[K, V]) probe() probe[K, K] {
	return probe[K, K]{below: m.ord.Less, above: m.ord.Less}
}

func (m *Map[K, V]) iterator(rank int) Iterator[K, V] {
	return Iterator[K, V]{s: m.s, rank: rank}
}

// lowerBound, upperBound and find short circuit the empty map so that a zero
// value map, which has no ordering, answers queries.

func (m *Map[K, V]) lowerBound(q K) int {
	if m.s == nil {
		return 0
	}
	return lowerBound(m.s, m.probe(), q)
}

func (m *Map[K, V]) upperBound(q K) int {
	if m.s == nil {
		return 0
	}
	return upperBound(m.s, m.probe(), q)
}

func (m *Map[K, V]) find(q K) int {
	if m.s == nil {
		return 0
	}
	return find(m.s, m.probe(), q)
}

// Begin returns the position of the smallest key, or End for an empty map.
func (m *Map[K, V]) Begin() Iterator[K, V] { return m.iterator(0) }

// End returns the position one past the largest key.
func (m *Map[K, V]) End() Iterator[K, V] { return m.iterator(m.s.size()) }

// LowerBound returns the first position whose key is not less than q.
func (m *Map[K, V]) LowerBound(q K) Iterator[K, V] {
	return m.iterator(m.lowerBound(q))
}

// UpperBound returns the first position whose key is greater than q.
func (m *Map[K, V]) UpperBound(q K) Iterator[K, V] {
	return m.iterator(m.upperBound(q))
}

// EqualRange returns LowerBound(q) and UpperBound(q). Keys are unique so the
// range holds zero or one entry.
func (m *Map[K, V]) EqualRange(q K) (Iterator[K, V], Iterator[K, V]) {
	lo := m.lowerBound(q)
	hi := lo
	if m.s != nil && matches(m.s, m.probe(), lo, q) {
		hi++
	}
	return m.iterator(lo), m.iterator(hi)
}

// Find returns the position of the entry for q, or End.
func (m *Map[K, V]) Find(q K) Iterator[K, V] {
	return m.iterator(m.find(q))
}

// Count returns 1 if the map holds q and 0 otherwise
func (m *Map[K, V]) Count(q K) int {
	if m.Contains(q) {
		return 1
	}
	return 0
}

// Contains reports whether the map holds a key equivalent to q
func (m *Map[K, V]) Contains(q K) bool {
	return m.find(q) < m.s.size()
}

// At returns the value for q, or ErrKeyNotFound.
func (m *Map[K, V]) At(q K) (V, error) {
	rank := m.find(q)
	if rank == m.s.size() {
		var zero V
		return zero, ErrKeyNotFound
	}
	return m.s.value(rank), nil
}

// Get returns the value for q and whether it was present.
func (m *Map[K, V]) Get(q K) (V, bool) {
	rank := m.find(q)
	if rank == m.s.size() {
		var zero V
		return zero, false
	}
	return m.s.value(rank), true
}

// MustAt returns the value for a key the caller knows is present. The map can
// not insert, so an absent key is a precondition violation and panics.
func (m *Map[K, V]) MustAt(q K) V {
	rank := m.find(q)
	if rank == m.s.size() {
		precondition(ErrKeyAbsent, "%v", q)
	}
	return m.s.value(rank)
}

// All iterates the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	s := m.s
	return func(yield func(K, V) bool) {
		for rank := range s.size() {
			i := s.index(rank)
			if !yield(s.keys[i].key, s.vals[i]) {
				return
			}
		}
	}
}

// Backward iterates the entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	s := m.s
	return func(yield func(K, V) bool) {
		for rank := s.size() - 1; rank >= 0; rank-- {
			i := s.index(rank)
			if !yield(s.keys[i].key, s.vals[i]) {
				return
			}
		}
	}
}

// Keys iterates the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates the values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Entries returns the entries in ascending key order
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// Clone returns an independent copy. The backing array is duplicated as is,
// without re-sorting. Values are copied by assignment.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{ord: m.ord, s: m.s.clone(), opts: m.opts}
}

// CopyFrom replaces the contents of m with a copy of src.
func (m *Map[K, V]) CopyFrom(src *Map[K, V]) {
	if m == src {
		return
	}
	m.ord = src.ord
	m.opts = src.opts
	m.s = src.s.clone()
}

// MoveFrom transfers the contents of src to m, leaving src empty. src keeps
// its ordering and may be rebuilt.
func (m *Map[K, V]) MoveFrom(src *Map[K, V]) {
	if m == src {
		return
	}
	m.ord = src.ord
	m.opts = src.opts
	m.s = src.s
	src.s = nil
}

// Take returns a new map holding the contents of m, leaving m empty.
func (m *Map[K, V]) Take() *Map[K, V] {
	out := &Map[K, V]{}
	out.MoveFrom(m)
	return out
}

// Swap exchanges the contents and orderings of m and other.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	*m, *other = *other, *m
}

// Clear releases the backing array.
func (m *Map[K, V]) Clear() {
	m.s = nil
}
