package eytzmap

import "cmp"

// Iterator is a position in the ascending key order of a map: a sorted rank
// in [0, Len()]. The rank Len() is the end position.
//
// Iterators are values. They read the backing store that was current when they
// were created and must not be used after the map is rebuilt, cleared,
// swapped or moved.
type Iterator[K, V any] struct {
	s    *store[K, V]
	rank int
}

// Valid is false at the end position
func (it Iterator[K, V]) Valid() bool { return it.rank < it.s.size() }

// Rank returns the sorted position
func (it Iterator[K, V]) Rank() int { return it.rank }

func (it Iterator[K, V]) checkDeref() {
	if !it.Valid() {
		precondition(ErrEndDereference, "rank %d of %d", it.rank, it.s.size())
	}
}

// Key returns the key at the position. Key, Value and Entry panic at End.
func (it Iterator[K, V]) Key() K {
	it.checkDeref()
	return it.s.key(it.rank)
}

// Value returns the value at the position
func (it Iterator[K, V]) Value() V {
	it.checkDeref()
	return it.s.value(it.rank)
}

// Entry returns the key and value at the position
func (it Iterator[K, V]) Entry() Entry[K, V] {
	it.checkDeref()
	return it.s.entry(it.rank)
}

// Next returns the iterator advanced by one rank. Advancing the end position
// is a precondition violation.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	it.checkDeref()
	it.rank++
	return it
}

// Prev returns the iterator moved back one rank. Moving back from the first
// position is a precondition violation.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if it.rank == 0 {
		precondition(ErrBeginDecrement, "of %d", it.s.size())
	}
	it.rank--
	return it
}

// Equal is true for iterators at the same rank of the same backing store
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.s == other.s && it.rank == other.rank
}

// Compare orders iterators over the same map by rank.
func (it Iterator[K, V]) Compare(other Iterator[K, V]) int {
	return cmp.Compare(it.rank, other.rank)
}

// Distance returns the number of Next steps from first to last.
func Distance[K, V any](first, last Iterator[K, V]) int {
	return last.rank - first.rank
}
