package eytzmap

// The functions in this file are the heterogeneous forms of the Map query
// methods. Go methods can not introduce type parameters, so they are package
// functions. Each requires the map ordering to implement Transparent[K, Q]
// and panics with ErrNotTransparent otherwise, even for an empty map.

func transparent[K, V, Q any](m *Map[K, V]) probe[K, Q] {
	t, ok := m.ord.(Transparent[K, Q])
	if !ok {
		var q Q
		precondition(ErrNotTransparent, "%T with query %T", m.ord, q)
	}
	return probe[K, Q]{below: t.LessKey, above: t.LessQuery}
}

// LowerBoundAs returns the first position whose key is not less than q.
func LowerBoundAs[K, V, Q any](m *Map[K, V], q Q) Iterator[K, V] {
	return m.iterator(lowerBound(m.s, transparent[K, V, Q](m), q))
}

// UpperBoundAs returns the first position whose key is greater than q.
func UpperBoundAs[K, V, Q any](m *Map[K, V], q Q) Iterator[K, V] {
	return m.iterator(upperBound(m.s, transparent[K, V, Q](m), q))
}

// EqualRangeAs returns the range of keys equivalent to q, zero or one entry.
func EqualRangeAs[K, V, Q any](m *Map[K, V], q Q) (Iterator[K, V], Iterator[K, V]) {
	p := transparent[K, V, Q](m)
	lo := lowerBound(m.s, p, q)
	hi := lo
	if matches(m.s, p, lo, q) {
		hi++
	}
	return m.iterator(lo), m.iterator(hi)
}

// FindAs returns the position of the key equivalent to q, or End.
func FindAs[K, V, Q any](m *Map[K, V], q Q) Iterator[K, V] {
	return m.iterator(find(m.s, transparent[K, V, Q](m), q))
}

// ContainsAs reports whether a key equivalent to q is present
func ContainsAs[K, V, Q any](m *Map[K, V], q Q) bool {
	return find(m.s, transparent[K, V, Q](m), q) < m.s.size()
}

// CountAs returns 1 if a key equivalent to q is present and 0 otherwise
func CountAs[K, V, Q any](m *Map[K, V], q Q) int {
	if ContainsAs(m, q) {
		return 1
	}
	return 0
}

// AtAs returns the value for the key equivalent to q, or ErrKeyNotFound.
func AtAs[K, V, Q any](m *Map[K, V], q Q) (V, error) {
	rank := find(m.s, transparent[K, V, Q](m), q)
	if rank == m.s.size() {
		var zero V
		return zero, ErrKeyNotFound
	}
	return m.s.value(rank), nil
}

// MustAtAs is MustAt for a foreign query type.
func MustAtAs[K, V, Q any](m *Map[K, V], q Q) V {
	rank := find(m.s, transparent[K, V, Q](m), q)
	if rank == m.s.size() {
		precondition(ErrKeyAbsent, "%v", q)
	}
	return m.s.value(rank)
}
