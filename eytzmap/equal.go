package eytzmap

// Equal reports whether a and b hold the same number of entries with
// equivalent keys and equal values, in ascending order. Keys are compared
// with the ordering of a.
func Equal[K any, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal with a caller provided value comparison.
func EqualFunc[K, V any](a, b *Map[K, V], eq func(x, y V) bool) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for rank := range n {
		ea, eb := a.s.entry(rank), b.s.entry(rank)
		if !Equivalent(a.ord, ea.Key, eb.Key) || !eq(ea.Value, eb.Value) {
			return false
		}
	}
	return true
}
