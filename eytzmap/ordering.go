package eytzmap

import "cmp"

// Ordering is a strict weak order over keys. Two keys a and b are equivalent
// when neither is Less than the other, and a map holds at most one entry for
// each class of equivalent keys.
type Ordering[K any] interface {
	Less(a, b K) bool
}

// Transparent is an Ordering that can also compare keys against values of the
// foreign type Q. Maps whose ordering implements Transparent[K, Q] accept Q
// queries through the *As functions (FindAs, AtAs, ...) without materializing
// a K.
type Transparent[K, Q any] interface {
	Ordering[K]
	LessKey(k K, q Q) bool
	LessQuery(q Q, k K) bool
}

// Equivalent reports whether neither key orders before the other.
func Equivalent[K any](ord Ordering[K], a, b K) bool {
	return !ord.Less(a, b) && !ord.Less(b, a)
}

func threeWay[K any](ord Ordering[K], a, b K) int {
	if ord.Less(a, b) {
		return -1
	}
	if ord.Less(b, a) {
		return 1
	}
	return 0
}

// Natural orders keys by their built in ordering.
type Natural[K cmp.Ordered] struct{}

func (Natural[K]) Less(a, b K) bool      { return cmp.Less(a, b) }
func (Natural[K]) LessKey(k, q K) bool   { return cmp.Less(k, q) }
func (Natural[K]) LessQuery(q, k K) bool { return cmp.Less(q, k) }

// LessFunc adapts a less function to an Ordering.
type LessFunc[K any] func(a, b K) bool

func (f LessFunc[K]) Less(a, b K) bool      { return f(a, b) }
func (f LessFunc[K]) LessKey(k, q K) bool   { return f(k, q) }
func (f LessFunc[K]) LessQuery(q, k K) bool { return f(q, k) }

// CompareFunc adapts a three way comparison, such as strings.Compare, to an
// Ordering.
type CompareFunc[K any] func(a, b K) int

func (f CompareFunc[K]) Less(a, b K) bool      { return f(a, b) < 0 }
func (f CompareFunc[K]) LessKey(k, q K) bool   { return f(k, q) < 0 }
func (f CompareFunc[K]) LessQuery(q, k K) bool { return f(q, k) < 0 }

// StringBytes orders string keys lexically and is transparent for []byte
// queries, which are compared in place.
type StringBytes struct{}

func (StringBytes) Less(a, b string) bool             { return a < b }
func (StringBytes) LessKey(k string, q []byte) bool   { return compareStringBytes(k, q) < 0 }
func (StringBytes) LessQuery(q []byte, k string) bool { return compareStringBytes(k, q) > 0 }

func compareStringBytes(s string, b []byte) int {
	n := min(len(s), len(b))
	for i := 0; i < n; i++ {
		if s[i] != b[i] {
			return cmp.Compare(s[i], b[i])
		}
	}
	return cmp.Compare(len(s), len(b))
}
