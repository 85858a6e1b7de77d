package eytzmap

import (
	"github.com/forestrie/go-eytzinger/layout"
)

// probe carries the two comparison directions a search needs between stored
// keys and a query of type Q.
type probe[K, Q any] struct {
	// below reports k < q
	below func(k K, q Q) bool
	// above reports q < k
	above func(q Q, k K) bool
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// lowerBound returns the rank of the first key not below q, or the entry
// count if there is none.
//
// The descent takes exactly height steps. Sentinels are never below a query,
// so no bounds check is needed and the loop has no early exit.
func lowerBound[K, V, Q any](s *store[K, V], p probe[K, Q], q Q) int {
	if s == nil {
		return 0
	}
	j := uint64(1)
	for range s.height {
		sl := &s.keys[j-1]
		j = j<<1 | b2u(sl.real && p.below(sl.key, q))
	}
	return int(min(layout.ExitRank(j, uint64(len(s.keys))), uint64(s.n)))
}

// matches reports whether the key at rank, a lower bound for q, is
// equivalent to q.
func matches[K, V, Q any](s *store[K, V], p probe[K, Q], rank int, q Q) bool {
	return rank < s.size() && !p.above(q, s.key(rank))
}

func upperBound[K, V, Q any](s *store[K, V], p probe[K, Q], q Q) int {
	rank := lowerBound(s, p, q)
	if matches(s, p, rank, q) {
		// keys are unique, at most one step
		rank++
	}
	return rank
}

// find returns the rank of the entry equivalent to q, or the entry count.
func find[K, V, Q any](s *store[K, V], p probe[K, Q], q Q) int {
	rank := lowerBound(s, p, q)
	if matches(s, p, rank, q) {
		return rank
	}
	return s.size()
}
