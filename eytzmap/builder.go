package eytzmap

import (
	"slices"
)

// build sorts, dedupes and lays out entries. The entries slice is used as the
// working buffer and must not be shared with the caller.
func build[K, V any](ord Ordering[K], entries []Entry[K, V], opts Options) *store[K, V] {
	if len(entries) == 0 {
		return nil
	}
	if ord == nil {
		precondition(ErrNoOrdering, "building %d entries", len(entries))
	}

	// Stable, so runs of equivalent keys keep their input order and the
	// duplicate policy can pick by position.
	slices.SortStableFunc(entries, func(a, b Entry[K, V]) int {
		return threeWay(ord, a.Key, b.Key)
	})
	sorted := dedupe(ord, entries, opts.duplicates)

	s := newStore(sorted)
	if opts.log != nil {
		opts.log.Debugf(
			"eytzmap: built %d entries, %d distinct, capacity %d, height %d",
			len(entries), s.n, len(s.keys), s.height)
	}
	return s
}

// dedupe compacts sorted in place to one entry per run of equivalent keys.
func dedupe[K, V any](ord Ordering[K], sorted []Entry[K, V], policy DuplicatePolicy) []Entry[K, V] {
	out := sorted[:0]
	for i := 0; i < len(sorted); {
		// sorted, so a key that is not above sorted[i] is equivalent to it
		j := i + 1
		for j < len(sorted) && !ord.Less(sorted[i].Key, sorted[j].Key) {
			j++
		}
		keep := i
		if policy == KeepLast {
			keep = j - 1
		}
		out = append(out, sorted[keep])
		i = j
	}
	return out
}
