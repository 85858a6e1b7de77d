package eytztesting

import (
	"cmp"
	"slices"
	"testing"

	"github.com/forestrie/go-eytzinger/eytzmap"
	"github.com/stretchr/testify/require"
)

// Oracle is the expected content of a map built from some input, computed the
// slow way: a sorted slice of distinct keys and the retained value per key.
type Oracle[K cmp.Ordered, V any] struct {
	Keys   []K
	Values map[K]V
}

// NewOracle derives the expected content of a naturally ordered map built
// from input under the provided duplicate policy.
func NewOracle[K cmp.Ordered, V any](input []eytzmap.Entry[K, V], policy eytzmap.DuplicatePolicy) Oracle[K, V] {
	o := Oracle[K, V]{Values: make(map[K]V)}
	for _, e := range input {
		if _, ok := o.Values[e.Key]; ok && policy == eytzmap.KeepFirst {
			continue
		}
		o.Values[e.Key] = e.Value
	}
	for k := range o.Values {
		o.Keys = append(o.Keys, k)
	}
	slices.Sort(o.Keys)
	return o
}

// LowerBound returns the rank of the first key not less than q
func (o Oracle[K, V]) LowerBound(q K) int {
	rank, _ := slices.BinarySearch(o.Keys, q)
	return rank
}

// UpperBound returns the rank of the first key greater than q
func (o Oracle[K, V]) UpperBound(q K) int {
	rank, found := slices.BinarySearch(o.Keys, q)
	if found {
		rank++
	}
	return rank
}

// CheckProperties requires m to agree with the oracle for input on iteration
// order, size, membership, retained values and bounds for every probe.
func CheckProperties[K cmp.Ordered, V comparable](
	t *testing.T, m *eytzmap.Map[K, V], input []eytzmap.Entry[K, V], policy eytzmap.DuplicatePolicy, probes []K,
) {
	t.Helper()
	o := NewOracle(input, policy)

	require.Equal(t, len(o.Keys), m.Len())
	require.Equal(t, len(o.Keys) == 0, m.Empty())

	// strictly ascending, distinct, and the retained values
	var prev *K
	rank := 0
	for it := m.Begin(); it.Valid(); it = it.Next() {
		k := it.Key()
		if prev != nil {
			require.Less(t, *prev, k)
		}
		prev = &k
		require.Equal(t, o.Keys[rank], k)
		require.Equal(t, o.Values[k], it.Value(), "value for %v", k)
		rank++
	}
	require.Equal(t, len(o.Keys), rank)

	for _, k := range o.Keys {
		it := m.Find(k)
		require.True(t, it.Valid(), "find %v", k)
		require.Equal(t, k, it.Key())
		v, err := m.At(k)
		require.NoError(t, err)
		require.Equal(t, o.Values[k], v)
		require.Equal(t, 1, m.Count(k))
	}

	for _, q := range probes {
		require.Equal(t, o.LowerBound(q), m.LowerBound(q).Rank(), "lower bound %v", q)
		require.Equal(t, o.UpperBound(q), m.UpperBound(q).Rank(), "upper bound %v", q)

		first, last := m.EqualRange(q)
		require.LessOrEqual(t, eytzmap.Distance(first, last), 1)

		if _, ok := o.Values[q]; ok {
			continue
		}
		require.False(t, m.Find(q).Valid(), "find absent %v", q)
		require.Equal(t, 0, m.Count(q))
		_, err := m.At(q)
		require.ErrorIs(t, err, eytzmap.ErrKeyNotFound)
	}
}
