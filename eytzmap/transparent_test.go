package eytzmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransparentStringBytes(t *testing.T) {
	m := NewFunc[string, string](StringBytes{}, []Entry[string, string]{
		{"a", "a"}, {"b", "b"}, {"c", "c"},
	})

	assert.Equal(t, "a", LowerBoundAs(m, []byte("a")).Value())
	assert.Equal(t, "b", UpperBoundAs(m, []byte("a")).Value())
	assert.Equal(t, "a", FindAs(m, []byte("a")).Value())
	assert.Equal(t, 1, CountAs(m, []byte("a")))
	assert.Equal(t, 0, CountAs(m, []byte("z")))
	assert.True(t, ContainsAs(m, []byte("c")))

	v, err := AtAs(m, []byte("c"))
	require.NoError(t, err)
	assert.Equal(t, "c", v)
	_, err = AtAs(m, []byte("cc"))
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.Equal(t, "b", MustAtAs(m, []byte("b")))
	requirePanicsIs(t, ErrKeyAbsent, func() { MustAtAs(m, []byte("bb")) })

	first, last := EqualRangeAs(m, []byte("b"))
	assert.Equal(t, 1, Distance(first, last))
	first, last = EqualRangeAs(m, []byte("bb"))
	assert.Equal(t, 0, Distance(first, last))
	assert.Equal(t, "c", first.Key())

	// the same answers as the string queries
	for _, q := range []string{"", "a", "aa", "b", "c", "d"} {
		assert.Equal(t, m.LowerBound(q).Rank(), LowerBoundAs(m, []byte(q)).Rank(), q)
		assert.Equal(t, m.UpperBound(q).Rank(), UpperBoundAs(m, []byte(q)).Rank(), q)
		assert.Equal(t, m.Find(q).Rank(), FindAs(m, []byte(q)).Rank(), q)
	}
}

func TestTransparentNaturalAcceptsItsOwnKeyType(t *testing.T) {
	m := New([]Entry[string, string]{{"a", "a"}, {"b", "b"}})
	assert.Equal(t, "b", MustAtAs(m, "b"))
	assert.True(t, FindAs(m, "z").Equal(m.End()))
}

type hcKey struct {
	v int
}

// hcOrdering compares hcKey values with one another and with numbers, in the
// manner of a comparator declaring itself transparent.
type hcOrdering struct{}

func (hcOrdering) Less(a, b hcKey) bool { return a.v < b.v }

func (hcOrdering) LessKey(k hcKey, q any) bool { return float64(k.v) < number(q) }

func (hcOrdering) LessQuery(q any, k hcKey) bool { return number(q) < float64(k.v) }

func number(q any) float64 {
	switch n := q.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	}
	panic("hcOrdering: not a number")
}

func TestTransparentNonComparableKeys(t *testing.T) {
	entries := []Entry[hcKey, int]{{hcKey{1}, 1}, {hcKey{2}, 2}, {hcKey{3}, 3}, {hcKey{4}, 4}}
	m := NewFunc[hcKey, int](hcOrdering{}, entries)

	require.Equal(t, 4, m.Len())
	assert.Equal(t, 1, MustAtAs[hcKey, int, any](m, 1))
	assert.Equal(t, 2, MustAtAs[hcKey, int, any](m, 2.))
	assert.Equal(t, 3, MustAtAs[hcKey, int, any](m, float32(3)))
	assert.Equal(t, 4, MustAtAs[hcKey, int, any](m, int64(4)))
	assert.Equal(t, 2, m.MustAt(hcKey{2}))

	// 2.5 falls between keys
	assert.Equal(t, 0, CountAs[hcKey, int, any](m, 2.5))
	assert.Equal(t, 3, LowerBoundAs[hcKey, int, any](m, 2.5).Key().v)
}

func TestTransparentRequiresCapability(t *testing.T) {
	byV := LessFunc[hcKey](func(a, b hcKey) bool { return a.v < b.v })
	m := NewFunc[hcKey, int](byV, []Entry[hcKey, int]{{hcKey{1}, 1}})

	requirePanicsIs(t, ErrNotTransparent, func() { FindAs(m, 1) })
	requirePanicsIs(t, ErrNotTransparent, func() { CountAs(m, 1) })
	requirePanicsIs(t, ErrPreconditionViolation, func() { MustAtAs(m, 1.0) })

	strings := New([]Entry[string, int]{{"a", 1}})
	requirePanicsIs(t, ErrNotTransparent, func() { FindAs(strings, []byte("a")) })

	// checked even when there is nothing to search
	var empty Map[string, int]
	requirePanicsIs(t, ErrNotTransparent, func() { ContainsAs(&empty, []byte("a")) })
}
