package eytztesting

import (
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestGenerator_Deterministic(t *testing.T) {
	a := NewTestGenerator(99)
	b := NewTestGenerator(99)
	assert.Equal(t, a.ShuffledWithDuplicates(50, 10), b.ShuffledWithDuplicates(50, 10))
	assert.Equal(t, a.Probes(20, 0, 100), b.Probes(20, 0, 100))

	sa, err := a.StringEntries(5)
	require.NoError(t, err)
	sb, err := b.StringEntries(5)
	require.NoError(t, err)
	assert.Equal(t, sa, sb)
}

func TestShuffledWithDuplicates(t *testing.T) {
	g := NewTestGenerator(1)
	entries := g.ShuffledWithDuplicates(40, 15)
	require.Len(t, entries, 55)

	distinct := map[int]bool{}
	for i, e := range entries {
		assert.Equal(t, i, e.Value)
		assert.GreaterOrEqual(t, e.Key, 0)
		assert.Less(t, e.Key, 80)
		distinct[e.Key] = true
	}
	assert.Len(t, distinct, 40)

	assert.Empty(t, g.ShuffledWithDuplicates(0, 3))
}

func TestStringEntries(t *testing.T) {
	g := NewTestGenerator(2)
	entries, err := g.StringEntries(10)
	require.NoError(t, err)
	require.Len(t, entries, 10)
	for _, e := range entries {
		id, err := uuid.Parse(e.Key)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())
		assert.Equal(t, e.Key, e.Value)
	}
}

func TestProbes(t *testing.T) {
	g := NewTestGenerator(3)
	for _, p := range g.Probes(200, -5, 5) {
		assert.GreaterOrEqual(t, p, -5)
		assert.Less(t, p, 5)
	}
}

func TestIntEntries(t *testing.T) {
	g := NewTestGenerator(0)
	entries := g.IntEntries(4)
	keys := make([]int, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	assert.True(t, slices.IsSorted(keys))
	assert.Equal(t, []int{0, 1, 2, 3}, keys)
}

func TestTestContext_NewGenerator(t *testing.T) {
	a := NewTestContext(t, TestConfig{Seed: 42, TestLabelPrefix: "seeded"})
	b := NewTestContext(t, TestConfig{Seed: 42, TestLabelPrefix: "seeded"})
	other := NewTestContext(t, TestConfig{Seed: 43, TestLabelPrefix: "seeded"})

	want := NewTestGenerator(42).ShuffledWithDuplicates(30, 5)
	assert.Equal(t, want, a.NewGenerator().ShuffledWithDuplicates(30, 5))
	assert.Equal(t, want, b.NewGenerator().ShuffledWithDuplicates(30, 5))
	// each call restarts the sequence
	assert.Equal(t, want, a.NewGenerator().ShuffledWithDuplicates(30, 5))
	assert.NotEqual(t, want, other.NewGenerator().ShuffledWithDuplicates(30, 5))
}
