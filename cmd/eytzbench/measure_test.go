package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimmedMean(t *testing.T) {
	tests := []struct {
		name string
		xs   []int
		want int
	}{
		{"empty", nil, 0},
		{"too few to trim", []int{3, 1, 2}, 2},
		{"exactly four", []int{4, 4, 8, 8}, 6},
		{"outliers dropped", []int{9, 1, 50, 2, 3, 4, 0}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trimmedMean(tt.xs))
		})
	}

	durations := []time.Duration{time.Second, 1, 2, 3, 4, 5, time.Hour, 0}
	assert.Equal(t, time.Duration(3), trimmedMean(durations))
}

func TestSizes(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4, 8, 16}, sizes(1, 20, 1, 2))
	assert.Equal(t, []int{10, 12, 14}, sizes(10, 14, 2, 1))
	assert.Equal(t, []int{5}, sizes(5, 5, 100, 1.2))
	assert.Empty(t, sizes(6, 5, 1, 1))
}

func TestMeter_Measure(t *testing.T) {
	var clock time.Time
	now := func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}
	m := meter{trials: 5, trialTime: 3 * time.Millisecond, now: now}

	calls := 0
	d := m.measure(func() uint64 {
		calls++
		return 1
	})
	assert.Equal(t, time.Millisecond, d)
	assert.Equal(t, 15, calls)
}

func TestPerElement(t *testing.T) {
	assert.InDelta(t, 0.5, perElement(500*time.Microsecond, 1000), 1e-12)
}

func TestLookup(t *testing.T) {
	const n = 500
	entries := testEntries(n)

	var fetched []uint64
	for _, c := range candidates {
		built := c.build(entries)
		require.Equal(t, uint64(n), lookup(built, n), c.name)
		fetched = append(fetched, lookupAndFetch(built, n))
	}
	for _, f := range fetched[1:] {
		assert.Equal(t, fetched[0], f)
	}
}

func TestQuerySource_Deterministic(t *testing.T) {
	a, b := querySource(100), querySource(100)
	for range 50 {
		q := a()
		require.Equal(t, q, b())
		require.GreaterOrEqual(t, q, 0)
		require.Less(t, q, 100)
	}
}
