package main

import (
	"testing"

	"github.com/forestrie/go-eytzinger/eytzmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates_Agree(t *testing.T) {
	input := []eytzmap.Entry[int, int]{
		{Key: 7, Value: 70}, {Key: 1, Value: 10}, {Key: 7, Value: 71}, {Key: -3, Value: -30},
	}
	for _, c := range candidates {
		t.Run(c.id, func(t *testing.T) {
			built := c.build(input)
			assert.Equal(t, 1, built.Count(7))
			assert.Equal(t, 1, built.Count(-3))
			assert.Equal(t, 0, built.Count(2))
			assert.Equal(t, 70, built.At(7), "first occurrence wins")
			assert.Equal(t, -30, built.At(-3))
			assert.Panics(t, func() { built.At(2) })
		})
	}
}

func TestCandidateByID(t *testing.T) {
	for _, c := range candidates {
		got, err := candidateByID(c.id)
		require.NoError(t, err)
		assert.Equal(t, c.name, got.name)
	}
	_, err := candidateByID("skiplist")
	assert.ErrorIs(t, err, ErrUnknownCandidate)
}
