package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOfRank(t *testing.T) {
	//	        3
	//	    1       5
	//	  0   2   4   6
	//
	// breadth-first: [3 1 5 0 2 4 6]
	byIndex := []uint64{3, 1, 5, 0, 2, 4, 6}

	for i, rank := range byIndex {
		assert.Equal(t, uint64(i), IndexOfRank(rank, 7), "rank %d", rank)
		assert.Equal(t, rank, RankOfIndex(uint64(i), 7), "index %d", i)
	}
}

func TestRankIndexRoundTrip(t *testing.T) {
	for h := 0; h <= 12; h++ {
		capacity := HeightCapacity(h)
		t.Run(fmt.Sprintf("capacity %d", capacity), func(t *testing.T) {
			seen := make([]bool, capacity)
			for rank := uint64(0); rank < capacity; rank++ {
				i := IndexOfRank(rank, capacity)
				require.Less(t, i, capacity)
				require.False(t, seen[i], "index %d produced twice", i)
				seen[i] = true
				require.Equal(t, rank, RankOfIndex(i, capacity))
			}
		})
	}
}

func TestRankOfIndexIsInOrder(t *testing.T) {
	// every left subtree rank is below its parent, every right above.
	capacity := HeightCapacity(8)
	for i := uint64(0); Left(i) < capacity; i++ {
		r := RankOfIndex(i, capacity)
		assert.Less(t, RankOfIndex(Left(i), capacity), r)
		assert.Greater(t, RankOfIndex(Right(i), capacity), r)
		assert.Equal(t, i, parent(Left(i)))
		assert.Equal(t, i, parent(Right(i)))
		assert.Equal(t, Depth(i)+1, Depth(Left(i)))
	}
}

// descend mirrors the search loop, with slot ranks standing in for keys.
func descend(capacity, query uint64) uint64 {
	j := uint64(1)
	for range Height(capacity) {
		var b uint64
		if RankOfIndex(j-1, capacity) < query {
			b = 1
		}
		j = j<<1 | b
	}
	return j
}

func TestExitRank(t *testing.T) {
	for h := 0; h <= 10; h++ {
		capacity := HeightCapacity(h)
		for query := uint64(0); query <= capacity; query++ {
			j := descend(capacity, query)
			require.Equal(t, query, ExitRank(j, capacity), "capacity %d, query %d", capacity, query)
			require.Equal(t, j-(capacity+1), ExitRank(j, capacity))
		}
	}
}

func TestExitIndex(t *testing.T) {
	tests := []struct {
		name string
		j    uint64
		want uint64
	}{
		{"empty tree", 1, 0},
		{"right then left", 0b110, 0b11},
		{"left then right", 0b101, 0b1},
		{"left, left", 0b100, 0b10},
		{"always right", 0b111, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitIndex(tt.j); got != tt.want {
				t.Errorf("ExitIndex() = %b, want %b", got, tt.want)
			}
		})
	}
}
