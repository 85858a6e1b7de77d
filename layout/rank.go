package layout

import "math/bits"

// IndexOfRank returns the breadth-first (zero based) index of the slot holding
// the in-order rank in a tree of the provided capacity.
//
// The caller must ensure rank < capacity and that capacity is 2^h - 1.
func IndexOfRank(rank, capacity uint64) uint64 {
	h := BitLength(capacity)

	// The trailing zeros of the one based rank give the height of the node
	// above the leaves. The bits above that, less the lowest set bit, give
	// the position of the node within its level.
	r := rank + 1
	tz := bits.TrailingZeros64(r)
	depth := h - 1 - tz
	return (uint64(1) << depth) + (r >> (tz + 1)) - 1
}

// RankOfIndex returns the in-order rank of the slot at the breadth-first (zero
// based) index i in a tree of the provided capacity. It is the inverse of
// IndexOfRank.
func RankOfIndex(i, capacity uint64) uint64 {
	h := BitLength(capacity)

	depth := Depth(i)
	pos := i + 1 - (uint64(1) << depth)

	// append a set bit to the level position, then scale by the height of
	// the node above the leaves.
	return ((pos<<1 | 1) << (h - 1 - depth)) - 1
}

// ExitIndex recovers, from the one based position j reached after a full
// descent, the one based position of the last node at which the descent went
// left. Zero means the descent never went left.
func ExitIndex(j uint64) uint64 {
	return j >> (TrailingOnes(j) + 1)
}

// ExitRank returns the in-order rank of the lower bound found by a full
// descent that finished at the one based position j. If the descent never went
// left, every slot was below the query and capacity is returned.
//
// For a complete descent this is always equal to j - (capacity + 1), the
// number of slots that compared below the query.
func ExitRank(j, capacity uint64) uint64 {
	k := ExitIndex(j)
	if k == 0 {
		return capacity
	}
	return RankOfIndex(k-1, capacity)
}
