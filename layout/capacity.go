package layout

// Capacity returns the padded slot count for n real entries: the size of the
// smallest perfect binary tree with at least n nodes.
//
// The outputs for n = 0..8 are
//
//	[0, 1, 3, 3, 7, 7, 7, 7, 15]
func Capacity(n uint64) uint64 {
	return HeightCapacity(BitLength(n))
}

// Height returns the number of levels of a tree with the provided capacity.
// This is also the number of steps a descent takes.
func Height(capacity uint64) int {
	return BitLength(capacity)
}

// HeightCapacity returns the capacity of the perfect tree with height levels
func HeightCapacity(height int) uint64 {
	return (uint64(1) << height) - 1
}
