package layout

// Left returns the zero based index of the left child of i
func Left(i uint64) uint64 { return 2*i + 1 }

// Right returns the zero based index of the right child of i
func Right(i uint64) uint64 { return 2*i + 2 }

// Depth returns the zero based level of the index i, the root is at depth 0.
func Depth(i uint64) int {
	return BitLength(i+1) - 1
}
