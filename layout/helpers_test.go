package layout

import "math/bits"

// allOnes is true when num is 2^k - 1 for some k, which is exactly the set of
// valid capacities.
func allOnes(num uint64) bool {
	return (1<<bits.OnesCount64(num) - 1) == num
}

// parent returns the zero based index of the parent of i. The root has no
// parent.
func parent(i uint64) uint64 { return (i - 1) / 2 }
