package layout

import "math/bits"

func BitLength(num uint64) int {
	return bits.Len64(num)
}

// TrailingOnes returns the count of consecutive set bits starting at bit 0.
func TrailingOnes(num uint64) int {
	return bits.TrailingZeros64(^num)
}
