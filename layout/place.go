package layout

// Place visits every slot of a tree with the provided capacity, in ascending
// rank order, reporting the breadth-first index each rank belongs in.
//
// It is the classic sorted -> Eytzinger transform: the middle of a rank range
// is the root of the subtree for that range, the remainders go to the left and
// right children. For a perfect tree every range has odd length so the middle
// is exact.
func Place(capacity uint64, visit func(index, rank uint64)) {
	place(0, 0, capacity, visit)
}

func place(index, lo, hi uint64, visit func(index, rank uint64)) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	place(Left(index), lo, mid, visit)
	visit(index, mid)
	place(Right(index), mid+1, hi, visit)
}
