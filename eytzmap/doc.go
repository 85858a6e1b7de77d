// Package eytzmap provides Map, a read optimized sorted map that is built once
// from an arbitrary sequence of entries and then only queried.
//
// Entries are sorted, deduplicated and stored in breadth-first (Eytzinger)
// order: the implicit complete binary search tree is flattened level by level,
// so a search touches memory front to back and every step is a single
// comparison selecting between the two children. The arithmetic lives in the
// layout package.
//
//	m := eytzmap.New([]eytzmap.Entry[int, string]{{3, "c"}, {1, "a"}, {2, "b"}})
//	v, err := m.At(2)                      // "b", nil
//	for it := m.LowerBound(2); it.Valid(); it = it.Next() {
//		fmt.Println(it.Key(), it.Value()) // 2 b, 3 c
//	}
//
// Queries run in O(log n) and allocate nothing. There is no single key insert
// or delete, the contents change only by replacing them as a whole (Assign,
// CopyFrom, MoveFrom, Swap, Clear).
//
// Misuse, such as MustAt for an absent key or reading the End iterator, panics
// with an error wrapping ErrPreconditionViolation. At returns ErrKeyNotFound.
//
// Orderings that implement Transparent[K, Q] additionally accept queries of
// type Q through the *As functions, without constructing a K.
package eytzmap
