package layout

/*

# Breadth-first (Eytzinger) layout primitives

This package provides the index arithmetic for a complete binary search tree
stored in breadth-first (level) order in a flat array. It is written as a set
of functional primitives:

- small, composable functions
- index arithmetic only, no storage
- a burden of knowledge on the caller for hot paths

Calling a function with an index or rank outside the tree yields nonsense
results and the error is not detected.

## Shape

A tree holding n real entries is padded to the smallest perfect tree that fits
them. Its capacity is

	C = 2^ceil(log2(n+1)) - 1

and its height (the number of levels) is bits.Len(C). Ranks n..C-1 in the
in-order sense are sentinel slots. They carry no key and compare greater than
any key, so a search never needs a bounds check.

Given 7 slots, the breadth-first (zero based) indices are

	        0
	    1       2
	  3   4   5   6

and the in-order ranks of those same slots are

	        3
	    1       5
	  0   2   4   6

so the backing array for the ranks 0..6 reads [3 1 5 0 2 4 6].

## One based indices

Most of the arithmetic is simplest on one based breadth-first positions
j = i + 1. The root is 1, the children of j are 2j and 2j+1, the depth of j is
bits.Len(j) - 1. A position j at depth d in a tree of height h sits on the
in-order rank

	r + 1 = (2*(j - 2^d) + 1) << (h - 1 - d)

which is what RankOfIndex computes and IndexOfRank inverts using the trailing
zero count of r + 1.

## Descent exit

A search starts at j = 1 and, for h steps, moves to 2j + b, where b is 1 when
the slot is below the query. The exit position j therefore spells the path
taken: one bit per level, 1 meaning "went right". The lower bound is the last
node where the path went left, so shifting off the trailing ones and the zero
that precedes them recovers its position. See ExitRank.

*/
