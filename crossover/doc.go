// SPDX-License-Identifier: MIT

// Package crossover recombines two parent tours into one child tour.
//
// Ordered crossover keeps a contiguous segment of the first parent in place
// and fills every other position with the remaining cities in the order they
// appear in the second parent:
//
//	p1    = 0 1 [2 3 4] 5 6        start=2, end=5
//	p2    = 6 4 2 0 5 1 3
//	child = 5 1 [2 3 4] 6 0        fill starts at position 5 and wraps
//
// The child is always a permutation of the parents' city set, for every
// segment including the empty one (start == end, child is a rotation of
// p2's order) and the full one (start=0, end=n, child equals p1).
package crossover
