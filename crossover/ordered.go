// SPDX-License-Identifier: MIT

package crossover

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tourevo/tour"
)

var (
	// ErrParentMismatch indicates parents of different length or over different city sets.
	ErrParentMismatch = errors.New("crossover: parents are not permutations of the same set")

	// ErrSegmentRange indicates a segment outside 0 ≤ start ≤ end ≤ n.
	ErrSegmentRange = errors.New("crossover: segment out of range")
)

// Operator produces one child from two parents.
type Operator interface {
	Cross(p1, p2 tour.Tour, rng *rand.Rand) (tour.Tour, error)
}

// Ordered is the order-preserving crossover.
type Ordered struct{}

var _ Operator = Ordered{}

// Cross picks start uniformly in [0, n) and end uniformly in [start, n],
// then delegates to OrderedSegment. Parents are not modified.
func (Ordered) Cross(p1, p2 tour.Tour, rng *rand.Rand) (tour.Tour, error) {
	var n = len(p1)
	if n != len(p2) {
		return nil, fmt.Errorf("%w: lengths %d and %d", ErrParentMismatch, n, len(p2))
	}
	if n == 0 {
		return tour.Tour{}, nil
	}
	var start = rng.Intn(n)
	var end = start + rng.Intn(n-start+1)

	return OrderedSegment(p1, p2, start, end)
}

// OrderedSegment builds the child for an explicit segment [start, end):
//  1. copy p1[start:end] into the same positions of the child;
//  2. walk p2 from the front, and put each city not yet in the child into the
//     next free position, scanning from end and wrapping past n to 0.
//
// Complexity: O(n) time, O(n) extra space.
func OrderedSegment(p1, p2 tour.Tour, start, end int) (tour.Tour, error) {
	var n = len(p1)
	if n != len(p2) {
		return nil, fmt.Errorf("%w: lengths %d and %d", ErrParentMismatch, n, len(p2))
	}
	if start < 0 || end < start || end > n {
		return nil, fmt.Errorf("%w: [%d,%d) for n=%d", ErrSegmentRange, start, end, n)
	}
	if n == 0 {
		return tour.Tour{}, nil
	}

	var (
		child  = make(tour.Tour, n)
		used   = make([]bool, n) // city already placed
		filled = make([]bool, n) // position already occupied
		placed int
		i, g   int
	)

	// Stage 1: inherited segment.
	for i = start; i < end; i++ {
		g = p1[i]
		if g < 0 || g >= n || used[g] {
			return nil, fmt.Errorf("%w: first parent repeats or exceeds city %d", ErrParentMismatch, g)
		}
		child[i] = g
		used[g] = true
		filled[i] = true
		placed++
	}

	// Stage 2: fill from the second parent, cyclic from end.
	var pos = end % n
	for _, g = range p2 {
		if g < 0 || g >= n {
			return nil, fmt.Errorf("%w: second parent has city %d", ErrParentMismatch, g)
		}
		if used[g] {
			continue
		}
		for filled[pos] {
			pos = (pos + 1) % n
		}
		child[pos] = g
		used[g] = true
		filled[pos] = true
		placed++
	}

	// Each of the n positions must have received a distinct city.
	if placed != n {
		return nil, fmt.Errorf("%w: child covers %d of %d cities", ErrParentMismatch, placed, n)
	}

	return child, nil
}
