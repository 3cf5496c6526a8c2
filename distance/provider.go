// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"
)

// DiagonalTolerance is the structural tolerance for |d(i, i)|.
const DiagonalTolerance = 1e-12

// Provider supplies the number of cities and the distance between any two of them.
// Implementations must be safe for repeated reads; they are never mutated by
// the search packages.
type Provider interface {
	// Size returns the number of cities n.
	Size() int

	// At returns the distance from city i to city j.
	// It returns ErrOutOfRange when i or j is outside [0, n).
	At(i, j int) (float64, error)
}

// Validate performs a full O(n²) scan of p and returns n on success.
//
// Checks, in order:
//  1. p non-nil and n ≥ 1,
//  2. diagonal within DiagonalTolerance of zero,
//  3. every off-diagonal entry finite and non-negative.
//
// Errors are wrapped with the offending (i, j) pair; use errors.Is to match.
//
// Complexity: O(n²) time, O(1) space.
func Validate(p Provider) (int, error) {
	if p == nil {
		return 0, ErrNilProvider
	}
	var n = p.Size()
	if n <= 0 {
		return 0, ErrEmpty
	}

	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w, err = p.At(i, j)
			if err != nil {
				return 0, fmt.Errorf("d(%d,%d): %w", i, j, err)
			}
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return 0, fmt.Errorf("d(%d,%d)=%g: %w", i, j, w, ErrNonFinite)
			}
			if i == j {
				if math.Abs(w) > DiagonalTolerance {
					return 0, fmt.Errorf("d(%d,%d)=%g: %w", i, j, w, ErrNonZeroDiagonal)
				}
				continue
			}
			if w < 0 {
				return 0, fmt.Errorf("d(%d,%d)=%g: %w", i, j, w, ErrNegativeDistance)
			}
		}
	}

	return n, nil
}

// Materialize validates p and copies it into a new *Dense.
// A *Dense input is validated and cloned, never aliased.
//
// Complexity: O(n²) time and memory.
func Materialize(p Provider) (*Dense, error) {
	n, err := Validate(p)
	if err != nil {
		return nil, err
	}
	if d, ok := p.(*Dense); ok {
		return d.Clone(), nil
	}

	var out = &Dense{n: n, data: make([]float64, n*n)}
	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			// Validate already proved every At succeeds.
			w, _ = p.At(i, j)
			out.data[i*n+j] = w
		}
	}

	return out, nil
}
