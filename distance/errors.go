// SPDX-License-Identifier: MIT

package distance

import "errors"

// Sentinel errors returned by constructors, accessors and Validate.
var (
	// ErrEmpty indicates a provider (or constructor input) with zero cities.
	ErrEmpty = errors.New("distance: no cities")

	// ErrOutOfRange indicates a city index outside [0, n).
	ErrOutOfRange = errors.New("distance: city index out of range")

	// ErrNotSquare indicates FromRows input whose rows differ in length from n.
	ErrNotSquare = errors.New("distance: matrix is not square")

	// ErrNonZeroDiagonal indicates d(i, i) farther than DiagonalTolerance from zero.
	ErrNonZeroDiagonal = errors.New("distance: diagonal not zero")

	// ErrNegativeDistance indicates d(i, j) < 0.
	ErrNegativeDistance = errors.New("distance: negative distance")

	// ErrNonFinite indicates NaN or ±Inf in the matrix or coordinates.
	ErrNonFinite = errors.New("distance: NaN or Inf encountered")

	// ErrNilProvider indicates a nil Provider was passed.
	ErrNilProvider = errors.New("distance: nil provider")
)
