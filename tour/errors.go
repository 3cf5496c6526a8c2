// SPDX-License-Identifier: MIT

package tour

import "errors"

var (
	// ErrInvalidTour indicates a sequence that is not a permutation of {0..n-1}.
	ErrInvalidTour = errors.New("tour: not a permutation of the city set")

	// ErrUnknownMode indicates a Mode value outside {Cycle, Path}.
	ErrUnknownMode = errors.New("tour: unknown mode")
)
