// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"
)

// Point is a city location in the plane.
type Point struct {
	X, Y float64
}

// Euclidean is a Provider computing straight-line distances between points.
// Distances are computed on demand; use Materialize to cache them.
type Euclidean struct {
	pts []Point
}

var _ Provider = (*Euclidean)(nil)

// NewEuclidean copies pts into a new provider.
// Returns ErrEmpty for no points and ErrNonFinite for NaN/Inf coordinates.
//
// Complexity: O(n).
func NewEuclidean(pts []Point) (*Euclidean, error) {
	if len(pts) == 0 {
		return nil, ErrEmpty
	}
	var i int
	for i = range pts {
		if !finite(pts[i].X) || !finite(pts[i].Y) {
			return nil, fmt.Errorf("point %d: %w", i, ErrNonFinite)
		}
	}

	return &Euclidean{pts: append([]Point(nil), pts...)}, nil
}

// Size returns the number of points.
func (e *Euclidean) Size() int { return len(e.pts) }

// At returns |pts[i] − pts[j]|.
func (e *Euclidean) At(i, j int) (float64, error) {
	var n = len(e.pts)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("Euclidean(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return math.Hypot(e.pts[i].X-e.pts[j].X, e.pts[i].Y-e.pts[j].Y), nil
}

// Point returns the coordinates of city i.
func (e *Euclidean) Point(i int) (Point, error) {
	if i < 0 || i >= len(e.pts) {
		return Point{}, ErrOutOfRange
	}

	return e.pts[i], nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
