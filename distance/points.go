// SPDX-License-Identifier: MIT

package distance

import (
	"math"
	"math/rand"
)

// RandomPoints returns n points drawn uniformly from the unit square.
// The sequence is fully determined by rng.
//
// Complexity: O(n).
func RandomPoints(n int, rng *rand.Rand) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)

	var i int
	for i = 0; i < n; i++ {
		pts[i] = Point{X: rng.Float64(), Y: rng.Float64()}
	}

	return pts
}

// CirclePoints returns n points evenly spaced on a circle of the given radius,
// in counter-clockwise order starting at angle 0. Visiting them in index order
// is the optimal closed tour, which makes the instance handy as a test oracle.
//
// Complexity: O(n).
func CirclePoints(n int, radius float64) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)

	var (
		i  int
		th float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: radius * math.Cos(th), Y: radius * math.Sin(th)}
	}

	return pts
}
