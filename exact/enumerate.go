// SPDX-License-Identifier: MIT

package exact

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tourevo/tour"
)

// MaxCities bounds the instance size accepted by Enumerate (10! ≈ 3.6M tours).
const MaxCities = 10

var (
	// ErrNilEvaluator indicates Enumerate was called without an evaluator.
	ErrNilEvaluator = errors.New("exact: nil evaluator")

	// ErrTooLarge indicates an instance with more than MaxCities cities.
	ErrTooLarge = errors.New("exact: instance too large to enumerate")
)

// Result is the optimum found by Enumerate.
type Result struct {
	Tour     tour.Tour
	Distance float64
	// Visited is the number of tours evaluated.
	Visited int
}

// Enumerate evaluates every distinct tour and returns the shortest; the first
// one found wins ties.
//
// Complexity: O(n·(n−1)!) in Cycle mode, O(n·n!) in Path mode.
func Enumerate(eval *tour.Evaluator) (Result, error) {
	if eval == nil {
		return Result{}, ErrNilEvaluator
	}
	var n = eval.Size()
	if n > MaxCities {
		return Result{}, fmt.Errorf("%w: %d cities, limit %d", ErrTooLarge, n, MaxCities)
	}

	var (
		perm = tour.Identity(n)
		best = Result{Distance: math.Inf(1)}
		lo   int
	)
	if eval.Mode() == tour.Cycle {
		lo = 1
	}

	visit := func() error {
		d, err := eval.Length(perm)
		if err != nil {
			return err
		}
		best.Visited++
		if d < best.Distance {
			best.Distance = d
			best.Tour = perm.Clone()
		}
		return nil
	}
	if err := visit(); err != nil {
		return Result{}, err
	}

	// Heap's algorithm over perm[lo:], iterative form.
	var (
		sub = perm[lo:]
		k   = len(sub)
		c   = make([]int, k)
		i   = 1
	)
	for i < k {
		if c[i] < i {
			if i%2 == 0 {
				sub[0], sub[i] = sub[i], sub[0]
			} else {
				sub[c[i]], sub[i] = sub[i], sub[c[i]]
			}
			if err := visit(); err != nil {
				return Result{}, err
			}
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}

	return best, nil
}
