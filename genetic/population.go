// SPDX-License-Identifier: MIT

package genetic

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tourevo/tour"
)

// Individual is a tour together with its evaluated distance.
type Individual struct {
	Tour     tour.Tour
	Distance float64
}

// Summary describes the distance distribution of one population.
type Summary struct {
	Size   int
	Best   float64
	Worst  float64
	Mean   float64
	StdDev float64 // population standard deviation
}

// Summarize computes a Summary over pop. An empty population yields
// Size 0 and NaN statistics.
//
// Complexity: O(len(pop)).
func Summarize(pop []Individual) Summary {
	if len(pop) == 0 {
		nan := math.NaN()
		return Summary{Best: nan, Worst: nan, Mean: nan, StdDev: nan}
	}
	xs := make([]float64, len(pop))
	for i := range pop {
		xs[i] = pop[i].Distance
	}
	mean, sd := stat.PopMeanStdDev(xs, nil)

	return Summary{
		Size:   len(pop),
		Best:   floats.Min(xs),
		Worst:  floats.Max(xs),
		Mean:   mean,
		StdDev: sd,
	}
}

// sortByDistance orders pop ascending; equal distances keep their order.
func sortByDistance(pop []Individual) {
	slices.SortStableFunc(pop, func(a, b Individual) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}

// minIndex returns the index of the shortest individual, first one on ties.
// Precondition: len(pop) > 0.
func minIndex(pop []Individual) int {
	var best = 0
	for i := 1; i < len(pop); i++ {
		if pop[i].Distance < pop[best].Distance {
			best = i
		}
	}

	return best
}

// clonePopulation deep-copies pop so callers cannot alias engine state.
func clonePopulation(pop []Individual) []Individual {
	out := make([]Individual, len(pop))
	for i := range pop {
		out[i] = Individual{Tour: pop[i].Tour.Clone(), Distance: pop[i].Distance}
	}

	return out
}
