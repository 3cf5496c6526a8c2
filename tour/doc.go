// SPDX-License-Identifier: MIT

// Package tour holds the representation shared by every search strategy:
// a Tour is a permutation of the city indices {0..n-1}, and an Evaluator
// turns a Tour into its length under a distance.Provider.
//
// Invariant: every Tour produced by this module is a permutation. Validate
// is the single authority on that property; Evaluator.Length refuses any
// input that fails it with ErrInvalidTour instead of returning a made-up
// distance.
//
// Closed vs. open tours:
//
//	Cycle : the edge from the last city back to the first is included (default).
//	Path  : only the n−1 consecutive edges are summed.
//
// The convention belongs to whoever supplies the distances; pass the one
// they use to NewEvaluator.
//
// Randomness: NewRand applies the seed policy used across the module
// (seed 0 selects a fixed default stream) so runs are reproducible by
// default. A *rand.Rand is not goroutine-safe; give each engine its own.
package tour
