// SPDX-License-Identifier: MIT

// Package distance defines the contract between tour search and the
// collaborator that knows the cities.
//
// The search core only ever sees n (the number of cities) and pairwise
// distances d(i, j). Both are delivered by a Provider:
//
//   - Dense     : an explicit n×n matrix in flat row-major storage.
//   - Euclidean : distances computed from planar coordinates.
//
// Validate checks a provider once, up front, so that hot loops can trust it:
//
//   - n ≥ 1,
//   - d(i, i) ≈ 0 (within DiagonalTolerance),
//   - every d(i, j) is finite and non-negative.
//
// Symmetry is NOT required; asymmetric instances (ATSP) are accepted.
//
// Materialize converts any Provider into a *Dense so that evaluators can read
// distances from a single slice without interface dispatch per edge.
//
// RandomPoints and CirclePoints generate deterministic instances for tests,
// examples and benchmarks.
package distance
