// SPDX-License-Identifier: MIT

// Package exact finds the optimal tour of small instances by enumeration.
//
// It exists as ground truth for the heuristic searches: on instances with at
// most MaxCities cities, Enumerate visits every distinct tour and returns the
// shortest one.
//
//   - Cycle mode fixes city 0 in front, since rotations of a closed tour have
//     equal length: (n−1)! tours.
//   - Path mode enumerates all n! orderings.
//
// Permutations are generated in place with Heap's algorithm, one swap per tour.
package exact
