// SPDX-License-Identifier: MIT

// Package mutation implements local perturbations of a single tour.
//
// Two operators are available, selected through the closed Kind enum:
//
//	Swap      : exchange the cities at two distinct random positions.
//	Inversion : reverse the contiguous segment between two distinct random
//	            positions, both ends inclusive, never wrapping around.
//
// Both act in place on the slice they receive. Callers that keep the
// original (the genetic engine keeps survivors) must pass a Clone.
//
// Either operator maps a permutation to a permutation of the same set:
// a transposition and a segment reversal only move values around.
package mutation
