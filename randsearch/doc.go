// SPDX-License-Identifier: MIT

// Package randsearch is the baseline against which smarter searches are
// measured: draw uniformly random tours, keep the shortest one seen.
//
// Each Step samples one permutation (every ordering equally likely),
// evaluates it, and replaces the best tour only on strict improvement. The
// best distance so far is appended to the convergence history after every
// step, so the history is non-increasing and has one entry per sample.
//
// Two stopping modes, exactly one active per run:
//
//	StopOnEpochs      : stop after UpperLimit samples (fixed budget).
//	StopOnStagnation  : stop after UpperLimit consecutive non-improving samples.
//
// With UpperLimit == 0 no sample is drawn: the result has a nil tour,
// +Inf distance and an empty history.
//
// Cancellation is cooperative: Run checks Options.Ctx between samples.
package randsearch
