// SPDX-License-Identifier: MIT

package mutation

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tourevo/tour"
)

// Operator perturbs a tour in place.
type Operator interface {
	// Kind identifies the operator.
	Kind() Kind

	// Mutate modifies t in place using rng. Tours shorter than 2 are left as is.
	Mutate(t tour.Tour, rng *rand.Rand)
}

// New returns the operator for k.
func New(k Kind) (Operator, error) {
	switch k {
	case Swap:
		return SwapOperator{}, nil
	case Inversion:
		return InversionOperator{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// SwapOperator exchanges the values at two distinct uniformly chosen positions.
type SwapOperator struct{}

// Kind returns Swap.
func (SwapOperator) Kind() Kind { return Swap }

// Mutate applies one random transposition.
func (SwapOperator) Mutate(t tour.Tour, rng *rand.Rand) {
	if len(t) < 2 {
		return
	}
	i, j := pickTwo(len(t), rng)
	SwapAt(t, i, j)
}

// InversionOperator reverses t[lo..hi] for two distinct uniformly chosen positions.
type InversionOperator struct{}

// Kind returns Inversion.
func (InversionOperator) Kind() Kind { return Inversion }

// Mutate applies one random segment reversal.
func (InversionOperator) Mutate(t tour.Tour, rng *rand.Rand) {
	if len(t) < 2 {
		return
	}
	i, j := pickTwo(len(t), rng)
	InvertAt(t, i, j)
}

// SwapAt exchanges t[i] and t[j].
func SwapAt(t tour.Tour, i, j int) {
	t[i], t[j] = t[j], t[i]
}

// InvertAt reverses the inclusive segment between positions i and j.
// The arguments may come in either order.
//
// Complexity: O(|i−j|).
func InvertAt(t tour.Tour, i, j int) {
	var lo, hi = i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	for lo < hi {
		t[lo], t[hi] = t[hi], t[lo]
		lo++
		hi--
	}
}

// pickTwo draws two distinct positions in [0, n) uniformly without replacement.
// Precondition: n ≥ 2.
func pickTwo(n int, rng *rand.Rand) (int, int) {
	var i = rng.Intn(n)
	var j = rng.Intn(n - 1)
	if j >= i {
		j++
	}

	return i, j
}
