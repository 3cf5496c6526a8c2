// SPDX-License-Identifier: MIT

package tour

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourevo/distance"
)

// roundScale stabilizes reported lengths to 1e-9 so that the same tour sums to
// the same value regardless of FP contraction on different platforms.
const roundScale = 1e9

// Mode selects whether the closing edge last→first is part of the length.
type Mode int

const (
	// Cycle includes the return edge from the last city to the first.
	Cycle Mode = iota
	// Path sums only the n−1 consecutive edges.
	Path
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Cycle:
		return "cycle"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "cycle" / "path" to a Mode. The empty string means Cycle.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "cycle", "closed":
		return Cycle, nil
	case "path", "open":
		return Path, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Evaluator computes tour lengths against a fixed, pre-validated distance table.
// It holds no mutable state and may be shared by any number of engines.
type Evaluator struct {
	n    int
	mode Mode
	dist *distance.Dense
}

// NewEvaluator validates p once and snapshots it into a dense table.
// Later changes to p are not observed.
//
// Complexity: O(n²).
func NewEvaluator(p distance.Provider, mode Mode) (*Evaluator, error) {
	if mode != Cycle && mode != Path {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	d, err := distance.Materialize(p)
	if err != nil {
		return nil, err
	}

	return &Evaluator{n: d.Size(), mode: mode, dist: d}, nil
}

// Size returns the number of cities every evaluated tour must cover.
func (e *Evaluator) Size() int { return e.n }

// Mode returns the closed/open convention in use.
func (e *Evaluator) Mode() Mode { return e.mode }

// Length returns the total distance of t.
// It returns ErrInvalidTour (wrapped) when t is not a permutation of {0..n-1}.
//
// Complexity: O(n).
func (e *Evaluator) Length(t Tour) (float64, error) {
	if err := Validate(t, e.n); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
		row []float64
	)
	for i = 0; i+1 < e.n; i++ {
		row = e.dist.Row(t[i])
		sum += row[t[i+1]]
	}
	if e.mode == Cycle && e.n > 1 {
		row = e.dist.Row(t[e.n-1])
		sum += row[t[0]]
	}

	return math.Round(sum*roundScale) / roundScale, nil
}
