// SPDX-License-Identifier: MIT

package randsearch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Defaults mirror the reference experiment: give up after 100000 samples
// in a row fail to improve.
const (
	DefaultUpperLimit  = 100000
	DefaultReportEvery = 50
)

var (
	// ErrNilEvaluator indicates New was called without an evaluator.
	ErrNilEvaluator = errors.New("randsearch: nil evaluator")

	// ErrUpperLimit indicates a negative UpperLimit.
	ErrUpperLimit = errors.New("randsearch: upper limit must be ≥ 0")

	// ErrUnknownStopMode indicates a StopMode outside the declared constants.
	ErrUnknownStopMode = errors.New("randsearch: unknown stop mode")

	// ErrReportEvery indicates a negative ReportEvery.
	ErrReportEvery = errors.New("randsearch: report interval must be ≥ 0")
)

// StopMode selects the termination rule.
type StopMode int

const (
	// StopOnStagnation stops after UpperLimit consecutive non-improving samples.
	StopOnStagnation StopMode = iota
	// StopOnEpochs stops after UpperLimit samples in total.
	StopOnEpochs
)

// String implements fmt.Stringer.
func (m StopMode) String() string {
	switch m {
	case StopOnStagnation:
		return "stagnation"
	case StopOnEpochs:
		return "epochs"
	default:
		return fmt.Sprintf("StopMode(%d)", int(m))
	}
}

// ParseStopMode maps "stagnation" / "epochs" to a StopMode.
func ParseStopMode(s string) (StopMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stagnation", "patience":
		return StopOnStagnation, nil
	case "epochs", "epoch", "budget":
		return StopOnEpochs, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStopMode, s)
	}
}

// Options configures a random search run.
//   - UpperLimit: the epoch budget or the stagnation patience, per Stop.
//   - Stop: which counter UpperLimit applies to.
//   - Seed: RNG seed; 0 selects tour.DefaultSeed.
//   - Ctx: checked between samples; nil means context.Background().
//   - Logger: progress sink; nil disables logging.
//   - ReportEvery: log progress every N samples; 0 disables periodic reports.
type Options struct {
	UpperLimit  int
	Stop        StopMode
	Seed        int64
	Ctx         context.Context
	Logger      *log.Logger
	ReportEvery int
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		UpperLimit:  DefaultUpperLimit,
		Stop:        StopOnStagnation,
		ReportEvery: DefaultReportEvery,
	}
}

// validate rejects nonsensical values; it does not fill defaults.
func (o Options) validate() error {
	if o.UpperLimit < 0 {
		return fmt.Errorf("%w: got %d", ErrUpperLimit, o.UpperLimit)
	}
	if o.Stop != StopOnStagnation && o.Stop != StopOnEpochs {
		return fmt.Errorf("%w: %d", ErrUnknownStopMode, int(o.Stop))
	}
	if o.ReportEvery < 0 {
		return fmt.Errorf("%w: got %d", ErrReportEvery, o.ReportEvery)
	}

	return nil
}
