// SPDX-License-Identifier: MIT

package genetic

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/tourevo/mutation"
)

// Defaults reproduce the reference experiment.
const (
	DefaultPopulationSize = 30
	DefaultSurvivalRate   = 65
	DefaultMutationRate   = 15
	DefaultPatience       = 1000
	DefaultReportEvery    = 50
)

// Sentinel configuration errors. All are returned by New before any work is done.
var (
	ErrNilEvaluator    = errors.New("genetic: nil evaluator")
	ErrPopulationSize  = errors.New("genetic: population size must be ≥ 1")
	ErrRates           = errors.New("genetic: rates must be ≥ 0 and survival+mutation ≤ 100")
	ErrNoSurvivors     = errors.New("genetic: survival rate leaves no survivors")
	ErrTooFewSurvivors = errors.New("genetic: crossover needs at least two survivors")
	ErrPatience        = errors.New("genetic: patience must be ≥ 0")
	ErrReportEvery     = errors.New("genetic: report interval must be ≥ 0")
)

// Options configures one genetic run.
//
// SurvivalRate and MutationRate are percentages of PopulationSize; the rest,
// 100 − SurvivalRate − MutationRate, is filled by crossover.
type Options struct {
	// PopulationSize is N, the number of individuals per generation.
	PopulationSize int

	// SurvivalRate is s, the percentage of top individuals kept unchanged.
	SurvivalRate int

	// MutationRate is m, the percentage of the population made of mutants.
	MutationRate int

	// Mutation selects the mutation operator.
	Mutation mutation.Kind

	// Patience is the number of consecutive non-improving generations
	// after which the run stops.
	Patience int

	// Seed drives the run's only RNG; 0 selects tour.DefaultSeed.
	Seed int64

	// Ctx is checked between generations. nil means context.Background().
	Ctx context.Context

	// Logger receives progress records; nil disables logging.
	Logger *log.Logger

	// ReportEvery logs a population summary every N generations; 0 disables it.
	ReportEvery int
}

// DefaultOptions returns the reference configuration:
// 30 tours, 65% survivors, 15% mutants (inversion), 20% children,
// stop after 1000 generations without improvement.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		SurvivalRate:   DefaultSurvivalRate,
		MutationRate:   DefaultMutationRate,
		Mutation:       mutation.Inversion,
		Patience:       DefaultPatience,
		ReportEvery:    DefaultReportEvery,
	}
}

// CrossoverRate returns 100 − SurvivalRate − MutationRate.
func (o Options) CrossoverRate() int { return 100 - o.SurvivalRate - o.MutationRate }

// quotas holds the population breakpoints derived from Options.
type quotas struct {
	survivors    int // ceil(N·s/100)
	mutantTarget int // floor(N·(s+m)/100)
	size         int // N
}

// crossoverSlots is how many children each generation needs.
func (q quotas) crossoverSlots() int {
	return q.size - max(q.survivors, q.mutantTarget)
}

// plan validates o and derives the generation quotas.
func (o Options) plan() (quotas, error) {
	var q quotas
	if o.PopulationSize < 1 {
		return q, fmt.Errorf("%w: got %d", ErrPopulationSize, o.PopulationSize)
	}
	if o.SurvivalRate < 0 || o.MutationRate < 0 || o.SurvivalRate+o.MutationRate > 100 {
		return q, fmt.Errorf("%w: s=%d m=%d", ErrRates, o.SurvivalRate, o.MutationRate)
	}
	if o.Patience < 0 {
		return q, fmt.Errorf("%w: got %d", ErrPatience, o.Patience)
	}
	if o.ReportEvery < 0 {
		return q, fmt.Errorf("%w: got %d", ErrReportEvery, o.ReportEvery)
	}
	if _, err := mutation.New(o.Mutation); err != nil {
		return q, err
	}

	q = quotas{
		survivors:    (o.PopulationSize*o.SurvivalRate + 99) / 100,
		mutantTarget: o.PopulationSize * (o.SurvivalRate + o.MutationRate) / 100,
		size:         o.PopulationSize,
	}
	if q.survivors == 0 {
		return q, fmt.Errorf("%w: N=%d s=%d", ErrNoSurvivors, o.PopulationSize, o.SurvivalRate)
	}
	if q.crossoverSlots() > 0 && q.survivors < 2 {
		return q, fmt.Errorf("%w: N=%d s=%d gives %d", ErrTooFewSurvivors, o.PopulationSize, o.SurvivalRate, q.survivors)
	}

	return q, nil
}
