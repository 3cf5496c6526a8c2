// SPDX-License-Identifier: MIT

package randsearch

import (
	"context"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/tourevo/tour"
)

// historyPrealloc caps the up-front history allocation for large budgets.
const historyPrealloc = 1 << 16

// Result is the outcome of a run. Tour is nil and Distance is +Inf when no
// sample was drawn.
type Result struct {
	RunID      uuid.UUID
	Tour       tour.Tour
	Distance   float64
	History    []float64
	Iterations int
}

// Search holds all state of one random search run.
// It is not safe for concurrent use.
type Search struct {
	eval *tour.Evaluator
	opts Options
	rng  *rand.Rand
	log  *log.Logger
	id   uuid.UUID

	best       tour.Tour
	bestDist   float64
	history    []float64
	epoch      int
	stagnation int
}

// New validates opts and returns a search that has drawn no samples yet.
func New(eval *tour.Evaluator, opts Options) (*Search, error) {
	if eval == nil {
		return nil, ErrNilEvaluator
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}

	var id = uuid.New()
	var logger = opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Search{
		eval:     eval,
		opts:     opts,
		rng:      tour.NewRand(opts.Seed),
		log:      logger.With("run", id.String(), "search", "random"),
		id:       id,
		bestDist: math.Inf(1),
		history:  make([]float64, 0, min(opts.UpperLimit, historyPrealloc)),
	}, nil
}

// Step draws and evaluates one random tour and returns its distance.
// Step does not consult Done; callers driving the loop themselves decide
// when to stop.
func (s *Search) Step() (float64, error) {
	var cand = tour.Random(s.eval.Size(), s.rng)
	d, err := s.eval.Length(cand)
	if err != nil {
		return 0, err
	}

	if d < s.bestDist {
		s.best = cand
		s.bestDist = d
		s.stagnation = 0
	} else {
		s.stagnation++
	}
	s.epoch++
	s.history = append(s.history, s.bestDist)

	if s.opts.ReportEvery > 0 && s.epoch%s.opts.ReportEvery == 0 {
		s.log.Debug("progress", "epoch", s.epoch, "best", s.bestDist, "stagnation", s.stagnation)
	}

	return d, nil
}

// Done reports whether the configured stopping rule has fired.
func (s *Search) Done() bool {
	switch s.opts.Stop {
	case StopOnEpochs:
		return s.epoch >= s.opts.UpperLimit
	default:
		return s.stagnation >= s.opts.UpperLimit
	}
}

// Run steps until Done or until Options.Ctx is cancelled. On cancellation the
// partial result is returned together with the context error.
func (s *Search) Run() (Result, error) {
	s.log.Info("random search started",
		"cities", s.eval.Size(), "stop", s.opts.Stop, "limit", s.opts.UpperLimit)

	var err error
	for !s.Done() {
		if err = s.opts.Ctx.Err(); err != nil {
			s.log.Warn("random search cancelled", "epoch", s.epoch, "err", err)
			return s.result(), err
		}
		if _, err = s.Step(); err != nil {
			return s.result(), err
		}
	}

	s.log.Info("random search finished", "epochs", s.epoch, "best", s.bestDist)

	return s.result(), nil
}

// Best returns a copy of the best tour so far and its distance.
func (s *Search) Best() (tour.Tour, float64) { return s.best.Clone(), s.bestDist }

// History returns a copy of the convergence history.
func (s *Search) History() []float64 { return append([]float64(nil), s.history...) }

// Epoch returns the number of samples drawn.
func (s *Search) Epoch() int { return s.epoch }

// Stagnation returns the number of consecutive non-improving samples.
func (s *Search) Stagnation() int { return s.stagnation }

// RunID identifies this run in logs and results.
func (s *Search) RunID() uuid.UUID { return s.id }

func (s *Search) result() Result {
	return Result{
		RunID:      s.id,
		Tour:       s.best.Clone(),
		Distance:   s.bestDist,
		History:    s.History(),
		Iterations: s.epoch,
	}
}
