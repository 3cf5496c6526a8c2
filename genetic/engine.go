// SPDX-License-Identifier: MIT

package genetic

import (
	"context"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/tourevo/crossover"
	"github.com/katalvlaran/tourevo/mutation"
	"github.com/katalvlaran/tourevo/tour"
)

// Result is the outcome of a genetic run.
type Result struct {
	RunID uuid.UUID

	// Tour and Distance are the best solution found over the whole run.
	Tour     tour.Tour
	Distance float64

	// InitialBest is the shortest distance in the random initial population.
	InitialBest float64

	// History holds the best distance after each generation.
	History []float64

	// Generations is the number of completed generation cycles.
	Generations int

	// Final summarizes the last population.
	Final Summary
}

// Engine runs the genetic algorithm. It is not safe for concurrent use.
type Engine struct {
	eval    *tour.Evaluator
	opts    Options
	q       quotas
	mutator mutation.Operator
	cross   crossover.Operator
	rng     *rand.Rand
	log     *log.Logger
	id      uuid.UUID

	pop         []Individual
	best        Individual
	initialBest float64
	history     []float64
	generation  int
	stagnation  int
}

// New validates opts, draws PopulationSize random tours, evaluates them and
// records the shortest as the initial best solution.
//
// Complexity: O(N·n) time and memory.
func New(eval *tour.Evaluator, opts Options) (*Engine, error) {
	if eval == nil {
		return nil, ErrNilEvaluator
	}
	q, err := opts.plan()
	if err != nil {
		return nil, err
	}
	mut, err := mutation.New(opts.Mutation)
	if err != nil {
		return nil, err
	}
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}
	var logger = opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var id = uuid.New()

	e := &Engine{
		eval:    eval,
		opts:    opts,
		q:       q,
		mutator: mut,
		cross:   crossover.Ordered{},
		rng:     tour.NewRand(opts.Seed),
		log:     logger.With("run", id.String(), "search", "genetic"),
		id:      id,
		pop:     make([]Individual, 0, q.size),
	}

	var (
		i int
		t tour.Tour
		d float64
	)
	for i = 0; i < q.size; i++ {
		t = tour.Random(eval.Size(), e.rng)
		if d, err = eval.Length(t); err != nil {
			return nil, err
		}
		e.pop = append(e.pop, Individual{Tour: t, Distance: d})
	}

	first := e.pop[minIndex(e.pop)]
	e.best = Individual{Tour: first.Tour.Clone(), Distance: first.Distance}
	e.initialBest = first.Distance

	return e, nil
}

// Step runs one generation cycle and returns the shortest distance in the
// rebuilt population.
func (e *Engine) Step() (float64, error) {
	var err error

	// Rank and keep the elite; their distances are already known.
	sortByDistance(e.pop)
	next := e.pop[:e.q.survivors]

	// Mutants of random survivors, always on a copy.
	for len(next) < e.q.mutantTarget {
		parent := next[e.rng.Intn(e.q.survivors)]
		child := parent.Tour.Clone()
		e.mutator.Mutate(child, e.rng)
		if next, err = e.appendEvaluated(next, child); err != nil {
			return 0, err
		}
	}

	// Children of two distinct survivors.
	for len(next) < e.q.size {
		i, j := e.pickParents()
		child, cerr := e.cross.Cross(next[i].Tour, next[j].Tour, e.rng)
		if cerr != nil {
			return 0, cerr
		}
		if next, err = e.appendEvaluated(next, child); err != nil {
			return 0, err
		}
	}
	e.pop = next

	// Strict improvement only; ties keep the incumbent.
	gen := e.pop[minIndex(e.pop)]
	if gen.Distance < e.best.Distance {
		e.best = Individual{Tour: gen.Tour.Clone(), Distance: gen.Distance}
		e.stagnation = 0
	} else {
		e.stagnation++
	}

	e.history = append(e.history, e.best.Distance)
	e.generation++

	return gen.Distance, nil
}

// appendEvaluated evaluates a newly created tour and appends it to pop.
func (e *Engine) appendEvaluated(pop []Individual, t tour.Tour) ([]Individual, error) {
	d, err := e.eval.Length(t)
	if err != nil {
		return pop, err
	}

	return append(pop, Individual{Tour: t, Distance: d}), nil
}

// pickParents draws two distinct survivor indices uniformly.
// Precondition (checked in plan): survivors ≥ 2 whenever crossover runs.
func (e *Engine) pickParents() (int, int) {
	var i = e.rng.Intn(e.q.survivors)
	var j = e.rng.Intn(e.q.survivors - 1)
	if j >= i {
		j++
	}

	return i, j
}

// Done reports whether Patience consecutive generations failed to improve.
func (e *Engine) Done() bool { return e.stagnation >= e.opts.Patience }

// Run steps until Done or until Options.Ctx is cancelled. On cancellation the
// partial result is returned with the context error.
func (e *Engine) Run() (Result, error) {
	e.log.Info("genetic search started",
		"cities", e.eval.Size(),
		"population", e.q.size,
		"survivors", e.q.survivors,
		"mutation", e.opts.Mutation,
		"patience", e.opts.Patience,
		"initial", e.initialBest)

	var err error
	for !e.Done() {
		if err = e.opts.Ctx.Err(); err != nil {
			e.log.Warn("genetic search cancelled", "generation", e.generation, "err", err)
			return e.result(), err
		}
		if _, err = e.Step(); err != nil {
			return e.result(), err
		}
		if e.opts.ReportEvery > 0 && e.generation%e.opts.ReportEvery == 0 {
			s := Summarize(e.pop)
			e.log.Info("generation",
				"n", e.generation,
				"best", e.best.Distance,
				"population_best", s.Best,
				"mean", s.Mean,
				"stddev", s.StdDev,
				"stagnation", e.stagnation)
		}
	}

	e.log.Info("genetic search finished",
		"generations", e.generation, "best", e.best.Distance, "initial", e.initialBest)

	return e.result(), nil
}

// Best returns a copy of the best individual found so far.
func (e *Engine) Best() Individual {
	return Individual{Tour: e.best.Tour.Clone(), Distance: e.best.Distance}
}

// InitialBest returns the shortest distance of the initial population.
func (e *Engine) InitialBest() float64 { return e.initialBest }

// Population returns a deep copy of the current population.
func (e *Engine) Population() []Individual { return clonePopulation(e.pop) }

// History returns a copy of the convergence history.
func (e *Engine) History() []float64 { return append([]float64(nil), e.history...) }

// Generations returns the number of completed generations.
func (e *Engine) Generations() int { return e.generation }

// Stagnation returns the number of consecutive non-improving generations.
func (e *Engine) Stagnation() int { return e.stagnation }

// RunID identifies this run in logs and results.
func (e *Engine) RunID() uuid.UUID { return e.id }

func (e *Engine) result() Result {
	return Result{
		RunID:       e.id,
		Tour:        e.best.Tour.Clone(),
		Distance:    e.best.Distance,
		InitialBest: e.initialBest,
		History:     e.History(),
		Generations: e.generation,
		Final:       Summarize(e.pop),
	}
}
