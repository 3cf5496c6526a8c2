package genetic_test

import (
	"bytes"
	"cmp"
	"context"
	"math"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tourevo/distance"
	"github.com/katalvlaran/tourevo/exact"
	"github.com/katalvlaran/tourevo/genetic"
	"github.com/katalvlaran/tourevo/mutation"
	"github.com/katalvlaran/tourevo/tour"
)

// squareWithCenter builds the 5-city instance: unit square corners plus center.
func squareWithCenter(t *testing.T) *tour.Evaluator {
	t.Helper()
	cities, err := distance.NewEuclidean([]distance.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0.5, Y: 0.5},
	})
	require.NoError(t, err)
	ev, err := tour.NewEvaluator(cities, tour.Cycle)
	require.NoError(t, err)
	return ev
}

type EngineSuite struct {
	suite.Suite
	eval *tour.Evaluator
}

func (s *EngineSuite) SetupTest() {
	cities, err := distance.NewEuclidean(distance.RandomPoints(14, tour.NewRand(77)))
	require.NoError(s.T(), err)
	s.eval, err = tour.NewEvaluator(cities, tour.Cycle)
	require.NoError(s.T(), err)
}

func (s *EngineSuite) options() genetic.Options {
	o := genetic.DefaultOptions()
	o.Patience = 60
	o.Seed = 9
	return o
}

// TestGenerationSize checks N=10, s=60, m=20: 6 survivors, 2 mutants, 2 children.
func (s *EngineSuite) TestGenerationSize() {
	o := s.options()
	o.PopulationSize, o.SurvivalRate, o.MutationRate = 10, 60, 20

	e, err := genetic.New(s.eval, o)
	require.NoError(s.T(), err)
	require.Len(s.T(), e.Population(), 10)

	for g := 0; g < 25; g++ {
		_, err = e.Step()
		require.NoError(s.T(), err)
		pop := e.Population()
		require.Len(s.T(), pop, 10)
		for _, ind := range pop {
			require.NoError(s.T(), tour.Validate(ind.Tour, s.eval.Size()))
			d, err := s.eval.Length(ind.Tour)
			require.NoError(s.T(), err)
			require.Equal(s.T(), d, ind.Distance, "stored distance must match the tour")
		}
	}
	require.Equal(s.T(), 25, e.Generations())
}

// TestSurvivorsCarriedOver checks elitism: the best ceil(N·s/100) of the
// previous generation open the next one, unchanged and in order.
func (s *EngineSuite) TestSurvivorsCarriedOver() {
	o := s.options()
	o.PopulationSize, o.SurvivalRate, o.MutationRate = 12, 50, 25
	const survivors = 6

	e, err := genetic.New(s.eval, o)
	require.NoError(s.T(), err)

	for g := 0; g < 10; g++ {
		before := e.Population()
		slices.SortStableFunc(before, func(a, b genetic.Individual) int { return cmp.Compare(a.Distance, b.Distance) })

		genMin, err := e.Step()
		require.NoError(s.T(), err)

		after := e.Population()
		require.Equal(s.T(), before[:survivors], after[:survivors])
		require.LessOrEqual(s.T(), genMin, before[0].Distance, "elitism never loses the incumbent")
	}
}

func (s *EngineSuite) TestRunConvergence() {
	for _, k := range mutation.Kinds() {
		o := s.options()
		o.Mutation = k

		e, err := genetic.New(s.eval, o)
		require.NoError(s.T(), err)
		initial := e.InitialBest()

		res, err := e.Run()
		require.NoError(s.T(), err)

		require.Equal(s.T(), initial, res.InitialBest)
		require.LessOrEqual(s.T(), res.Distance, res.InitialBest, k.String())
		require.Len(s.T(), res.History, res.Generations)
		require.Equal(s.T(), o.Patience, e.Stagnation())
		for i := 1; i < len(res.History); i++ {
			require.LessOrEqual(s.T(), res.History[i], res.History[i-1])
		}
		require.Equal(s.T(), res.Distance, res.History[len(res.History)-1])

		got, err := s.eval.Length(res.Tour)
		require.NoError(s.T(), err)
		require.Equal(s.T(), res.Distance, got)

		require.Equal(s.T(), o.PopulationSize, res.Final.Size)
		require.LessOrEqual(s.T(), res.Distance, res.Final.Best)
	}
}

func (s *EngineSuite) TestSameSeedSameRun() {
	a, err := genetic.New(s.eval, s.options())
	require.NoError(s.T(), err)
	b, err := genetic.New(s.eval, s.options())
	require.NoError(s.T(), err)

	ra, err := a.Run()
	require.NoError(s.T(), err)
	rb, err := b.Run()
	require.NoError(s.T(), err)

	require.Equal(s.T(), ra.Tour, rb.Tour)
	require.Equal(s.T(), ra.History, rb.History)
	require.NotEqual(s.T(), ra.RunID, rb.RunID)
}

func (s *EngineSuite) TestZeroPatience() {
	o := s.options()
	o.Patience = 0
	e, err := genetic.New(s.eval, o)
	require.NoError(s.T(), err)

	res, err := e.Run()
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Generations)
	require.Empty(s.T(), res.History)
	require.Equal(s.T(), res.InitialBest, res.Distance)
}

func (s *EngineSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o := s.options()
	o.Ctx = ctx

	e, err := genetic.New(s.eval, o)
	require.NoError(s.T(), err)
	res, err := e.Run()
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Zero(s.T(), res.Generations)
	require.NoError(s.T(), tour.Validate(res.Tour, s.eval.Size()))
}

func (s *EngineSuite) TestAccessorsReturnCopies() {
	e, err := genetic.New(s.eval, s.options())
	require.NoError(s.T(), err)
	_, err = e.Step()
	require.NoError(s.T(), err)

	best := e.Best()
	best.Tour[0] = -1
	require.NoError(s.T(), tour.Validate(e.Best().Tour, s.eval.Size()))

	pop := e.Population()
	pop[0].Tour[0] = -1
	require.NoError(s.T(), tour.Validate(e.Population()[0].Tour, s.eval.Size()))

	h := e.History()
	h[0] = -1
	require.NotEqual(s.T(), -1.0, e.History()[0])
}

func (s *EngineSuite) TestLogsSummaries() {
	var buf bytes.Buffer
	o := s.options()
	o.Patience = 10
	o.ReportEvery = 5
	o.Logger = log.New(&buf)

	e, err := genetic.New(s.eval, o)
	require.NoError(s.T(), err)
	_, err = e.Run()
	require.NoError(s.T(), err)

	out := buf.String()
	require.Contains(s.T(), out, "genetic search started")
	require.Contains(s.T(), out, "generation")
	require.Contains(s.T(), out, "mean=")
	require.Contains(s.T(), out, "genetic search finished")
	require.Contains(s.T(), out, e.RunID().String())
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

// TestSquareWithCenter_ReachesOptimum compares the GA with brute force on the
// 5-city instance for several seeds and both mutation operators.
func TestSquareWithCenter_ReachesOptimum(t *testing.T) {
	ev := squareWithCenter(t)
	opt, err := exact.Enumerate(ev)
	require.NoError(t, err)
	require.InDelta(t, 3+math.Sqrt2, opt.Distance, 1e-9)

	for _, k := range mutation.Kinds() {
		for seed := int64(1); seed <= 5; seed++ {
			o := genetic.DefaultOptions()
			o.PopulationSize = 20
			o.Patience = 200
			o.Mutation = k
			o.Seed = seed

			e, err := genetic.New(ev, o)
			require.NoError(t, err)
			res, err := e.Run()
			require.NoError(t, err)
			require.InDelta(t, opt.Distance, res.Distance, 1e-9, "mutation=%s seed=%d", k, seed)
		}
	}
}

// TestCircle_FindsPerimeter checks a 10-city circle whose optimum is known.
func TestCircle_FindsPerimeter(t *testing.T) {
	const n = 10
	cities, err := distance.NewEuclidean(distance.CirclePoints(n, 1))
	require.NoError(t, err)
	ev, err := tour.NewEvaluator(cities, tour.Cycle)
	require.NoError(t, err)

	o := genetic.DefaultOptions()
	o.PopulationSize = 60
	o.Patience = 400
	o.Seed = 3

	e, err := genetic.New(ev, o)
	require.NoError(t, err)
	res, err := e.Run()
	require.NoError(t, err)

	perimeter := 2 * n * math.Sin(math.Pi/n)
	require.GreaterOrEqual(t, res.Distance, perimeter-1e-9)
	require.Less(t, res.Distance, res.InitialBest)
}
