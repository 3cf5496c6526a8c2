package genetic_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourevo/distance"
	"github.com/katalvlaran/tourevo/genetic"
	"github.com/katalvlaran/tourevo/tour"
)

// ExampleEngine_Run evolves tours over a unit square with one city in the
// middle. The shortest closed tour visits the center between two adjacent
// corners: 3 + √2.
func ExampleEngine_Run() {
	cities, err := distance.NewEuclidean([]distance.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0.5, Y: 0.5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ev, err := tour.NewEvaluator(cities, tour.Cycle)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := genetic.DefaultOptions()
	opts.PopulationSize = 20
	opts.Patience = 200
	opts.Seed = 1

	eng, err := genetic.New(ev, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := eng.Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("best=%.4f optimal=%t\n", res.Distance, math.Abs(res.Distance-(3+math.Sqrt2)) < 1e-9)
	fmt.Println("no worse than start:", res.Distance <= res.InitialBest)
	// Output:
	// best=4.4142 optimal=true
	// no worse than start: true
}
