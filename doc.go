// Package tourevo searches for short tours over a fixed set of cities by
// treating every candidate as a permutation of the city indices.
//
// What is in the box?
//
//	distance/   : Provider contract, dense row-major matrix, Euclidean points
//	tour/       : Tour type, permutation checks, seeded RNG, Evaluator (cycle or path)
//	mutation/   : swap and inversion operators
//	crossover/  : order-preserving crossover (OX)
//	randsearch/ : random-sampling baseline with epoch or stagnation stop
//	genetic/    : generational GA: survivors, mutants, crossover children
//	exact/      : brute-force optimum for small instances (n ≤ 10)
//	config/     : TOML / INI experiment files, logger construction
//
// Both search engines are single-threaded, own one *rand.Rand, and accept a
// context.Context for cooperative cancellation. Progress goes to an optional
// *log.Logger from github.com/charmbracelet/log; each run is tagged with a
// uuid so its records can be told apart.
//
// Quick start:
//
//	cities, _ := distance.NewEuclidean(distance.CirclePoints(20, 1))
//	ev, _ := tour.NewEvaluator(cities, tour.Cycle)
//	eng, _ := genetic.New(ev, genetic.DefaultOptions())
//	res, _ := eng.Run()
//	fmt.Println(res.Distance, res.Tour)
//
// Runs are reproducible: the same Options (including Seed) over the same
// distances produce the same tours and the same history.
package tourevo
