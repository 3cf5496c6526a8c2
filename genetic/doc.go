// SPDX-License-Identifier: MIT

// Package genetic evolves a population of tours toward short ones.
//
// A generation is rebuilt from three sources, in this order:
//
//  1. Survivors : the ceil(N·s/100) shortest tours after a stable sort,
//     carried over unchanged with their known distances (elitism).
//  2. Mutants   : copies of random survivors (drawn with replacement) put
//     through the configured mutation operator, until the population holds
//     floor(N·(s+m)/100) individuals.
//  3. Children  : ordered-crossover offspring of two distinct random
//     survivors, until the population holds N individuals.
//
// Identical tours are not removed, so every generation has exactly N members.
//
// The best tour ever seen is replaced only on strict improvement. Its distance
// is appended to the convergence history once per generation, so the history
// never increases. A run ends when Patience consecutive generations fail to
// improve the best tour.
//
// The Engine owns every piece of run state (population, best tour, history,
// RNG). Engines share nothing with each other, so separate instances may run
// in separate goroutines.
package genetic
