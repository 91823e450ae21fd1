// SPDX-License-Identifier: MIT

// Package ga implements one independent genetic-algorithm run over a
// tsp.DistanceTable.
//
// A run keeps a fixed-size population of tours and, for a fixed number of
// generations, replaces it wholesale with offspring:
//
//   - Selection: both parents are drawn uniformly from the fitter half of
//     the population sorted by distance. Parents may repeat and a tour may
//     mate with itself.
//   - Crossover: SCX (sequential constructive crossover). The child grows
//     from parent1's first city by repeatedly appending the nearer of the
//     two parents' next unplaced successors of the last city.
//   - Mutation: RSM (reversal segment mutation) with probability
//     Options.MutationRate, applied before the child's distance is cached.
//
// The best tour of the last generation, rotated so city index 0 is first,
// is the run's expert.
//
// Determinism: every draw comes from the *tsp.RNG passed to Run; the same
// seed and table always produce the same expert.
package ga
