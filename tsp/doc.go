// SPDX-License-Identifier: MIT

// Package tsp provides the Travelling Salesman primitives shared by the
// genetic search and the crowd aggregation.
//
// It includes:
//
//   - City and DistanceTable: a symmetric Euclidean table precomputed once
//     from city coordinates. Cities are addressed by a zero-based index that
//     follows ascending city identifier, so index 0 is always the smallest id.
//
//   - Tour helpers: cyclic length (TotalDistance), canonical rotation
//     (Canonicalize), permutation checks and in-place segment reversal.
//
//   - RNG: one owned *rand.Rand with named distributions (Index, Bernoulli,
//     Shuffle) and SplitMix64 seed derivation for independent run streams.
//
//   - TourCost: a fully validated cost over any matrix.Matrix, used to audit
//     cached distances.
//
//   - Exact: Held–Karp dynamic programming for small instances, used as a
//     reference optimum.
//
// All functions are deterministic; randomness only enters through an
// explicitly passed *RNG.
package tsp
