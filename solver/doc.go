// SPDX-License-Identifier: MIT

// Package solver wires the wisdom-of-crowds pipeline: M independent GA runs
// executed on a bounded worker pool, followed by crowd aggregation.
//
// Run k always uses the generator seeded with tsp.DeriveSeed(Seed, k) and
// writes its expert into slot k, so the result depends only on the seed, the
// options and the input, never on worker scheduling.
//
// Below the command line, Solve is the only code that logs. Metrics and the
// visualisation Renderer are optional and passed as SolveOption values.
package solver
