// Package crowdtsp approximates Travelling Salesman tours with a genetic
// algorithm and a wisdom-of-crowds consensus over many independent runs.
//
// 🚀 What is crowdtsp?
//
//	A small, deterministic, pure-Go optimiser that brings together:
//		• Distance table: Euclidean costs precomputed once over matrix.Dense
//		• Genetic search: SCX crossover, RSM mutation, elitist parent pairing
//		• Crowd consensus: modal distance, positional plurality voting
//		• Reference optimum: Held–Karp for small instances
//		• Pipeline: bounded worker pool, prometheus metrics, slog logging
//
// ✨ Why crowdtsp?
//
//   - Reproducible – one owned RNG per run, seeds derived per run index
//   - Honest confidence – the report states how much of the crowd agreed
//   - Strict errors – sentinel errors per package, matched with errors.Is
//
// Packages:
//
//	matrix/  dense float64 storage and validators
//	tsp/     cities, distance table, tour helpers, RNG, exact solver
//	tsplib/  TSPLIB coordinate reader with a bounded header scan
//	ga/      one independent genetic run
//	crowd/   statistics and consensus voting over experts
//	solver/  the concurrent crowd pipeline
//	report/  console report
//	render/  PNG of the consensus tour
//	config/  layered configuration (YAML, dotenv, environment)
//	cmd/crowdtsp command-line entry point
//
// Quick start:
//
//	in, _ := tsplib.Read("berlin52.tsp")
//	table, _ := in.Table()
//	res, _ := solver.Solve(ctx, table, solver.DefaultOptions())
//	_ = report.Write(os.Stdout, table, res, report.Options{})
package crowdtsp
