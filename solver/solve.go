// SPDX-License-Identifier: MIT
package solver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/crowdtsp/crowd"
	"github.com/katalvlaran/crowdtsp/ga"
	"github.com/katalvlaran/crowdtsp/tsp"
)

// Renderer receives the closed consensus polyline once the consensus is
// final. It is never called from inside a GA run.
type Renderer interface {
	Render(ctx context.Context, waypoints []tsp.Point) error
}

// Result is the outcome of one pipeline execution.
type Result struct {
	crowd.Result

	// RunID tags the execution in logs.
	RunID string
	// Seed is the base seed the experts were derived from.
	Seed int64
	// Cities is N.
	Cities int
	// Experts holds the expert of run k at index k.
	Experts []tsp.Tour
	// Optimum is the Held–Karp optimum when Options.ExactUpTo covers N.
	Optimum *tsp.Tour
	// Elapsed is the wall-clock time of the whole execution.
	Elapsed time.Duration
}

// Solve runs CrowdSize independent GA searches over t and aggregates their
// experts into a consensus tour.
//
// The first failing run cancels the remaining ones and its error is
// returned; a cancelled ctx returns ctx's error. There is no partial result.
func Solve(ctx context.Context, t *tsp.DistanceTable, opts Options, with ...SolveOption) (*Result, error) {
	var start = time.Now()

	s := settings{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, apply := range with {
		apply(&s)
	}

	if t == nil {
		return nil, fmt.Errorf("nil distance table: %w", ErrInvalidOptions)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	engine, err := ga.New(t, opts.GA)
	if err != nil {
		return nil, err
	}

	var (
		runID   = uuid.NewString()
		log     = s.logger.With("run_id", runID)
		workers = opts.Workers
		experts = make([]tsp.Tour, opts.CrowdSize)
	)
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log.Info("solve started",
		"cities", t.N(),
		"crowd", opts.CrowdSize,
		"workers", workers,
		"population", engine.PopulationSize(),
		"generations", opts.GA.Generations,
		"mutation_rate", opts.GA.MutationRate,
		"seed", opts.Seed,
	)

	// Stage 1: the crowd.
	p := pool.New().WithContext(ctx).WithMaxGoroutines(workers).WithCancelOnError().WithFirstError()
	var k int
	for k = 0; k < opts.CrowdSize; k++ {
		run := k
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			began := time.Now()
			best, err := engine.Run(ctx, tsp.NewRNG(tsp.DeriveSeed(opts.Seed, uint64(run))))
			if err != nil {
				return fmt.Errorf("run %d: %w", run, err)
			}
			experts[run] = best
			s.metrics.observeRun(best.Distance, time.Since(began))
			log.Debug("expert ready", "run", run, "distance", best.Distance)

			return nil
		})
	}
	if err = p.Wait(); err != nil {
		log.Error("crowd failed", "err", err)
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: consensus.
	agg, err := crowd.Aggregate(t, experts, opts.Crowd)
	if err != nil {
		return nil, err
	}
	if err = tsp.ValidateTour(t, agg.Tour); err != nil {
		return nil, fmt.Errorf("consensus tour: %w", err)
	}
	s.metrics.observeConsensus(agg)

	res := &Result{
		Result:  agg,
		RunID:   runID,
		Seed:    opts.Seed,
		Cities:  t.N(),
		Experts: experts,
	}

	// Stage 3: optional reference optimum.
	if t.N() <= opts.ExactUpTo {
		opt, err := tsp.Exact(t)
		if err != nil {
			return nil, err
		}
		res.Optimum = &opt
		log.Info("exact optimum", "distance", opt.Distance, "gap", agg.Tour.Distance-opt.Distance)
	}

	// Stage 4: visualisation.
	if s.renderer != nil {
		if err = s.renderer.Render(ctx, t.Waypoints(agg.Tour.Order, true)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRender, err)
		}
	}

	res.Elapsed = time.Since(start)
	log.Info("consensus ready",
		"distance", agg.Tour.Distance,
		"best_expert", agg.Best.Distance,
		"mode_count", agg.ModeCount,
		"distance_agreement", agg.DistanceAgreement,
		"path_agreement", agg.PathAgreement,
		"rounds", agg.Rounds,
		"elapsed", res.Elapsed,
	)

	return res, nil
}
