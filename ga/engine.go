// SPDX-License-Identifier: MIT
package ga

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/crowdtsp/tsp"
)

// Engine runs independent GA searches over one table. It holds no mutable
// state, so one Engine may serve concurrent Run calls as long as each call
// owns its *tsp.RNG.
type Engine struct {
	table *tsp.DistanceTable
	opts  Options
	size  int
}

// New validates opts against t and returns an Engine.
//
// Errors: ErrInvalidOptions (wrapped with details).
func New(t *tsp.DistanceTable, opts Options) (*Engine, error) {
	if t == nil {
		return nil, fmt.Errorf("nil distance table: %w", ErrInvalidOptions)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	var size = opts.populationFor(t.N())
	if size < minPopulation {
		return nil, fmt.Errorf("population %d < %d: %w", size, minPopulation, ErrInvalidOptions)
	}

	return &Engine{table: t, opts: opts, size: size}, nil
}

// PopulationSize returns the resolved P.
func (e *Engine) PopulationSize() int { return e.size }

// Options returns the options the engine was built with.
func (e *Engine) Options() Options { return e.opts }

// Run executes one independent search and returns its expert: the best tour
// of the final population in canonical rotation.
//
// ctx is checked between generations; on cancellation ctx.Err() is returned
// wrapped with the generation reached.
//
// Complexity: O(G · P · N) time beyond crossover scans, O(P · N) space.
func (e *Engine) Run(ctx context.Context, rng *tsp.RNG) (tsp.Tour, error) {
	var (
		pop  = e.initialize(rng)
		next = make([]tsp.Tour, e.size)
		half = e.size / 2
		g    int
		i    int
		a, b int
	)

	for g = 0; g < e.opts.Generations; g++ {
		if err := ctx.Err(); err != nil {
			return tsp.Tour{}, fmt.Errorf("ga: generation %d: %w", g, err)
		}
		sortPopulation(pop)
		for i = 0; i < e.size; i++ {
			a = rng.Index(half)
			b = rng.Index(half)
			next[i] = e.offspring(rng, pop[a], pop[b])
		}
		pop, next = next, pop
	}

	return e.finalize(pop), nil
}

// initialize builds P independent random permutations with cached distance.
func (e *Engine) initialize(rng *tsp.RNG) []tsp.Tour {
	pop := make([]tsp.Tour, e.size)
	var i int
	for i = range pop {
		pop[i] = tsp.NewTour(e.table, rng.Perm(e.table.N()))
	}

	return pop
}

// offspring produces one child; the mutation flag is drawn before crossover.
func (e *Engine) offspring(rng *tsp.RNG, p1, p2 tsp.Tour) tsp.Tour {
	var mutate = rng.Bernoulli(e.opts.MutationRate)
	child := Crossover(e.table, p1.Order, p2.Order)
	if mutate {
		Mutate(rng, child)
	}

	return tsp.NewTour(e.table, child)
}

// finalize picks the best tour and rotates it to start at index 0.
func (e *Engine) finalize(pop []tsp.Tour) tsp.Tour {
	sortPopulation(pop)
	best := pop[0].Clone()
	tsp.Canonicalize(best.Order)

	return tsp.NewTour(e.table, best.Order)
}

// sortPopulation orders tours ascending by distance; equal distances keep
// their relative order.
func sortPopulation(pop []tsp.Tour) {
	sort.SliceStable(pop, func(a, b int) bool { return pop[a].Distance < pop[b].Distance })
}
