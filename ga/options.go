// SPDX-License-Identifier: MIT
package ga

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultGenerations is the number of generation steps per run.
	DefaultGenerations = 100

	// DefaultMutationRate is the per-offspring RSM probability.
	DefaultMutationRate = 0.10

	// minPopulation keeps the fitter half non-empty.
	minPopulation = 2
)

// ErrInvalidOptions is returned by Validate and New for out-of-range options.
var ErrInvalidOptions = errors.New("ga: invalid options")

// Options configures a run.
type Options struct {
	// Generations is the number of generation steps G (≥ 0). With 0 the
	// expert is the best tour of the random initial population.
	Generations int

	// PopulationSize is P. Zero means "use the city count N".
	PopulationSize int

	// MutationRate is the Bernoulli probability pm in [0, 1].
	MutationRate float64
}

// DefaultOptions returns G=100, P=N, pm=0.10.
func DefaultOptions() Options {
	return Options{
		Generations:    DefaultGenerations,
		PopulationSize: 0,
		MutationRate:   DefaultMutationRate,
	}
}

// Validate checks option ranges independently of any instance.
func (o Options) Validate() error {
	if o.Generations < 0 {
		return fmt.Errorf("generations %d < 0: %w", o.Generations, ErrInvalidOptions)
	}
	if o.PopulationSize < 0 || o.PopulationSize == 1 {
		return fmt.Errorf("population %d (need 0 or ≥ %d): %w", o.PopulationSize, minPopulation, ErrInvalidOptions)
	}
	if math.IsNaN(o.MutationRate) || o.MutationRate < 0 || o.MutationRate > 1 {
		return fmt.Errorf("mutation rate %v outside [0,1]: %w", o.MutationRate, ErrInvalidOptions)
	}

	return nil
}

// populationFor resolves P for an instance of n cities.
func (o Options) populationFor(n int) int {
	if o.PopulationSize > 0 {
		return o.PopulationSize
	}

	return n
}
