// SPDX-License-Identifier: MIT
package solver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/crowdtsp/crowd"
	"github.com/katalvlaran/crowdtsp/ga"
	"github.com/katalvlaran/crowdtsp/tsp"
)

// DefaultCrowdSize is the number of independent GA runs M.
const DefaultCrowdSize = 100

var (
	// ErrInvalidOptions is returned for out-of-range pipeline options.
	ErrInvalidOptions = errors.New("solver: invalid options")

	// ErrRender is returned when the Renderer fails.
	ErrRender = errors.New("solver: render failed")
)

// Options configures one pipeline execution.
type Options struct {
	// Seed is the base seed; run k uses tsp.DeriveSeed(Seed, k).
	Seed int64

	// CrowdSize is M, the number of independent GA runs (≥ 1).
	CrowdSize int

	// Workers bounds concurrent runs. Zero means runtime.GOMAXPROCS(0).
	Workers int

	// ExactUpTo enables the Held–Karp reference optimum for instances with
	// at most this many cities (capped at tsp.MaxExactCities). Zero disables.
	ExactUpTo int

	GA    ga.Options
	Crowd crowd.Options
}

// DefaultOptions returns M=100, GA and crowd defaults, seed 0.
func DefaultOptions() Options {
	return Options{
		CrowdSize: DefaultCrowdSize,
		GA:        ga.DefaultOptions(),
		Crowd:     crowd.DefaultOptions(),
	}
}

// Validate checks the pipeline-level options and the nested GA and crowd
// options.
func (o Options) Validate() error {
	if o.CrowdSize < 1 {
		return fmt.Errorf("crowd size %d < 1: %w", o.CrowdSize, ErrInvalidOptions)
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers %d < 0: %w", o.Workers, ErrInvalidOptions)
	}
	if o.ExactUpTo < 0 || o.ExactUpTo > tsp.MaxExactCities {
		return fmt.Errorf("exact limit %d outside [0,%d]: %w", o.ExactUpTo, tsp.MaxExactCities, ErrInvalidOptions)
	}
	if err := o.GA.Validate(); err != nil {
		return err
	}

	return o.Crowd.Validate()
}

// settings collects the optional collaborators of Solve.
type settings struct {
	logger   *slog.Logger
	metrics  *Metrics
	renderer Renderer
}

// SolveOption customizes Solve's collaborators.
type SolveOption func(*settings)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) SolveOption {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}
	return func(s *settings) { s.logger = l }
}

// WithMetrics attaches prometheus collectors. Panics on nil.
func WithMetrics(m *Metrics) SolveOption {
	if m == nil {
		panic("solver: WithMetrics(nil)")
	}
	return func(s *settings) { s.metrics = m }
}

// WithRenderer attaches the visualisation collaborator. Panics on nil.
func WithRenderer(r Renderer) SolveOption {
	if r == nil {
		panic("solver: WithRenderer(nil)")
	}
	return func(s *settings) { s.renderer = r }
}
