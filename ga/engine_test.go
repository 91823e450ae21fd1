// SPDX-License-Identifier: MIT
package ga_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/crowdtsp/ga"
	"github.com/katalvlaran/crowdtsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, ga.DefaultOptions().Validate())

	cases := []struct {
		name string
		mut  func(o *ga.Options)
	}{
		{"negative generations", func(o *ga.Options) { o.Generations = -1 }},
		{"population one", func(o *ga.Options) { o.PopulationSize = 1 }},
		{"negative population", func(o *ga.Options) { o.PopulationSize = -3 }},
		{"rate above one", func(o *ga.Options) { o.MutationRate = 1.5 }},
		{"negative rate", func(o *ga.Options) { o.MutationRate = -0.1 }},
		{"nan rate", func(o *ga.Options) { o.MutationRate = math.NaN() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := ga.DefaultOptions()
			tc.mut(&o)
			require.ErrorIs(t, o.Validate(), ga.ErrInvalidOptions)
		})
	}
}

func TestNew_ResolvesPopulation(t *testing.T) {
	dt := mustTable(t, circleCities(9))
	e, err := ga.New(dt, ga.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 9, e.PopulationSize())

	o := ga.DefaultOptions()
	o.PopulationSize = 30
	e, err = ga.New(dt, o)
	require.NoError(t, err)
	require.Equal(t, 30, e.PopulationSize())

	_, err = ga.New(nil, o)
	require.ErrorIs(t, err, ga.ErrInvalidOptions)
}

func TestRun_ExpertIsCanonicalPermutation(t *testing.T) {
	dt := mustTable(t, circleCities(15))
	e, err := ga.New(dt, ga.DefaultOptions())
	require.NoError(t, err)

	Repeat(t, 5, func(t *testing.T) {
		best, err := e.Run(context.Background(), tsp.NewRNG(seedDet))
		require.NoError(t, err)
		require.NoError(t, tsp.ValidatePermutation(best.Order, dt.N()))
		require.Equal(t, 0, best.Order[0])
		require.NoError(t, tsp.ValidateTour(dt, best))
	})
}

func TestRun_Deterministic(t *testing.T) {
	dt := mustTable(t, circleCities(20))
	e, err := ga.New(dt, ga.DefaultOptions())
	require.NoError(t, err)

	a, err := e.Run(context.Background(), tsp.NewRNG(seedDet))
	require.NoError(t, err)
	b, err := e.Run(context.Background(), tsp.NewRNG(seedDet))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRun_BeatsRandomTours(t *testing.T) {
	dt := mustTable(t, circleCities(20))
	e, err := ga.New(dt, ga.DefaultOptions())
	require.NoError(t, err)
	best, err := e.Run(context.Background(), tsp.NewRNG(seedDet))
	require.NoError(t, err)

	g := tsp.NewRNG(seedDet + 1)
	var (
		sum float64
		i   int
	)
	for i = 0; i < 50; i++ {
		sum += tsp.TotalDistance(dt, g.Perm(dt.N()))
	}
	require.Less(t, best.Distance, sum/50)
}

func TestRun_SquareWithCenterReachesOptimum(t *testing.T) {
	dt := mustTable(t, squareWithCenter())
	opts := ga.DefaultOptions()
	opts.PopulationSize = 50
	e, err := ga.New(dt, opts)
	require.NoError(t, err)

	best, err := e.Run(context.Background(), tsp.NewRNG(seedDet))
	require.NoError(t, err)

	opt, err := tsp.Exact(dt)
	require.NoError(t, err)
	require.InDelta(t, opt.Distance, best.Distance, 1e-9)
	require.InDelta(t, 3+math.Sqrt2, best.Distance, 1e-9)
}

func TestRun_TwoCities(t *testing.T) {
	dt := mustTable(t, []tsp.City{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 3, Y: 4}})
	e, err := ga.New(dt, ga.DefaultOptions())
	require.NoError(t, err)
	best, err := e.Run(context.Background(), tsp.NewRNG(seedDet))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, best.Order)
	require.Equal(t, 10.0, best.Distance)
}

func TestRun_ZeroGenerations(t *testing.T) {
	dt := mustTable(t, circleCities(6))
	opts := ga.DefaultOptions()
	opts.Generations = 0
	e, err := ga.New(dt, opts)
	require.NoError(t, err)
	best, err := e.Run(context.Background(), tsp.NewRNG(seedDet))
	require.NoError(t, err)
	require.NoError(t, tsp.ValidatePermutation(best.Order, 6))
}

func TestRun_Cancelled(t *testing.T) {
	dt := mustTable(t, circleCities(6))
	e, err := ga.New(dt, ga.DefaultOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Run(ctx, tsp.NewRNG(seedDet))
	require.ErrorIs(t, err, context.Canceled)
}
