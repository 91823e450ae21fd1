// SPDX-License-Identifier: MIT

// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/crowdtsp/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(42)

	// epsLoose is a relaxed tolerance for geometric comparisons.
	epsLoose = 1e-9
)

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// squareWithCenter returns the unit square plus its centre, ids 1..5.
func squareWithCenter() []tsp.City {
	return []tsp.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 1, Y: 0},
		{ID: 3, X: 1, Y: 1},
		{ID: 4, X: 0, Y: 1},
		{ID: 5, X: 0.5, Y: 0.5},
	}
}

// circleCities places n cities on a gently rippled circle, ids 1..n.
func circleCities(n int) []tsp.City {
	out := make([]tsp.City, n)
	var (
		i  int
		th float64
		r  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 10 + 0.25*float64(i%3) // tiny ripple to avoid symmetry ties
		out[i] = tsp.City{ID: i + 1, X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return out
}

// mustTable builds a DistanceTable or fails the test.
func mustTable(t *testing.T, cities []tsp.City) *tsp.DistanceTable {
	t.Helper()
	dt, err := tsp.NewDistanceTable(cities)
	require.NoError(t, err)

	return dt
}
