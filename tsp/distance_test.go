// SPDX-License-Identifier: MIT
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/crowdtsp/matrix"
	"github.com/katalvlaran/crowdtsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestNewDistanceTable_Invariants(t *testing.T) {
	dt := mustTable(t, circleCities(12))
	require.Equal(t, 12, dt.N())

	var i, j int
	for i = 0; i < dt.N(); i++ {
		require.Zero(t, dt.Between(i, i))
		for j = 0; j < dt.N(); j++ {
			require.Equal(t, dt.Between(i, j), dt.Between(j, i))
			require.GreaterOrEqual(t, dt.Between(i, j), 0.0)
		}
	}

	m := dt.Matrix()
	require.NoError(t, matrix.ValidateSymmetric(m, 0))
	require.NoError(t, matrix.ValidateZeroDiagonal(m, 0))
}

func TestNewDistanceTable_Euclidean(t *testing.T) {
	dt := mustTable(t, []tsp.City{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 3, Y: 4}})
	require.Equal(t, 5.0, dt.Between(0, 1))
}

func TestNewDistanceTable_SortsByIdentifier(t *testing.T) {
	dt := mustTable(t, []tsp.City{
		{ID: 30, X: 3, Y: 0},
		{ID: 10, X: 1, Y: 0},
		{ID: 20, X: 2, Y: 0},
	})
	require.Equal(t, 10, dt.ID(0))
	require.Equal(t, 20, dt.ID(1))
	require.Equal(t, 30, dt.ID(2))

	idx, ok := dt.Index(30)
	require.True(t, ok)
	require.Equal(t, 2, idx)
	_, ok = dt.Index(99)
	require.False(t, ok)

	require.Equal(t, []int{30, 10}, dt.IDs([]int{2, 0}))
	require.Equal(t, tsp.City{ID: 20, X: 2, Y: 0}, dt.City(1))
}

func TestNewDistanceTable_Errors(t *testing.T) {
	cases := []struct {
		name   string
		cities []tsp.City
		want   error
	}{
		{"empty", nil, tsp.ErrTooFewCities},
		{"single", []tsp.City{{ID: 1}}, tsp.ErrTooFewCities},
		{"zero id", []tsp.City{{ID: 0}, {ID: 1}}, tsp.ErrInvalidCityID},
		{"duplicate", []tsp.City{{ID: 2}, {ID: 2, X: 1}}, tsp.ErrDuplicateCity},
		{"nan", []tsp.City{{ID: 1, X: math.NaN()}, {ID: 2}}, tsp.ErrNonFiniteCoordinate},
		{"inf", []tsp.City{{ID: 1}, {ID: 2, Y: math.Inf(-1)}}, tsp.ErrNonFiniteCoordinate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.NewDistanceTable(tc.cities)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewDistanceTable_DoesNotModifyInput(t *testing.T) {
	in := []tsp.City{{ID: 2, X: 1}, {ID: 1}}
	_ = mustTable(t, in)
	require.Equal(t, 2, in[0].ID)
}

func TestDistanceTable_Waypoints(t *testing.T) {
	dt := mustTable(t, squareWithCenter())
	open := dt.Waypoints([]int{0, 1, 2}, false)
	require.Equal(t, []tsp.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, open)

	closed := dt.Waypoints([]int{0, 1, 2}, true)
	require.Len(t, closed, 4)
	require.Equal(t, closed[0], closed[3])
}
