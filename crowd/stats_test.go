// SPDX-License-Identifier: MIT
package crowd_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/crowdtsp/crowd"
	"github.com/katalvlaran/crowdtsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s := crowd.Summarize([]float64{4, 2, 6, 4})
	require.Equal(t, crowd.Summary{Size: 4, Min: 2, Max: 6, Mean: 4}, s)
	require.Equal(t, crowd.Summary{}, crowd.Summarize(nil))
}

func TestModeRun_Exact(t *testing.T) {
	cases := []struct {
		name      string
		in        []float64
		start, ln int
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{3}, 0, 1},
		{"all distinct", []float64{1, 2, 3}, 0, 1},
		{"middle run", []float64{1, 2, 2, 2, 3, 3}, 1, 3},
		{"first longest wins", []float64{1, 1, 2, 2}, 0, 2},
		{"last run", []float64{1, 2, 5, 5}, 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, ln := crowd.ModeRun(tc.in, 0)
			require.Equal(t, tc.start, start)
			require.Equal(t, tc.ln, ln)
		})
	}
}

func TestModeRun_MatchesBruteForce(t *testing.T) {
	g := tsp.NewRNG(7)
	Repeat(t, 200, func(t *testing.T) {
		vals := make([]float64, 1+g.Index(40))
		var i int
		for i = range vals {
			vals[i] = float64(g.Index(6)) * 0.5
		}
		sort.Float64s(vals)

		counts := make(map[float64]int)
		for _, v := range vals {
			counts[v]++
		}
		var (
			bestLen int
			bestVal float64
		)
		for v, c := range counts {
			if c > bestLen || (c == bestLen && v < bestVal) {
				bestLen, bestVal = c, v
			}
		}

		start, ln := crowd.ModeRun(vals, 0)
		require.Equal(t, bestLen, ln)
		require.Equal(t, bestVal, vals[start])
		require.Equal(t, sort.SearchFloat64s(vals, bestVal), start)
	})
}

func TestModeRun_Tolerance(t *testing.T) {
	in := []float64{1.0, 1.0000001, 1.0000002, 2, 2}

	start, ln := crowd.ModeRun(in, 0)
	require.Equal(t, 3, start)
	require.Equal(t, 2, ln)

	start, ln = crowd.ModeRun(in, 1e-6)
	require.Equal(t, 0, start)
	require.Equal(t, 3, ln)
}
