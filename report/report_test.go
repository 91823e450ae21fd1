// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crowdtsp/crowd"
	"github.com/katalvlaran/crowdtsp/report"
	"github.com/katalvlaran/crowdtsp/solver"
	"github.com/katalvlaran/crowdtsp/tsp"
)

func fixture(t *testing.T) (*tsp.DistanceTable, *solver.Result) {
	t.Helper()
	dt, err := tsp.NewDistanceTable([]tsp.City{
		{ID: 10, X: 0, Y: 0},
		{ID: 20, X: 1, Y: 0},
		{ID: 30, X: 1, Y: 1},
		{ID: 40, X: 0, Y: 1},
	})
	require.NoError(t, err)

	tour := tsp.NewTour(dt, []int{0, 1, 2, 3})
	res := &solver.Result{
		Result: crowd.Result{
			Summary:           crowd.Summary{Size: 4, Min: 4, Max: 4.828427, Mean: 4.25},
			Best:              tour,
			Tour:              tour,
			ModalDistance:     4,
			ModeCount:         3,
			DeltaFromMean:     0.25,
			DistanceAgreement: 0.75,
			PathAgreement:     1,
			Rounds:            2,
			Survivors:         3,
		},
		RunID:   "run-1",
		Seed:    7,
		Cities:  4,
		Elapsed: 1500 * time.Millisecond,
	}

	return dt, res
}

func TestWrite_Plain(t *testing.T) {
	dt, res := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, dt, res, report.Options{}))

	out := buf.String()
	require.Contains(t, out, "This crowd has 4 members over 4 cities. The min is 4.000000 and the max is 4.828427.")
	require.Contains(t, out, "around 4.250000 in length")
	require.Contains(t, out, "10 -> 20 -> 30 -> 40 -> 10")
	require.Contains(t, out, "The actual distance of this tour is 4.000000, 0.250000 less than originally projected")
	require.Contains(t, out, "equal to the best expert path, 4.000000.")
	require.Contains(t, out, "75.00% of the crowd")
	require.Contains(t, out, "and 100.00% of them")
	require.Contains(t, out, "Seed 7, run run-1. Execution took 1.5s.")
	require.NotContains(t, out, "exact optimum")
	require.NotContains(t, out, "\x1b[")
}

func TestWrite_ComparesWithBest(t *testing.T) {
	dt, res := fixture(t)
	res.Best.Distance = 2.5
	res.DeltaFromBest = res.Tour.Distance - res.Best.Distance

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, dt, res, report.Options{Precision: 2}))
	require.Contains(t, buf.String(), "and 1.50 more than the best expert path, 2.50.")

	res.Best.Distance = 5.5
	res.DeltaFromBest = res.Tour.Distance - res.Best.Distance
	buf.Reset()
	require.NoError(t, report.Write(&buf, dt, res, report.Options{Precision: 2}))
	require.Contains(t, buf.String(), "and 1.50 less than the best expert path, 5.50.")

	// Integer parts match, so the two count as equal.
	res.Best.Distance = 4.9
	buf.Reset()
	require.NoError(t, report.Write(&buf, dt, res, report.Options{Precision: 2}))
	require.Contains(t, buf.String(), "and equal to the best expert path, 4.90.")
}

func TestWrite_Optimum(t *testing.T) {
	dt, res := fixture(t)
	opt := res.Tour
	res.Optimum = &opt

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, dt, res, report.Options{}))
	require.Contains(t, buf.String(), "The exact optimum is 4.000000, a gap of 0.000000.")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_PropagatesWriteError(t *testing.T) {
	dt, res := fixture(t)
	require.Error(t, report.Write(failingWriter{}, dt, res, report.Options{}))
}
