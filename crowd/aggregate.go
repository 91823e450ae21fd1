// SPDX-License-Identifier: MIT
package crowd

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/crowdtsp/tsp"
)

// Options configures Aggregate.
type Options struct {
	// Tolerance groups near-equal distances during mode detection.
	// Zero keeps exact equality.
	Tolerance float64
}

// DefaultOptions returns exact-equality mode detection.
func DefaultOptions() Options { return Options{Tolerance: 0} }

// Validate checks the tolerance.
func (o Options) Validate() error {
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return fmt.Errorf("tolerance %v: %w", o.Tolerance, ErrInvalidOptions)
	}

	return nil
}

// Result is the consensus and its confidence statistics.
type Result struct {
	Summary

	// Best is the lowest-distance expert (first in stable sorted order).
	Best tsp.Tour

	// ModalDistance is the distance shared by the legitimate subset.
	ModalDistance float64
	// ModeStart and ModeCount locate the legitimate subset in sorted order.
	ModeStart int
	ModeCount int

	// Tour is the consensus tour, canonical, with recomputed distance.
	Tour tsp.Tour

	// DeltaFromMean is Mean - Tour.Distance (positive: shorter than projected).
	DeltaFromMean float64
	// DeltaFromBest is Tour.Distance - Best.Distance.
	DeltaFromBest float64

	// DistanceAgreement is ModeCount / Size.
	DistanceAgreement float64
	// PathAgreement is Survivors / ModeCount.
	PathAgreement float64

	// Rounds is the number of voting rounds performed (≤ N-1).
	Rounds int
	// Survivors is the number of legitimate tours left after voting.
	Survivors int
}

// Aggregate derives the consensus of experts over t.
//
// Experts are copied, canonicalized and re-costed, so inputs are never
// modified and stale cached distances do not affect the result.
//
// Errors: ErrEmptyCrowd, ErrInvalidOptions, tsp.ErrDimensionMismatch (an
// expert that is not a permutation of t's cities, wrapped with its position).
//
// Complexity: O(M log M + M·N) time, O(M·N) space.
func Aggregate(t *tsp.DistanceTable, experts []tsp.Tour, opts Options) (Result, error) {
	if t == nil {
		return Result{}, fmt.Errorf("nil distance table: %w", ErrInvalidOptions)
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if len(experts) == 0 {
		return Result{}, ErrEmptyCrowd
	}

	// Stage 0: normalize.
	var (
		n    = t.N()
		m    = len(experts)
		pool = make([]tsp.Tour, m)
		k    int
	)
	for k = range experts {
		if err := tsp.ValidatePermutation(experts[k].Order, n); err != nil {
			return Result{}, fmt.Errorf("expert %d: %w", k, err)
		}
		order := append([]int(nil), experts[k].Order...)
		tsp.Canonicalize(order)
		pool[k] = tsp.NewTour(t, order)
	}
	sort.SliceStable(pool, func(a, b int) bool { return pool[a].Distance < pool[b].Distance })

	// Stage 1: statistics.
	dists := make([]float64, m)
	for k = range pool {
		dists[k] = pool[k].Distance
	}
	res := Result{Summary: Summarize(dists), Best: pool[0].Clone()}

	// Stage 2: mode detection.
	res.ModeStart, res.ModeCount = ModeRun(dists, opts.Tolerance)
	res.ModalDistance = dists[res.ModeStart]
	legit := pool[res.ModeStart : res.ModeStart+res.ModeCount]

	// Stage 3: positional voting.
	var survivor int
	survivor, res.Survivors, res.Rounds = vote(legit, n)

	// Stage 4: assembly.
	order := append([]int(nil), legit[survivor].Order...)
	tsp.Canonicalize(order)
	res.Tour = tsp.NewTour(t, order)

	res.DeltaFromMean = res.Mean - res.Tour.Distance
	res.DeltaFromBest = res.Tour.Distance - res.Best.Distance
	res.DistanceAgreement = float64(res.ModeCount) / float64(m)
	res.PathAgreement = float64(res.Survivors) / float64(res.ModeCount)

	return res, nil
}

// vote runs positional plurality voting over legit, which must be non-empty.
// Reading position round of a canonical tour is the same as rotating it left
// by one city per round and reading its first city.
// It returns the index of the last legitimate tour, the number of legitimate
// tours left and the number of rounds held.
func vote(legit []tsp.Tour, n int) (survivor, survivors, rounds int) {
	var (
		alive = make([]bool, len(legit))
		votes = make([]int, 0, len(legit))
		round int
		k     int
		mode  int
	)
	for k = range alive {
		alive[k] = true
	}
	survivors = len(legit)

	for round = 1; round < n && survivors > 1; round++ {
		votes = votes[:0]
		for k = range legit {
			if alive[k] {
				votes = append(votes, legit[k].Order[round])
			}
		}
		mode = modeInt(votes)
		for k = range legit {
			if alive[k] && legit[k].Order[round] != mode {
				alive[k] = false
				survivors--
			}
		}
		rounds++
	}

	for k = len(alive) - 1; k >= 0; k-- {
		if alive[k] {
			return k, survivors, rounds
		}
	}

	// Unreachable: the modal vote always keeps at least one tour.
	return 0, survivors, rounds
}
