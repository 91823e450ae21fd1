// SPDX-License-Identifier: MIT

// Package tsp: validated cost utilities.
//
// TotalDistance (tour.go) is the unchecked fast path used inside the search.
// This file provides the strict counterpart over any matrix.Matrix, used to
// audit tours that leave the search (experts, the consensus tour).
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Every edge is checked for Inf, NaN and negative weights.
//   - Same 1e-9 rounding as TotalDistance so both paths agree exactly.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crowdtsp/matrix"
)

// TourCost sums the cyclic cost of order over dist, closing the cycle with
// the edge order[n-1]→order[0].
//
// Contract:
//   - dist must be square (n×n) and order a permutation of {0..n-1}.
//   - Returns ErrNonSquare, ErrDimensionMismatch, ErrIncompleteGraph or ErrNegativeWeight.
//
// Complexity: O(n).
func TourCost(dist matrix.Matrix, order []int) (float64, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	if dist.Rows() != dist.Cols() {
		return 0, ErrNonSquare
	}
	var n = dist.Rows()
	if err := ValidatePermutation(order, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		w   float64
		err error
		k   int
	)
	for k = 0; k < n; k++ {
		w, err = edgeCost(dist, order[k], order[(k+1)%n])
		if err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// edgeCost fetches the weight for a single edge u→v with strict validation.
// Index ranges are guaranteed by the caller's permutation check.
//
// Complexity: O(1).
func edgeCost(m matrix.Matrix, u, v int) (float64, error) {
	w, err := m.At(u, v)
	if err != nil {
		return 0, ErrDimensionMismatch
	}
	if math.IsNaN(w) {
		return 0, ErrDimensionMismatch
	}
	if math.IsInf(w, 0) {
		return 0, ErrIncompleteGraph
	}
	if w < 0 {
		return 0, ErrNegativeWeight
	}

	return w, nil
}

// ValidateTour checks that tr is a permutation over the table's cities and
// that its cached distance matches the strictly recomputed cost.
//
// Errors: ErrDimensionMismatch, ErrCostMismatch (wrapped with both values).
//
// Complexity: O(N²) for the matrix copy plus O(N) for the walk.
func ValidateTour(t *DistanceTable, tr Tour) error {
	cost, err := TourCost(t.Matrix(), tr.Order)
	if err != nil {
		return err
	}
	if cost != tr.Distance {
		return fmt.Errorf("cached %.9f, recomputed %.9f: %w", tr.Distance, cost, ErrCostMismatch)
	}

	return nil
}
