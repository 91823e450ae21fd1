// SPDX-License-Identifier: MIT
package tsp

import (
	"errors"
	"math"
)

// MaxExactCities bounds the instance size accepted by Exact; memory grows as N·2ᴺ.
const MaxExactCities = 13

// ErrTooManyCitiesForExact is returned by Exact when N > MaxExactCities.
var ErrTooManyCitiesForExact = errors.New("tsp: instance too large for the exact solver")

// Exact solves the instance optimally with the Held–Karp dynamic program and
// returns the optimal tour in canonical rotation (index 0 first).
// It serves as a reference optimum for small instances.
//
// dp[mask][j] = minimum cost to start at 0, visit exactly the cities in mask
// (which always contains 0), and end at j. The tour is closed by returning
// from the best j back to 0.
//
// Time complexity:  O(N² · 2ᴺ)
// Memory complexity: O(N · 2ᴺ)
func Exact(t *DistanceTable) (Tour, error) {
	var n = t.N()
	if n > MaxExactCities {
		return Tour{}, ErrTooManyCitiesForExact
	}

	var (
		allMask   = (1 << n) - 1
		startMask = 1
		full      = 1 << n
	)

	// Flat tables indexed by mask*n + j.
	dp := make([]float64, full*n)
	parent := make([]int, full*n)
	var i int
	for i = range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[startMask*n+0] = 0

	var (
		mask, prev int
		j, k       int
		cand       float64
	)
	for mask = startMask; mask <= allMask; mask++ {
		// skip subsets that don't include the start city 0
		if mask&startMask == 0 {
			continue
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				cand = dp[prev*n+k] + t.Between(k, j)
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	// Close the tour by returning to 0.
	var (
		best = math.Inf(1)
		last = -1
	)
	for j = 1; j < n; j++ {
		cand = dp[allMask*n+j] + t.Between(j, 0)
		if cand < best {
			best = cand
			last = j
		}
	}

	// Reconstruct from the parent table.
	order := make([]int, n)
	mask = allMask
	j = last
	for i = n - 1; i >= 1; i-- {
		order[i] = j
		k = parent[mask*n+j]
		mask ^= 1 << j
		j = k
	}
	order[0] = 0

	return NewTour(t, order), nil
}
