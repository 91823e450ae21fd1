// SPDX-License-Identifier: MIT
package crowd

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds crowd-wide distance statistics.
type Summary struct {
	Size int
	Min  float64
	Max  float64
	Mean float64
}

// Summarize computes size, min, max and mean of dists. An empty input yields
// the zero Summary.
func Summarize(dists []float64) Summary {
	if len(dists) == 0 {
		return Summary{}
	}

	return Summary{
		Size: len(dists),
		Min:  floats.Min(dists),
		Max:  floats.Max(dists),
		Mean: stat.Mean(dists, nil),
	}
}

// ModeRun scans ascending sorted values for the longest run of equal values
// and returns its start index and length. The first longest run wins ties.
//
// tol == 0 means exact equality. With tol > 0 a run extends while
// sorted[j]-sorted[start] ≤ tol.
//
// Complexity: O(n).
func ModeRun(sorted []float64, tol float64) (start, length int) {
	var (
		n = len(sorted)
		i int
		j int
	)
	for i = 0; i < n; i = j {
		j = i + 1
		for j < n && sorted[j]-sorted[i] <= tol {
			j++
		}
		if j-i > length {
			start, length = i, j-i
		}
	}

	return start, length
}

// modeInt returns the most frequent value of votes, preferring the smallest
// value on ties. votes is sorted in place. votes must be non-empty.
func modeInt(votes []int) int {
	sort.Ints(votes)
	var (
		best    = votes[0]
		bestLen int
		i, j    int
	)
	for i = 0; i < len(votes); i = j {
		j = i + 1
		for j < len(votes) && votes[j] == votes[i] {
			j++
		}
		if j-i > bestLen {
			best, bestLen = votes[i], j-i
		}
	}

	return best
}
