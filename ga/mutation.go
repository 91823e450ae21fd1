// SPDX-License-Identifier: MIT
package ga

import "github.com/katalvlaran/crowdtsp/tsp"

// Mutate applies RSM in place: two positions are drawn uniformly, ordered,
// and the inclusive segment between them is reversed. The set of cities is
// unchanged. Orders shorter than two elements are left as is.
//
// Complexity: O(N).
func Mutate(rng *tsp.RNG, order []int) {
	var n = len(order)
	if n < 2 {
		return
	}
	var (
		i = rng.Index(n)
		j = rng.Index(n)
	)
	// Both indices are in range, so ReverseSegment cannot fail.
	_ = tsp.ReverseSegment(order, i, j)
}
