// SPDX-License-Identifier: MIT

// Package tsp: tour utilities shared by the genetic search and the crowd.
//
// A tour is an open permutation of city indices 0..N-1; the closing edge from
// the last city back to the first is implicit. Provided helpers:
//   - Tour / NewTour: a permutation with its cached cyclic distance.
//   - TotalDistance: cyclic length through the DistanceTable.
//   - Canonicalize / RotateLeft: in-place cyclic shifts (index 0 first).
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - ReverseSegment: in-place inclusive segment reversal (RSM core).
//   - IndexOf, EqualModuloRotation: lookup and comparison helpers.
//
// Design:
//   - No logging, no panics on user input, only sentinel errors from types.go.
//   - O(n) time for every helper; in-place mutations avoid extra allocations.
package tsp

import "math"

// roundScale controls final distance stabilization precision (1e-9).
// Equivalent tours summed in a different edge order then compare equal.
const roundScale = 1e9

// Tour is a candidate solution: a permutation of city indices plus its cached
// cyclic distance. Invariant: Order is a permutation of 0..N-1 and Distance ==
// TotalDistance(table, Order).
type Tour struct {
	Order    []int
	Distance float64
}

// NewTour wraps order (taking ownership) and caches its cyclic distance.
// Complexity: O(N).
func NewTour(t *DistanceTable, order []int) Tour {
	return Tour{Order: order, Distance: TotalDistance(t, order)}
}

// Clone returns a tour with an independent Order slice.
// Complexity: O(N).
func (tr Tour) Clone() Tour {
	out := make([]int, len(tr.Order))
	copy(out, tr.Order)

	return Tour{Order: out, Distance: tr.Distance}
}

// TotalDistance sums Between(order[k], order[k+1]) for k in 0..n-2 plus the
// wrap-around edge Between(order[n-1], order[0]), rounded to 1e-9.
// A pure function of the table and the permutation; an empty order costs 0.
//
// Complexity: O(n).
func TotalDistance(t *DistanceTable, order []int) float64 {
	var n = len(order)
	if n == 0 {
		return 0
	}

	var (
		sum float64
		k   int
	)
	for k = 0; k < n-1; k++ {
		sum += t.Between(order[k], order[k+1])
	}
	sum += t.Between(order[n-1], order[0])

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// reverseRange reverses a[i..j] inclusive in place. Assumes 0 ≤ i ≤ j < len(a).
func reverseRange(a []int, i, j int) {
	for i < j {
		a[i], a[j] = a[j], a[i]
		i++
		j--
	}
}

// RotateLeft cyclically shifts order left by k positions in place, so the
// element at position k becomes the first one. Uses the three-reversal trick.
//
// Complexity: O(n) time, O(1) space.
func RotateLeft(order []int, k int) {
	var n = len(order)
	if n <= 1 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}
	reverseRange(order, 0, k-1)
	reverseRange(order, k, n-1)
	reverseRange(order, 0, n-1)
}

// Canonicalize rotates order in place until city index 0 (the smallest city
// identifier) is first. Neither the edge set nor the distance changes.
// Orders without index 0 are left untouched.
//
// Complexity: O(n).
func Canonicalize(order []int) {
	var p = IndexOf(order, 0)
	if p > 0 {
		RotateLeft(order, p)
	}
}

// IndexOf returns the position of v in order, or -1.
// Complexity: O(n).
func IndexOf(order []int, v int) int {
	var i int
	for i = range order {
		if order[i] == v {
			return i
		}
	}

	return -1
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It does not allocate besides a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element violates the dimension contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		// Duplicate also violates the bijection contract.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ReverseSegment reverses the inclusive segment order[i..j] in place.
// The bounds are order-independent: if i > j they are swapped first.
// A segment of length one is a no-op.
//
// Errors: ErrDimensionMismatch when either bound is outside [0, len(order)).
//
// Complexity: O(|j-i|) time, O(1) space.
func ReverseSegment(order []int, i, j int) error {
	var n = len(order)
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrDimensionMismatch
	}
	if i > j {
		i, j = j, i
	}
	reverseRange(order, i, j)

	return nil
}

// EqualModuloRotation reports whether a and b describe the same cyclic
// sequence in the same direction.
//
// Complexity: O(n).
func EqualModuloRotation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var n = len(a)
	if n == 0 {
		return true
	}
	var p = IndexOf(b, a[0])
	if p == -1 {
		return false
	}
	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}
