// SPDX-License-Identifier: MIT
package ga

import "github.com/katalvlaran/crowdtsp/tsp"

// Crossover builds one SCX offspring of p1 and p2.
//
// The child starts with p1[0]. While it is incomplete, let last be its last
// city; in each parent, walk forward circularly from last's position to the
// first city not yet placed. The candidate nearer to last is appended; on a
// tie parent1's candidate wins.
//
// Contract: p1 and p2 are permutations of 0..N-1 for t. Identical parents
// yield a copy of that permutation.
//
// Complexity: O(N²) worst case for the successor scans, O(N) extra space.
func Crossover(t *tsp.DistanceTable, p1, p2 []int) []int {
	var n = len(p1)
	child := make([]int, 0, n)
	if n == 0 {
		return child
	}

	// placed and the position indexes live only for this call.
	placed := make([]bool, n)
	pos1 := inverse(p1)
	pos2 := inverse(p2)

	child = append(child, p1[0])
	placed[p1[0]] = true

	var (
		last   int
		c1, c2 int
	)
	for len(child) < n {
		last = child[len(child)-1]
		c1 = nextUnplaced(p1, pos1[last], placed)
		c2 = nextUnplaced(p2, pos2[last], placed)
		if t.Between(last, c2) < t.Between(last, c1) {
			c1 = c2
		}
		child = append(child, c1)
		placed[c1] = true
	}

	return child
}

// inverse returns pos with pos[perm[i]] = i.
func inverse(perm []int) []int {
	pos := make([]int, len(perm))
	var i int
	for i = range perm {
		pos[perm[i]] = i
	}

	return pos
}

// nextUnplaced walks perm circularly from the position after at and returns
// the first city not yet placed. At least one city must be unplaced.
func nextUnplaced(perm []int, at int, placed []bool) int {
	var (
		n = len(perm)
		k = (at + 1) % n
	)
	for placed[perm[k]] {
		k = (k + 1) % n
	}

	return perm[k]
}
