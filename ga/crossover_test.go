// SPDX-License-Identifier: MIT
package ga_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/crowdtsp/ga"
	"github.com/katalvlaran/crowdtsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestCrossover_ClosedOverPermutations(t *testing.T) {
	dt := mustTable(t, circleCities(17))
	g := tsp.NewRNG(seedDet)
	Repeat(t, 200, func(t *testing.T) {
		p1, p2 := g.Perm(dt.N()), g.Perm(dt.N())
		child := ga.Crossover(dt, p1, p2)
		require.NoError(t, tsp.ValidatePermutation(child, dt.N()))
		require.Equal(t, p1[0], child[0])
	})
}

func TestCrossover_IdenticalParentsCopy(t *testing.T) {
	dt := mustTable(t, circleCities(11))
	g := tsp.NewRNG(seedDet)
	Repeat(t, 50, func(t *testing.T) {
		p := g.Perm(dt.N())
		require.Equal(t, p, ga.Crossover(dt, p, append([]int(nil), p...)))
	})
}

func TestCrossover_PicksNearerSuccessor(t *testing.T) {
	// index 0:(0,0) 1:(1,0) 2:(-1,0) 3:(0,5)
	dt := mustTable(t, []tsp.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 1, Y: 0},
		{ID: 3, X: -1, Y: 0},
		{ID: 4, X: 0, Y: 5},
	})

	// From 0, parent1 offers 3 (5 away), parent2 offers 1 (1 away).
	child := ga.Crossover(dt, []int{0, 3, 1, 2}, []int{0, 1, 2, 3})
	require.Equal(t, []int{0, 1, 2, 3}, child)
}

func TestCrossover_TieGoesToParentOne(t *testing.T) {
	dt := mustTable(t, []tsp.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 1, Y: 0},
		{ID: 3, X: -1, Y: 0},
		{ID: 4, X: 0, Y: 5},
	})

	// From 0 both candidates (1 and 2) are 1 away.
	child := ga.Crossover(dt, []int{0, 1, 2, 3}, []int{0, 2, 1, 3})
	require.Equal(t, 1, child[1])
	require.Equal(t, []int{0, 1, 2, 3}, child)
}

func TestCrossover_DoesNotModifyParents(t *testing.T) {
	dt := mustTable(t, circleCities(8))
	p1 := []int{3, 1, 4, 0, 5, 7, 2, 6}
	p2 := []int{7, 6, 5, 4, 3, 2, 1, 0}
	c1, c2 := append([]int(nil), p1...), append([]int(nil), p2...)
	_ = ga.Crossover(dt, p1, p2)
	require.Equal(t, c1, p1)
	require.Equal(t, c2, p2)
}

func TestMutate_PreservesMultiset(t *testing.T) {
	g := tsp.NewRNG(seedDet)
	Repeat(t, 200, func(t *testing.T) {
		order := g.Perm(13)
		before := append([]int(nil), order...)
		ga.Mutate(g, order)
		require.NoError(t, tsp.ValidatePermutation(order, 13))

		sortedBefore := append([]int(nil), before...)
		sortedAfter := append([]int(nil), order...)
		sort.Ints(sortedBefore)
		sort.Ints(sortedAfter)
		require.Equal(t, sortedBefore, sortedAfter)
	})
}

func TestMutate_ReversesOneSegment(t *testing.T) {
	g := tsp.NewRNG(seedDet)
	Repeat(t, 100, func(t *testing.T) {
		order := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		ga.Mutate(g, order)

		// Outside the reversed segment every element stays in place, inside it
		// the sequence is strictly decreasing.
		var lo, hi = 0, len(order) - 1
		for lo < len(order) && order[lo] == lo {
			lo++
		}
		for hi >= 0 && order[hi] == hi {
			hi--
		}
		var k int
		for k = lo; k < hi; k++ {
			require.Equal(t, order[k]-1, order[k+1])
		}
	})
}

func TestMutate_ShortOrders(t *testing.T) {
	g := tsp.NewRNG(seedDet)
	one := []int{0}
	ga.Mutate(g, one)
	require.Equal(t, []int{0}, one)
	ga.Mutate(g, nil)
}
