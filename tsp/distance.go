// SPDX-License-Identifier: MIT

// Package tsp: the precomputed distance table.
//
// Identifier mapping:
//   - Input cities carry arbitrary positive identifiers. At construction the
//     cities are sorted by identifier and addressed by index 0..N-1 from then on.
//   - ID(i) and Index(id) convert between the two spaces; everything inside the
//     search works on indices, everything user-facing reports identifiers.
//
// Design:
//   - Storage is a single matrix.Dense; per-row aliasing views back the
//     unchecked Between lookup used in the hot loops.
//   - Built once in O(N²), read-only afterwards; safe for concurrent readers.
package tsp

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/crowdtsp/matrix"
)

// DistanceTable stores the symmetric Euclidean distance between every pair of
// cities. Invariant: Between(i,j) == Between(j,i), Between(i,i) == 0.
type DistanceTable struct {
	cities []City       // sorted by ID; cities[i] is addressed by index i
	index  map[int]int  // ID -> index
	m      *matrix.Dense // N×N distances
	rows   [][]float64  // rows[i] aliases row i of m
}

// NewDistanceTable validates cities and precomputes all pairwise distances.
//
// Contract:
//   - len(cities) ≥ 2; IDs positive and unique; coordinates finite.
//   - The input slice is not retained or modified.
//
// Errors: ErrTooFewCities, ErrInvalidCityID, ErrDuplicateCity,
// ErrNonFiniteCoordinate (wrapped with the offending identifier).
//
// Complexity: O(N log N + N²) time, O(N²) space.
func NewDistanceTable(cities []City) (*DistanceTable, error) {
	var n = len(cities)
	if n < 2 {
		return nil, ErrTooFewCities
	}

	// Stage 1: validate and copy.
	sorted := make([]City, n)
	copy(sorted, cities)
	var i, j int
	for i = 0; i < n; i++ {
		if sorted[i].ID <= 0 {
			return nil, fmt.Errorf("city %d: %w", sorted[i].ID, ErrInvalidCityID)
		}
		if !finite(sorted[i].X) || !finite(sorted[i].Y) {
			return nil, fmt.Errorf("city %d: %w", sorted[i].ID, ErrNonFiniteCoordinate)
		}
	}
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].ID < sorted[b].ID })

	index := make(map[int]int, n)
	for i = 0; i < n; i++ {
		if _, dup := index[sorted[i].ID]; dup {
			return nil, fmt.Errorf("city %d: %w", sorted[i].ID, ErrDuplicateCity)
		}
		index[sorted[i].ID] = i
	}

	// Stage 2: fill the upper triangle, mirror to the lower one.
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(sorted[j].X-sorted[i].X, sorted[j].Y-sorted[i].Y)
			if err = m.Set(i, j, d); err != nil {
				return nil, fmt.Errorf("cities %d,%d: %w", sorted[i].ID, sorted[j].ID, err)
			}
			if err = m.Set(j, i, d); err != nil {
				return nil, fmt.Errorf("cities %d,%d: %w", sorted[j].ID, sorted[i].ID, err)
			}
		}
	}

	// Stage 3: table invariants.
	if err = matrix.ValidateSymmetric(m, 0); err != nil {
		return nil, err
	}
	if err = matrix.ValidateZeroDiagonal(m, 0); err != nil {
		return nil, err
	}

	// Stage 4: row views for the unchecked lookup.
	rows := make([][]float64, n)
	for i = 0; i < n; i++ {
		if rows[i], err = m.Row(i); err != nil {
			return nil, err
		}
	}

	return &DistanceTable{cities: sorted, index: index, m: m, rows: rows}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// N returns the number of cities.
func (t *DistanceTable) N() int { return len(t.cities) }

// Between returns the distance between city indices i and j.
// Indices must be in [0, N); out-of-range indices panic like a slice access.
//
// Complexity: O(1), no allocation.
func (t *DistanceTable) Between(i, j int) float64 { return t.rows[i][j] }

// ID returns the input identifier of city index i.
func (t *DistanceTable) ID(i int) int { return t.cities[i].ID }

// Index returns the city index for an input identifier.
func (t *DistanceTable) Index(id int) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// City returns the city stored at index i.
func (t *DistanceTable) City(i int) City { return t.cities[i] }

// Matrix returns an independent copy of the underlying distances.
// Complexity: O(N²).
func (t *DistanceTable) Matrix() matrix.Matrix { return t.m.Clone() }

// IDs maps a sequence of city indices to input identifiers.
// Complexity: O(len(order)).
func (t *DistanceTable) IDs(order []int) []int {
	out := make([]int, len(order))
	var k int
	for k = range order {
		out[k] = t.cities[order[k]].ID
	}

	return out
}

// Waypoints maps a sequence of city indices to coordinates. When closed is
// true the first point is appended again so the polyline returns to its start.
// Complexity: O(len(order)).
func (t *DistanceTable) Waypoints(order []int, closed bool) []Point {
	var size = len(order)
	if closed && size > 0 {
		size++
	}
	out := make([]Point, 0, size)
	var k int
	for k = range order {
		out = append(out, t.cities[order[k]].Point())
	}
	if closed && len(order) > 0 {
		out = append(out, out[0])
	}

	return out
}
