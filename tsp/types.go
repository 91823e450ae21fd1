// SPDX-License-Identifier: MIT
package tsp

import "errors"

// Sentinel errors. Wrap with context at the detection site; match with errors.Is.
var (
	// ErrDimensionMismatch is returned when a tour or permutation does not match
	// the city count, contains out-of-range indices or repeats an index.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrTooFewCities is returned when fewer than two cities are supplied.
	ErrTooFewCities = errors.New("tsp: at least two cities are required")

	// ErrInvalidCityID is returned for non-positive city identifiers.
	ErrInvalidCityID = errors.New("tsp: city identifier must be positive")

	// ErrDuplicateCity is returned when two cities share an identifier.
	ErrDuplicateCity = errors.New("tsp: duplicate city identifier")

	// ErrNonFiniteCoordinate is returned when a coordinate is NaN or ±Inf.
	ErrNonFiniteCoordinate = errors.New("tsp: non-finite coordinate")

	// ErrIncompleteGraph is returned when an edge weight is ±Inf.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrNegativeWeight is returned when an edge weight is negative.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")

	// ErrNonSquare is returned when a distance matrix is not square.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrCostMismatch is returned when a tour's cached distance disagrees with
	// its recomputed cost.
	ErrCostMismatch = errors.New("tsp: cached tour distance is stale")
)

// City is one input location. Immutable once loaded.
type City struct {
	ID int     // positive, unique identifier from the input file
	X  float64 // x coordinate
	Y  float64 // y coordinate
}

// Point returns the city's coordinates.
func (c City) Point() Point { return Point{X: c.X, Y: c.Y} }

// Point is a plain 2D coordinate, used for waypoint export.
type Point struct {
	X float64
	Y float64
}
