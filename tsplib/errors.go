// SPDX-License-Identifier: MIT
package tsplib

import "errors"

var (
	// ErrMalformedInput is the umbrella error for any input that cannot be
	// turned into a city set. Every error returned by this package matches it.
	ErrMalformedInput = errors.New("tsplib: malformed input")

	// ErrMissingSection is returned when DIMENSION or NODE_COORD_SECTION is
	// absent (EOF reached or MaxHeaderTokens exceeded before it).
	ErrMissingSection = errors.New("tsplib: required section missing")

	// ErrBadToken is returned when a numeric field cannot be parsed or is out
	// of range.
	ErrBadToken = errors.New("tsplib: bad token")

	// ErrShortSection is returned when the coordinate section ends before
	// DIMENSION triples were read.
	ErrShortSection = errors.New("tsplib: coordinate section shorter than DIMENSION")
)
