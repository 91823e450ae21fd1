// SPDX-License-Identifier: MIT

// Package tsplib reads the coordinate subset of the TSPLIB text format.
//
// Accepted layout (whitespace-delimited tokens, order-sensitive):
//
//	NAME: square5            (optional)
//	COMMENT: ...             (ignored, any header token is skipped)
//	DIMENSION: 5             (also "DIMENSION : 5" and "DIMENSION:5")
//	NODE_COORD_SECTION
//	1 0 0
//	2 1 0
//	...
//	EOF                      (optional, anything after N triples is ignored)
//
// The header scan is bounded by MaxHeaderTokens. Every failure (missing or
// unreadable file, absent section, bad number, short coordinate section,
// duplicate identifier) matches ErrMalformedInput via errors.Is; a more
// precise sentinel is wrapped alongside it.
package tsplib
