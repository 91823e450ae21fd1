// SPDX-License-Identifier: MIT
package crowd

import "errors"

var (
	// ErrEmptyCrowd is returned when Aggregate receives no experts.
	ErrEmptyCrowd = errors.New("crowd: no experts")

	// ErrInvalidOptions is returned for a negative or NaN tolerance or a nil table.
	ErrInvalidOptions = errors.New("crowd: invalid options")
)
