// SPDX-License-Identifier: MIT

// Package matrix offers the dense numeric storage used by the distance table.
//
// The matrix package provides:
//
//   - Matrix, a small interface over two-dimensional float64 arrays with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation with an optional finite-only policy and
//     aliasing row views for read-mostly hot loops.
//   - Validators (square, symmetric, zero diagonal) that return tagged sentinels.
//
// Matrices cost O(n²) memory; they are sized for the few hundred cities a
// crowd-of-GAs run handles.
package matrix
