// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface. Errors live in errors.go,
// the concrete Dense implementation in dense.go, kernels in linalg.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// The interface is deliberately minimal: kernels accept any Matrix but
// fast-path on the concrete *Dense to operate on the flat backing slice.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid and ErrNaNInf when the
	// finite-only policy rejects v.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
