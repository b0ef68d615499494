// SPDX-License-Identifier: MIT
// Package matrix — public constructor facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for building matrices and
//     vectors from plain Go sequences.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     constructor.
//   - Keep function names explicit and intention-revealing to improve
//     discoverability.
//
// Determinism & Policy:
//   - Facades never change loop orders or the numeric policy of NewDense.
//   - Ingested values pass through Set, so the finite-only policy applies.

package matrix

import "fmt"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0 // direct flat write; shape already validated
	}

	// Return the identity matrix.
	return I, nil
}

// FromRows builds a Dense from a row-major slice of rows.
//
// Implementation:
//   - Stage 1: validate non-empty input and rectangular shape (no ragged rows).
//   - Stage 2: allocate via NewDense and ingest through Set so the numeric
//     policy applies to every element.
//
// Errors:
//   - ErrInvalidDimensions (empty input or empty first row).
//   - ErrRaggedRows        (rows of unequal length).
//   - ErrNaNInf            (non-finite element under the default policy).
//
// Determinism:
//   - Fixed i→j ingestion order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])

	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(rows[i]), cols, ErrRaggedRows)
		}
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("FromRows: %w", err)
			}
		}
	}

	return m, nil
}

// NewColVector builds an n×1 column vector from a slice.
// The input is copied; later mutation of v does not affect the result.
//
// Errors:
//   - ErrNilVector          (nil input).
//   - ErrInvalidDimensions  (empty input).
//   - ErrNaNInf             (non-finite element under the default policy).
//
// Complexity: O(n).
func NewColVector(v []float64) (*Dense, error) {
	if v == nil {
		return nil, validatorErrorf("NewColVector", ErrNilVector)
	}
	if len(v) == 0 {
		return nil, ErrInvalidDimensions
	}

	m, err := NewDense(len(v), 1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(v); i++ {
		if err = m.Set(i, 0, v[i]); err != nil {
			return nil, fmt.Errorf("NewColVector: %w", err)
		}
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers.
// Complexity: O(1) alloc + O(r*c) zeroing.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	// Read shape once and call NewDense with the same dimensions.
	return NewDense(m.Rows(), m.Cols())
}
