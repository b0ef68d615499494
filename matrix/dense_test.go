// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlfit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions verifies that non-positive shapes are
// rejected with ErrInvalidDimensions instead of panicking.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "zero rows must be rejected")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "negative cols must be rejected")
}

// TestDense_AtSet_Bounds verifies that out-of-range indices surface
// ErrOutOfRange from both At and Set.
func TestDense_AtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "row index == Rows() is out of range")

	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "negative column index is out of range")

	err = m.Set(-1, 0, 1.0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "negative row index is out of range")

	err = m.Set(0, 3, 1.0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "column index == Cols() is out of range")
}

// TestDense_SetGet_RoundTrip verifies basic element storage and the Shape
// convenience accessor.
func TestDense_SetGet_RoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 3.5))
	require.NoError(t, m.Set(1, 0, -2.0))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, -2.0, v)

	rows, cols := m.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
}

// TestDense_NumericPolicy verifies that the default finite-only policy
// rejects NaN and ±Inf on Set.
func TestDense_NumericPolicy(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf, "NaN must be rejected")
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf, "+Inf must be rejected")
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf, "-Inf must be rejected")
	assert.NoError(t, m.Set(0, 0, 1.25), "finite values must pass")
}

// TestDense_Clone_Independence verifies deep-copy semantics: mutating the
// clone leaves the original untouched.
func TestDense_Clone_Independence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 7.0))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, -7.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, orig, "original must be unaffected by clone mutation")

	mut, err := cp.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, -7.0, mut)
}

// TestDense_Row verifies the row-copy accessor and its bounds checking.
func TestDense_Row(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	// The returned slice is independent of the backing buffer.
	row[0] = 99
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_String verifies the diagnostic dump format.
func TestDense_String(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3.5, -4}})
	require.NoError(t, err)

	assert.Equal(t, "[1, 2]\n[3.5, -4]\n", m.String())
}
