// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlfit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromRows_Values verifies row-major ingestion of a rectangular slice.
func TestFromRows_Values(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

// TestFromRows_Errors verifies empty and ragged inputs fail with their
// dedicated sentinels.
func TestFromRows_Errors(t *testing.T) {
	_, err := matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "nil input must be rejected")

	_, err = matrix.FromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "empty first row must be rejected")

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRaggedRows, "unequal row lengths must be rejected")
}

// TestNewColVector verifies column-vector construction and input copying.
func TestNewColVector(t *testing.T) {
	src := []float64{1, 2, 3}
	v, err := matrix.NewColVector(src)
	require.NoError(t, err)

	assert.Equal(t, 3, v.Rows())
	assert.Equal(t, 1, v.Cols())

	// Later mutation of the source must not reach the vector.
	src[0] = 99
	got, err := v.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	_, err = matrix.NewColVector(nil)
	assert.ErrorIs(t, err, matrix.ErrNilVector)

	_, err = matrix.NewColVector([]float64{})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewIdentity verifies ones on the diagonal and zeros elsewhere.
func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	var i, j int
	var v float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			v, err = I.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Equal(t, 0.0, v)
			}
		}
	}
}

// TestZerosLike verifies shape propagation and the nil guard.
func TestZerosLike(t *testing.T) {
	m, err := matrix.NewZeros(2, 5)
	require.NoError(t, err)

	z, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	assert.Equal(t, 2, z.Rows())
	assert.Equal(t, 5, z.Cols())

	_, err = matrix.ZerosLike(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
