// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlfit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// opaque hides the concrete *Dense behind the Matrix interface to force the
// generic At/Set fallback paths inside the kernels.
type opaque struct{ m matrix.Matrix }

func (o opaque) Rows() int                    { return o.m.Rows() }
func (o opaque) Cols() int                    { return o.m.Cols() }
func (o opaque) At(i, j int) (float64, error) { return o.m.At(i, j) }
func (o opaque) Set(i, j int, v float64) error {
	return o.m.Set(i, j, v)
}
func (o opaque) Clone() matrix.Matrix { return opaque{m: o.m.Clone()} }

// mustFromRows is a test helper for terse fixture construction.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// assertMatrixEqual compares two matrices element-wise within eps.
func assertMatrixEqual(t *testing.T, want [][]float64, got matrix.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "column count")

	var i, j int
	var v float64
	var err error
	for i = 0; i < len(want); i++ {
		for j = 0; j < len(want[i]); j++ {
			v, err = got.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i][j], v, eps, "mismatch at (%d,%d)", i, j)
		}
	}
}

// TestAddSub_Values verifies element-wise addition and subtraction on the
// *Dense fast path.
func TestAddSub_Values(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{11, 22}, {33, 44}}, sum, 0)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{9, 18}, {27, 36}}, diff, 0)
}

// TestAddSub_Errors verifies nil and shape-mismatch sentinels.
func TestAddSub_Errors(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}})
	c := mustFromRows(t, [][]float64{{1}, {2}})

	_, err := matrix.Add(a, c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_KnownProduct verifies a hand-computed 2×2 product on both the
// fast path and the interface fallback.
func TestMul_KnownProduct(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{5, 6}, {7, 8}})
	want := [][]float64{{19, 22}, {43, 50}}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assertMatrixEqual(t, want, fast, 0)

	slow, err := matrix.Mul(opaque{m: a}, opaque{m: b})
	require.NoError(t, err)
	assertMatrixEqual(t, want, slow, 0)
}

// TestMul_InnerMismatch verifies the inner-dimension guard.
func TestMul_InnerMismatch(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}})
	b := mustFromRows(t, [][]float64{{1, 2}})

	_, err := matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTranspose verifies mᵀ on both paths.
func TestTranspose(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	fast, err := matrix.Transpose(a)
	require.NoError(t, err)
	assertMatrixEqual(t, want, fast, 0)

	slow, err := matrix.Transpose(opaque{m: a})
	require.NoError(t, err)
	assertMatrixEqual(t, want, slow, 0)
}

// TestScale verifies scalar multiplication leaves the input untouched.
func TestScale(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, -2}, {0, 4}})

	scaled, err := matrix.Scale(a, 2.5)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{2.5, -5}, {0, 10}}, scaled, 0)
	assertMatrixEqual(t, [][]float64{{1, -2}, {0, 4}}, a, 0)
}

// TestMatVec verifies y = m*x and the vector-length guards.
func TestMatVec(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	y, err := matrix.MatVec(m, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, y)

	// Fallback path through the opaque wrapper.
	y, err = matrix.MatVec(opaque{m: m}, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(m, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(m, nil)
	assert.ErrorIs(t, err, matrix.ErrNilVector)
}

// TestLU_Reconstruction verifies A = L*U for a well-conditioned matrix.
func TestLU_Reconstruction(t *testing.T) {
	a := mustFromRows(t, [][]float64{{4, 3}, {6, 3}})

	L, U, err := matrix.LU(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{4, 3}, {6, 3}}, prod, 1e-12)
}

// TestLU_NonSquare verifies the square guard.
func TestLU_NonSquare(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, _, err := matrix.LU(a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestInverse_KnownInverse verifies A*A⁻¹ ≈ I for a hand-checkable matrix.
func TestInverse_KnownInverse(t *testing.T) {
	a := mustFromRows(t, [][]float64{{2, 0}, {0, 4}})

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{0.5, 0}, {0, 0.25}}, inv, 1e-12)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{1, 0}, {0, 1}}, prod, 1e-12)
}

// TestInverse_NoNegativeZero verifies that zero entries of the inverse are
// plain +0: the triangular solves internally produce IEEE negative zeros,
// which must not leak into the result (they would format as "-0").
func TestInverse_NoNegativeZero(t *testing.T) {
	a := mustFromRows(t, [][]float64{{2, 0}, {0, 4}})

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	var i, j int
	var v float64
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			v, err = inv.At(i, j)
			require.NoError(t, err)
			if v == 0 {
				assert.False(t, math.Signbit(v), "zero at (%d,%d) must carry a positive sign", i, j)
			}
		}
	}
}

// TestInverse_Singular verifies that a rank-deficient matrix fails
// distinctly with ErrSingular.
func TestInverse_Singular(t *testing.T) {
	// Second row is a multiple of the first: determinant zero.
	a := mustFromRows(t, [][]float64{{1, 2}, {2, 4}})

	_, err := matrix.Inverse(a)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverse_Guards verifies the nil and non-square guards.
func TestInverse_Guards(t *testing.T) {
	_, err := matrix.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = matrix.Inverse(rect)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
