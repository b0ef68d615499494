// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra substrate used by the
// fit engine: row-major float64 matrices, column vectors, and the handful
// of kernels a least-squares solver needs.
//
// The matrix package provides:
//
//   - A minimal Matrix interface (Rows/Cols/At/Set/Clone) with a concrete
//     row-major *Dense implementation backed by a flat []float64 buffer.
//   - Constructors from plain Go sequences: NewDense, FromRows, NewColVector,
//     NewIdentity, ZerosLike.
//   - Kernels: Add, Sub, Scale, Mul, Transpose, MatVec, LU and LU-based
//     Inverse. Inverse fails distinctly with ErrSingular on a zero pivot.
//
// All kernels validate fail-fast via central validators and wrap failures
// with a stable operation tag while preserving sentinels for errors.Is.
// Loop orders are fixed and no map iteration is involved, so identical
// inputs always produce bit-for-bit identical outputs.
//
// Matrices here are small and dense by assumption (parameter counts and
// data-point counts of a curve fit); no sparse storage is provided.
package matrix
