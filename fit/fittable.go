// SPDX-License-Identifier: MIT

// Package fit: model capability contracts and plain-function descriptors.
package fit

import "github.com/katalvlaran/lvlfit/matrix"

// Fittable is the model capability the engine fits against.
//
// Contract:
//   - ParamCount and PointCount are positive and stable for the lifetime of
//     the model.
//   - InitialParams returns a vector of length ParamCount().
//   - Residuals accepts a parameter vector of length ParamCount() and
//     returns a vector of length PointCount(), or an error when the model
//     cannot be evaluated at that point (the run aborts, no retry).
//   - Residuals must be deterministic and side-effect-free: the
//     finite-difference Jacobian and run reproducibility depend on it.
type Fittable interface {
	// ParamCount returns the number of model parameters.
	ParamCount() int

	// PointCount returns the number of data points (residual entries).
	PointCount() int

	// InitialParams returns the starting parameter vector.
	// The engine copies it; implementations may return a shared slice.
	InitialParams() []float64

	// Residuals maps a parameter vector to a residual vector
	// (predicted − observed, one entry per data point).
	Residuals(params []float64) ([]float64, error)
}

// AnalyticFittable is the optional refinement capability: a model that also
// supplies its closed-form Jacobian. When a model implements it, the
// analytic Jacobian is used exclusively; the finite-difference path is never
// invoked for that model.
type AnalyticFittable interface {
	Fittable

	// Jacobian returns the parameter-major Jacobian at params: one row per
	// parameter, one column per data point (ParamCount()×PointCount()).
	Jacobian(params []float64) (matrix.Matrix, error)
}

// JacobianFunc computes the parameter-major Jacobian at a parameter vector.
type JacobianFunc func(params []float64) (matrix.Matrix, error)

// Model is a plain-function Fittable descriptor, for callers who would
// rather fill in fields than define a type.
//
// Example:
//
//	m := &fit.Model{
//	    NParams: 2,
//	    NPoints: len(ys),
//	    Start:   []float64{0.5, 0.5},
//	    ResidualFn: func(p []float64) ([]float64, error) { ... },
//	}
type Model struct {
	NParams    int                                // number of parameters
	NPoints    int                                // number of data points
	Start      []float64                          // starting parameter vector (len == NParams)
	ResidualFn func([]float64) ([]float64, error) // residual function
}

// ParamCount returns the declared parameter count. Complexity: O(1).
func (m *Model) ParamCount() int { return m.NParams }

// PointCount returns the declared data-point count. Complexity: O(1).
func (m *Model) PointCount() int { return m.NPoints }

// InitialParams returns the starting parameter vector as declared.
// Complexity: O(1).
func (m *Model) InitialParams() []float64 { return m.Start }

// Residuals evaluates the descriptor's residual function.
func (m *Model) Residuals(params []float64) ([]float64, error) {
	return m.ResidualFn(params)
}

// AnalyticModel is a Model extended with a closed-form Jacobian. The
// capability is carried by the type, not by a nilable field: constructing an
// AnalyticModel states the capability statically, so dispatch needs no
// runtime nil checks.
type AnalyticModel struct {
	Model

	// JacobianFn returns the parameter-major Jacobian at a parameter vector
	// (NParams rows × NPoints columns).
	JacobianFn JacobianFunc
}

// Jacobian evaluates the descriptor's closed-form Jacobian.
func (m *AnalyticModel) Jacobian(params []float64) (matrix.Matrix, error) {
	return m.JacobianFn(params)
}

// Compile-time conformance assertions.
var (
	_ Fittable         = (*Model)(nil)
	_ AnalyticFittable = (*AnalyticModel)(nil)
)
