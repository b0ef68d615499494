// SPDX-License-Identifier: MIT

// Package fit: residual and Jacobian services.
//
// The Jacobian provider is resolved ONCE, when a strategy is constructed:
// models implementing AnalyticFittable get their closed-form Jacobian,
// everyone else gets the central finite-difference approximation. No per-
// iteration capability checks.
package fit

import (
	"fmt"

	"github.com/katalvlaran/lvlfit/matrix"
)

// residualFn evaluates model residuals for a parameter vector.
// Implementations enforce the shape contract and the sentinel taxonomy.
type residualFn func(params []float64) ([]float64, error)

// jacobianFn produces the parameter-major Jacobian for a parameter vector
// (ParamCount rows × PointCount columns).
type jacobianFn func(params []float64) (matrix.Matrix, error)

// newResidualFn wraps model.Residuals with contract enforcement:
// an evaluation failure becomes ErrUndefinedResidual (with the model's
// message as context) and a wrong-length result becomes ErrBadResidualLen.
// Complexity: O(points) per call on top of the model's own cost.
func newResidualFn(model Fittable) residualFn {
	points := model.PointCount() // captured once; stable per contract

	return func(params []float64) ([]float64, error) {
		r, err := model.Residuals(params)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUndefinedResidual, err)
		}
		if len(r) != points {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrBadResidualLen, len(r), points)
		}

		return r, nil
	}
}

// resolveJacobian picks the Jacobian provider for a model, once.
//
// Dispatch is over capability presence: a model implementing
// AnalyticFittable uses its closed-form Jacobian exclusively; the
// finite-difference path is never invoked for that model.
func resolveJacobian(model Fittable, residuals residualFn, fdrel float64) jacobianFn {
	if am, ok := model.(AnalyticFittable); ok {
		return analyticJacobian(am)
	}

	return fdJacobian(model.ParamCount(), model.PointCount(), residuals, fdrel)
}

// analyticJacobian wraps a model's closed-form Jacobian with shape
// validation: the result must be ParamCount×PointCount (parameter-major),
// anything else is ErrBadJacobianShape.
func analyticJacobian(model AnalyticFittable) jacobianFn {
	rows, cols := model.ParamCount(), model.PointCount()

	return func(params []float64) (matrix.Matrix, error) {
		jt, err := model.Jacobian(params)
		if err != nil {
			return nil, fmt.Errorf("fit: analytic jacobian: %w", err)
		}
		if jt == nil || jt.Rows() != rows || jt.Cols() != cols {
			return nil, fmt.Errorf("%w: want %d×%d", ErrBadJacobianShape, rows, cols)
		}

		return jt, nil
	}
}

// fdJacobian builds a central finite-difference Jacobian provider.
//
// Algorithm, for each parameter index k:
//   - perturb only coordinate k by dp = params[k]*fdrel in both directions,
//   - evaluate residuals at params+dp·e_k and params−dp·e_k,
//   - row k = (r₊ − r₋) / (2·dp), element-wise.
//
// Edge case: params[k] == 0 makes dp collapse to zero and the quotient
// undefined; the implementation substitutes fdrel itself as an absolute
// step floor so every coordinate is always perturbed.
//
// Cost: 2·ParamCount residual evaluations per Jacobian.
// Determinism: fixed k→j loop order; no shared scratch between calls.
func fdJacobian(nParams, nPoints int, residuals residualFn, fdrel float64) jacobianFn {
	return func(params []float64) (matrix.Matrix, error) {
		jt, err := matrix.NewDense(nParams, nPoints)
		if err != nil {
			return nil, fmt.Errorf("fit: fd jacobian: %w", err)
		}

		// Scratch vectors for the two perturbed evaluations, reused per k.
		plus := make([]float64, nParams)
		minus := make([]float64, nParams)

		var (
			k, j     int       // loop iterators (parameter, point)
			dp       float64   // signed perturbation for coordinate k
			rp, rm   []float64 // residuals at the perturbed vectors
			halfStep float64   // 1/(2·dp), hoisted out of the inner loop
		)
		for k = 0; k < nParams; k++ {
			// Perturbation scaled by the coordinate's magnitude; keeps the
			// relative step meaningful across parameter scales.
			dp = params[k] * fdrel
			if dp == 0 {
				dp = fdrel // absolute floor: params[k] == 0 must still move
			}

			copy(plus, params)
			copy(minus, params)
			plus[k] = params[k] + dp
			minus[k] = params[k] - dp

			if rp, err = residuals(plus); err != nil {
				return nil, err
			}
			if rm, err = residuals(minus); err != nil {
				return nil, err
			}

			halfStep = 1.0 / (2.0 * dp)
			for j = 0; j < nPoints; j++ {
				if err = jt.Set(k, j, (rp[j]-rm[j])*halfStep); err != nil {
					return nil, fmt.Errorf("fit: fd jacobian: %w", err)
				}
			}
		}

		return jt, nil
	}
}
