// SPDX-License-Identifier: MIT

// Package fit: the Gauss-Newton iteration strategy.
package fit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlfit/matrix"
)

// Iterator produces the next parameter vector for one refinement step.
// Gauss-Newton is the sole built-in strategy, but the controller accepts any
// Iterator, so alternative schemes can be injected by composition.
//
// Contract: Refine must not mutate params; it returns a freshly allocated
// vector of the same length, or an error that aborts the run.
type Iterator interface {
	Refine(params []float64) ([]float64, error)
}

// GaussNewton refines parameters by solving the normal equations of the
// linearized least-squares problem at each step.
//
// With Jt the parameter-major Jacobian (rows = parameters, columns = data
// points) and r the residual vector at p:
//
//	Gram = Jt · Jtᵀ                   (ParamCount × ParamCount)
//	p'   = p − (Gram⁻¹ · Jt) · r
//
// Because Jt is already stored parameter-major, Jt·Jtᵀ directly yields the
// Gram matrix of the conventional Jacobian — no transposing back.
type GaussNewton struct {
	residuals residualFn // contract-enforcing residual service
	jacobian  jacobianFn // resolved provider: analytic or finite-difference
}

// Compile-time conformance assertion.
var _ Iterator = (*GaussNewton)(nil)

// NewGaussNewton constructs the built-in strategy for a model.
//
// The Jacobian provider is resolved here, once: a model implementing
// AnalyticFittable keeps its closed-form Jacobian; any other model gets the
// central finite-difference approximation with the configured FDRel step
// (options other than WithFDRel are ignored by the strategy).
//
// Errors:
//   - ErrNilModel when model is nil.
func NewGaussNewton(model Fittable, opts ...Option) (*GaussNewton, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	cfg := gatherOptions(opts...)

	residuals := newResidualFn(model)

	return &GaussNewton{
		residuals: residuals,
		jacobian:  resolveJacobian(model, residuals, cfg.FDRel),
	}, nil
}

// Refine performs one Gauss-Newton step from params.
//
// Implementation:
//   - Stage 1: evaluate the residual vector r at params.
//   - Stage 2: obtain the parameter-major Jacobian Jt (recomputed every
//     step, never reused).
//   - Stage 3: form Gram = Jt·Jtᵀ and invert it; a singular Gram matrix
//     surfaces as ErrSingularJacobian.
//   - Stage 4: apply the update p' = p − (Gram⁻¹·Jt)·r.
//
// Errors:
//   - ErrUndefinedResidual / ErrBadResidualLen from the residual service.
//   - ErrBadJacobianShape from an ill-shaped analytic Jacobian.
//   - ErrSingularJacobian when the Gram matrix cannot be inverted.
//
// Determinism:
//   - Every stage is a fixed-order dense kernel; identical inputs produce
//     identical outputs.
//
// Complexity:
//   - Time O(n²·m + n³) for n parameters and m points; Space O(n·m).
func (g *GaussNewton) Refine(params []float64) ([]float64, error) {
	// Stage 1: residuals at the current parameters.
	r, err := g.residuals(params)
	if err != nil {
		return nil, err
	}

	// Stage 2: parameter-major Jacobian at the current parameters.
	jt, err := g.jacobian(params)
	if err != nil {
		return nil, err
	}

	// Stage 3: Gram matrix and its inverse.
	jtT, err := matrix.Transpose(jt)
	if err != nil {
		return nil, fmt.Errorf("fit: gauss-newton: %w", err)
	}
	gram, err := matrix.Mul(jt, jtT)
	if err != nil {
		return nil, fmt.Errorf("fit: gauss-newton: %w", err)
	}
	gramInv, err := matrix.Inverse(gram)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("%w: %v", ErrSingularJacobian, err)
		}

		return nil, fmt.Errorf("fit: gauss-newton: %w", err)
	}

	// Stage 4: pseudo-inverse applied to the residuals, then the update.
	// Jpi = Gram⁻¹·Jt has shape ParamCount×PointCount, so Jpi·r is a
	// parameter-space step.
	jpi, err := matrix.Mul(gramInv, jt)
	if err != nil {
		return nil, fmt.Errorf("fit: gauss-newton: %w", err)
	}
	step, err := matrix.MatVec(jpi, r)
	if err != nil {
		return nil, fmt.Errorf("fit: gauss-newton: %w", err)
	}

	next := make([]float64, len(params))
	for i := 0; i < len(params); i++ { // fixed order; fresh output vector
		next[i] = params[i] - step[i]
	}

	return next, nil
}
