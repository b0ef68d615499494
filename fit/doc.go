// SPDX-License-Identifier: MIT

// Package fit implements nonlinear least-squares regression: given a model
// that produces a residual vector as a function of a parameter vector, it
// iteratively refines the parameters to minimize the sum of squared
// residuals using the Gauss-Newton method.
//
// Overview:
//
//   - A model is anything implementing Fittable: parameter count, data-point
//     count, starting parameters, and a residual function. Models that also
//     know their closed-form Jacobian implement AnalyticFittable; everyone
//     else gets a central finite-difference approximation automatically.
//   - One Gauss-Newton step solves the linearized least-squares problem via
//     the normal equations: with Jt the parameter-major Jacobian (one row per
//     parameter, one column per data point), the update is
//     p' = p − (Jt·Jtᵀ)⁻¹·Jt·r.
//   - The Regression controller owns the loop: it seeds parameters from the
//     model, delegates each step to an Iterator strategy, and stops when the
//     relative parameter change ‖p'−p‖₂/‖p'‖₂ drops below RelTol or the
//     iteration budget runs out.
//
// When to use:
//
//   - Curve fitting with few parameters and a smooth residual function:
//     exponential decays, rate constants, calibration curves.
//   - As a building block when the default strategy is not enough: the
//     Iterator interface lets you substitute your own refinement step.
//
// Key behaviors:
//
//   - Capability dispatch is static: whether the model's analytic Jacobian or
//     the finite-difference fallback is used is resolved once, at
//     construction, never per iteration.
//   - Reaching MaxIters without meeting RelTol is a soft success by default:
//     the best-effort parameters are returned and Result.Converged is false.
//     WithStrictConvergence turns that outcome into ErrDidNotConverge.
//   - Deterministic: fixed evaluation order, no randomness; identical model,
//     start and options produce bit-for-bit identical results.
//
// Error handling (sentinel errors):
//
//   - ErrNilModel:           nil model passed to a constructor.
//   - ErrFailedInit:         the model cannot supply usable starting
//     parameters (zero parameter count, or a start vector of the wrong length).
//   - ErrUndefinedResidual:  the residual function failed at some point
//     (domain error); the run aborts immediately, no retry.
//   - ErrBadResidualLen:     the residual vector length disagrees with
//     PointCount.
//   - ErrBadJacobianShape:   an analytic Jacobian has the wrong shape.
//   - ErrSingularJacobian:   the Gram matrix Jt·Jtᵀ is not invertible
//     (rank-deficient Jacobian: insufficient data or collinear parameters).
//   - ErrDidNotConverge:     strict mode only; the iteration budget ran out.
//
// Concurrency:
//
//   - A Regression mutates its own iteration state in place; one Run at a
//     time per instance. For concurrent fits over the same model, give each
//     goroutine its own Regression — the model must then be safe for
//     concurrent read-only residual evaluation.
//
// Example usage:
//
//	params, err := fit.Fit(model,
//	    fit.WithRelTol(1e-5),
//	    fit.WithMaxIters(64),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("fitted:", params)
package fit
