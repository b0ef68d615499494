// SPDX-License-Identifier: MIT

// Package fit: sentinel errors and configuration options for the
// nonlinear least-squares engine.
package fit

import (
	"errors"
	"math"
)

// Sentinel errors returned by the fit package. All failures abort the run
// synchronously; none are recovered or retried internally. Retrying with
// different starting parameters or a different finite-difference step is a
// caller-level concern.
var (
	// ErrNilModel indicates that a nil Fittable was passed to a constructor.
	ErrNilModel = errors.New("fit: model is nil")

	// ErrFailedInit indicates that the model produced no usable starting
	// parameters: ParamCount() <= 0, PointCount() <= 0, or InitialParams()
	// returned a vector whose length disagrees with ParamCount().
	ErrFailedInit = errors.New("fit: failed to initialize parameters")

	// ErrUndefinedResidual indicates that the model could not evaluate its
	// residual function at a given parameter vector (e.g. a domain error in
	// the model's function). Propagated immediately, no retry.
	ErrUndefinedResidual = errors.New("fit: undefined residual")

	// ErrBadResidualLen indicates that the residual vector returned by the
	// model has a length different from PointCount().
	ErrBadResidualLen = errors.New("fit: residual length mismatch")

	// ErrBadJacobianShape indicates that an analytic Jacobian's shape is not
	// ParamCount()×PointCount() (parameter-major layout).
	ErrBadJacobianShape = errors.New("fit: jacobian shape mismatch")

	// ErrSingularJacobian indicates that the Gram matrix Jt·Jtᵀ was not
	// invertible — a degenerate, rank-deficient Jacobian, e.g. insufficient
	// data or collinear parameters.
	ErrSingularJacobian = errors.New("fit: singular jacobian")

	// ErrDidNotConverge is returned only under WithStrictConvergence when the
	// iteration budget is exhausted before the tolerance is met.
	ErrDidNotConverge = errors.New("fit: did not converge within iteration budget")

	// ErrBadRelTol indicates that RelTol was set to a non-positive or
	// non-finite value.
	ErrBadRelTol = errors.New("fit: RelTol must be positive and finite")

	// ErrBadMaxIters indicates that MaxIters was set to a non-positive value.
	ErrBadMaxIters = errors.New("fit: MaxIters must be positive")

	// ErrBadFDRel indicates that FDRel was set to a non-positive or
	// non-finite value.
	ErrBadFDRel = errors.New("fit: FDRel must be positive and finite")
)

// DEFAULTS - single source of truth for zero-configuration behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultRelTol is the stopping threshold on the normalized Euclidean
	// distance between successive parameter vectors.
	DefaultRelTol = 1e-4

	// DefaultMaxIters caps the number of refinement iterations. Reaching the
	// cap is a soft success unless strict convergence is requested.
	DefaultMaxIters = 32

	// DefaultFDRel is the relative step used by the central finite-difference
	// Jacobian: each coordinate k is perturbed by dp = params[k]*FDRel.
	// When that product is zero (params[k] == 0), FDRel itself is used as an
	// absolute step floor.
	DefaultFDRel = 1e-4
)

// Options configures a regression run.
//
// RelTol   – relative convergence tolerance (must be > 0; default 1e-4).
// MaxIters – maximum refinement iterations (must be > 0; default 32).
// FDRel    – relative finite-difference step (must be > 0; default 1e-4).
//
//	Only consulted when the model has no analytic Jacobian.
//
// Verbose  – emit one diagnostic line per iteration (index and relative
//
//	error). Advisory only; not part of the contract.
//
// Strict   – treat an exhausted iteration budget as ErrDidNotConverge
//
//	instead of a best-effort success.
type Options struct {
	RelTol   float64 // convergence threshold on ‖p'−p‖₂/‖p'‖₂
	MaxIters int     // iteration budget
	FDRel    float64 // finite-difference relative step
	Verbose  bool    // per-iteration trace via fmt.Printf
	Strict   bool    // ErrDidNotConverge on budget exhaustion
}

// Option represents a functional option for configuring a regression.
type Option func(*Options)

// WithRelTol sets the relative convergence tolerance.
// Must pass a positive, finite value; anything else panics (programmer error).
func WithRelTol(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(ErrBadRelTol.Error())
	}

	return func(o *Options) { o.RelTol = tol }
}

// WithMaxIters sets the iteration budget.
// Must pass a positive value; zero or negative panics (programmer error).
func WithMaxIters(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxIters.Error())
	}

	return func(o *Options) { o.MaxIters = n }
}

// WithFDRel sets the relative step for the finite-difference Jacobian.
// Has no effect on models exposing an analytic Jacobian.
// Must pass a positive, finite value; anything else panics (programmer error).
func WithFDRel(h float64) Option {
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		panic(ErrBadFDRel.Error())
	}

	return func(o *Options) { o.FDRel = h }
}

// WithVerbose enables a one-line-per-iteration diagnostic trace reporting
// the iteration index and the relative parameter change.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithStrictConvergence makes an exhausted iteration budget an error
// (ErrDidNotConverge) instead of a best-effort success. The reference
// behavior — soft success — remains the default.
func WithStrictConvergence() Option {
	return func(o *Options) { o.Strict = true }
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - RelTol:   DefaultRelTol   (1e-4)
//   - MaxIters: DefaultMaxIters (32)
//   - FDRel:    DefaultFDRel    (1e-4)
//   - Verbose:  false (no per-iteration trace)
//   - Strict:   false (budget exhaustion is a soft success)
func DefaultOptions() Options {
	return Options{
		RelTol:   DefaultRelTol,
		MaxIters: DefaultMaxIters,
		FDRel:    DefaultFDRel,
		Verbose:  false,
		Strict:   false,
	}
}

// gatherOptions applies functional options over the defaults and returns the
// effective configuration. The result is a value: every Run works on its own
// immutable snapshot, so configuration can never change mid-run.
func gatherOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	return cfg
}
