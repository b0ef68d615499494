// SPDX-License-Identifier: MIT

// Package fit: the regression controller — iteration loop, convergence
// logic and iteration bookkeeping.
package fit

import (
	"fmt"
	"math"
)

// Result reports the outcome of one regression run.
//
// Converged distinguishes a tolerance-met stop from an exhausted iteration
// budget; with the default soft-success policy both outcomes return the
// latest parameter vector and a nil error.
type Result struct {
	Params     []float64 // final parameter vector (length = ParamCount)
	Iterations int       // refinement steps actually performed
	RelErr     float64   // last relative parameter change ‖p'−p‖₂/‖p'‖₂
	Converged  bool      // true iff RelErr dropped below RelTol
}

// Regression owns one (model, strategy) pairing and may be reused for
// multiple independent runs; each Run resets the iteration state but keeps
// the configuration captured at construction.
//
// Not safe for concurrent Runs on the same instance: iteration state is
// mutated in place. Use one Regression per goroutine.
type Regression struct {
	model Fittable // caller-supplied model (read-only from here)
	iter  Iterator // refinement strategy, injected at construction
	cfg   Options  // effective configuration (value; copied per Run)
}

// New constructs a controller with the built-in Gauss-Newton strategy.
//
// Errors:
//   - ErrNilModel when model is nil.
func New(model Fittable, opts ...Option) (*Regression, error) {
	gn, err := NewGaussNewton(model, opts...)
	if err != nil {
		return nil, err
	}

	return NewWithIterator(model, gn, opts...)
}

// NewWithIterator constructs a controller around a caller-supplied strategy.
// WithFDRel has no effect here — step sizing belongs to the strategy.
//
// Errors:
//   - ErrNilModel when model or it is nil.
func NewWithIterator(model Fittable, it Iterator, opts ...Option) (*Regression, error) {
	if model == nil || it == nil {
		return nil, ErrNilModel
	}

	return &Regression{
		model: model,
		iter:  it,
		cfg:   gatherOptions(opts...),
	}, nil
}

// Run executes the fit: seed parameters from the model, then repeat
// { strategy refines → termination check } until convergence, budget
// exhaustion, or failure.
//
// State machine:
//
//	Uninitialized → Running → {Converged, MaxIterationsReached, Failed}
//
//   - Initialization fails with ErrFailedInit when the model reports a
//     non-positive parameter or point count, or a starting vector of the
//     wrong length.
//   - One iteration = one Refine call; the termination test compares the
//     new parameters against the previous baseline and is guaranteed to
//     signal "continue" on the very first iteration (no baseline exists yet).
//   - Convergence: ‖p'−p‖₂/‖p'‖₂ < RelTol.
//   - Budget exhaustion: soft success by default (best-effort parameters,
//     Result.Converged == false); ErrDidNotConverge under strict mode.
//   - Any strategy failure aborts immediately, surfacing the originating
//     sentinel (ErrUndefinedResidual, ErrSingularJacobian, ...).
//
// The configuration is copied into a local snapshot before the loop, so the
// run is immune to any concurrent option mutation.
//
// Complexity: MaxIters × the strategy's per-step cost.
func (r *Regression) Run() (Result, error) {
	cfg := r.cfg // immutable per-run snapshot

	// Initialization: Uninitialized → Running.
	n := r.model.ParamCount()
	if n <= 0 || r.model.PointCount() <= 0 {
		return Result{}, fmt.Errorf("%w: model reports %d parameters, %d points", ErrFailedInit, n, r.model.PointCount())
	}
	start := r.model.InitialParams()
	if len(start) != n {
		return Result{}, fmt.Errorf("%w: initial vector has %d values, want %d", ErrFailedInit, len(start), n)
	}
	// Own the working vector: no shared mutable aliasing with the model.
	params := make([]float64, n)
	copy(params, start)

	term := terminator{reltol: cfg.RelTol}
	var (
		iters  int       // iteration counter (monotonically increasing)
		relErr float64   // last relative parameter change
		stop   bool      // termination flag from the convergence test
		next   []float64 // parameters produced by the current step
		err    error
	)
	for iters = 1; ; iters++ {
		// Running → Running: delegate one step to the strategy.
		next, err = r.iter.Refine(params)
		if err != nil {
			// Running → Failed: surface the originating error, keep the
			// last accepted parameters for post-mortem inspection.
			return Result{Params: params, Iterations: iters - 1, RelErr: relErr}, err
		}

		// Termination test against the previous baseline, then accept.
		relErr, stop = term.check(next)
		params = next

		if cfg.Verbose {
			fmt.Printf("fit: iter %d relerr=%g\n", iters, relErr)
		}

		if stop {
			// Running → Converged.
			return Result{Params: params, Iterations: iters, RelErr: relErr, Converged: true}, nil
		}
		if iters >= cfg.MaxIters {
			// Running → MaxIterationsReached: best-effort result unless the
			// caller opted into strict convergence.
			if cfg.Strict {
				return Result{Params: params, Iterations: iters, RelErr: relErr},
					fmt.Errorf("%w: relerr=%g after %d iterations", ErrDidNotConverge, relErr, iters)
			}

			return Result{Params: params, Iterations: iters, RelErr: relErr}, nil
		}
	}
}

// Fit is the convenience facade: construct a Gauss-Newton controller, run
// it once, and return the final parameter vector.
func Fit(model Fittable, opts ...Option) ([]float64, error) {
	reg, err := New(model, opts...)
	if err != nil {
		return nil, err
	}
	res, err := reg.Run()
	if err != nil {
		return nil, err
	}

	return res.Params, nil
}

// terminator implements the convergence test between successive parameter
// vectors. The first check has no baseline and always signals "continue",
// so every run performs at least two refinement steps before it can
// converge (budget permitting).
type terminator struct {
	baseline []float64 // previous accepted parameters; nil before first check
	reltol   float64   // convergence threshold
}

// check reports the relative Euclidean change of next against the stored
// baseline and whether the loop should stop, then adopts next as the new
// baseline.
//
// First call: baseline is nil → store and continue, reporting +Inf.
// A zero next vector yields a non-finite quotient, which never satisfies
// the threshold — the run then terminates via the iteration cap.
// Complexity: O(n).
func (t *terminator) check(next []float64) (float64, bool) {
	if t.baseline == nil {
		t.baseline = append([]float64(nil), next...) // first baseline
		return math.Inf(1), false                    // no comparison possible yet
	}

	var i int
	var d, diffSq, nextSq float64
	for i = 0; i < len(next); i++ { // fixed order, no allocations
		d = next[i] - t.baseline[i]
		diffSq += d * d
		nextSq += next[i] * next[i]
	}
	relErr := math.Sqrt(diffSq) / math.Sqrt(nextSq)

	t.baseline = append(t.baseline[:0], next...) // adopt new baseline

	return relErr, relErr < t.reltol
}
