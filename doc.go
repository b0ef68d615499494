// Package lvlfit is a compact toolkit for nonlinear least-squares curve
// fitting: give it a model that maps parameters to residuals, and it
// iteratively refines the parameters until the sum of squared residuals
// stops improving.
//
// 🚀 What is lvlfit?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• fit/    — the regression engine: Fittable models, pluggable
//		  Jacobian computation (analytic or central finite differences),
//		  a Gauss-Newton iteration strategy and a convergence-controlled loop
//		• matrix/ — the dense linear-algebra substrate: row-major matrices,
//		  column vectors, multiply, transpose, LU-based inversion
//
// ✨ Why choose lvlfit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, fixed loop orders, bit-for-bit
//     reproducible runs
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – swap the iteration strategy via the fit.Iterator interface
//
// Quick sketch:
//
//	model := &fit.Model{
//	    NParams: 2,
//	    NPoints: len(xs),
//	    Start:   []float64{0.5, 0.5},
//	    ResidualFn: func(p []float64) ([]float64, error) {
//	        r := make([]float64, len(xs))
//	        for i, x := range xs {
//	            r[i] = p[0]*math.Exp(-p[1]*x) - ys[i]
//	        }
//	        return r, nil
//	    },
//	}
//	params, err := fit.Fit(model, fit.WithRelTol(1e-5))
//
// Dive into fit/doc.go and matrix/doc.go for the full contracts, and the
// package example tests for runnable walkthroughs.
package lvlfit
