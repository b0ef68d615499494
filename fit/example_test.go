// SPDX-License-Identifier: MIT

package fit_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlfit/fit"
)

// ExampleFit fits a·exp(−b·x) to clean samples of exp(−x) and recovers the
// generating parameters.
func ExampleFit() {
	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Exp(-x)
	}

	model := &fit.Model{
		NParams: 2,
		NPoints: len(ys),
		Start:   []float64{0.5, 0.5},
		ResidualFn: func(p []float64) ([]float64, error) {
			r := make([]float64, len(ys))
			for i, x := range xs {
				r[i] = p[0]*math.Exp(-p[1]*x) - ys[i]
			}
			return r, nil
		},
	}

	params, err := fit.Fit(model)
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}
	fmt.Printf("a=%.2f b=%.2f\n", params[0], params[1])
	// Output:
	// a=1.00 b=1.00
}

// ExampleNew shows the controller API when the full outcome matters, not
// just the parameters.
func ExampleNew() {
	xs := []float64{0, 1, 2, 3, 4}
	model := &fit.Model{
		NParams: 2,
		NPoints: len(xs),
		Start:   []float64{0, 0},
		ResidualFn: func(p []float64) ([]float64, error) {
			r := make([]float64, len(xs))
			for i, x := range xs {
				r[i] = p[0]*x + p[1] - (2*x + 1)
			}
			return r, nil
		},
	}

	reg, err := fit.New(model, fit.WithRelTol(1e-6))
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}
	res, err := reg.Run()
	if err != nil {
		fmt.Println("run failed:", err)
		return
	}
	fmt.Println("converged:", res.Converged)
	fmt.Printf("slope=%.2f intercept=%.2f\n", res.Params[0], res.Params[1])
	// Output:
	// converged: true
	// slope=2.00 intercept=1.00
}
