package stl

import (
	"fmt"
	"math"

	"github.com/arloliu/stl/errs"
)

// robustnessWeights derives per-point outlier weights from the current
// remainder: h = 6*median(|remainder|), weight[i] = bisquare(|remainder[i]|/h).
//
// When h is zero the fit is already perfect and there is nothing to
// down-weight, so every weight is 1. The reference implementation divides
// regardless and produces NaN here; returning unit weights keeps the result
// finite without changing any non-degenerate outcome.
func (d *Decomposition) robustnessWeights(remainder []float64) ([]float64, error) {
	abs := make([]float64, len(remainder))
	for i, r := range remainder {
		abs[i] = math.Abs(r)
	}

	h := 6 * d.smoother.Median(abs)

	weights := make([]float64, len(remainder))
	if h == 0 {
		for i := range weights {
			weights[i] = 1
		}

		return weights, nil
	}

	for i := range weights {
		w, err := bisquare(abs[i] / h)
		if err != nil {
			return nil, err
		}
		weights[i] = w
	}

	return weights, nil
}

// bisquare is the standard robust-regression weight kernel: (1-u^2)^2 for
// 0 <= u < 1, zero for u >= 1. Negative input violates a precondition (the
// caller always passes a ratio of absolute values) and is reported rather
// than silently clamped.
func bisquare(u float64) (float64, error) {
	switch {
	case u < 0:
		return 0, fmt.Errorf("%w: got %v", errs.ErrNegativeBisquare, u)
	case u < 1:
		v := 1 - u*u

		return v * v, nil
	default:
		return 0, nil
	}
}
