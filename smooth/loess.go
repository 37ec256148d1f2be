package smooth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/stl/errs"
	"github.com/arloliu/stl/internal/options"
)

// DefaultIterations is the default number of internal robustness iterations
// performed by the loess smoother, matching the R reference implementation.
const DefaultIterations = 4

// defaultAccuracy is the threshold below which the local x spread and the
// median residual are treated as zero.
const defaultAccuracy = 1e-12

// Loess is a locally weighted regression smoother.
//
// For each point it fits a weighted linear regression over the
// round(bandwidth*n) nearest neighbors, weighting neighbors by tricube
// distance, by the external per-point weights (when supplied), and by
// internally derived bisquare robustness weights that are refined over a
// fixed number of iterations.
//
// A Loess instance is immutable after construction and safe for concurrent
// use.
type Loess struct {
	iterations int
	accuracy   float64
}

// Option configures a Loess smoother.
type Option = options.Option[*Loess]

// WithIterations sets the number of internal robustness iterations.
// The default of 4 matches the R loess implementation; 0 disables internal
// reweighting entirely.
func WithIterations(n int) Option {
	return options.New(func(l *Loess) error {
		if n < 0 {
			return fmt.Errorf("%w: loess iterations %d", errs.ErrInvalidIterations, n)
		}
		l.iterations = n

		return nil
	})
}

// New creates a Loess smoother.
func New(opts ...Option) (*Loess, error) {
	l := &Loess{
		iterations: DefaultIterations,
		accuracy:   defaultAccuracy,
	}
	if err := options.Apply(l, opts...); err != nil {
		return nil, err
	}

	return l, nil
}

// Smooth computes the loess fit of y against x at every x position.
//
// The x values must be strictly increasing and all inputs finite. The
// bandwidth is the fraction of points forming each local window; it must
// select at least 2 points. weights may be nil for an unweighted fit;
// otherwise it must have the same length as x and y, and each weight scales
// that point's influence on every local regression it participates in.
//
// Series of length 1 or 2 are returned as-is: there is nothing to smooth.
func (l *Loess) Smooth(x, y []float64, bandwidth float64, weights []float64) ([]float64, error) {
	n := len(x)
	if len(y) != n || (weights != nil && len(weights) != n) {
		return nil, fmt.Errorf("%w: x=%d y=%d weights=%d",
			errs.ErrSmoothLengthMismatch, len(x), len(y), len(weights))
	}
	if err := checkFinite(x, y, weights); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return nil, fmt.Errorf("%w: x[%d]=%v x[%d]=%v",
				errs.ErrNotIncreasing, i-1, x[i-1], i, x[i])
		}
	}

	if n <= 2 {
		res := make([]float64, n)
		copy(res, y)

		return res, nil
	}

	window := int(bandwidth * float64(n))
	if window < 2 {
		return nil, fmt.Errorf("%w: bandwidth %v of %d points", errs.ErrBandwidthTooSmall, bandwidth, n)
	}
	if window > n {
		window = n
	}

	if weights == nil {
		weights = unitWeights(n)
	}

	res := make([]float64, n)
	residuals := make([]float64, n)
	robustness := unitWeights(n)

	// localW holds the combined tricube*robustness*external weight for the
	// current window, reused across points.
	localW := make([]float64, n)

	// The first l.iterations passes refine the robustness weights from the
	// fit residuals; the final pass produces the returned fit.
	for iter := 0; iter <= l.iterations; iter++ {
		left, right := 0, window-1

		for i := 0; i < n; i++ {
			if i > 0 {
				left, right = advanceWindow(x, i, left, right)
			}
			l.fitAt(x, y, weights, robustness, localW, i, left, right, res)
			residuals[i] = math.Abs(y[i] - res[i])
		}

		if iter == l.iterations {
			break
		}

		medianResidual := Median(residuals)
		if math.Abs(medianResidual) < l.accuracy {
			break
		}
		for i := 0; i < n; i++ {
			arg := residuals[i] / (6 * medianResidual)
			if arg >= 1 {
				robustness[i] = 0
			} else {
				robustness[i] = (1 - arg*arg) * (1 - arg*arg)
			}
		}
	}

	return res, nil
}

// fitAt computes the local linear fit at index i over the window
// [left, right] and stores the fitted value in res[i].
func (l *Loess) fitAt(x, y, weights, robustness, localW []float64, i, left, right int, res []float64) {
	xi := x[i]

	// Scale distances by the farther window edge so the tricube weight
	// reaches zero exactly at the edge of the neighborhood.
	var edge float64
	if xi-x[left] > x[right]-xi {
		edge = x[left]
	} else {
		edge = x[right]
	}
	denom := math.Abs(1 / (edge - xi))

	sumWeights := 0.0
	for k := left; k <= right; k++ {
		w := tricube(math.Abs(x[k]-xi)*denom) * robustness[k] * weights[k]
		localW[k] = w
		sumWeights += w
	}

	if sumWeights == 0 {
		// Every neighbor is fully down-weighted; leave the point unchanged
		// rather than propagating a 0/0 fit.
		res[i] = y[i]

		return
	}

	xs := x[left : right+1]
	ys := y[left : right+1]
	ws := localW[left : right+1]

	meanX := stat.Mean(xs, ws)
	if spreadBelow(xs, ws, meanX, sumWeights, l.accuracy) {
		res[i] = stat.Mean(ys, ws)

		return
	}

	alpha, beta := stat.LinearRegression(xs, ys, ws, false)
	res[i] = alpha + beta*xi
}

// advanceWindow slides the nearest-neighbor window one step to the right when
// the next point beyond the window is closer to x[i] than the current left
// edge.
func advanceWindow(x []float64, i, left, right int) (int, int) {
	if right < len(x)-1 && x[right+1]-x[i] < x[i]-x[left] {
		return left + 1, right + 1
	}

	return left, right
}

// spreadBelow reports whether the weighted standard deviation of xs is below
// the accuracy threshold, in which case the local fit degenerates to a
// weighted mean.
func spreadBelow(xs, ws []float64, meanX, sumWeights, accuracy float64) bool {
	var sq float64
	for k, xv := range xs {
		d := xv - meanX
		sq += ws[k] * d * d
	}

	return math.Sqrt(sq/sumWeights) < accuracy
}

func tricube(u float64) float64 {
	if u >= 1 {
		return 0
	}
	z := 1 - u*u*u

	return z * z * z
}

func unitWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	return w
}

func checkFinite(x, y, weights []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: x[%d]=%v", errs.ErrNonFiniteInput, i, v)
		}
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: y[%d]=%v", errs.ErrNonFiniteInput, i, v)
		}
	}
	for i, v := range weights {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: weights[%d]=%v", errs.ErrNonFiniteInput, i, v)
		}
	}

	return nil
}
