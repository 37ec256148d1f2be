package stl

import (
	"fmt"

	"github.com/arloliu/stl/errs"
	"github.com/arloliu/stl/internal/options"
	"github.com/arloliu/stl/internal/pool"
	"github.com/arloliu/stl/smooth"
)

// Smoother is the numerical capability consumed by the decomposition engine:
// a locally weighted regression smoother plus the two descriptive statistics
// the algorithm needs. The smooth package provides the default
// implementation; any conforming backend may be substituted via WithSmoother.
//
// Smooth fits y against x with the given bandwidth fraction; weights may be
// nil for an unweighted fit. Median is the interpolating 50th percentile.
// RunningMean is the causal fixed-window mean: element i averages the last
// window values ending at i.
type Smoother interface {
	Smooth(x, y []float64, bandwidth float64, weights []float64) ([]float64, error)
	Median(values []float64) float64
	RunningMean(values []float64, window int) []float64
}

// Decomposition performs STL decomposition of equally spaced time series.
//
// A Decomposition is immutable after construction: it holds only the
// validated configuration, the smoothing backend, and a precomputed index
// axis. Decompose calls share no mutable state and are safe to run
// concurrently.
type Decomposition struct {
	cfg      Config
	smoother Smoother

	// index is the synthetic x axis 0..n-1 used for trend and low-pass
	// smoothing, where position, not wall-clock time, is the regressor.
	index []float64
}

// New creates a Decomposition for series of dataPoints points with period
// observations per seasonal cycle. Unspecified parameters take the
// reference defaults (see DefaultConfig).
//
// Returns an error wrapping errs.ErrInvalidPeriod, errs.ErrInvalidDataPoints,
// errs.ErrInvalidBandwidth or errs.ErrInvalidIterations when the resulting
// configuration is invalid.
func New(period, dataPoints int, opts ...Option) (*Decomposition, error) {
	cfg := DefaultConfig(period, dataPoints)
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return NewFromConfig(cfg)
}

// NewFromConfig creates a Decomposition from an explicit Config. The config
// is validated (and, for periodic configs, its trend bandwidth derived) via
// Config.Check before use.
func NewFromConfig(cfg Config) (*Decomposition, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}

	sm := cfg.Smoother
	if sm == nil {
		var err error
		sm, err = smooth.New(smooth.WithIterations(cfg.SmootherIterations))
		if err != nil {
			return nil, err
		}
	}

	index := make([]float64, cfg.DataPoints)
	for i := range index {
		index[i] = float64(i)
	}

	return &Decomposition{cfg: cfg, smoother: sm, index: index}, nil
}

// Config returns a copy of the validated configuration.
func (d *Decomposition) Config() Config {
	return d.cfg
}

// Decompose splits the series into additive trend, seasonal and remainder
// components. times are the observation timestamps (used as loess
// x-coordinates for seasonal smoothing); values are the observations. Both
// must have exactly the configured number of data points.
//
// The engine runs the configured number of outer robustness iterations; each
// outer iteration runs the configured number of inner passes and then
// refreshes the per-point robustness weights from the remainder. Iteration
// counts are fixed by configuration; there is no convergence test.
func (d *Decomposition) Decompose(times []int64, values []float64) (*Result, error) {
	n := d.cfg.DataPoints
	if len(times) != n || len(values) != n {
		return nil, fmt.Errorf("%w: times=%d values=%d want %d",
			errs.ErrLengthMismatch, len(times), len(values), n)
	}

	trend := make([]float64, n)
	seasonal := make([]float64, n)
	remainder := make([]float64, n)
	var robustness []float64

	for outer := 0; outer < d.cfg.RobustnessIterations; outer++ {
		for inner := 0; inner < d.cfg.InnerLoopPasses; inner++ {
			var err error
			trend, err = d.innerPass(times, values, trend, seasonal, robustness)
			if err != nil {
				return nil, err
			}
		}

		for i := 0; i < n; i++ {
			remainder[i] = values[i] - trend[i] - seasonal[i]
		}

		var err error
		robustness, err = d.robustnessWeights(remainder)
		if err != nil {
			return nil, err
		}
	}

	resTimes := make([]int64, n)
	copy(resTimes, times)
	series := make([]float64, n)
	copy(series, values)

	return &Result{
		Times:     resTimes,
		Series:    series,
		Trend:     trend,
		Seasonal:  seasonal,
		Remainder: remainder,
	}, nil
}

// innerPass runs one pass of the inner smoothing loop, updating seasonal in
// place and returning the refreshed trend estimate.
func (d *Decomposition) innerPass(times []int64, values, trend, seasonal, robustness []float64) ([]float64, error) {
	n := d.cfg.DataPoints

	detrend, releaseDetrend := pool.GetFloat64Slice(n)
	defer releaseDetrend()
	for i := 0; i < n; i++ {
		detrend[i] = values[i] - trend[i]
	}

	cycle := splitCycleSubSeries(times, detrend, robustness, d.cfg.Period)
	for i, sub := range cycle.values {
		smoothed, err := d.smoother.Smooth(cycle.times[i], sub, d.cfg.SeasonalBandwidth, cycle.weightsAt(i))
		if err != nil {
			return nil, fmt.Errorf("seasonal smoothing of cycle position %d: %w", i, err)
		}
		cycle.values[i] = smoothed
	}

	combined, releaseCombined := pool.GetFloat64Slice(n)
	defer releaseCombined()
	cycle.recombine(combined)

	filtered, err := d.lowPassFilter(combined, robustness)
	if err != nil {
		return nil, fmt.Errorf("low-pass filtering: %w", err)
	}

	for i := 0; i < n; i++ {
		seasonal[i] = combined[i] - filtered[i]
	}

	// Deseasonalize, then refine the trend with a full-series loess over the
	// synthetic index axis.
	deseasonalized, releaseDeseason := pool.GetFloat64Slice(n)
	defer releaseDeseason()
	for i := 0; i < n; i++ {
		deseasonalized[i] = values[i] - seasonal[i]
	}

	newTrend, err := d.smoother.Smooth(d.index, deseasonalized, d.cfg.TrendBandwidth, robustness)
	if err != nil {
		return nil, fmt.Errorf("trend smoothing: %w", err)
	}

	return newTrend, nil
}
