package stl

import (
	"fmt"

	"github.com/arloliu/stl/errs"
	"github.com/arloliu/stl/internal/options"
	"github.com/arloliu/stl/smooth"
)

// Default configuration values, matching the Cleveland et al. reference
// parameterization.
const (
	// DefaultInnerLoopPasses is the default number of inner-loop passes (n_i).
	DefaultInnerLoopPasses = 1
	// DefaultRobustnessIterations is the default number of outer robustness
	// iterations (n_o).
	DefaultRobustnessIterations = 1
	// DefaultLowPassBandwidth is the default loess bandwidth for the low-pass
	// filter stage.
	DefaultLowPassBandwidth = 0.25
	// DefaultTrendBandwidth is the default loess bandwidth for trend
	// smoothing.
	DefaultTrendBandwidth = 0.25
	// DefaultSeasonalBandwidth is the default loess bandwidth for
	// cycle-subseries smoothing. 1.0 uses every point of each subseries.
	DefaultSeasonalBandwidth = 1.0
)

// Config holds the STL decomposition parameters.
//
// Period is the number of observations per seasonal cycle (n_p) and
// DataPoints the total series length (n); both are required. The remaining
// fields carry the reference defaults when the Config comes from
// DefaultConfig or New.
//
// A Config must pass Check before use. New and NewFromConfig run Check for
// the caller; a Config constructed by hand and handed to NewFromConfig is
// validated there.
type Config struct {
	// Period is the number of observations in each seasonal cycle. Must be
	// at least 2.
	Period int

	// DataPoints is the expected series length. Must exceed 2*Period.
	DataPoints int

	// InnerLoopPasses is the number of passes through the inner smoothing
	// loop per outer iteration.
	InnerLoopPasses int

	// RobustnessIterations is the number of outer robustness iterations.
	RobustnessIterations int

	// LowPassBandwidth, TrendBandwidth and SeasonalBandwidth are loess
	// bandwidth fractions in (0, 1].
	LowPassBandwidth  float64
	TrendBandwidth    float64
	SeasonalBandwidth float64

	// Periodic declares the series strictly periodic. When set, Check
	// derives TrendBandwidth from Period and DataPoints (enforcing the
	// stability bound n_t >= 1.5*n_p/(1-1.5/n_s)) and the configured value
	// is ignored.
	Periodic bool

	// SmootherIterations is the number of internal robustness iterations
	// the default loess smoother runs per smoothing call. Ignored when a
	// custom Smoother is supplied.
	SmootherIterations int

	// Smoother overrides the numerical backend. Nil selects the default
	// loess implementation from the smooth package.
	Smoother Smoother
}

// DefaultConfig returns a Config for the given period and series length with
// every other parameter at its reference default.
func DefaultConfig(period, dataPoints int) Config {
	return Config{
		Period:               period,
		DataPoints:           dataPoints,
		InnerLoopPasses:      DefaultInnerLoopPasses,
		RobustnessIterations: DefaultRobustnessIterations,
		LowPassBandwidth:     DefaultLowPassBandwidth,
		TrendBandwidth:       DefaultTrendBandwidth,
		SeasonalBandwidth:    DefaultSeasonalBandwidth,
		SmootherIterations:   smooth.DefaultIterations,
	}
}

// Check validates the configuration and applies the periodic trend-bandwidth
// override.
//
// Check is idempotent for non-periodic configs. For periodic configs a
// re-run re-derives the same TrendBandwidth, so repeated calls are harmless
// as long as Period and DataPoints are unchanged.
func (c *Config) Check() error {
	if c.Period < 2 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidPeriod, c.Period)
	}
	if c.DataPoints <= 2*c.Period {
		return fmt.Errorf("%w: %d points for period %d", errs.ErrInvalidDataPoints, c.DataPoints, c.Period)
	}
	if c.InnerLoopPasses < 1 || c.RobustnessIterations < 1 {
		return fmt.Errorf("%w: inner=%d robustness=%d",
			errs.ErrInvalidIterations, c.InnerLoopPasses, c.RobustnessIterations)
	}
	if c.SmootherIterations < 0 {
		return fmt.Errorf("%w: smoother=%d", errs.ErrInvalidIterations, c.SmootherIterations)
	}

	if c.Periodic {
		n := float64(c.DataPoints)
		p := float64(c.Period)
		c.TrendBandwidth = 1.5 * p / (1 - 1.5/(10*n+1)) / n
	}

	for _, bw := range []struct {
		name  string
		value float64
	}{
		{"low-pass", c.LowPassBandwidth},
		{"trend", c.TrendBandwidth},
		{"seasonal", c.SeasonalBandwidth},
	} {
		if bw.value <= 0 || bw.value > 1 {
			return fmt.Errorf("%w: %s bandwidth %v", errs.ErrInvalidBandwidth, bw.name, bw.value)
		}
	}

	return nil
}

// Option configures a Decomposition at construction time.
type Option = options.Option[*Config]

// WithInnerLoopPasses sets the number of inner-loop passes (n_i).
func WithInnerLoopPasses(n int) Option {
	return options.NoError(func(c *Config) { c.InnerLoopPasses = n })
}

// WithRobustnessIterations sets the number of outer robustness iterations
// (n_o). Values above 1 make the decomposition resistant to outliers at the
// cost of proportionally more smoothing work.
func WithRobustnessIterations(n int) Option {
	return options.NoError(func(c *Config) { c.RobustnessIterations = n })
}

// WithLowPassBandwidth sets the loess bandwidth of the low-pass filter stage.
func WithLowPassBandwidth(bandwidth float64) Option {
	return options.NoError(func(c *Config) { c.LowPassBandwidth = bandwidth })
}

// WithTrendBandwidth sets the loess bandwidth for trend smoothing. Ignored
// when WithPeriodic is also given.
func WithTrendBandwidth(bandwidth float64) Option {
	return options.NoError(func(c *Config) { c.TrendBandwidth = bandwidth })
}

// WithSeasonalBandwidth sets the loess bandwidth for cycle-subseries
// smoothing.
func WithSeasonalBandwidth(bandwidth float64) Option {
	return options.NoError(func(c *Config) { c.SeasonalBandwidth = bandwidth })
}

// WithPeriodic declares the series strictly periodic; the trend bandwidth is
// then derived from the period and series length.
func WithPeriodic() Option {
	return options.NoError(func(c *Config) { c.Periodic = true })
}

// WithSmootherIterations sets the internal robustness iteration count of the
// default loess smoother.
func WithSmootherIterations(n int) Option {
	return options.NoError(func(c *Config) { c.SmootherIterations = n })
}

// WithSmoother substitutes a custom numerical backend for the default loess
// implementation.
func WithSmoother(s Smoother) Option {
	return options.NoError(func(c *Config) { c.Smoother = s })
}
