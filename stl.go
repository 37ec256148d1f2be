// Package stl implements STL — Seasonal-Trend decomposition using Loess —
// for equally spaced time series.
//
// Given a series of n observations with a seasonal cycle of p points, a
// decomposition produces three additive components, trend, seasonal and
// remainder, with series = trend + seasonal + remainder at every point. It
// is the de-trending / de-seasonalizing stage typically run ahead of anomaly
// detection or forecasting.
//
// The implementation follows Robert B. Cleveland et al., "STL: A
// Seasonal-Trend Decomposition Procedure Based on Loess", Journal of
// Official Statistics 6(1), 1990: an outer robustness loop deriving bisquare
// outlier weights from the remainder, and an inner loop of detrending,
// cycle-subseries loess smoothing, low-pass filtering and trend smoothing.
//
// # Basic Usage
//
//	decomp, err := stl.New(12, len(values))
//	if err != nil {
//	    return err
//	}
//	result, err := decomp.Decompose(times, values)
//	if err != nil {
//	    return err
//	}
//	// result.Trend, result.Seasonal, result.Remainder
//
// Robust decomposition of data with outliers:
//
//	decomp, err := stl.New(12, len(values),
//	    stl.WithRobustnessIterations(5),
//	    stl.WithInnerLoopPasses(2),
//	)
//
// # Package Structure
//
//   - stl: configuration, the decomposition engine, and results
//   - smooth: the loess smoother and descriptive statistics backing it
//   - blob: compact binary serialization of decomposition results
//   - compress: the compression codecs used by blob
//
// A Decomposition is immutable and safe for concurrent use; each Decompose
// call owns its working state.
package stl

// Decompose is a convenience one-shot decomposition: it builds a
// Decomposition for series of len(values) points with the given seasonal
// period and runs it on (times, values).
//
// Construction is cheap, but callers decomposing many same-shaped series
// should build one Decomposition with New and reuse it.
func Decompose(times []int64, values []float64, period int, opts ...Option) (*Result, error) {
	d, err := New(period, len(values), opts...)
	if err != nil {
		return nil, err
	}

	return d.Decompose(times, values)
}
