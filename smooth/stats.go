package smooth

import "sort"

// Median returns the median of values: the middle element of the sorted data
// for odd lengths, the mean of the two middle elements for even lengths.
// This matches the interpolating 50th percentile the robustness-weighting
// scheme was tuned against. Returns 0 for an empty slice.
//
// The input is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// MovingAverage returns the causal running mean of values: element i is the
// mean of the most recent window values ending at i. For i < window-1 only
// the i+1 values seen so far contribute.
//
// The directional (trailing, not centered) semantics are load-bearing for the
// STL low-pass filter: they determine how the filter output aligns against
// the seasonal component.
func MovingAverage(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}

	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
			out[i] = sum / float64(window)
		} else {
			out[i] = sum / float64(i+1)
		}
	}

	return out
}

// Median implements the descriptive-statistics half of the stl.Smoother
// capability interface.
func (l *Loess) Median(values []float64) float64 {
	return Median(values)
}

// RunningMean implements the descriptive-statistics half of the stl.Smoother
// capability interface.
func (l *Loess) RunningMean(values []float64, window int) []float64 {
	return MovingAverage(values, window)
}
