package stl

// lowPassFilter strips residual trend from the recombined smoothed
// cycle-subseries: two running means of window period, a running mean of
// window 3, then a loess pass at the low-pass bandwidth.
//
// The running means are causal (trailing window, not centered); the
// alignment of the filter output against the seasonal component depends on
// that direction.
func (d *Decomposition) lowPassFilter(series, robustness []float64) ([]float64, error) {
	s := d.smoother.RunningMean(series, d.cfg.Period)
	s = d.smoother.RunningMean(s, d.cfg.Period)
	s = d.smoother.RunningMean(s, 3)

	return d.smoother.Smooth(d.index, s, d.cfg.LowPassBandwidth, robustness)
}
