package stl

const (
	// weightFloorThreshold and weightFloor guard the weighted seasonal
	// smoothing against near-zero robustness weights: any weight below the
	// threshold is raised to the floor before it reaches the smoother.
	// The exact values are part of the algorithm's observable behavior and
	// must not be tuned independently.
	weightFloorThreshold = 0.001
	weightFloor          = 0.01
)

// cycleSubSeries is the detrended series split into period interleaved
// subsequences, one per position in the seasonal cycle. Subsequence i holds
// the points at global indices i, i+period, i+2*period, ...
//
// Subsequence lengths differ by at most one: the first n%period positions
// get one extra point, and the lengths sum to n.
type cycleSubSeries struct {
	period  int
	values  [][]float64
	times   [][]float64
	weights [][]float64 // nil before the first outer iteration
}

// splitCycleSubSeries partitions detrend into cycle subsequences, carrying
// matching timestamps and, when present, floored robustness weights.
func splitCycleSubSeries(times []int64, detrend, robustness []float64, period int) *cycleSubSeries {
	n := len(detrend)
	c := &cycleSubSeries{
		period: period,
		values: make([][]float64, period),
		times:  make([][]float64, period),
	}
	if robustness != nil {
		c.weights = make([][]float64, period)
	}

	for i := 0; i < period; i++ {
		length := n / period
		if i < n%period {
			length++
		}

		values := make([]float64, length)
		ts := make([]float64, length)
		var weights []float64
		if robustness != nil {
			weights = make([]float64, length)
		}

		for k := 0; k < length; k++ {
			idx := k*period + i
			values[k] = detrend[idx]
			ts[k] = float64(times[idx])
			if weights != nil {
				w := robustness[idx]
				if w < weightFloorThreshold {
					w = weightFloor
				}
				weights[k] = w
			}
		}

		c.values[i] = values
		c.times[i] = ts
		if weights != nil {
			c.weights[i] = weights
		}
	}

	return c
}

// weightsAt returns the robustness weights for cycle position i, or nil when
// no robustness weights exist yet.
func (c *cycleSubSeries) weightsAt(i int) []float64 {
	if c.weights == nil {
		return nil
	}

	return c.weights[i]
}

// recombine scatters the (smoothed) subsequence values back into dst using
// the inverse of the split mapping: subsequence i element k lands at global
// index period*k + i.
func (c *cycleSubSeries) recombine(dst []float64) {
	for i, values := range c.values {
		for k, v := range values {
			dst[c.period*k+i] = v
		}
	}
}
