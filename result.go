package stl

// Result is the additive decomposition of a time series:
//
//	Series[i] == Trend[i] + Seasonal[i] + Remainder[i]
//
// for every i, up to floating-point rounding. The identity holds by
// construction; it is not re-checked after the fact.
//
// Times and Series echo the Decompose inputs. All slices have the same
// length and are owned by the caller; the engine keeps no reference to them
// after Decompose returns.
type Result struct {
	Times     []int64
	Series    []float64
	Trend     []float64
	Seasonal  []float64
	Remainder []float64
}

// Len returns the number of data points in the decomposition.
func (r *Result) Len() int {
	return len(r.Series)
}
