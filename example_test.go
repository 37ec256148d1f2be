package stl_test

import (
	"fmt"
	"math"

	"github.com/arloliu/stl"
)

func Example() {
	// Hourly data with a daily cycle: a slow drift plus a 24-point seasonal
	// wave.
	const period = 24
	const n = 7 * period

	times := make([]int64, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		times[i] = int64(i) * 3600
		values[i] = 100 + 0.01*float64(i) + 5*math.Sin(2*math.Pi*float64(i)/period)
	}

	result, err := stl.Decompose(times, values, period)
	if err != nil {
		fmt.Println("decompose:", err)
		return
	}

	// The components sum back to the input at every point.
	i := n / 2
	sum := result.Trend[i] + result.Seasonal[i] + result.Remainder[i]
	fmt.Printf("additive: %v\n", math.Abs(sum-result.Series[i]) < 1e-9)
	fmt.Printf("points: %d\n", result.Len())
	// Output:
	// additive: true
	// points: 168
}
