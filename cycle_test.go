package stl

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCycleSubSeries_roundTrip(t *testing.T) {
	cases := []struct {
		period, n int
	}{
		{2, 5},
		{3, 10},
		{7, 100},
		{12, 144},
		{24, 49},
	}

	for _, tc := range cases {
		t.Run("", func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(tc.period*1000 + tc.n)))
			times := make([]int64, tc.n)
			detrend := make([]float64, tc.n)
			for i := range detrend {
				times[i] = int64(i) * 60
				detrend[i] = rng.NormFloat64()
			}

			cycle := splitCycleSubSeries(times, detrend, nil, tc.period)

			require.Len(t, cycle.values, tc.period)
			total := 0
			for i, sub := range cycle.values {
				total += len(sub)
				// The first n%period positions get the extra point.
				want := tc.n / tc.period
				if i < tc.n%tc.period {
					want++
				}
				require.Len(t, sub, want)
				require.Len(t, cycle.times[i], want)
			}
			require.Equal(t, tc.n, total)

			recombined := make([]float64, tc.n)
			cycle.recombine(recombined)
			require.Equal(t, detrend, recombined)
		})
	}
}

func TestSplitCycleSubSeries_indexMapping(t *testing.T) {
	const period, n = 4, 19
	times := make([]int64, n)
	detrend := make([]float64, n)
	for i := range detrend {
		times[i] = int64(1000 + i)
		detrend[i] = float64(i)
	}

	cycle := splitCycleSubSeries(times, detrend, nil, period)

	for i := 0; i < period; i++ {
		for k, v := range cycle.values[i] {
			require.Equal(t, float64(k*period+i), v)
			require.Equal(t, float64(times[k*period+i]), cycle.times[i][k])
		}
	}
}

func TestSplitCycleSubSeries_weights(t *testing.T) {
	const period, n = 3, 12
	times := make([]int64, n)
	detrend := make([]float64, n)
	robustness := make([]float64, n)
	for i := range robustness {
		times[i] = int64(i)
		robustness[i] = 0.8
	}

	t.Run("near-zero weight floored", func(t *testing.T) {
		r := append([]float64(nil), robustness...)
		r[7] = 0.0005 // cycle position 1, element 2

		cycle := splitCycleSubSeries(times, detrend, r, period)

		require.InDelta(t, 0.01, cycle.weights[1][2], 1e-12)
		require.InDelta(t, 0.8, cycle.weights[0][0], 1e-12)
	})

	t.Run("weight at the threshold kept", func(t *testing.T) {
		r := append([]float64(nil), robustness...)
		r[4] = 0.001

		cycle := splitCycleSubSeries(times, detrend, r, period)

		require.InDelta(t, 0.001, cycle.weights[1][1], 1e-12)
	})

	t.Run("nil robustness yields nil weights", func(t *testing.T) {
		cycle := splitCycleSubSeries(times, detrend, nil, period)

		require.Nil(t, cycle.weights)
		for i := 0; i < period; i++ {
			require.Nil(t, cycle.weightsAt(i))
		}
	})
}
