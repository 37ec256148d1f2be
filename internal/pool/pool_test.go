package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	t.Run("exact length", func(t *testing.T) {
		s, done := GetFloat64Slice(128)
		defer done()

		require.Len(t, s, 128)
	})

	t.Run("reuse after cleanup", func(t *testing.T) {
		s, done := GetFloat64Slice(64)
		for i := range s {
			s[i] = float64(i)
		}
		done()

		// A smaller request may observe stale contents; length must still be
		// exactly what was asked for.
		s2, done2 := GetFloat64Slice(32)
		defer done2()
		require.Len(t, s2, 32)
	})

	t.Run("zero length", func(t *testing.T) {
		s, done := GetFloat64Slice(0)
		defer done()

		require.Len(t, s, 0)
	})
}

func TestGetByteSlice(t *testing.T) {
	s, done := GetByteSlice(256)
	defer done()

	require.Len(t, s, 0)
	require.GreaterOrEqual(t, cap(s), 256)
}
