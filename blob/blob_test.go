package blob

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/stl"
	"github.com/arloliu/stl/compress"
	"github.com/arloliu/stl/errs"
)

func testResult(n int) *stl.Result {
	r := &stl.Result{
		Times:     make([]int64, n),
		Series:    make([]float64, n),
		Trend:     make([]float64, n),
		Seasonal:  make([]float64, n),
		Remainder: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		r.Times[i] = 1700000000000000 + int64(i)*60_000_000 // regular 1m cadence in micros
		r.Trend[i] = 50 + 0.1*float64(i)
		r.Seasonal[i] = 10 * math.Sin(2*math.Pi*float64(i)/12)
		r.Remainder[i] = math.Cos(float64(i)) * 0.3
		r.Series[i] = r.Trend[i] + r.Seasonal[i] + r.Remainder[i]
	}

	return r
}

func TestEncodeDecode_roundTrip(t *testing.T) {
	original := testResult(144)

	for _, typ := range []compress.Type{
		compress.TypeNone, compress.TypeZstd, compress.TypeS2, compress.TypeLZ4,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			data, err := Encode(original, WithCompression(typ))
			require.NoError(t, err)

			restored, err := Decode(data)
			require.NoError(t, err)

			require.Equal(t, original.Times, restored.Times)
			require.Equal(t, original.Series, restored.Series)
			require.Equal(t, original.Trend, restored.Trend)
			require.Equal(t, original.Seasonal, restored.Seasonal)
			require.Equal(t, original.Remainder, restored.Remainder)
		})
	}
}

func TestEncode_defaultCompression(t *testing.T) {
	data, err := Encode(testResult(144))
	require.NoError(t, err)

	var header Header
	require.NoError(t, header.Parse(data))
	require.Equal(t, compress.TypeZstd, header.Compression)
	require.Equal(t, uint32(144), header.PointCount)
}

func TestEncode_irregularTimestamps(t *testing.T) {
	original := testResult(20)
	// Perturb the cadence so delta-of-deltas are non-zero and negative.
	original.Times[5] += 37
	original.Times[13] -= 1234

	data, err := Encode(original, WithCompression(compress.TypeNone))
	require.NoError(t, err)

	restored, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, original.Times, restored.Times)
}

func TestEncode_errors(t *testing.T) {
	t.Run("empty result", func(t *testing.T) {
		_, err := Encode(&stl.Result{})
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
	})

	t.Run("ragged columns", func(t *testing.T) {
		r := testResult(10)
		r.Trend = r.Trend[:9]
		_, err := Encode(r)
		require.ErrorIs(t, err, errs.ErrLengthMismatch)
	})

	t.Run("invalid compression option", func(t *testing.T) {
		_, err := Encode(testResult(10), WithCompression(compress.Type(0x7f)))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}

func TestDecode_errors(t *testing.T) {
	valid, err := Encode(testResult(36))
	require.NoError(t, err)

	t.Run("too short", func(t *testing.T) {
		_, err := Decode(valid[:HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[0] ^= 0xff
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("future version", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[4] = FormatVersion + 1
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	})

	t.Run("bad compression flag", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[5] = 0x7f
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("corrupted payload", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[len(data)-1] ^= 0xff
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("truncated payload", func(t *testing.T) {
		data := append([]byte(nil), valid[:len(valid)-4]...)
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
	})
}

func TestCompression_shrinksPayload(t *testing.T) {
	original := testResult(1440)

	raw, err := Encode(original, WithCompression(compress.TypeNone))
	require.NoError(t, err)
	zstd, err := Encode(original, WithCompression(compress.TypeZstd))
	require.NoError(t, err)

	require.Less(t, len(zstd), len(raw))
}

func BenchmarkEncode(b *testing.B) {
	r := testResult(1440)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Encode(r)
	}
}

func BenchmarkDecode(b *testing.B) {
	r := testResult(1440)
	data, _ := Encode(r)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(data)
	}
}
