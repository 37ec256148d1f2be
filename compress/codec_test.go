package compress

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// columnPayload builds a blob-shaped payload: slowly varying float64 columns,
// the kind of data the codecs are tuned for.
func columnPayload(n int) []byte {
	buf := make([]byte, 0, n*8)
	for i := 0; i < n; i++ {
		v := 100 + 10*math.Sin(float64(i)/12) + float64(i)*0.01
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

func TestCodecs_roundTrip(t *testing.T) {
	payload := columnPayload(2048)

	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := New(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecs_emptyInput(t *testing.T) {
	for _, typ := range []Type{TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := New(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			restored, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestCodecs_corruptInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02, 0x03}

	for _, typ := range []Type{TypeZstd, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := New(typ)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestNew_invalidType(t *testing.T) {
	_, err := New(Type(0xff))
	require.Error(t, err)
}

func TestType(t *testing.T) {
	require.Equal(t, "Zstd", TypeZstd.String())
	require.Equal(t, "Unknown", Type(0xff).String())
	require.True(t, TypeLZ4.Valid())
	require.False(t, Type(0).Valid())
	require.False(t, Type(0xff).Valid())
}
