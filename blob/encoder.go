package blob

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/stl"
	"github.com/arloliu/stl/compress"
	"github.com/arloliu/stl/errs"
	"github.com/arloliu/stl/internal/options"
	"github.com/arloliu/stl/internal/pool"
)

// DefaultCompression is the compression applied when no option overrides it.
// Zstd is the right default for decomposition output: the columns vary
// smoothly and compress far below fixed-width size.
const DefaultCompression = compress.TypeZstd

type encoderConfig struct {
	compression compress.Type
}

// EncoderOption configures Encode.
type EncoderOption = options.Option[*encoderConfig]

// WithCompression selects the payload compression algorithm.
func WithCompression(t compress.Type) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if !t.Valid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(t))
		}
		c.compression = t

		return nil
	})
}

// Encode serializes a decomposition result into a self-describing binary
// blob. The result's columns must all have the same, non-zero length.
func Encode(result *stl.Result, opts ...EncoderOption) ([]byte, error) {
	cfg := encoderConfig{compression: DefaultCompression}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n := result.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty result", errs.ErrInvalidPayload)
	}
	if len(result.Times) != n || len(result.Trend) != n ||
		len(result.Seasonal) != n || len(result.Remainder) != n {
		return nil, fmt.Errorf("%w: result columns differ in length", errs.ErrLengthMismatch)
	}

	// Worst case: 10 varint bytes per timestamp plus four fixed columns.
	payload, release := pool.GetByteSlice(n*binary.MaxVarintLen64 + 4*n*8)
	defer release()

	payload = appendTimestamps(payload, result.Times)
	for _, column := range [][]float64{result.Series, result.Trend, result.Seasonal, result.Remainder} {
		for _, v := range column {
			payload = binary.LittleEndian.AppendUint64(payload, math.Float64bits(v))
		}
	}

	codec, err := compress.New(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress blob payload: %w", err)
	}

	header := Header{
		Version:     FormatVersion,
		Compression: cfg.compression,
		PointCount:  uint32(n),
		PayloadSize: uint32(len(compressed)),
		Checksum:    xxhash.Sum64(compressed),
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = header.AppendTo(out)
	out = append(out, compressed...)

	return out, nil
}
