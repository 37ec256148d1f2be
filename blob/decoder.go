package blob

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/stl"
	"github.com/arloliu/stl/compress"
	"github.com/arloliu/stl/errs"
)

// Decode parses a blob produced by Encode back into a decomposition result.
//
// The header is validated first (magic, version, compression type), then the
// payload checksum, then the payload structure; each failure maps to its
// sentinel in the errs package. The returned result shares no memory with
// data.
func Decode(data []byte) (*stl.Result, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload %d bytes, header says %d",
			errs.ErrInvalidPayload, len(payload), header.PayloadSize)
	}
	if sum := xxhash.Sum64(payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: computed 0x%016x, stored 0x%016x",
			errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	codec, err := compress.New(header.Compression)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPayload, err)
	}

	n := int(header.PointCount)
	times, consumed, err := decodeTimestamps(raw, n)
	if err != nil {
		return nil, err
	}

	columns := raw[consumed:]
	if len(columns) != 4*n*8 {
		return nil, fmt.Errorf("%w: %d column bytes for %d points",
			errs.ErrInvalidPayload, len(columns), n)
	}

	readColumn := func(idx int) []float64 {
		col := make([]float64, n)
		base := idx * n * 8
		for i := 0; i < n; i++ {
			bits := binary.LittleEndian.Uint64(columns[base+i*8:])
			col[i] = math.Float64frombits(bits)
		}

		return col
	}

	return &stl.Result{
		Times:     times,
		Series:    readColumn(0),
		Trend:     readColumn(1),
		Seasonal:  readColumn(2),
		Remainder: readColumn(3),
	}, nil
}
