package compress

import "github.com/klauspost/compress/s2"

// S2Codec provides S2 compression: Snappy-compatible framing with better
// throughput, a good default when encode speed matters more than ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

// Compress compresses data with S2.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses S2-compressed data.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
