// Package compress provides the compression codecs used for STL result blob
// payloads.
//
// Blob payloads are columnar: varint delta-of-delta timestamps followed by
// fixed-width float64 component columns. Zstd gives the best ratio on such
// data, S2 and LZ4 trade ratio for speed, and None skips compression
// entirely for latency-critical paths or already-compressed transports.
package compress

import (
	"fmt"
)

// Type identifies a compression algorithm in blob headers.
type Type uint8

const (
	// TypeNone stores payloads uncompressed.
	TypeNone Type = 0x1
	// TypeZstd selects Zstandard compression.
	TypeZstd Type = 0x2
	// TypeS2 selects S2 (Snappy-compatible) compression.
	TypeS2 Type = 0x3
	// TypeLZ4 selects LZ4 block compression.
	TypeLZ4 Type = 0x4
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether t names a known compression algorithm.
func (t Type) Valid() bool {
	return t >= TypeNone && t <= TypeLZ4
}

// Codec compresses and decompresses blob payloads.
//
// Implementations are stateless or internally pooled and safe for concurrent
// use. Returned slices are newly allocated and owned by the caller (except
// for the no-op codec, which passes its input through); input slices are
// never modified.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// New returns the Codec for the given compression type.
func New(t Type) (Codec, error) {
	switch t {
	case TypeNone:
		return NoopCodec{}, nil
	case TypeZstd:
		return ZstdCodec{}, nil
	case TypeS2:
		return S2Codec{}, nil
	case TypeLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("unknown compression type 0x%02x", uint8(t))
	}
}
