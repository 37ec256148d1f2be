// Package blob provides a compact binary serialization of STL decomposition
// results.
//
// A blob is a 24-byte little-endian header followed by a single payload. The
// header carries a magic number, format version, compression type, point
// count, payload length, and a 64-bit xxHash64 checksum of the payload, so
// corruption is detected before any payload parsing happens.
//
// The payload is columnar: timestamps encoded as zigzag-varint
// delta-of-deltas (one byte per point for regular intervals), then the
// series, trend, seasonal and remainder columns as fixed-width float64
// values. The whole payload is run through one of the compress package
// codecs; decomposition components vary smoothly, so even light compression
// shrinks them well.
//
//	result, _ := decomp.Decompose(times, values)
//	data, _ := blob.Encode(result, blob.WithCompression(compress.TypeZstd))
//	restored, _ := blob.Decode(data)
//
// Round-trips are bit-exact: Decode(Encode(r)) reproduces every column of r.
package blob
