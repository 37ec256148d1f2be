package compress

// ZstdCodec provides Zstandard compression, the best-ratio option for blob
// payloads. Delta-encoded timestamp columns routinely compress 5:1 or
// better.
//
// Two implementations exist behind build tags: a cgo binding (valyala/gozstd)
// when cgo is available, and a pure-Go fallback (klauspost/compress/zstd)
// otherwise. Both produce interoperable zstd frames.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
