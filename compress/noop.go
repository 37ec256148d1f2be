package compress

// NoopCodec passes data through unchanged. Useful as a baseline and for
// payloads that travel over an already-compressed transport.
type NoopCodec struct{}

var _ Codec = NoopCodec{}

// Compress returns the input slice as-is, without copying. Callers must not
// modify the input afterwards if they keep the returned slice.
func (NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without copying.
func (NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
