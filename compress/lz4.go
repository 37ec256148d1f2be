package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool reuses lz4.Compressor instances; each carries an internal
// hash table worth keeping warm.
var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// maxLZ4DecompressSize caps the decompression buffer growth. LZ4 blocks do
// not record their decompressed size, so the buffer is grown geometrically;
// anything expanding past this limit is treated as corrupt input.
const maxLZ4DecompressSize = 128 * 1024 * 1024

// LZ4Codec provides LZ4 block compression: the fastest real codec here, with
// a correspondingly modest ratio.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// Compress compresses data as a single LZ4 block.
func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block, growing the output buffer as needed
// since the block format does not carry the original size.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; bufSize <= maxLZ4DecompressSize; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
