package blob

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/stl/compress"
	"github.com/arloliu/stl/errs"
)

const (
	// MagicNumber identifies an STL result blob ("STLB").
	MagicNumber uint32 = 0x424C5453

	// FormatVersion is the current blob format version. Decoders reject
	// blobs written by a newer version.
	FormatVersion uint8 = 1

	// HeaderSize is the fixed byte length of the blob header.
	HeaderSize = 24
)

// Header layout (little-endian):
//
//	offset 0  uint32  magic
//	offset 4  uint8   format version
//	offset 5  uint8   compression type
//	offset 6  uint16  reserved (zero)
//	offset 8  uint32  point count
//	offset 12 uint32  payload length (compressed bytes)
//	offset 16 uint64  xxHash64 checksum of the payload
type Header struct {
	Version     uint8
	Compression compress.Type
	PointCount  uint32
	PayloadSize uint32
	Checksum    uint64
}

// AppendTo appends the serialized header to buf and returns the extended
// slice.
func (h *Header) AppendTo(buf []byte) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, MagicNumber)
	buf = append(buf, h.Version, uint8(h.Compression), 0, 0)
	buf = binary.LittleEndian.AppendUint32(buf, h.PointCount)
	buf = binary.LittleEndian.AppendUint32(buf, h.PayloadSize)
	buf = binary.LittleEndian.AppendUint64(buf, h.Checksum)

	return buf
}

// Parse reads and validates a header from the start of data.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != MagicNumber {
		return fmt.Errorf("%w: 0x%08x", errs.ErrInvalidMagic, magic)
	}

	h.Version = data[4]
	if h.Version > FormatVersion {
		return fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, h.Version)
	}

	h.Compression = compress.Type(data[5])
	if !h.Compression.Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, data[5])
	}

	h.PointCount = binary.LittleEndian.Uint32(data[8:12])
	h.PayloadSize = binary.LittleEndian.Uint32(data[12:16])
	h.Checksum = binary.LittleEndian.Uint64(data[16:24])

	return nil
}
