package blob

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/stl/errs"
)

// Timestamps are stored as zigzag-varint delta-of-deltas: the first value in
// full, the second as a delta from the first, the rest as the difference
// between consecutive deltas. Equally spaced series (the normal case for STL
// input) cost one byte per point after the second.

// appendTimestamps appends the encoded timestamps to buf.
func appendTimestamps(buf []byte, times []int64) []byte {
	if len(times) == 0 {
		return buf
	}

	buf = binary.AppendVarint(buf, times[0])
	if len(times) == 1 {
		return buf
	}

	prevDelta := times[1] - times[0]
	buf = binary.AppendVarint(buf, prevDelta)
	for i := 2; i < len(times); i++ {
		delta := times[i] - times[i-1]
		buf = binary.AppendVarint(buf, delta-prevDelta)
		prevDelta = delta
	}

	return buf
}

// decodeTimestamps reads count timestamps from the front of data, returning
// them along with the number of bytes consumed.
func decodeTimestamps(data []byte, count int) ([]int64, int, error) {
	times := make([]int64, count)
	if count == 0 {
		return times, 0, nil
	}

	offset := 0
	read := func(i int) (int64, error) {
		v, n := binary.Varint(data[offset:])
		if n <= 0 {
			return 0, fmt.Errorf("%w: bad varint at timestamp %d", errs.ErrInvalidPayload, i)
		}
		offset += n

		return v, nil
	}

	first, err := read(0)
	if err != nil {
		return nil, 0, err
	}
	times[0] = first

	var prevDelta int64
	for i := 1; i < count; i++ {
		dod, err := read(i)
		if err != nil {
			return nil, 0, err
		}
		if i == 1 {
			prevDelta = dod
		} else {
			prevDelta += dod
		}
		times[i] = times[i-1] + prevDelta
	}

	return times, offset, nil
}
