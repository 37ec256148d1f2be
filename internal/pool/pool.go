// Package pool provides sync.Pool backed scratch buffers.
//
// The decomposition engine allocates several full-length working arrays per
// inner pass (detrended values, recombined subseries, filter stages). Pooling
// them keeps repeated decompositions of same-sized series allocation-free
// after warmup.
package pool

import "sync"

var (
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
	byteSlicePool = sync.Pool{
		New: func() any { return &[]byte{} },
	}
)

// GetFloat64Slice returns a float64 slice of exactly the requested length and
// a cleanup function that returns it to the pool. The slice contents are
// unspecified; callers must overwrite every element before reading.
//
// The cleanup function is typically deferred:
//
//	buf, done := pool.GetFloat64Slice(n)
//	defer done()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	s := *ptr
	if cap(s) < size {
		s = make([]float64, size)
	} else {
		s = s[:size]
	}
	*ptr = s

	return s, func() { float64SlicePool.Put(ptr) }
}

// GetByteSlice returns an empty byte slice with at least the requested
// capacity and a cleanup function that returns it to the pool. The slice is
// length zero so callers can build it up with append.
func GetByteSlice(capacity int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	s := *ptr
	if cap(s) < capacity {
		s = make([]byte, 0, capacity)
	} else {
		s = s[:0]
	}
	*ptr = s

	return s, func() { byteSlicePool.Put(ptr) }
}
