// Package errs defines the sentinel errors shared across the stl packages.
//
// All errors are plain sentinels suitable for errors.Is checks. Call sites
// wrap them with fmt.Errorf("%w: ...") to attach context.
package errs

import "errors"

// Configuration errors, returned at construction time. A Decomposition that
// fails construction is unusable; callers must rebuild with a corrected
// configuration.
var (
	// ErrInvalidPeriod indicates the seasonal period (observations per cycle)
	// is below the minimum of 2.
	ErrInvalidPeriod = errors.New("period (observations per cycle) must be >= 2")

	// ErrInvalidDataPoints indicates the configured series length is not
	// strictly greater than twice the seasonal period.
	ErrInvalidDataPoints = errors.New("data points must exceed 2x period")

	// ErrInvalidBandwidth indicates a loess bandwidth fraction outside (0, 1].
	ErrInvalidBandwidth = errors.New("bandwidth must be in (0, 1]")

	// ErrInvalidIterations indicates a non-positive loop or iteration count.
	ErrInvalidIterations = errors.New("iteration count must be >= 1")
)

// Decomposition-time errors.
var (
	// ErrLengthMismatch indicates the input arrays passed to Decompose do not
	// match the configured number of data points, or do not match each other.
	ErrLengthMismatch = errors.New("input length does not match configured data points")

	// ErrNegativeBisquare indicates the bisquare weight function received a
	// negative argument. This is an internal invariant violation, not a data
	// condition; it should never occur in correct operation.
	ErrNegativeBisquare = errors.New("bisquare argument must be >= 0")
)

// Smoothing errors, returned by the smooth package.
var (
	// ErrBandwidthTooSmall indicates the bandwidth fraction selects fewer than
	// two neighbor points, making local regression impossible.
	ErrBandwidthTooSmall = errors.New("bandwidth selects fewer than 2 points")

	// ErrSmoothLengthMismatch indicates the x, y, or weight arrays handed to
	// the smoother differ in length.
	ErrSmoothLengthMismatch = errors.New("smoother input arrays differ in length")

	// ErrNonFiniteInput indicates the smoother input contains NaN or Inf.
	ErrNonFiniteInput = errors.New("smoother input contains non-finite values")

	// ErrNotIncreasing indicates the smoother x coordinates are not strictly
	// increasing.
	ErrNotIncreasing = errors.New("smoother x values must be strictly increasing")
)

// Blob codec errors.
var (
	// ErrInvalidMagic indicates the blob does not start with the STL blob
	// magic number.
	ErrInvalidMagic = errors.New("invalid blob magic number")

	// ErrUnsupportedVersion indicates the blob was written by a newer,
	// incompatible format version.
	ErrUnsupportedVersion = errors.New("unsupported blob format version")

	// ErrInvalidHeaderSize indicates the data is too short to contain a
	// complete blob header.
	ErrInvalidHeaderSize = errors.New("data too short for blob header")

	// ErrChecksumMismatch indicates payload corruption detected by the
	// header checksum.
	ErrChecksumMismatch = errors.New("blob payload checksum mismatch")

	// ErrInvalidPayload indicates the decompressed payload is structurally
	// inconsistent with the header (truncated columns, bad varints).
	ErrInvalidPayload = errors.New("invalid blob payload")

	// ErrInvalidCompression indicates an unknown compression type flag.
	ErrInvalidCompression = errors.New("invalid compression type")
)
