package dwt

import (
	"fmt"

	"github.com/pkg/errors"
)

// CodedError is satisfied by *SizeError; the sentinel errors below do
// not implement it. Code preserves the historical
// signed-integer error taxonomy of the reference C implementation for
// callers that need drop-in numeric compatibility with it; idiomatic Go
// callers should prefer errors.Is/errors.As against the sentinel values
// below instead.
type CodedError interface {
	error
	Code() int
}

// Sentinel errors for the fixed taxonomy. Use errors.Is against these;
// a SizeError additionally satisfies CodedError and carries the
// expected/actual lengths that produced it.
var (
	// ErrSizeMismatch corresponds to historical code -1: a caller-supplied
	// buffer does not have the length the operation requires.
	ErrSizeMismatch = errors.New("dwt: buffer size mismatch")
	// ErrFilterParity corresponds to historical code -3: a filter used by
	// an upsampling convolution has odd length, but upsampling convolution
	// requires an even-length filter (even/odd phase split).
	ErrFilterParity = errors.New("dwt: filter length must be even")
	// ErrValidation corresponds to historical code 1: shape/axis/ndim
	// validation failed before any convolution was attempted.
	ErrValidation = errors.New("dwt: validation failure")
	// ErrAllocation corresponds to historical code 2: a scratch buffer
	// could not be allocated for a non-contiguous axis line.
	ErrAllocation = errors.New("dwt: allocation failure")
	// ErrMissingCoefficients corresponds to historical code 3: an IDWT
	// call received neither approximation nor detail coefficients.
	ErrMissingCoefficients = errors.New("dwt: neither approximation nor detail coefficients supplied")
	// ErrLevelTooHigh corresponds to historical code -2: a requested SWT
	// level exceeds what the input length supports.
	ErrLevelTooHigh = errors.New("dwt: level exceeds input length")
)

// SizeError reports a buffer-length mismatch together with the lengths
// that produced it, the way the teacher's ErrNotEnoughData carries
// got/need rather than just a bare string.
type SizeError struct {
	Op       string
	Expected int
	Actual   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("dwt: %s: expected buffer of length %d, got %d", e.Op, e.Expected, e.Actual)
}

// Code implements CodedError with the historical SizeMismatch value.
func (e *SizeError) Code() int { return -1 }

// Is reports whether target is ErrSizeMismatch, so that
// errors.Is(err, ErrSizeMismatch) matches a *SizeError.
func (e *SizeError) Is(target error) bool {
	return target == ErrSizeMismatch
}

// wrapAxis annotates an error with which axis/dimension it occurred at,
// preserving Unwrap-ability.
func wrapAxis(err error, axis int) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, fmt.Sprintf("axis %d", axis))
}
