package dwt

import "github.com/pkg/errors"

// Wavelet bundles the four filters a single level of decomposition and
// reconstruction needs. DecLo/DecHi are the analysis (forward) lowpass
// and highpass filters; RecLo/RecHi are the synthesis (inverse)
// filters. This package does not ship any named wavelet's
// coefficients; callers supply their own filter taps.
type Wavelet[T Float] struct {
	DecLo, DecHi []T
	RecLo, RecHi []T
}

// decLen and recLen assume the four filters share a length, which the
// convolution core requires.
func (w Wavelet[T]) decLen() int { return len(w.DecLo) }
func (w Wavelet[T]) recLen() int { return len(w.RecLo) }

// DecA decomposes input with the lowpass (approximation) analysis
// filter, returning a slice of length DWTLen(len(input), w.decLen(), mode).
func (w Wavelet[T]) DecA(input []T, mode Mode) ([]T, error) {
	return DownsamplingConvolution(input, w.DecLo, 2, mode)
}

// DecD decomposes input with the highpass (detail) analysis filter.
func (w Wavelet[T]) DecD(input []T, mode Mode) ([]T, error) {
	return DownsamplingConvolution(input, w.DecHi, 2, mode)
}

// RecA reconstructs the direct (non-IDWT) contribution of an
// approximation coefficient stream with the lowpass synthesis filter,
// using UpsamplingConvolutionFull. The result has length
// RecLen(len(coefsA), w.recLen()) and is zero-initialized before the
// convolution accumulates into it.
func (w Wavelet[T]) RecA(coefsA []T) ([]T, error) {
	out := make([]T, RecLen(len(coefsA), w.recLen()))
	if err := UpsamplingConvolutionFull(coefsA, w.RecLo, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecD is RecA's highpass counterpart.
func (w Wavelet[T]) RecD(coefsD []T) ([]T, error) {
	out := make([]T, RecLen(len(coefsD), w.recLen()))
	if err := UpsamplingConvolutionFull(coefsD, w.RecHi, out); err != nil {
		return nil, err
	}
	return out, nil
}

// IDWT reconstructs a signal from an approximation stream, a detail
// stream, or both, via UpsamplingConvolutionValidSF. Either coefsA or
// coefsD may be nil (but not both), matching a decomposition that
// dropped one band. The two streams may differ in length by at most
// one, matching what a single level of decomposition produces for an
// odd-length original signal.
//
// The result has length IDWTLenPaired(len(coefsA), len(coefsD), w.recLen(), mode),
// which is always exactly the longer stream's own IDWTLen requirement;
// each supplied stream is convolved directly into the shared output
// (UpsamplingConvolutionValidSF never touches positions past its own
// stream's natural length), so no intermediate copy is needed.
func (w Wavelet[T]) IDWT(coefsA, coefsD []T, mode Mode) ([]T, error) {
	if coefsA == nil && coefsD == nil {
		return nil, errors.Wrap(ErrMissingCoefficients, "IDWT")
	}
	aLen, dLen := len(coefsA), len(coefsD)
	f := w.recLen()
	pairedLen := IDWTLenPaired(aLen, dLen, f, mode)
	if pairedLen == 0 {
		return nil, errors.Wrap(ErrValidation, "IDWT: coefficient lengths differ by more than one")
	}

	out := make([]T, pairedLen)
	if coefsA != nil {
		if err := UpsamplingConvolutionValidSF(coefsA, w.RecLo, mode, out[:IDWTLen(aLen, f, mode)]); err != nil {
			return nil, err
		}
	}
	if coefsD != nil {
		if err := UpsamplingConvolutionValidSF(coefsD, w.RecHi, mode, out[:IDWTLen(dLen, f, mode)]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
