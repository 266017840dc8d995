package dwt

import "github.com/pkg/errors"

// UpsamplingConvolutionFull performs a zero-padded convolution that
// treats x as if every sample were followed by an implicit zero (an
// upsampled input), splitting the filter into its even and odd phases
// so the zero taps never need to be materialized. Unlike
// DownsamplingConvolution, this ADDS into out rather than assigning, so
// repeated calls with different inputs and the same filter length can
// accumulate into a shared output buffer (the direct, non-IDWT
// reconstruction path: RecA/RecD).
//
// out must already have length RecLen(len(x), len(h)) and is not
// zeroed by this function; callers that want a fresh result should
// zero it first.
func UpsamplingConvolutionFull[T Float](x, h []T, out []T) error {
	f := len(h)
	if f < 2 {
		return &SizeError{Op: "upsampling convolution full: filter length", Expected: 2, Actual: f}
	}
	if f%2 != 0 {
		return errors.Wrap(ErrFilterParity, "upsampling convolution full: filter length must be even")
	}
	n := len(x)
	want := RecLen(n, f)
	if len(out) != want {
		return &SizeError{Op: "upsampling convolution full", Expected: want, Actual: len(out)}
	}
	upsamplingConvolutionFull(x, h, out)
	return nil
}

func upsamplingConvolutionFull[T Float](x, h []T, out []T) {
	n, f := len(x), len(h)
	half := f / 2
	i, o := 0, 0

	for ; i < n && i < half; i, o = i+1, o+2 {
		for j := 0; j <= i; j++ {
			out[o] += h[j*2] * x[i-j]
			out[o+1] += h[j*2+1] * x[i-j]
		}
	}

	for ; i < n; i, o = i+1, o+2 {
		for j := 0; j < half; j++ {
			out[o] += h[j*2] * x[i-j]
			out[o+1] += h[j*2+1] * x[i-j]
		}
	}

	for ; i < half; i, o = i+1, o+2 {
		for j := i - (n - 1); j <= i; j++ {
			out[o] += h[j*2] * x[i-j]
			out[o+1] += h[j*2+1] * x[i-j]
		}
	}

	for ; i < n+half; i, o = i+1, o+2 {
		for j := i - (n - 1); j < half; j++ {
			out[o] += h[j*2] * x[i-j]
			out[o+1] += h[j*2+1] * x[i-j]
		}
	}
}
