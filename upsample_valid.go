package dwt

import "github.com/pkg/errors"

// UpsamplingConvolutionValidSF performs the "valid" half of an
// upsampling convolution: like UpsamplingConvolutionFull, it treats x
// as implicitly zero-interleaved and splits the filter into even/odd
// phases, but only ever writes positions where every filter tap
// overlaps a real (non-zero-inserted) sample, which is what IDWT needs
// when combining an approximation and a detail stream of possibly
// different lengths into one reconstruction.
//
// It ADDS into out, exactly like UpsamplingConvolutionFull, so a
// caller reconstructing from both streams calls this twice into the
// same buffer. out must already have length IDWTLen(len(x), len(h), mode).
func UpsamplingConvolutionValidSF[T Float](x, h []T, mode Mode, out []T) error {
	f := len(h)
	if f%2 != 0 {
		if mode == ModePeriodization {
			return errors.Wrap(ErrFilterParity, "upsampling convolution valid sf: filter length must be even")
		}
		return &SizeError{Op: "upsampling convolution valid sf: filter length", Expected: f + 1, Actual: f}
	}
	n := len(x)
	want := IDWTLen(n, f, mode)
	if want <= 0 {
		return errors.Wrap(ErrValidation, "upsampling convolution valid sf: degenerate input/filter length")
	}
	if len(out) != want {
		return &SizeError{Op: "upsampling convolution valid sf", Expected: want, Actual: len(out)}
	}
	if mode == ModePeriodization {
		upsamplingConvolutionValidSFPeriodization(x, h, out)
		return nil
	}
	if n < f/2 {
		return &SizeError{Op: "upsampling convolution valid sf", Expected: f / 2, Actual: n}
	}
	upsamplingConvolutionValidSF(x, h, out)
	return nil
}

// upsamplingConvolutionValidSF is the single, non-periodization "valid"
// region: every tap of the filter overlaps a real input element, so
// there is no left/right boundary handling to split out.
func upsamplingConvolutionValidSF[T Float](x, h []T, out []T) {
	n, f := len(x), len(h)
	half := f / 2
	o := 0
	for i := half - 1; i < n; i, o = i+1, o+2 {
		var evenSum, oddSum T
		for j := 0; j < half; j++ {
			evenSum += h[j*2] * x[i-j]
			oddSum += h[j*2+1] * x[i-j]
		}
		out[o] += evenSum
		out[o+1] += oddSum
	}
}

// upsamplingConvolutionValidSFPeriodization is the PERIODIZATION
// variant. When F/2 is even, the natural phase split leaves the very
// first even/odd output pair landing at positions (2N-1, 0) instead of
// (0, 1); this is corrected with the same "shift" block the reference
// convolution core uses, writing those two positions before the main
// sweep and then starting the sweep's own offset one position later (o=1).
func upsamplingConvolutionValidSFPeriodization[T Float](x, h []T, out []T) {
	n, f := len(x), len(h)
	half := f / 2
	start := f / 4
	end := n + start
	if half%2 == 0 {
		end--
	}
	i := start
	o := 0

	if half%2 == 0 {
		j := 0
		for j <= start-1 {
			k := 0
			for ; k < n && j <= start-1; k, j = k+1, j+1 {
				out[2*n-1] += h[2*(start-1-j)] * x[k]
				out[0] += h[2*(start-1-j)+1] * x[k]
			}
		}
		for ; j <= n+start-1 && j < half; j++ {
			out[2*n-1] += h[2*j] * x[n+start-1-j]
			out[0] += h[2*j+1] * x[n+start-1-j]
		}
		for j < half {
			k := 0
			for ; k < n && j < half; k, j = k+1, j+1 {
				out[2*n-1] += h[2*j] * x[n-1-k]
				out[0] += h[2*j+1] * x[n-1-k]
			}
		}
		o++
	}

	for ; i < half && i < n; i, o = i+1, o+2 {
		j := 0
		for ; j <= i; j++ {
			out[o] += h[2*j] * x[i-j]
			out[o+1] += h[2*j+1] * x[i-j]
		}
		for j < half {
			k := 0
			for ; k < n && j < half; k, j = k+1, j+1 {
				out[o] += h[2*j] * x[n-1-k]
				out[o+1] += h[2*j+1] * x[n-1-k]
			}
		}
	}

	for ; i < n; i, o = i+1, o+2 {
		for j := 0; j < half; j++ {
			out[o] += h[2*j] * x[i-j]
			out[o+1] += h[2*j+1] * x[i-j]
		}
	}

	for ; i < half && i < end; i, o = i+1, o+2 {
		j := 0
		for i-j >= n {
			k := 0
			for ; k < n && i-j >= n; k, j = k+1, j+1 {
				out[o] += h[2*(i-n-j)] * x[k]
				out[o+1] += h[2*(i-n-j)+1] * x[k]
			}
		}
		for ; j <= i && j < half; j++ {
			out[o] += h[2*j] * x[i-j]
			out[o+1] += h[2*j+1] * x[i-j]
		}
		for j < half {
			k := 0
			for ; k < n && j < half; k, j = k+1, j+1 {
				out[o] += h[2*j] * x[n-1-k]
				out[o+1] += h[2*j+1] * x[n-1-k]
			}
		}
	}

	for ; i < end; i, o = i+1, o+2 {
		j := 0
		for i-j >= n {
			k := 0
			for ; k < n && i-j >= n; k, j = k+1, j+1 {
				out[o] += h[2*(i-n-j)] * x[k]
				out[o+1] += h[2*(i-n-j)+1] * x[k]
			}
		}
		for ; j <= i && j < half; j++ {
			out[o] += h[2*j] * x[i-j]
			out[o+1] += h[2*j+1] * x[i-j]
		}
	}
}
