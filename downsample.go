package dwt

import "github.com/pkg/errors"

// Downsampling Convolution (DSC) computes every step'th sample of the
// convolution of x with filter h, using the chosen boundary extension
// mode wherever the filter overlaps past an edge of x. DSC is the
// building block for single-level wavelet decomposition (step=2) and
// for the stationary wavelet transform (step=1, always under
// ModePeriodization).
//
// The result is freshly allocated with length dscLen(len(x), len(h), step, mode);
// DWTLen is that same arithmetic specialized to step=2.
func DownsamplingConvolution[T Float](x, h []T, step int, mode Mode) ([]T, error) {
	n, f := len(x), len(h)
	if n == 0 {
		return nil, errors.Wrap(ErrValidation, "downsampling convolution: empty input")
	}
	if f == 0 {
		return nil, errors.Wrap(ErrValidation, "downsampling convolution: empty filter")
	}
	if step < 1 {
		return nil, errors.Wrap(ErrValidation, "downsampling convolution: step must be >= 1")
	}
	outLen := dscLen(n, f, step, mode)
	if outLen == 0 {
		return nil, errors.Wrap(ErrValidation, "downsampling convolution: degenerate output length")
	}
	out := make([]T, outLen)
	if mode == ModePeriodization {
		downsamplingConvolutionPeriodization(x, h, out, step)
		return out, nil
	}
	downsamplingConvolution(x, h, out, step, mode)
	return out, nil
}

// dscLen is the number of samples DSC actually writes for the given
// input length, filter length, step, and mode. DWTLen is this function
// specialized to step=2, which is the only step the Buffer-Length
// Oracle documents.
func dscLen(n, f, step int, mode Mode) int {
	if n < 1 || f < 1 {
		return 0
	}
	if mode == ModePeriodization {
		return ceilDivInt(n, step)
	}
	span := n + f - 1
	a := span - (step - 1)
	if a <= 0 {
		return 0
	}
	return ceilDivInt(a, step)
}

func ceilDivInt(a, b int) int {
	return (a + b - 1) / b
}

// downsamplingConvolution implements the four-region sweep (left
// overlap, interior, both-overhang, right overhang) for every mode
// except ModePeriodization, matching the boundary-extension arithmetic
// of each mode exactly at the region edges rather than inside the
// interior loop.
func downsamplingConvolution[T Float](x, h []T, out []T, step int, mode Mode) {
	n, f := len(x), len(h)
	if mode == ModeSmooth && n < 2 {
		mode = ModeConstantEdge
	}

	i, o := step-1, 0

	// Region 1: filter extends past the left edge of x.
	for ; i < f && i < n; i, o = i+step, o+1 {
		var sum T
		j := 0
		for ; j <= i; j++ {
			sum += h[j] * x[i-j]
		}
		sum += tailExtension(x, h, j, f, mode)
		out[o] = sum
	}

	// Region 2: filter fully contained within x, no extension needed.
	for ; i < n; i, o = i+step, o+1 {
		var sum T
		for j := 0; j < f; j++ {
			sum += x[i-j] * h[j]
		}
		out[o] = sum
	}

	// Region 3: filter extends past both edges (only reachable if F > N).
	for ; i < f; i, o = i+step, o+1 {
		var sum T
		j := 0
		sum += headExtension(x, h, i, n, mode, &j)
		for ; j <= i; j++ {
			sum += h[j] * x[i-j]
		}
		sum += tailExtension(x, h, j, f, mode)
		out[o] = sum
	}

	// Region 4: filter extends past the right edge of x.
	for ; i < n+f-1; i, o = i+step, o+1 {
		var sum T
		j := 0
		sum += headExtension(x, h, i, n, mode, &j)
		for ; j < f; j++ {
			sum += h[j] * x[i-j]
		}
		out[o] = sum
	}
}

// tailExtension accumulates the tail of the filter (indices [j, f)),
// which runs off the left edge of x, against the samples the chosen
// mode virtually extends past that edge.
func tailExtension[T Float](x, h []T, j, f int, mode Mode) T {
	n := len(x)
	var sum T
	switch mode {
	case ModeSymmetric:
		for j < f {
			k := 0
			for ; k < n && j < f; j, k = j+1, k+1 {
				sum += h[j] * x[k]
			}
			for k = 0; k < n && j < f; k, j = k+1, j+1 {
				sum += h[j] * x[n-1-k]
			}
		}
	case ModeConstantEdge:
		for ; j < f; j++ {
			sum += h[j] * x[0]
		}
	case ModeSmooth:
		k := 1
		for ; j < f; j, k = j+1, k+1 {
			sum += h[j] * (x[0] + T(k)*(x[0]-x[1]))
		}
	case ModePeriodic:
		for j < f {
			k := 0
			for ; k < n && j < f; k, j = k+1, j+1 {
				sum += h[j] * x[n-1-k]
			}
		}
	case ModeZeropad:
	}
	return sum
}

// headExtension accumulates filter indices [0, j) against samples the
// chosen mode virtually extends past the right edge of x, for the
// region where i has advanced so far that i-j >= N even at j=0. It
// writes the resuming filter index (from which "j <= i"/"j < f" access
// is back in bounds) into *jOut.
func headExtension[T Float](x, h []T, i, n int, mode Mode, jOut *int) T {
	var sum T
	j := 0
	switch mode {
	case ModeSymmetric:
		for i-j >= n {
			k := 0
			for ; k < n && i-j >= n; j, k = j+1, k+1 {
				sum += h[i-n-j] * x[n-1-k]
			}
			for k = 0; k < n && i-j >= n; j, k = j+1, k+1 {
				sum += h[i-n-j] * x[k]
			}
		}
	case ModeConstantEdge:
		for ; i-j >= n; j++ {
			sum += h[j] * x[n-1]
		}
	case ModeSmooth:
		k := i - n + 1
		for ; i-j >= n; j, k = j+1, k-1 {
			sum += h[j] * (x[n-1] + T(k)*(x[n-1]-x[n-2]))
		}
	case ModePeriodic:
		for i-j >= n {
			k := 0
			for ; k < n && i-j >= n; j, k = j+1, k+1 {
				sum += h[i-n-j] * x[k]
			}
		}
	case ModeZeropad:
		j = i - n + 1
	}
	*jOut = j
	return sum
}

// downsamplingConvolutionPeriodization implements the PERIODIZATION
// variant, whose output length and boundary arithmetic differ from the
// general-purpose modes enough to warrant a dedicated routine, exactly
// as the reference convolution core keeps it split out.
func downsamplingConvolutionPeriodization[T Float](x, h []T, out []T, step int) {
	n, f := len(x), len(h)
	padding := (step - (n % step)) % step
	i, o := f/2, 0

	for ; i < f && i < n; i, o = i+step, o+1 {
		var sum T
		j := 0
		for ; j <= i; j++ {
			sum += h[j] * x[i-j]
		}
		for j < f {
			k := 0
			for ; k < padding && j < f; k, j = k+1, j+1 {
				sum += h[j] * x[n-1]
			}
			for k = 0; k < n && j < f; k, j = k+1, j+1 {
				sum += h[j] * x[n-1-k]
			}
		}
		out[o] = sum
	}

	for ; i < n; i, o = i+step, o+1 {
		var sum T
		for j := 0; j < f; j++ {
			sum += x[i-j] * h[j]
		}
		out[o] = sum
	}

	for ; i < f && i < n+f/2; i, o = i+step, o+1 {
		var sum T
		j := 0
		for i-j >= n {
			k := 0
			for ; k < padding && i-j >= n; k, j = k+1, j+1 {
				sum += h[i-n-j] * x[n-1]
			}
			for k = 0; k < n && i-j >= n; k, j = k+1, j+1 {
				sum += h[i-n-j] * x[k]
			}
		}
		for ; j <= i; j++ {
			sum += h[j] * x[i-j]
		}
		for j < f {
			k := 0
			for ; k < padding && j < f; k, j = k+1, j+1 {
				sum += h[j] * x[n-1]
			}
			for k = 0; k < n && j < f; k, j = k+1, j+1 {
				sum += h[j] * x[n-1-k]
			}
		}
		out[o] = sum
	}

	for ; i < n+f/2; i, o = i+step, o+1 {
		var sum T
		j := 0
		for i-j >= n {
			k := 0
			for ; k < padding && i-j >= n; k, j = k+1, j+1 {
				sum += h[i-n-j] * x[n-1]
			}
			for k = 0; k < n && i-j >= n; k, j = k+1, j+1 {
				sum += h[i-n-j] * x[k]
			}
		}
		for ; j < f; j++ {
			sum += h[j] * x[i-j]
		}
		out[o] = sum
	}
}
