package dwt

import "github.com/pkg/errors"

// SWTStep computes one level of the (undecimated) stationary wavelet
// transform: a DownsamplingConvolution with step=1 under
// ModePeriodization, so the output has the same length as the input.
// Levels beyond the first are realized not with a second bespoke
// convolution routine but by dilating the filter itself (see
// upsampledFilter), matching the reference transform's own approach to
// multi-level SWT.
func SWTStep[T Float](x, h []T, level int) ([]T, error) {
	if level < 1 {
		return nil, errors.Wrap(ErrValidation, "SWTStep: level must be >= 1")
	}
	if level > SWTMaxLevel(len(x)) {
		return nil, errors.Wrap(ErrLevelTooHigh, "SWTStep")
	}
	filter := h
	if level > 1 {
		filter = upsampledFilter(h, level)
	}
	return DownsamplingConvolution(x, filter, 1, ModePeriodization)
}

// upsampledFilter dilates h by inserting 2^(level-1)-1 zeros between
// consecutive taps, the filter-domain equivalent of re-running a
// single-level transform against an upsampled (undecimated) signal.
func upsampledFilter[T Float](h []T, level int) []T {
	dilation := 1 << (level - 1)
	out := make([]T, len(h)*dilation)
	for i, v := range h {
		out[i*dilation] = v
	}
	return out
}
