package dwt

import (
	"github.com/pkg/errors"
	lop "github.com/samber/lo/parallel"
)

// lineOffset computes the element offset into a flat buffer for the
// line identified by lineIdx, decomposing lineIdx into a multi-index
// over every dimension except axis. shape is shared across all views
// participating in a single axis-driver call (validated equal on every
// non-axis dimension); strides is the per-view element-stride array.
//
// The decomposition walks dimensions from last to first, skipping
// axis, exactly as the reference axis driver's offset computation
// does, so that lineIdx enumerates lines in the same row-major order.
func lineOffset(shape, strides []int, axis, lineIdx int) int {
	offset := 0
	reduced := lineIdx
	for jRev := len(shape) - 1; jRev >= 0; jRev-- {
		if jRev == axis {
			continue
		}
		axisIdx := reduced % shape[jRev]
		reduced /= shape[jRev]
		offset += axisIdx * strides[jRev]
	}
	return offset
}

func numLines(shape []int, axis int) int {
	n := 1
	for i, s := range shape {
		if i != axis {
			n *= s
		}
	}
	return n
}

// gatherLine returns axisLen samples starting at offset, spaced
// axisStride apart. When axisStride is 1 the line is already
// contiguous and the returned slice aliases data directly (so
// scatterLine is a no-op for that line); otherwise a private copy is
// made, mirroring the reference axis driver's temp_input/temp_output
// fallback for non-unit strides.
func gatherLine[T Float](data []T, offset, axisStride, axisLen int) []T {
	if axisStride == 1 {
		return data[offset : offset+axisLen]
	}
	line := make([]T, axisLen)
	for k := 0; k < axisLen; k++ {
		line[k] = data[offset+k*axisStride]
	}
	return line
}

func scatterLine[T Float](data []T, offset, axisStride, axisLen int, line []T) {
	if axisStride == 1 {
		return
	}
	for k := 0; k < axisLen; k++ {
		data[offset+k*axisStride] = line[k]
	}
}

func validateAxisShapes(inShape, outShape []int, axis int, wantAxisLen int) error {
	if len(inShape) != len(outShape) {
		return errors.Wrap(ErrValidation, "ndim mismatch")
	}
	if axis < 0 || axis >= len(inShape) {
		return errors.Wrap(ErrValidation, "axis out of range")
	}
	if wantAxisLen == 0 || wantAxisLen != outShape[axis] {
		return errors.Wrap(ErrValidation, "output axis length mismatch")
	}
	for i := range inShape {
		if i == axis {
			continue
		}
		if inShape[i] != outShape[i] {
			return errors.Wrap(ErrValidation, "shape mismatch off-axis")
		}
	}
	return nil
}

// DowncoefAxis applies a single-band decomposition (approximation or
// detail) of in along axis, writing into out. out must already be
// shaped with out.Info.Shape[axis] == DWTLen(in.Info.Shape[axis], decLen, mode)
// and match in.Info.Shape on every other axis.
//
// Lines are processed strictly sequentially; see ApplyAxisParallel for
// the opt-in concurrent dispatch.
func DowncoefAxis[T Float](in, out View[T], w Wavelet[T], axis int, coef Coefficient, mode Mode) error {
	filter := w.DecLo
	if coef == CoefDetail {
		filter = w.DecHi
	}
	wantLen := DWTLen(in.Info.Shape[axis], len(filter), mode)
	if err := validateAxisShapes(in.Info.Shape, out.Info.Shape, axis, wantLen); err != nil {
		return wrapAxis(err, axis)
	}
	n := numLines(out.Info.Shape, axis)
	for i := 0; i < n; i++ {
		if err := downcoefLine(in, out, filter, axis, mode, i); err != nil {
			return wrapAxis(err, axis)
		}
	}
	return nil
}

// ApplyAxisParallel is DowncoefAxis with each line dispatched through
// github.com/samber/lo/parallel's Map: lines write disjoint regions of
// out.Data (the multi-index decomposition that selects a line's offset
// never repeats), so the lack of ordering between lines is safe. Use
// this when axis is not the fastest-varying dimension and the number
// of lines is large enough to amortize goroutine overhead.
func ApplyAxisParallel[T Float](in, out View[T], w Wavelet[T], axis int, coef Coefficient, mode Mode) error {
	filter := w.DecLo
	if coef == CoefDetail {
		filter = w.DecHi
	}
	wantLen := DWTLen(in.Info.Shape[axis], len(filter), mode)
	if err := validateAxisShapes(in.Info.Shape, out.Info.Shape, axis, wantLen); err != nil {
		return wrapAxis(err, axis)
	}
	n := numLines(out.Info.Shape, axis)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	errs := lop.Map(indices, func(lineIdx int, _ int) error {
		return downcoefLine(in, out, filter, axis, mode, lineIdx)
	})
	for _, e := range errs {
		if e != nil {
			return wrapAxis(e, axis)
		}
	}
	return nil
}

func downcoefLine[T Float](in, out View[T], filter []T, axis int, mode Mode, lineIdx int) error {
	inOffset := lineOffset(out.Info.Shape, in.elemStrides, axis, lineIdx)
	outOffset := lineOffset(out.Info.Shape, out.elemStrides, axis, lineIdx)

	inLine := gatherLine(in.Data, inOffset, in.elemStrides[axis], in.Info.Shape[axis])
	outLen := out.Info.Shape[axis]
	outLine := outLineBuffer(out, outOffset, axis, outLen)

	if mode == ModePeriodization {
		downsamplingConvolutionPeriodization(inLine, filter, outLine, 2)
	} else {
		downsamplingConvolution(inLine, filter, outLine, 2, mode)
	}

	scatterLine(out.Data, outOffset, out.elemStrides[axis], outLen, outLine)
	return nil
}

// outLineBuffer returns a scratch buffer to compute a line's result
// into: a direct alias of out.Data when the axis is unit-stride (so
// the convolution writes in place and scatterLine below is a no-op),
// or a fresh zero-valued buffer otherwise.
func outLineBuffer[T Float](out View[T], offset, axis, length int) []T {
	if out.elemStrides[axis] == 1 {
		return out.Data[offset : offset+length]
	}
	return make([]T, length)
}

// IDWTAxis reconstructs out along axis from an approximation view a
// and/or a detail view d (either may be nil, not both). out must be
// shaped with out.Info.Shape[axis] == IDWTLenPaired(aLen, dLen, w.recLen(), mode).
func IDWTAxis[T Float](a, d *View[T], out View[T], w Wavelet[T], axis int, mode Mode) error {
	if a == nil && d == nil {
		return errors.Wrap(ErrMissingCoefficients, "IDWTAxis")
	}
	aLen, dLen := 0, 0
	if a != nil {
		aLen = a.Info.Shape[axis]
	}
	if d != nil {
		dLen = d.Info.Shape[axis]
	}
	f := w.recLen()
	wantLen := IDWTLenPaired(aLen, dLen, f, mode)

	if a != nil {
		if err := validateAxisShapes(a.Info.Shape, out.Info.Shape, axis, wantLen); err != nil {
			return wrapAxis(err, axis)
		}
	}
	if d != nil {
		if err := validateAxisShapes(d.Info.Shape, out.Info.Shape, axis, wantLen); err != nil {
			return wrapAxis(err, axis)
		}
	}

	n := numLines(out.Info.Shape, axis)
	for i := 0; i < n; i++ {
		if err := idwtLine(a, d, out, w, axis, mode, i); err != nil {
			return wrapAxis(err, axis)
		}
	}
	return nil
}

func idwtLine[T Float](a, d *View[T], out View[T], w Wavelet[T], axis int, mode Mode, lineIdx int) error {
	outOffset := lineOffset(out.Info.Shape, out.elemStrides, axis, lineIdx)
	outLen := out.Info.Shape[axis]

	var aLine, dLine []T
	if a != nil {
		aOffset := lineOffset(out.Info.Shape, a.elemStrides, axis, lineIdx)
		aLine = gatherLine(a.Data, aOffset, a.elemStrides[axis], a.Info.Shape[axis])
	}
	if d != nil {
		dOffset := lineOffset(out.Info.Shape, d.elemStrides, axis, lineIdx)
		dLine = gatherLine(d.Data, dOffset, d.elemStrides[axis], d.Info.Shape[axis])
	}

	// UpsamplingConvolutionValidSF adds into its output, so outLine must
	// start zeroed even in the unit-stride case where it aliases
	// caller-supplied (not necessarily zero) memory.
	outLine := outLineBuffer(out, outOffset, axis, outLen)
	for i := range outLine {
		outLine[i] = 0
	}
	if aLine != nil {
		if err := UpsamplingConvolutionValidSF(aLine, w.RecLo, mode, outLine[:IDWTLen(len(aLine), w.recLen(), mode)]); err != nil {
			return err
		}
	}
	if dLine != nil {
		if err := UpsamplingConvolutionValidSF(dLine, w.RecHi, mode, outLine[:IDWTLen(len(dLine), w.recLen(), mode)]); err != nil {
			return err
		}
	}
	scatterLine(out.Data, outOffset, out.elemStrides[axis], outLen, outLine)
	return nil
}
