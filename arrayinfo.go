package dwt

import (
	"unsafe"

	"github.com/pkg/errors"
)

// ArrayInfo describes the shape and layout of an N-D array the Axis
// Driver walks. Strides are BYTE offsets, mirroring the numpy-style
// interop convention the reference implementation's ArrayInfo follows,
// so that a unit stride along an axis equals sizeof(T).
type ArrayInfo struct {
	Shape   []int
	Strides []int
}

// NDim returns the number of dimensions described.
func (a ArrayInfo) NDim() int { return len(a.Shape) }

func (a ArrayInfo) validate() error {
	if len(a.Shape) != len(a.Strides) {
		return &SizeError{Op: "ArrayInfo", Expected: len(a.Shape), Actual: len(a.Strides)}
	}
	for _, s := range a.Shape {
		if s < 0 {
			return errors.Wrap(ErrValidation, "ArrayInfo: negative shape")
		}
	}
	return nil
}

// View pairs a flat sample buffer with the ArrayInfo describing how to
// index into it. Strides on Info are byte offsets as documented on
// ArrayInfo; View converts them to element strides once, here, via
// unsafe.Sizeof(T{}) so every subsequent index computation in this
// package is ordinary, bounds-checked Go slice arithmetic.
type View[T Float] struct {
	Data []T
	Info ArrayInfo

	elemStrides []int
}

// NewView constructs a View, validating that every byte stride is a
// whole multiple of sizeof(T) (a torn stride would silently corrupt
// interop data) and that info is internally consistent.
func NewView[T Float](data []T, info ArrayInfo) (View[T], error) {
	if err := info.validate(); err != nil {
		return View[T]{}, err
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	elemStrides := make([]int, len(info.Strides))
	for i, bs := range info.Strides {
		if bs%elemSize != 0 {
			return View[T]{}, errors.Wrap(ErrValidation, "NewView: stride is not a multiple of the element size")
		}
		elemStrides[i] = bs / elemSize
	}
	return View[T]{Data: data, Info: info, elemStrides: elemStrides}, nil
}

// unitStride reports whether axis has the trivial, contiguous element
// stride of 1 — the only case the axis driver can address directly
// without a gather/scatter copy.
func (v View[T]) unitStride(axis int) bool {
	return v.elemStrides[axis] == 1
}
