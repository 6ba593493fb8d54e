// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/dense-ml/dense/internal/tensor"
)

// Type aliases for the public API.

// DType is the constraint for tensor element types.
// Supported types: float32, float64, int32, int64.
type DType = tensor.DType

// DataType represents the runtime element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Shape represents the extents of a tensor, one entry per axis.
// Example: Shape{2, 3, 4} describes a 3D tensor with extents 2×3×4.
type Shape = tensor.Shape

// Tensor is a generic dense multi-dimensional array with exclusive
// buffer ownership and row-major layout.
type Tensor[T DType] = tensor.Tensor[T]

// Error sentinels. Every error returned by this package wraps one of
// these; classify with errors.Is.
var (
	ErrOutOfRange     = tensor.ErrOutOfRange
	ErrDivisionByZero = tensor.ErrDivisionByZero
	ErrShapeMismatch  = tensor.ErrShapeMismatch
	ErrSizeMismatch   = tensor.ErrSizeMismatch
)

// Construction

// Empty returns the empty tensor: no buffer, zero extents, size 0.
func Empty[T DType]() *Tensor[T] {
	return tensor.Empty[T]()
}

// New creates a tensor with the given shape. Buffer content is
// unspecified until written.
func New[T DType](shape Shape) (*Tensor[T], error) {
	return tensor.New[T](shape)
}

// FromSlice creates a rank-1 tensor from a flat slice of values.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{0, 1, 2, 3, 4})
func FromSlice[T DType](values []T) (*Tensor[T], error) {
	return tensor.FromSlice(values)
}

// FromSliceShape creates a tensor with the given shape populated from a
// flat slice in row-major order.
//
// Example:
//
//	t, err := tensor.FromSliceShape([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSliceShape[T DType](values []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSliceShape(values, shape)
}

// Stack builds a tensor of rank r+1 from tensors of identical shape and
// rank r, adding a new leading axis.
//
// Example:
//
//	row1, _ := tensor.FromSlice([]float32{1, 2})
//	row2, _ := tensor.FromSlice([]float32{3, 4})
//	m, err := tensor.Stack(row1, row2) // Shape: [2 2]
func Stack[T DType](children ...*Tensor[T]) (*Tensor[T], error) {
	return tensor.Stack(children...)
}

// Builders

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](shape Shape) (*Tensor[T], error) {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// ZerosLike creates a zero-filled tensor with the extents of t.
func ZerosLike[T DType](t *Tensor[T]) *Tensor[T] {
	return tensor.ZerosLike(t)
}

// OnesLike creates a one-filled tensor with the extents of t.
func OnesLike[T DType](t *Tensor[T]) *Tensor[T] {
	return tensor.OnesLike(t)
}

// FullLike creates a tensor with the extents of t, every element set to
// value.
func FullLike[T DType](t *Tensor[T], value T) *Tensor[T] {
	return tensor.FullLike(t, value)
}

// Arange creates a rank-1 tensor with values start, start+step, ...
// strictly below end.
func Arange[T DType](start, end, step T) (*Tensor[T], error) {
	return tensor.Arange(start, end, step)
}
