package tensor

import "fmt"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros[float32](tensor.Shape{3, 4})
func Zeros[T DType](shape Shape) (*Tensor[T], error) {
	// Fresh buffers are already zero-valued.
	return New[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](shape Shape) (*Tensor[T], error) {
	return Full[T](shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// ZerosLike creates a zero-filled tensor with the extents of t.
// Like the arithmetic operations, an empty t yields an empty result.
func ZerosLike[T DType](t *Tensor[T]) *Tensor[T] {
	return t.resultLike()
}

// OnesLike creates a one-filled tensor with the extents of t.
func OnesLike[T DType](t *Tensor[T]) *Tensor[T] {
	return FullLike(t, 1)
}

// FullLike creates a tensor with the extents of t, every element set to
// value.
func FullLike[T DType](t *Tensor[T], value T) *Tensor[T] {
	result := t.resultLike()
	for i := range result.data {
		result.data[i] = value
	}
	return result
}

// Arange creates a rank-1 tensor with values start, start+step, ...
// strictly below end.
//
// Example:
//
//	t, err := tensor.Arange[int32](0, 10, 1) // [0 1 2 ... 9]
func Arange[T DType](start, end, step T) (*Tensor[T], error) {
	if step == 0 {
		return nil, fmt.Errorf("arange: %w: zero step", ErrDivisionByZero)
	}
	n := int(float64(end-start) / float64(step))
	if n <= 0 {
		return nil, fmt.Errorf("arange: %w: empty range [%v, %v) with step %v", ErrShapeMismatch, start, end, step)
	}
	t := newDense[T](Shape{n})
	v := start
	for i := range t.data {
		t.data[i] = v
		v += step
	}
	return t, nil
}
