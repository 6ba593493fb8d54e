package tensor

import "fmt"

// Scalar broadcast operations: the scalar is applied to every element,
// producing a new same-shape tensor.

// AddScalar adds a scalar value to each element of the tensor.
func (t *Tensor[T]) AddScalar(v T) *Tensor[T] {
	result := t.resultLike()
	addScalarKernel(result.data, t.data, v)
	return result
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (t *Tensor[T]) SubScalar(v T) *Tensor[T] {
	result := t.resultLike()
	addScalarKernel(result.data, t.data, -v)
	return result
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (t *Tensor[T]) MulScalar(v T) *Tensor[T] {
	result := t.resultLike()
	mulScalarKernel(result.data, t.data, v)
	return result
}

// DivScalar divides each element of the tensor by a scalar value.
// A zero scalar fails fast with ErrDivisionByZero before any element is
// touched.
func (t *Tensor[T]) DivScalar(v T) (*Tensor[T], error) {
	if v == 0 {
		return nil, fmt.Errorf("divScalar: %w", ErrDivisionByZero)
	}
	result := t.resultLike()
	divScalarKernel(result.data, t.data, v)
	return result, nil
}
