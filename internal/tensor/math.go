package tensor

import "math"

// Elementary broadcast math: each operation applies the named scalar
// function to every element independently and returns a new tensor.
// There are no domain guards beyond what math.* provides — Sqrt of a
// negative value yields NaN for float element types, exactly as the
// platform sqrt does. Integer element types truncate results on the
// conversion back from float64.

// Pow raises each element to the given exponent.
func (t *Tensor[T]) Pow(exp float64) *Tensor[T] {
	result := t.resultLike()
	applyUnary(result.data, t.data, func(x float64) float64 { return math.Pow(x, exp) })
	return result
}

// Square squares each element. Pow(2) computed as x*x.
func (t *Tensor[T]) Square() *Tensor[T] {
	result := t.resultLike()
	mulKernel(result.data, t.data, t.data)
	return result
}

// Sqrt computes the square root of each element.
func (t *Tensor[T]) Sqrt() *Tensor[T] {
	result := t.resultLike()
	applyUnary(result.data, t.data, math.Sqrt)
	return result
}

// Sin computes the sine of each element.
func (t *Tensor[T]) Sin() *Tensor[T] {
	result := t.resultLike()
	applyUnary(result.data, t.data, math.Sin)
	return result
}

// Cos computes the cosine of each element.
func (t *Tensor[T]) Cos() *Tensor[T] {
	result := t.resultLike()
	applyUnary(result.data, t.data, math.Cos)
	return result
}

// Tan computes the tangent of each element.
func (t *Tensor[T]) Tan() *Tensor[T] {
	result := t.resultLike()
	applyUnary(result.data, t.data, math.Tan)
	return result
}

// Round rounds each element to the nearest integer, halves away from
// zero.
func (t *Tensor[T]) Round() *Tensor[T] {
	result := t.resultLike()
	applyUnary(result.data, t.data, math.Round)
	return result
}
