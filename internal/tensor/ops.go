package tensor

import "fmt"

// checkSameShape enforces the operand contract for element-wise
// tensor-tensor operations: equal element counts first (the coarse,
// cheap reject), then equal extents.
func (t *Tensor[T]) checkSameShape(other *Tensor[T], op string) error {
	if t.Size() != other.Size() {
		return fmt.Errorf("%s: %w: %d vs %d elements", op, ErrSizeMismatch, t.Size(), other.Size())
	}
	if !t.shape.Equal(other.shape) {
		return fmt.Errorf("%s: %w: %v vs %v", op, ErrShapeMismatch, t.shape, other.shape)
	}
	return nil
}

// Add performs element-wise addition. Both operands must have identical
// extents; the result is a new tensor and neither operand is mutated.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float32{0, 1, 2, 3, 4})
//	b, _ := tensor.FromSlice([]float32{5, 6, 7, 8, 9})
//	c, err := a.Add(b) // [5 7 9 11 13]
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	if err := t.checkSameShape(other, "add"); err != nil {
		return nil, err
	}
	result := t.resultLike()
	addKernel(result.data, t.data, other.data)
	return result, nil
}

// Sub performs element-wise subtraction.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	if err := t.checkSameShape(other, "sub"); err != nil {
		return nil, err
	}
	result := t.resultLike()
	subKernel(result.data, t.data, other.data)
	return result, nil
}

// Mul performs element-wise multiplication.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	if err := t.checkSameShape(other, "mul"); err != nil {
		return nil, err
	}
	result := t.resultLike()
	mulKernel(result.data, t.data, other.data)
	return result, nil
}

// Div performs element-wise division. The divisor is scanned first: any
// zero element aborts the whole operation with ErrDivisionByZero before
// a single quotient is produced, so there are never partial results and
// never a silent infinity.
func (t *Tensor[T]) Div(other *Tensor[T]) (*Tensor[T], error) {
	if err := t.checkSameShape(other, "div"); err != nil {
		return nil, err
	}
	if i, found := findZero(other.data); found {
		return nil, fmt.Errorf("div: %w: divisor element at flat index %d", ErrDivisionByZero, i)
	}
	result := t.resultLike()
	divKernel(result.data, t.data, other.data)
	return result, nil
}
