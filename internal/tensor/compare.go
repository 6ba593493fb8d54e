package tensor

// Equal reports structural equality: same size, same extents, and every
// corresponding element pair equal. Size is checked first as a fast
// reject, but size alone is never sufficient.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if t.Size() != other.Size() {
		return false
	}
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// NotEqual reports the negation of Equal: any mismatch in extents or in
// any element value makes the tensors unequal.
func (t *Tensor[T]) NotEqual(other *Tensor[T]) bool {
	return !t.Equal(other)
}

// dominates checks an ordering relation element-wise across both
// buffers. The relation holds for the tensors only if it holds for
// every corresponding pair.
func (t *Tensor[T]) dominates(other *Tensor[T], op string, holds func(a, b T) bool) (bool, error) {
	if err := t.checkSameShape(other, op); err != nil {
		return false, err
	}
	for i := range t.data {
		if !holds(t.data[i], other.data[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Greater reports whether every element of t is greater than the
// corresponding element of other.
//
// Dominance comparisons are partial, not total orders: for a = [1 5]
// and b = [5 1], both a.Greater(b) and b.Greater(a) are false, and
// !a.Greater(b) does not imply a.LessEqual(b).
func (t *Tensor[T]) Greater(other *Tensor[T]) (bool, error) {
	return t.dominates(other, "greater", func(a, b T) bool { return a > b })
}

// GreaterEqual reports whether every element of t is greater than or
// equal to the corresponding element of other.
func (t *Tensor[T]) GreaterEqual(other *Tensor[T]) (bool, error) {
	return t.dominates(other, "greaterEqual", func(a, b T) bool { return a >= b })
}

// Less reports whether every element of t is less than the
// corresponding element of other.
func (t *Tensor[T]) Less(other *Tensor[T]) (bool, error) {
	return t.dominates(other, "less", func(a, b T) bool { return a < b })
}

// LessEqual reports whether every element of t is less than or equal to
// the corresponding element of other.
func (t *Tensor[T]) LessEqual(other *Tensor[T]) (bool, error) {
	return t.dominates(other, "lessEqual", func(a, b T) bool { return a <= b })
}
