package tensor

import "fmt"

// offsetOf computes the flat offset named by a (possibly partial) prefix
// of axis indices, validating each index against its axis extent.
func (t *Tensor[T]) offsetOf(indices []int) (int, error) {
	if len(indices) > len(t.shape) {
		return 0, fmt.Errorf("%w: got %d indices for a rank-%d tensor", ErrShapeMismatch, len(indices), len(t.shape))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, fmt.Errorf("%w: index %d out of bounds for axis %d (extent %d)", ErrOutOfRange, idx, i, t.shape[i])
		}
		offset += idx * t.stride[i]
	}
	return offset, nil
}

// Get extracts the sub-tensor named by a prefix of axis indices.
//
// With U indices over a rank-R tensor, U == R yields a rank-0 tensor
// (read it with Item) and U < R yields a rank R-U tensor whose extents
// are the trailing R-U extents of t. Because storage is row-major, a
// fixed prefix of axis indices always addresses one contiguous block of
// the buffer, so extraction is a single contiguous copy rather than a
// strided gather.
//
// The result owns a copy of the data; mutating it never changes t.
//
// Example:
//
//	t, _ := tensor.FromSliceShape([]float64{0, 1, 2, 3, 4, 5}, tensor.Shape{3, 2})
//	row, _ := t.Get(1)      // rank-1 tensor [2 3]
//	v, _ := t.Get(1, 1)     // rank-0 tensor; v.Item() == 3
func (t *Tensor[T]) Get(indices ...int) (*Tensor[T], error) {
	if len(t.data) == 0 {
		return nil, fmt.Errorf("%w: cannot index an empty tensor", ErrOutOfRange)
	}
	offset, err := t.offsetOf(indices)
	if err != nil {
		return nil, err
	}

	rest := t.shape[len(indices):]
	result := newDense[T](rest.Clone())
	copy(result.data, t.data[offset:offset+rest.NumElements()])
	return result, nil
}

// ValueAt returns the scalar element named by a full set of axis
// indices, without allocating a rank-0 tensor.
func (t *Tensor[T]) ValueAt(indices ...int) (T, error) {
	var zero T
	if len(indices) != len(t.shape) {
		return zero, fmt.Errorf("%w: got %d indices for a rank-%d tensor", ErrShapeMismatch, len(indices), len(t.shape))
	}
	offset, err := t.offsetOf(indices)
	if err != nil {
		return zero, err
	}
	if len(t.data) == 0 {
		return zero, fmt.Errorf("%w: cannot index an empty tensor", ErrOutOfRange)
	}
	return t.data[offset], nil
}

// SetAt stores v at the element named by a full set of axis indices.
func (t *Tensor[T]) SetAt(v T, indices ...int) error {
	if len(indices) != len(t.shape) {
		return fmt.Errorf("%w: got %d indices for a rank-%d tensor", ErrShapeMismatch, len(indices), len(t.shape))
	}
	offset, err := t.offsetOf(indices)
	if err != nil {
		return err
	}
	if len(t.data) == 0 {
		return fmt.Errorf("%w: cannot index an empty tensor", ErrOutOfRange)
	}
	t.data[offset] = v
	return nil
}
