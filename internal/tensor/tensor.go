package tensor

import "fmt"

// Tensor is a dense multi-dimensional array of elements of type T laid
// out in one flat contiguous buffer, row-major (last axis contiguous).
//
// Every Tensor exclusively owns its buffer: constructors and operations
// copy element data, never alias it. A Tensor is therefore safe for
// concurrent reads once constructed; Set (and writes through Data)
// require exclusive access.
//
// The zero value is the empty tensor: nil buffer, rank 0, size 0. It is
// a valid assignment target but must not be indexed.
//
// Example:
//
//	t, err := tensor.New[float32](tensor.Shape{3, 4})
//	sub, err := t.Get(1)     // rank-1 view copy of row 1
//	v, err := t.ValueAt(1, 2)
type Tensor[T DType] struct {
	data   []T
	shape  Shape
	stride []int
}

// Empty returns the empty tensor: no buffer, zero extents, size 0.
func Empty[T DType]() *Tensor[T] {
	return &Tensor[T]{}
}

// New creates a tensor with the given shape. The buffer is allocated but
// its content is unspecified until written (Go zeroes it; callers must
// not rely on that).
func New[T DType](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return newDense[T](shape.Clone()), nil
}

// newDense allocates a tensor for an already-validated shape.
func newDense[T DType](shape Shape) *Tensor[T] {
	return &Tensor[T]{
		data:   make([]T, shape.NumElements()),
		shape:  shape,
		stride: shape.ComputeStrides(),
	}
}

// resultLike allocates the result tensor for an operation over t.
// The empty tensor stays empty: its nil shape must not be mistaken for
// a rank-0 scalar shape, whose element count is 1. Operations over an
// empty receiver therefore yield an empty result, never a fabricated
// scalar.
func (t *Tensor[T]) resultLike() *Tensor[T] {
	if len(t.data) == 0 {
		return &Tensor[T]{}
	}
	return newDense[T](t.shape.Clone())
}

// FromSlice creates a rank-1 tensor from a flat slice of values.
// The slice is copied into the tensor's buffer.
func FromSlice[T DType](values []T) (*Tensor[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: cannot build a tensor from zero values", ErrShapeMismatch)
	}
	t := newDense[T](Shape{len(values)})
	copy(t.data, values)
	return t, nil
}

// FromSliceShape creates a tensor with the given shape populated from a
// flat slice in row-major order.
func FromSliceShape[T DType](values []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if n := shape.NumElements(); n != len(values) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d", ErrSizeMismatch, shape, n, len(values))
	}
	t := newDense[T](shape.Clone())
	copy(t.data, values)
	return t, nil
}

// Stack builds a tensor of rank r+1 from tensors of identical shape and
// rank r, concatenating their buffers along a new leading axis. Because
// storage is row-major the children occupy consecutive contiguous blocks
// of the result.
func Stack[T DType](children ...*Tensor[T]) (*Tensor[T], error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: cannot stack zero tensors", ErrShapeMismatch)
	}
	first := children[0]
	if first.Size() == 0 {
		return nil, fmt.Errorf("%w: cannot stack empty tensors", ErrShapeMismatch)
	}
	for i, c := range children[1:] {
		if !c.shape.Equal(first.shape) {
			return nil, fmt.Errorf("%w: tensor %d has shape %v, want %v", ErrShapeMismatch, i+1, c.shape, first.shape)
		}
	}

	shape := make(Shape, 0, len(first.shape)+1)
	shape = append(shape, len(children))
	shape = append(shape, first.shape...)

	t := newDense[T](shape)
	block := first.Size()
	for i, c := range children {
		copy(t.data[i*block:(i+1)*block], c.data)
	}
	return t, nil
}

// Clone creates a deep copy of the tensor. The copy owns its own buffer
// and is independently mutable.
func (t *Tensor[T]) Clone() *Tensor[T] {
	clone := &Tensor[T]{
		data:   make([]T, len(t.data)),
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
	}
	copy(clone.data, t.data)
	return clone
}

// Shape returns the tensor's extents. The returned slice is the
// tensor's own; callers must not modify it.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's row-major strides.
func (t *Tensor[T]) Strides() []int {
	return t.stride
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// Size returns the total element count. It is 0 only for the empty
// tensor.
func (t *Tensor[T]) Size() int {
	return len(t.data)
}

// DType returns the tensor's runtime data type.
func (t *Tensor[T]) DType() DataType {
	var dummy T
	return inferDataType(dummy)
}

// Data returns the tensor's flat buffer.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// At returns the element at flat offset i.
func (t *Tensor[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(t.data) {
		return zero, fmt.Errorf("%w: flat index %d, size %d", ErrOutOfRange, i, len(t.data))
	}
	return t.data[i], nil
}

// Set stores v at flat offset i. This is the only primitive mutation
// path; arithmetic operations always produce new tensors.
func (t *Tensor[T]) Set(i int, v T) error {
	if i < 0 || i >= len(t.data) {
		return fmt.Errorf("%w: flat index %d, size %d", ErrOutOfRange, i, len(t.data))
	}
	t.data[i] = v
	return nil
}

// Item returns the value of a single-element tensor (a rank-0 result of
// Get, or any tensor of size 1). Panics otherwise: calling Item on a
// non-scalar is a programmer error, not an input condition.
func (t *Tensor[T]) Item() T {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}
