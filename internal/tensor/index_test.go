package tensor

import (
	"errors"
	"testing"
)

// Rank-2 scenario: extents {3, 2} filled 0..5.
func TestGetSubTensor(t *testing.T) {
	m, err := FromSliceShape([]float64{0, 1, 2, 3, 4, 5}, Shape{3, 2})
	if err != nil {
		t.Fatalf("FromSliceShape failed: %v", err)
	}

	row, err := m.Get(1)
	if err != nil {
		t.Fatalf("Get(1) failed: %v", err)
	}
	if !row.Shape().Equal(Shape{2}) {
		t.Fatalf("Get(1).Shape() = %v, want [2]", row.Shape())
	}
	want, _ := FromSlice([]float64{2, 3})
	if !row.Equal(want) {
		t.Errorf("Get(1) = %v, want [2 3]", row.Data())
	}

	scalar, err := m.Get(1, 1)
	if err != nil {
		t.Fatalf("Get(1, 1) failed: %v", err)
	}
	if scalar.Rank() != 0 || scalar.Size() != 1 {
		t.Fatalf("Get(1, 1) = rank %d size %d, want rank-0 scalar", scalar.Rank(), scalar.Size())
	}
	if scalar.Item() != 3 {
		t.Errorf("Get(1, 1).Item() = %v, want 3", scalar.Item())
	}
}

// Sub-tensor law: get(prefix) then get(suffix) reproduces get(prefix ++ suffix).
func TestGetComposition(t *testing.T) {
	data := make([]float64, 24)
	for i := range data {
		data[i] = float64(i)
	}
	cube, err := FromSliceShape(data, Shape{2, 3, 4})
	if err != nil {
		t.Fatalf("FromSliceShape failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		sub, err := cube.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if sub.Size() != 12 {
			t.Fatalf("Get(%d).Size() = %d, want 12", i, sub.Size())
		}
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				direct, err := cube.ValueAt(i, j, k)
				if err != nil {
					t.Fatalf("ValueAt(%d, %d, %d) failed: %v", i, j, k, err)
				}
				via, err := sub.ValueAt(j, k)
				if err != nil {
					t.Fatalf("sub.ValueAt(%d, %d) failed: %v", j, k, err)
				}
				if direct != via {
					t.Errorf("composition broken at (%d,%d,%d): direct %v, via sub %v", i, j, k, direct, via)
				}
			}
		}
	}
}

// Sub-tensors are copies: mutating one never changes the source.
func TestGetReturnsIndependentCopy(t *testing.T) {
	m, _ := FromSliceShape([]int32{1, 2, 3, 4}, Shape{2, 2})
	row, _ := m.Get(0)

	if err := row.Set(0, 99); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, _ := m.ValueAt(0, 0); v != 1 {
		t.Errorf("mutating a sub-tensor changed the source: %v", v)
	}
}

func TestValueAtRoundTrip(t *testing.T) {
	tr, err := New[float32](Shape{2, 3})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	strides := tr.Strides()
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			flat := i*strides[0] + j*strides[1]
			if err := tr.SetAt(float32(flat)*10, i, j); err != nil {
				t.Fatalf("SetAt(%d, %d) failed: %v", i, j, err)
			}
			v, err := tr.ValueAt(i, j)
			if err != nil {
				t.Fatalf("ValueAt(%d, %d) failed: %v", i, j, err)
			}
			if v != float32(flat)*10 {
				t.Errorf("ValueAt(%d, %d) = %v, want %v", i, j, v, float32(flat)*10)
			}
			// Flat offset agrees with stride arithmetic.
			if fv, _ := tr.At(flat); fv != v {
				t.Errorf("At(%d) = %v, ValueAt(%d, %d) = %v", flat, fv, i, j, v)
			}
		}
	}
}

func TestGetErrors(t *testing.T) {
	m, _ := FromSliceShape([]float64{0, 1, 2, 3, 4, 5}, Shape{3, 2})

	if _, err := m.Get(0, 0, 0); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("too many indices: error = %v, want ErrShapeMismatch", err)
	}
	if _, err := m.Get(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("axis overflow: error = %v, want ErrOutOfRange", err)
	}
	if _, err := m.Get(0, -1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("negative index: error = %v, want ErrOutOfRange", err)
	}
	if _, err := m.ValueAt(1); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("partial ValueAt: error = %v, want ErrShapeMismatch", err)
	}
	if err := m.SetAt(1, 0); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("partial SetAt: error = %v, want ErrShapeMismatch", err)
	}
}

// Get with no indices is a whole-tensor copy.
func TestGetNoIndices(t *testing.T) {
	m, _ := FromSliceShape([]float64{0, 1, 2, 3, 4, 5}, Shape{3, 2})
	cp, err := m.Get()
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !cp.Equal(m) {
		t.Error("Get() should copy the whole tensor")
	}
}
