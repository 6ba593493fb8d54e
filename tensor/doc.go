// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package tensor provides generic, dense, fixed-layout multi-dimensional
// arrays for Go.
//
// # Overview
//
// A Tensor[T] is a rank-R array of numeric elements stored in a single
// flat contiguous buffer, row-major (last axis contiguous). Each tensor
// exclusively owns its buffer: constructors and operations copy element
// data, and arithmetic always produces a new tensor, never mutating an
// operand. The only mutation paths are Set/SetAt and writes through
// Data.
//
// # Basic Usage
//
//	import "github.com/dense-ml/dense/tensor"
//
//	func main() {
//	    a, _ := tensor.FromSlice([]float64{0, 1, 2, 3, 4})
//	    b, _ := tensor.FromSlice([]float64{5, 6, 7, 8, 9})
//
//	    sum, _ := a.Add(b)        // [5 7 9 11 13]
//	    scaled := a.MulScalar(2)  // [0 2 4 6 8]
//
//	    m, _ := tensor.FromSliceShape([]float64{0, 1, 2, 3, 4, 5}, tensor.Shape{3, 2})
//	    row, _ := m.Get(1)        // rank-1 tensor [2 3]
//	    v, _ := m.ValueAt(1, 1)   // 3
//	}
//
// # Indexing
//
// Get accepts a prefix of axis indices. Supplying all R indices yields a
// rank-0 tensor (read with Item); supplying U < R indices yields a rank
// R-U tensor over the trailing axes. Because the layout is row-major,
// any index prefix names one contiguous block, so extraction is a
// single copy.
//
// # Errors
//
// Contract violations are returned as errors wrapping one of the
// sentinels ErrOutOfRange, ErrDivisionByZero, ErrShapeMismatch,
// ErrSizeMismatch; classify them with errors.Is.
//
// # Supported Element Types
//
// The DType constraint admits float32, float64, int32 and int64.
//
// # Concurrency
//
// A tensor is safe for concurrent reads once constructed. Mutation
// requires exclusive access; no internal synchronization is performed.
package tensor
