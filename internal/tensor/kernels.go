package tensor

import (
	"gonum.org/v1/gonum/floats"

	"github.com/dense-ml/dense/internal/parallel"
)

// Element-wise kernels. Binary and scalar kernels write only into dst,
// which every caller allocates freshly, so parallel chunks never race
// with operand reads.
//
// float64 buffers dispatch to gonum's vectorized slice routines; every
// other element type takes the generic chunked loop.

var kernelCfg = parallel.DefaultConfig()

func addKernel[T DType](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.AddTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	parallel.ForRange(len(dst), func(s, e int) {
		for i := s; i < e; i++ {
			dst[i] = a[i] + b[i]
		}
	}, kernelCfg)
}

func subKernel[T DType](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.SubTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	parallel.ForRange(len(dst), func(s, e int) {
		for i := s; i < e; i++ {
			dst[i] = a[i] - b[i]
		}
	}, kernelCfg)
}

func mulKernel[T DType](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.MulTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	parallel.ForRange(len(dst), func(s, e int) {
		for i := s; i < e; i++ {
			dst[i] = a[i] * b[i]
		}
	}, kernelCfg)
}

// divKernel assumes the caller already rejected zero divisors.
func divKernel[T DType](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.DivTo(d, any(a).([]float64), any(b).([]float64))
		return
	}
	parallel.ForRange(len(dst), func(s, e int) {
		for i := s; i < e; i++ {
			dst[i] = a[i] / b[i]
		}
	}, kernelCfg)
}

func addScalarKernel[T DType](dst, src []T, v T) {
	if d, ok := any(dst).([]float64); ok {
		copy(d, any(src).([]float64))
		floats.AddConst(any(v).(float64), d)
		return
	}
	parallel.ForRange(len(dst), func(s, e int) {
		for i := s; i < e; i++ {
			dst[i] = src[i] + v
		}
	}, kernelCfg)
}

func mulScalarKernel[T DType](dst, src []T, v T) {
	if d, ok := any(dst).([]float64); ok {
		floats.ScaleTo(d, any(v).(float64), any(src).([]float64))
		return
	}
	parallel.ForRange(len(dst), func(s, e int) {
		for i := s; i < e; i++ {
			dst[i] = src[i] * v
		}
	}, kernelCfg)
}

// divScalarKernel keeps true division for every type: scaling by the
// reciprocal would change float rounding.
func divScalarKernel[T DType](dst, src []T, v T) {
	parallel.ForRange(len(dst), func(s, e int) {
		for i := s; i < e; i++ {
			dst[i] = src[i] / v
		}
	}, kernelCfg)
}

// applyUnary maps a float64 function over src into dst, converting
// each element through float64. Integer element types truncate the
// result toward zero on conversion.
func applyUnary[T DType](dst, src []T, f func(float64) float64) {
	parallel.ForRange(len(dst), func(s, e int) {
		for i := s; i < e; i++ {
			dst[i] = T(f(float64(src[i])))
		}
	}, kernelCfg)
}

// findZero returns the flat index of the first zero element, if any.
func findZero[T DType](s []T) (int, bool) {
	for i, v := range s {
		if v == 0 {
			return i, true
		}
	}
	return 0, false
}
