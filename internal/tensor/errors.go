package tensor

import "errors"

// Error kinds reported by tensor operations. Every failure returned by
// this package wraps exactly one of these sentinels, so callers can
// classify with errors.Is without parsing messages.
var (
	// ErrOutOfRange reports a flat or per-axis index outside the valid range.
	ErrOutOfRange = errors.New("index out of range")

	// ErrDivisionByZero reports a zero divisor, element or scalar.
	// Division never silently produces infinity.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrShapeMismatch reports operand extents that differ where equality
	// is required (arithmetic, ordering comparisons, stacking tensors of
	// inconsistent shape).
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrSizeMismatch reports operand element counts that differ. It is
	// the coarser check performed ahead of ErrShapeMismatch.
	ErrSizeMismatch = errors.New("size mismatch")
)
