package tensor

import (
	"fmt"
	"strings"
)

// maxRenderElements caps how many elements String renders before it
// falls back to the summary line only.
const maxRenderElements = 256

// String returns a human-readable representation: dtype, shape and, for
// small tensors, the elements nested by axis.
//
//	Tensor[float64][3 2] {{0, 1}, {2, 3}, {4, 5}}
func (t *Tensor[T]) String() string {
	if t.Size() == 0 {
		return fmt.Sprintf("Tensor[%s]<empty>", t.DType())
	}
	if t.Size() > maxRenderElements {
		return fmt.Sprintf("Tensor[%s]%v size=%d", t.DType(), t.shape, t.Size())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor[%s]%v ", t.DType(), t.shape)
	t.render(&sb, 0, 0)
	return sb.String()
}

// render writes the elements under axis depth starting at flat offset,
// recursing over the leading axis.
func (t *Tensor[T]) render(sb *strings.Builder, depth, offset int) {
	sb.WriteByte('{')
	if depth == len(t.shape)-1 || len(t.shape) == 0 {
		n := 1
		if len(t.shape) > 0 {
			n = t.shape[depth]
		}
		for i := 0; i < n; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%v", t.data[offset+i])
		}
	} else {
		for i := 0; i < t.shape[depth]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			t.render(sb, depth+1, offset+i*t.stride[depth])
		}
	}
	sb.WriteByte('}')
}
