package ranges

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the element domain of progressions and integral ranges.
type Integer interface {
	constraints.Signed
}

// Narrow are the integer widths that widen to int32 in [DownTo].
type Narrow interface {
	~int8 | ~int16 | ~int32
}

// Float is the element domain of floating point ranges.
type Float interface {
	constraints.Float
}

// Ordered is the element domain of the generic range and the coerce family.
type Ordered interface {
	constraints.Ordered
}

func minValue[T Integer]() T {
	var zero T
	return T(-1) << (unsafe.Sizeof(zero)*8 - 1)
}

// hashPart folds a value into 32 bits: 64-bit values are xor-folded, narrower
// ones are sign extended.
func hashPart[T Integer](v T) int32 {
	if unsafe.Sizeof(v) == 8 {
		u := uint64(v)
		return int32(u ^ u>>32)
	}
	return int32(v)
}
