package ranges

import (
	"fmt"
	"math"
	"unsafe"
)

type (
	DoubleRange = ClosedFloatingPointRange[float64]
	FloatRange  = ClosedFloatingPointRange[float32]
)

// ClosedFloatingPointRange is a closed range of floating point numbers whose
// bounds are compared according to IEEE-754 rather than a total order: a
// range with a NaN bound is empty and NaN is never contained.
type ClosedFloatingPointRange[F Float] struct {
	start        F
	endInclusive F
}

// RangeToFloat returns the range [start, endInclusive].
func RangeToFloat[F Float](start, endInclusive F) ClosedFloatingPointRange[F] {
	return ClosedFloatingPointRange[F]{start: start, endInclusive: endInclusive}
}

func (r ClosedFloatingPointRange[F]) Start() F { return r.start }

func (r ClosedFloatingPointRange[F]) EndInclusive() F { return r.endInclusive }

// LessThanOrEquals is the comparison used by Contains and IsEmpty.
func (r ClosedFloatingPointRange[F]) LessThanOrEquals(a, b F) bool {
	return a <= b
}

func (r ClosedFloatingPointRange[F]) Contains(value F) bool {
	return r.LessThanOrEquals(r.start, value) && r.LessThanOrEquals(value, r.endInclusive)
}

func (r ClosedFloatingPointRange[F]) IsEmpty() bool {
	return !r.LessThanOrEquals(r.start, r.endInclusive)
}

// Equal reports whether both ranges are empty or have bounds that compare
// equal with ==.
func (r ClosedFloatingPointRange[F]) Equal(other ClosedFloatingPointRange[F]) bool {
	if r.IsEmpty() && other.IsEmpty() {
		return true
	}
	return r.start == other.start && r.endInclusive == other.endInclusive
}

func (r ClosedFloatingPointRange[F]) Hash() int32 {
	if r.IsEmpty() {
		return -1
	}
	return 31*floatHash(r.start) + floatHash(r.endInclusive)
}

func (r ClosedFloatingPointRange[F]) String() string {
	return fmt.Sprintf("%v..%v", r.start, r.endInclusive)
}

// floatHash hashes the IEEE bits of v. Negative zero hashes like positive
// zero since the two compare equal.
func floatHash[F Float](v F) int32 {
	if v == 0 {
		v = 0
	}
	if unsafe.Sizeof(v) == 4 {
		return int32(math.Float32bits(float32(v)))
	}
	bits := math.Float64bits(float64(v))
	return int32(bits ^ bits>>32)
}
