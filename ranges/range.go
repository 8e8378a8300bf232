package ranges

import "fmt"

// ClosedRange is an inclusive interval [Start, EndInclusive].
type ClosedRange[T any] interface {
	Start() T
	EndInclusive() T
	Contains(value T) bool
	IsEmpty() bool
	String() string
}

type (
	IntRange  = Range[int32]
	LongRange = Range[int64]
)

// Canonical empty ranges.
var (
	EmptyIntRange  = NewIntRange(1, 0)
	EmptyLongRange = NewLongRange(1, 0)
)

// Range is a closed integral range: a progression with a step of one.
//
// Start greater than EndInclusive is legal and denotes an empty range. All
// empty ranges are equal to each other and hash to -1. Build ranges with
// NewRange; the zero value has no step and is empty.
type Range[T Integer] struct {
	Progression[T]
}

func NewRange[T Integer](start, endInclusive T) Range[T] {
	return Range[T]{Progression[T]{first: start, last: endInclusive, step: 1}}
}

func NewIntRange(start, endInclusive int32) IntRange {
	return NewRange(start, endInclusive)
}

func NewLongRange(start, endInclusive int64) LongRange {
	return NewRange(start, endInclusive)
}

// Until returns the half-open range [from, to). When to is the minimum value
// of T nothing can be below it and the result is empty.
func Until[T Integer](from, to T) Range[T] {
	if to <= minValue[T]() {
		return NewRange[T](1, 0)
	}
	return NewRange(from, to-1)
}

func (r Range[T]) Start() T { return r.first }

func (r Range[T]) EndInclusive() T { return r.last }

func (r Range[T]) Contains(value T) bool {
	return r.step != 0 && r.first <= value && value <= r.last
}

func (r Range[T]) IsEmpty() bool {
	return r.step == 0 || r.first > r.last
}

// Equal reports whether both ranges are empty or have the same bounds.
func (r Range[T]) Equal(other Range[T]) bool {
	if r.IsEmpty() && other.IsEmpty() {
		return true
	}
	return r.first == other.first && r.last == other.last
}

func (r Range[T]) Hash() int32 {
	if r.IsEmpty() {
		return -1
	}
	return 31*hashPart(r.first) + hashPart(r.last)
}

func (r Range[T]) String() string {
	return fmt.Sprintf("%d..%d", r.first, r.last)
}
