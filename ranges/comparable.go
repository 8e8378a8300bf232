package ranges

import (
	"cmp"
	"fmt"
	"hash/maphash"
)

var comparableSeed = maphash.MakeSeed()

// ComparableRange is a closed range over any ordered domain. Bounds and values
// are compared with cmp.Compare, a total order in which NaN sorts before every
// other float; use RangeToFloat for IEEE-754 semantics.
type ComparableRange[T Ordered] struct {
	start        T
	endInclusive T
}

// RangeTo returns the range [start, endInclusive].
func RangeTo[T Ordered](start, endInclusive T) ComparableRange[T] {
	return ComparableRange[T]{start: start, endInclusive: endInclusive}
}

func (r ComparableRange[T]) Start() T { return r.start }

func (r ComparableRange[T]) EndInclusive() T { return r.endInclusive }

func (r ComparableRange[T]) Contains(value T) bool {
	return cmp.Compare(r.start, value) <= 0 && cmp.Compare(value, r.endInclusive) <= 0
}

func (r ComparableRange[T]) IsEmpty() bool {
	return cmp.Compare(r.start, r.endInclusive) > 0
}

func (r ComparableRange[T]) Equal(other ComparableRange[T]) bool {
	if r.IsEmpty() && other.IsEmpty() {
		return true
	}
	return cmp.Compare(r.start, other.start) == 0 && cmp.Compare(r.endInclusive, other.endInclusive) == 0
}

// Hash is stable for the lifetime of the process only.
func (r ComparableRange[T]) Hash() int32 {
	if r.IsEmpty() {
		return -1
	}
	return 31*orderedHash(r.start) + orderedHash(r.endInclusive)
}

func (r ComparableRange[T]) String() string {
	return fmt.Sprintf("%v..%v", r.start, r.endInclusive)
}

// orderedHash agrees with cmp.Compare equality: all NaNs share one hash.
func orderedHash[T Ordered](v T) int32 {
	if v != v {
		return 0x7ff80000
	}
	h := maphash.Comparable(comparableSeed, v)
	return int32(h ^ h>>32)
}
