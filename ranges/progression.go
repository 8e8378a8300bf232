package ranges

import (
	"fmt"
	"iter"
	"slices"
)

type (
	IntProgression  = Progression[int32]
	LongProgression = Progression[int64]
)

// Progression is an arithmetic sequence from First to Last by Step.
//
// Last is always the final element actually reached from First, so
// Last-First is an exact multiple of Step unless the progression is empty.
// The zero value is an empty progression.
type Progression[T Integer] struct {
	first T
	last  T
	step  T
}

// NewProgression returns the progression over the closed range [start, end]
// with the given step. A negative step walks from start down to end.
//
// It fails when step is zero or the minimum value of T. Bounds that are
// backwards for the direction of step yield an empty progression.
func NewProgression[T Integer](start, end, step T) (Progression[T], error) {
	if step == 0 {
		return Progression[T]{}, invalidArgument("step must be non-zero")
	}
	if step == minValue[T]() {
		return Progression[T]{}, invalidArgument("step must be greater than %d to avoid overflow on negation", minValue[T]())
	}
	return fromClosedRange(start, end, step), nil
}

// fromClosedRange expects a step already validated by the caller.
func fromClosedRange[T Integer](start, end, step T) Progression[T] {
	return Progression[T]{first: start, last: progressionLastElement(start, end, step), step: step}
}

// mod returns a mod b for b > 0, always in [0, b).
func mod[T Integer](a, b T) T {
	m := a % b
	if m >= 0 {
		return m
	}
	return m + b
}

func differenceModulo[T Integer](a, b, c T) T {
	return mod(mod(a, c)-mod(b, c), c)
}

// progressionLastElement computes the last element reached stepping from
// start towards end without overflowing T.
func progressionLastElement[T Integer](start, end, step T) T {
	switch {
	case step > 0:
		if start >= end {
			return end
		}
		return end - differenceModulo(end, start, step)
	case step < 0:
		if start <= end {
			return end
		}
		return end + differenceModulo(start, end, -step)
	default:
		panic("ranges: zero step")
	}
}

func (p Progression[T]) First() T { return p.first }

func (p Progression[T]) Last() T { return p.last }

func (p Progression[T]) Step() T { return p.step }

// IsEmpty reports whether the progression has no elements.
func (p Progression[T]) IsEmpty() bool {
	switch {
	case p.step > 0:
		return p.first > p.last
	case p.step < 0:
		return p.first < p.last
	default:
		return true
	}
}

// Contains reports whether value is one of the elements. It does not iterate.
func (p Progression[T]) Contains(value T) bool {
	switch {
	case p.IsEmpty():
		return false
	case p.step > 0:
		if value < p.first || value > p.last {
			return false
		}
		return (uint64(value)-uint64(p.first))%uint64(p.step) == 0
	default:
		if value > p.first || value < p.last {
			return false
		}
		return (uint64(p.first)-uint64(value))%uint64(-p.step) == 0
	}
}

// All yields the elements in order.
func (p Progression[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if p.IsEmpty() {
			return
		}
		for v := p.first; ; v += p.step {
			if !yield(v) || v == p.last {
				return
			}
		}
	}
}

// Slice collects the elements. Avoid it on progressions spanning a large
// part of a 64-bit domain.
func (p Progression[T]) Slice() []T {
	return slices.Collect(p.All())
}

// Equal reports whether both progressions are empty or have the same
// first, last and step.
func (p Progression[T]) Equal(other Progression[T]) bool {
	if p.IsEmpty() && other.IsEmpty() {
		return true
	}
	return p.first == other.first && p.last == other.last && p.step == other.step
}

// Hash is consistent with Equal: every empty progression hashes to -1.
func (p Progression[T]) Hash() int32 {
	if p.IsEmpty() {
		return -1
	}
	return 31*(31*hashPart(p.first)+hashPart(p.last)) + hashPart(p.step)
}

func (p Progression[T]) String() string {
	if p.step > 0 {
		return fmt.Sprintf("%d..%d step %d", p.first, p.last, p.step)
	}
	return fmt.Sprintf("%d downTo %d step %d", p.first, p.last, -p.step)
}

// Reversed returns the progression over the same elements in the opposite
// order.
func (p Progression[T]) Reversed() Progression[T] {
	if p.step == 0 {
		return p
	}
	return fromClosedRange(p.last, p.first, -p.step)
}

// StepBy returns a progression over the same closed range with the step
// magnitude replaced by step. The direction of p is kept.
func (p Progression[T]) StepBy(step T) (Progression[T], error) {
	if err := checkStepIsPositive(step); err != nil {
		return Progression[T]{}, err
	}
	switch {
	case p.step == 0:
		return p, nil
	case p.step < 0:
		step = -step
	}
	return fromClosedRange(p.first, p.last, step), nil
}
