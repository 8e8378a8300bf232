package ranges

// CoerceAtLeast returns minimum if value is less than it, value otherwise.
func CoerceAtLeast[T Ordered](value, minimum T) T {
	if value < minimum {
		return minimum
	}
	return value
}

// CoerceAtMost returns maximum if value is greater than it, value otherwise.
func CoerceAtMost[T Ordered](value, maximum T) T {
	if value > maximum {
		return maximum
	}
	return value
}

// CoerceIn clamps value into [minimum, maximum]. It fails when maximum is
// less than minimum.
func CoerceIn[T Ordered](value, minimum, maximum T) (T, error) {
	if minimum > maximum {
		return value, emptyBoundsError(minimum, maximum)
	}
	if value < minimum {
		return minimum, nil
	}
	if value > maximum {
		return maximum, nil
	}
	return value, nil
}

// CoerceInBounds is CoerceIn with optional bounds; a nil bound leaves that
// side unconstrained. Swapped bounds are only detected when both are given.
func CoerceInBounds[T Ordered](value T, minimum, maximum *T) (T, error) {
	if minimum != nil && maximum != nil {
		return CoerceIn(value, *minimum, *maximum)
	}
	if minimum != nil && value < *minimum {
		return *minimum, nil
	}
	if maximum != nil && value > *maximum {
		return *maximum, nil
	}
	return value, nil
}

// CoerceInRange clamps value into r, comparing against its bounds with < and
// >. It fails when r is empty.
func CoerceInRange[T Ordered](value T, r ClosedRange[T]) (T, error) {
	if r.IsEmpty() {
		return value, invalidArgument("cannot coerce value to an empty range: %s", r)
	}
	if value < r.Start() {
		return r.Start(), nil
	}
	if value > r.EndInclusive() {
		return r.EndInclusive(), nil
	}
	return value, nil
}

func emptyBoundsError[T Ordered](minimum, maximum T) error {
	return invalidArgument("cannot coerce value to an empty range: maximum %v is less than minimum %v", maximum, minimum)
}
