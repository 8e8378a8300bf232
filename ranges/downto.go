package ranges

// DownTo returns the progression from down to to with a step of -1. Both
// operands widen to int32. A to greater than from gives an empty progression.
func DownTo[A, B Narrow](from A, to B) IntProgression {
	return fromClosedRange(int32(from), int32(to), -1)
}

// DownToLong is DownTo for operand pairs where either side is 64 bits wide.
func DownToLong[A, B Integer](from A, to B) LongProgression {
	return fromClosedRange(int64(from), int64(to), -1)
}

func CharDownTo(from, to rune) CharProgression {
	return CharProgression{fromClosedRange(from, to, -1)}
}
