package ranges

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosedFloatingPointRange_IEEEComparison(t *testing.T) {
	r := RangeToFloat(0.0, 1.0)
	assert.False(t, r.Contains(math.NaN()))
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(math.Copysign(0, -1)))
	assert.True(t, r.Contains(1))
	assert.False(t, r.Contains(math.Nextafter(1, 2)))

	assert.True(t, RangeToFloat(1.0, 0.0).IsEmpty())
	assert.True(t, RangeToFloat(math.NaN(), 1).IsEmpty())
	assert.True(t, RangeToFloat(0, math.NaN()).IsEmpty())
	assert.False(t, RangeToFloat(math.Inf(-1), math.Inf(1)).IsEmpty())
	assert.True(t, RangeToFloat(math.Inf(-1), math.Inf(1)).Contains(math.MaxFloat64))

	f := RangeToFloat[float32](0.5, 1.5)
	assert.True(t, f.Contains(1))
	assert.False(t, f.Contains(float32(math.NaN())))
	assert.True(t, f.LessThanOrEquals(1, 1))
}

func TestClosedFloatingPointRange_Equality(t *testing.T) {
	assert.True(t, RangeToFloat(1.0, 2.0).Equal(RangeToFloat(1.0, 2.0)))
	assert.Equal(t, RangeToFloat(1.0, 2.0).Hash(), RangeToFloat(1.0, 2.0).Hash())
	assert.False(t, RangeToFloat(1.0, 2.0).Equal(RangeToFloat(1.0, 3.0)))

	// Ranges with NaN bounds are empty, and all empty ranges are equal.
	nan := RangeToFloat(math.NaN(), math.NaN())
	assert.True(t, nan.Equal(RangeToFloat(math.NaN(), math.NaN())))
	assert.True(t, nan.Equal(RangeToFloat(2.0, 1.0)))
	assert.Equal(t, int32(-1), nan.Hash())

	negZero := RangeToFloat(math.Copysign(0, -1), 1)
	posZero := RangeToFloat(0.0, 1)
	assert.True(t, negZero.Equal(posZero))
	assert.Equal(t, posZero.Hash(), negZero.Hash())

	bits := math.Float64bits(1)
	want := 31*int32(bits^bits>>32) + int32(math.Float64bits(2)^math.Float64bits(2)>>32)
	assert.Equal(t, want, RangeToFloat(1.0, 2.0).Hash())
}

func TestClosedFloatingPointRange_String(t *testing.T) {
	assert.Equal(t, "0.5..1.5", RangeToFloat(0.5, 1.5).String())
	assert.Equal(t, "1..2", RangeToFloat[float32](1, 2).String())
	assert.Equal(t, "NaN..+Inf", RangeToFloat(math.NaN(), math.Inf(1)).String())
}

func TestComparableRange(t *testing.T) {
	r := RangeTo("apple", "cherry")
	assert.True(t, r.Contains("banana"))
	assert.False(t, r.Contains("date"))
	assert.Equal(t, "apple..cherry", r.String())
	assert.True(t, RangeTo("b", "a").IsEmpty())
	assert.True(t, RangeTo("b", "a").Equal(RangeTo("z", "y")))
	assert.Equal(t, int32(-1), RangeTo("b", "a").Hash())
	assert.Equal(t, RangeTo("a", "b").Hash(), RangeTo("a", "b").Hash())

	// cmp.Compare orders NaN first, unlike the IEEE-754 float range.
	total := RangeTo(math.NaN(), 1.0)
	assert.False(t, total.IsEmpty())
	assert.True(t, total.Contains(math.NaN()))
	assert.True(t, total.Equal(RangeTo(math.NaN(), 1.0)))
	assert.Equal(t, total.Hash(), RangeTo(math.NaN(), 1.0).Hash())
	assert.True(t, RangeToFloat(math.NaN(), 1.0).IsEmpty())

	ints := RangeTo(1, 5)
	assert.Equal(t, 1, ints.Start())
	assert.Equal(t, 5, ints.EndInclusive())
}
