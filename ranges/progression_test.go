package ranges

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgression_RejectsInvalidStep(t *testing.T) {
	_, err := NewProgression[int32](1, 10, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.EqualError(t, err, "invalid argument: step must be non-zero")

	_, err = NewProgression[int32](1, 10, math.MinInt32)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewProgression[int64](1, 10, math.MinInt64)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewProgression[int8](1, 10, math.MinInt8+1)
	require.NoError(t, err)
}

func TestNewProgression_NormalizesLast(t *testing.T) {
	cases := []struct {
		name             string
		start, end, step int32
		wantLast         int32
		wantElements     []int32
	}{
		{"exact_positive", 1, 10, 3, 10, []int32{1, 4, 7, 10}},
		{"inexact_positive", 1, 9, 3, 7, []int32{1, 4, 7}},
		{"exact_negative", 10, 1, -3, 1, []int32{10, 7, 4, 1}},
		{"inexact_negative", 10, 2, -3, 4, []int32{10, 7, 4}},
		{"single", 5, 5, 2, 5, []int32{5}},
		{"negative_bounds", -7, 7, 5, 3, []int32{-7, -2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProgression(tc.start, tc.end, tc.step)
			require.NoError(t, err)
			assert.Equal(t, tc.start, p.First())
			assert.Equal(t, tc.wantLast, p.Last())
			assert.Equal(t, tc.step, p.Step())
			assert.Equal(t, tc.wantElements, p.Slice())
		})
	}
}

func TestNewProgression_BackwardsBoundsAreEmpty(t *testing.T) {
	p, err := NewProgression[int32](1, 5, -1)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.Slice())

	p, err = NewProgression[int32](5, 1, 1)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.Slice())
}

func TestProgression_IteratesWithoutOverflow(t *testing.T) {
	p, err := NewProgression[int8](math.MinInt8, math.MaxInt8, 100)
	require.NoError(t, err)
	assert.Equal(t, int8(72), p.Last())
	assert.Equal(t, []int8{-128, -28, 72}, p.Slice())

	full := NewRange[int8](math.MinInt8, math.MaxInt8)
	assert.Len(t, full.Slice(), 256)

	p64, err := NewProgression[int64](math.MaxInt64, math.MinInt64, math.MinInt64+1)
	require.NoError(t, err)
	assert.Equal(t, []int64{math.MaxInt64, 0, math.MinInt64 + 1}, p64.Slice())
}

func TestProgression_AllStopsEarly(t *testing.T) {
	var seen []int64
	for v := range NewLongRange(1, math.MaxInt64).All() {
		if v > 3 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int64{1, 2, 3}, seen)
}

func TestProgression_EqualAndHash(t *testing.T) {
	a, _ := NewProgression[int32](1, 10, 3)
	b, _ := NewProgression[int32](1, 11, 3)
	assert.True(t, a.Equal(b))
	assert.Equal(t, int32(31*(31*1+10)+3), a.Hash())
	assert.Equal(t, a.Hash(), b.Hash())

	c, _ := NewProgression[int32](1, 10, 1)
	assert.False(t, a.Equal(c))

	e1, _ := NewProgression[int32](1, 0, 1)
	e2, _ := NewProgression[int32](0, 9, -4)
	assert.True(t, e1.Equal(e2))
	assert.Equal(t, int32(-1), e1.Hash())
	assert.Equal(t, int32(-1), e2.Hash())

	var zero IntProgression
	assert.True(t, zero.IsEmpty())
	assert.True(t, zero.Equal(e1))
}

func TestLongProgression_HashFoldsNegativeStep(t *testing.T) {
	// -1 folds to 0 and -3 folds to 2 once the high word is xored in
	assert.Equal(t, int32(31*(31*3+1)), DownToLong(int64(3), int64(1)).Hash())
	assert.Equal(t, int32(31*(31*1+4)), DownToLong(int64(-2), int64(-5)).Hash())

	p, err := DownToLong(int64(10), int64(1)).StepBy(3)
	require.NoError(t, err)
	assert.Equal(t, int32(31*(31*10+1)+2), p.Hash())

	narrow, err := DownTo(int32(10), int32(1)).StepBy(3)
	require.NoError(t, err)
	assert.Equal(t, int32(31*(31*10+1)-3), narrow.Hash())
}

func TestProgression_String(t *testing.T) {
	up, _ := NewProgression[int32](1, 10, 3)
	assert.Equal(t, "1..10 step 3", up.String())
	assert.Equal(t, "5 downTo 1 step 1", DownTo(int32(5), int32(1)).String())
}

func TestProgression_Reversed(t *testing.T) {
	p, _ := NewProgression[int32](1, 10, 3)
	r := p.Reversed()
	assert.Equal(t, []int32{10, 7, 4, 1}, r.Slice())
	assert.Equal(t, int32(-3), r.Step())

	rr := r.Reversed()
	assert.Equal(t, p.First(), rr.First())
	assert.Equal(t, p.Last(), rr.Last())
	assert.Equal(t, p.Step(), rr.Step())

	inexact, _ := NewProgression[int64](0, 10, 4)
	assert.Equal(t, []int64{8, 4, 0}, inexact.Reversed().Slice())

	assert.Equal(t, []int32{3, 2, 1}, NewIntRange(1, 3).Reversed().Slice())
	assert.True(t, NewIntRange(3, 1).Reversed().IsEmpty())
}

func TestProgression_StepBy(t *testing.T) {
	p, err := DownTo(int32(5), int32(1)).StepBy(2)
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 3, 1}, p.Slice())

	p, err = NewIntRange(1, 10).StepBy(4)
	require.NoError(t, err)
	assert.Equal(t, int32(9), p.Last())
	assert.Equal(t, []int32{1, 5, 9}, p.Slice())

	for _, step := range []int32{0, -1, math.MinInt32} {
		_, err = NewIntRange(1, 10).StepBy(step)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
	_, err = NewIntRange(1, 10).StepBy(0)
	require.EqualError(t, err, "invalid argument: step must be positive, was: 0")

	_, err = NewLongRange(1, 0).StepBy(-2)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDownTo_Widening(t *testing.T) {
	assert.Equal(t, []int32{3, 2, 1}, DownTo(int8(3), int16(1)).Slice())
	assert.Equal(t, []int32{300, 299}, DownTo(int16(300), int8(127)).Slice()[:2])
	assert.Equal(t, []int64{2, 1, 0}, DownToLong(int64(2), int8(0)).Slice())
	assert.Equal(t, []int64{1, 0}, DownToLong(int32(1), int64(0)).Slice())
	assert.True(t, DownTo(int32(1), int32(5)).IsEmpty())
	assert.Empty(t, DownToLong(int64(1), int64(5)).Slice())
}

func TestUntil(t *testing.T) {
	assert.Equal(t, []int32{0, 1, 2}, Until[int32](0, 3).Slice())
	assert.True(t, Until[int32](3, 3).IsEmpty())
	assert.True(t, Until[int32](0, math.MinInt32).Equal(EmptyIntRange))
	assert.Equal(t, "0..9", Until[int64](0, 10).String())
}

func TestProgression_Contains(t *testing.T) {
	p, _ := NewProgression[int32](1, 10, 3)
	for _, v := range []int32{1, 4, 7, 10} {
		assert.True(t, p.Contains(v), "%d", v)
	}
	for _, v := range []int32{0, 2, 11, -2} {
		assert.False(t, p.Contains(v), "%d", v)
	}

	down, _ := DownTo(int32(5), int32(1)).StepBy(2)
	assert.True(t, down.Contains(3))
	assert.False(t, down.Contains(2))

	wide, _ := NewProgression[int64](math.MinInt64, math.MaxInt64, 1<<62)
	assert.True(t, wide.Contains(math.MinInt64+3<<62))
	assert.True(t, wide.Contains(0))
	assert.False(t, wide.Contains(1))
	assert.False(t, NewIntRange(1, 0).Progression.Contains(1))
}
