package cli

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/vipcxj/ranges/ranges"
)

// Value is an expression evaluated in one Kind.
type Value interface {
	String() string
	IsEmpty() bool
	Hash() int32
	// Contains parses value in the kind of the expression and tests membership.
	Contains(value string) (bool, error)
	// Coerce clamps value into the expression, which must be a plain range.
	Coerce(value string) (string, error)
	// Elements returns up to limit elements, or all of them when limit <= 0.
	Elements(limit int) ([]any, error)
}

// Evaluate evaluates e in kind.
func Evaluate(kind Kind, e Expr) (Value, error) {
	slog.Debug("Evaluating expression", "expr", e.String(), "kind", kind)
	switch kind {
	case KindInt:
		return evalIntegral(e, intDomain)
	case KindLong:
		return evalIntegral(e, longDomain)
	case KindChar:
		return evalIntegral(e, charDomain)
	case KindFloat:
		return evalDense(kind, e, parseFloat32, func(from, to float32) hashedRange[float32] {
			r := ranges.RangeToFloat(from, to)
			return hashedRange[float32]{r, r.Hash}
		})
	case KindDouble:
		return evalDense(kind, e, parseFloat64, func(from, to float64) hashedRange[float64] {
			r := ranges.RangeToFloat(from, to)
			return hashedRange[float64]{r, r.Hash}
		})
	case KindText:
		return evalDense(kind, e, parseString, func(from, to string) hashedRange[string] {
			r := ranges.RangeTo(from, to)
			return hashedRange[string]{r, r.Hash}
		})
	default:
		return nil, errors.Errorf("unsupported kind %s", kind)
	}
}

// Coerce clamps value between the optional bounds minimum and maximum.
func Coerce(kind Kind, value string, minimum, maximum *string) (string, error) {
	switch kind {
	case KindInt:
		return coerceBounds(value, minimum, maximum, intDomain.parse, intDomain.format)
	case KindLong:
		return coerceBounds(value, minimum, maximum, longDomain.parse, longDomain.format)
	case KindChar:
		return coerceBounds(value, minimum, maximum, charDomain.parse, charDomain.format)
	case KindFloat:
		return coerceBounds(value, minimum, maximum, parseFloat32, formatAny[float32])
	case KindDouble:
		return coerceBounds(value, minimum, maximum, parseFloat64, formatAny[float64])
	case KindText:
		return coerceBounds(value, minimum, maximum, parseString, formatAny[string])
	default:
		return "", errors.Errorf("unsupported kind %s", kind)
	}
}

func coerceBounds[T ranges.Ordered](value string, minimum, maximum *string, parse func(string) (T, error), format func(T) any) (string, error) {
	v, err := parse(value)
	if err != nil {
		return "", err
	}
	parseBound := func(s *string) (*T, error) {
		if s == nil {
			return nil, nil
		}
		b, err := parse(*s)
		if err != nil {
			return nil, err
		}
		return &b, nil
	}
	lower, err := parseBound(minimum)
	if err != nil {
		return "", err
	}
	upper, err := parseBound(maximum)
	if err != nil {
		return "", err
	}

	var got T
	if lower != nil && upper != nil {
		got, err = ranges.CoerceIn(v, *lower, *upper)
	} else {
		got, err = ranges.CoerceInBounds(v, lower, upper)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprint(format(got)), nil
}

// integralDomain describes how one integral kind parses, widens and prints.
type integralDomain[T ranges.Integer] struct {
	parse  func(string) (T, error)
	bits   int
	downTo func(from, to T) ranges.Progression[T]
	// describe returns the text and hash of p, or of r when r is non-nil.
	describe func(p ranges.Progression[T], r *ranges.Range[T]) (string, int32)
	// closed wraps r for CoerceInRange so errors print in the kind's notation.
	closed func(r ranges.Range[T]) ranges.ClosedRange[T]
	format func(T) any
}

var intDomain = integralDomain[int32]{
	parse: func(s string) (int32, error) {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid int %q", s)
		}
		return int32(n), nil
	},
	bits:     32,
	downTo:   ranges.DownTo[int32, int32],
	describe: describeNumeric[int32],
	closed:   closedNumeric[int32],
	format:   formatAny[int32],
}

var longDomain = integralDomain[int64]{
	parse: func(s string) (int64, error) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid long %q", s)
		}
		return n, nil
	},
	bits:     64,
	downTo:   ranges.DownToLong[int64, int64],
	describe: describeNumeric[int64],
	closed:   closedNumeric[int64],
	format:   formatAny[int64],
}

var charDomain = integralDomain[rune]{
	parse: func(s string) (rune, error) {
		r, size := utf8.DecodeRuneInString(s)
		if (r == utf8.RuneError && size <= 1) || size != len(s) {
			return 0, errors.Errorf("invalid char %q: want exactly one character", s)
		}
		return r, nil
	},
	bits: 32,
	downTo: func(from, to rune) ranges.Progression[rune] {
		return ranges.CharDownTo(from, to).Progression
	},
	describe: func(p ranges.Progression[rune], r *ranges.Range[rune]) (string, int32) {
		if r != nil {
			cr := ranges.CharRange{Range: *r}
			return cr.String(), cr.Hash()
		}
		cp := ranges.CharProgression{Progression: p}
		return cp.String(), cp.Hash()
	},
	closed: func(r ranges.Range[rune]) ranges.ClosedRange[rune] {
		return ranges.CharRange{Range: r}
	},
	format: func(r rune) any { return string(r) },
}

func describeNumeric[T ranges.Integer](p ranges.Progression[T], r *ranges.Range[T]) (string, int32) {
	if r != nil {
		return r.String(), r.Hash()
	}
	return p.String(), p.Hash()
}

func closedNumeric[T ranges.Integer](r ranges.Range[T]) ranges.ClosedRange[T] { return r }

func formatAny[T any](v T) any { return v }

type integralValue[T ranges.Integer] struct {
	domain integralDomain[T]
	prog   ranges.Progression[T]
	rng    *ranges.Range[T]
}

func evalIntegral[T ranges.Integer](e Expr, d integralDomain[T]) (Value, error) {
	from, err := d.parse(e.From)
	if err != nil {
		return nil, err
	}
	to, err := d.parse(e.To)
	if err != nil {
		return nil, err
	}

	v := integralValue[T]{domain: d}
	switch e.Op {
	case OpRangeTo:
		r := ranges.NewRange(from, to)
		v.rng, v.prog = &r, r.Progression
	case OpUntil:
		r := ranges.Until(from, to)
		v.rng, v.prog = &r, r.Progression
	case OpDownTo:
		v.prog = d.downTo(from, to)
	}

	for _, m := range e.Modifiers {
		v.rng = nil
		switch m.Name {
		case "reversed":
			v.prog = v.prog.Reversed()
		case "step":
			n, err := strconv.ParseInt(m.Arg, 10, d.bits)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid step %q", m.Arg)
			}
			v.prog, err = v.prog.StepBy(T(n))
			if err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

func (v integralValue[T]) String() string {
	s, _ := v.domain.describe(v.prog, v.rng)
	return s
}

func (v integralValue[T]) Hash() int32 {
	_, h := v.domain.describe(v.prog, v.rng)
	return h
}

func (v integralValue[T]) IsEmpty() bool {
	return v.prog.IsEmpty()
}

func (v integralValue[T]) Contains(value string) (bool, error) {
	n, err := v.domain.parse(value)
	if err != nil {
		return false, err
	}
	if v.rng != nil {
		return v.rng.Contains(n), nil
	}
	return v.prog.Contains(n), nil
}

func (v integralValue[T]) Coerce(value string) (string, error) {
	if v.rng == nil {
		return "", errors.Errorf("cannot coerce into progression %s: expected a plain range", v)
	}
	n, err := v.domain.parse(value)
	if err != nil {
		return "", err
	}
	got, err := ranges.CoerceInRange(n, v.domain.closed(*v.rng))
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v.domain.format(got)), nil
}

func (v integralValue[T]) Elements(limit int) ([]any, error) {
	if limit <= 0 {
		limit = math.MaxInt
	}
	var out []any
	for n := range v.prog.All() {
		if len(out) >= limit {
			break
		}
		out = append(out, v.domain.format(n))
	}
	return out, nil
}

// hashedRange keeps the concrete Hash of a range behind ClosedRange.
type hashedRange[T any] struct {
	ranges.ClosedRange[T]
	hash func() int32
}

type denseValue[T ranges.Ordered] struct {
	kind  Kind
	rng   hashedRange[T]
	parse func(string) (T, error)
}

func evalDense[T ranges.Ordered](kind Kind, e Expr, parse func(string) (T, error), rangeTo func(from, to T) hashedRange[T]) (Value, error) {
	if !e.IsPlain() {
		return nil, errors.Errorf("%s ranges only support FROM..TO, got %q", kind, e.String())
	}
	from, err := parse(e.From)
	if err != nil {
		return nil, err
	}
	to, err := parse(e.To)
	if err != nil {
		return nil, err
	}
	return denseValue[T]{kind: kind, rng: rangeTo(from, to), parse: parse}, nil
}

func (v denseValue[T]) String() string { return v.rng.String() }

func (v denseValue[T]) IsEmpty() bool { return v.rng.IsEmpty() }

func (v denseValue[T]) Hash() int32 { return v.rng.hash() }

func (v denseValue[T]) Contains(value string) (bool, error) {
	x, err := v.parse(value)
	if err != nil {
		return false, err
	}
	return v.rng.Contains(x), nil
}

func (v denseValue[T]) Coerce(value string) (string, error) {
	x, err := v.parse(value)
	if err != nil {
		return "", err
	}
	got, err := ranges.CoerceInRange[T](x, v.rng.ClosedRange)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(got), nil
}

func (v denseValue[T]) Elements(int) ([]any, error) {
	return nil, errors.Errorf("cannot enumerate a %s range", v.kind)
}

func parseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid float %q", s)
	}
	return float32(f), nil
}

func parseFloat64(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid double %q", s)
	}
	return f, nil
}

func parseString(s string) (string, error) { return s, nil }
