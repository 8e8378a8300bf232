package cli

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/vipcxj/ranges/ranges"
)

// Union represents a set of LongRange elements combined with logical OR.
//   - A value n is in the union if it falls within any of the ranges.
//   - Empty ranges contribute nothing; a union of no ranges is empty.
type Union struct {
	Ranges []ranges.LongRange
}

// ParseUnion parses every token and returns the Union of them.
//
// Syntax of a token:
//
//	"N"      -> the single value N
//	"N..M"   -> closed range [N, M], empty when N > M
func ParseUnion(tokens []string) (Union, error) {
	var u Union
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return Union{}, errors.Errorf("empty token at position %d", i)
		}
		if !strings.Contains(tok, "..") {
			n, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return Union{}, errors.Wrapf(err, "invalid token %q", tok)
			}
			u.Ranges = append(u.Ranges, ranges.NewLongRange(n, n))
			continue
		}
		e, err := ParseExpr(tok)
		if err != nil {
			return Union{}, errors.Wrapf(err, "invalid token %q", tok)
		}
		if !e.IsPlain() {
			return Union{}, errors.Errorf("invalid token %q: expected N or N..M", tok)
		}
		from, err := longDomain.parse(e.From)
		if err != nil {
			return Union{}, err
		}
		to, err := longDomain.parse(e.To)
		if err != nil {
			return Union{}, err
		}
		u.Ranges = append(u.Ranges, ranges.NewLongRange(from, to))
	}
	return u, nil
}

// Contains reports whether n is in the union.
func (u Union) Contains(n int64) bool {
	return lo.SomeBy(u.Ranges, func(r ranges.LongRange) bool { return r.Contains(n) })
}

// IsEmpty reports whether no value is in the union.
func (u Union) IsEmpty() bool {
	return lo.EveryBy(u.Ranges, func(r ranges.LongRange) bool { return r.IsEmpty() })
}

// Normalize returns the union as ordered, non-overlapping, non-adjacent
// ranges:
//  1. drop empty ranges
//  2. sort by start, then by end
//  3. merge ranges that overlap or touch (integer adjacency counts)
func (u Union) Normalize() []ranges.LongRange {
	valids := lo.Reject(u.Ranges, func(r ranges.LongRange, _ int) bool { return r.IsEmpty() })
	if len(valids) == 0 {
		return nil
	}
	slices.SortFunc(valids, func(a, b ranges.LongRange) int {
		if a.Start() != b.Start() {
			return cmp.Compare(a.Start(), b.Start())
		}
		return cmp.Compare(a.EndInclusive(), b.EndInclusive())
	})

	merged := make([]ranges.LongRange, 0, len(valids))
	for _, cur := range valids {
		if len(merged) == 0 {
			merged = append(merged, cur)
			continue
		}
		last := merged[len(merged)-1]
		// last already reaches the top of the domain and covers the rest
		if last.EndInclusive() == math.MaxInt64 {
			break
		}
		if last.EndInclusive()+1 >= cur.Start() {
			merged[len(merged)-1] = ranges.NewLongRange(last.Start(), max(last.EndInclusive(), cur.EndInclusive()))
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// String renders the normalized union, ranges separated by spaces. Single
// values print as "N".
func (u Union) String() string {
	return strings.Join(lo.Map(u.Normalize(), func(r ranges.LongRange, _ int) string {
		if r.Start() == r.EndInclusive() {
			return strconv.FormatInt(r.Start(), 10)
		}
		return r.String()
	}), " ")
}

