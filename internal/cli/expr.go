package cli

import (
	"strings"

	"github.com/pkg/errors"
)

type Op int

const (
	OpRangeTo Op = iota
	OpUntil
	OpDownTo
)

func (o Op) String() string {
	switch o {
	case OpUntil:
		return "until"
	case OpDownTo:
		return "downTo"
	default:
		return ".."
	}
}

// Modifier is a postfix applied to a progression, in the order written.
type Modifier struct {
	// Name is "step" or "reversed".
	Name string
	// Arg is the step magnitude, empty for "reversed".
	Arg string
}

// Expr is a parsed range expression. Bounds are kept as text until a Kind
// is chosen.
type Expr struct {
	From      string
	To        string
	Op        Op
	Modifiers []Modifier
}

// ParseExpr parses a range expression.
//
// Supported formats:
//   - FROM..TO
//   - FROM .. TO, FROM until TO, FROM downTo TO
//
// followed by any sequence of the postfixes:
//   - step N
//   - reversed
//
// Tokens are separated by whitespace. Bounds are not validated here.
//
// Examples:
//
//	ParseExpr("1..10 step 2")          -> 1..10, step 2
//	ParseExpr("10 downTo 1 reversed")  -> 10 downTo 1, reversed
func ParseExpr(value string) (Expr, error) {
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return Expr{}, errors.Errorf("empty expression")
	}

	var e Expr
	var rest []string
	if sep := strings.Index(tokens[0], ".."); sep >= 0 {
		e.From = tokens[0][:sep]
		e.To = tokens[0][sep+2:]
		if e.From == "" || e.To == "" {
			return Expr{}, errors.Errorf("invalid range %q: missing bound", tokens[0])
		}
		e.Op = OpRangeTo
		rest = tokens[1:]
	} else {
		if len(tokens) < 3 {
			return Expr{}, errors.Errorf("invalid expression %q: expected FROM OP TO", value)
		}
		switch tokens[1] {
		case "..":
			e.Op = OpRangeTo
		case "until":
			e.Op = OpUntil
		case "downTo":
			e.Op = OpDownTo
		default:
			return Expr{}, errors.Errorf("unknown operator %q", tokens[1])
		}
		e.From = tokens[0]
		e.To = tokens[2]
		rest = tokens[3:]
	}

	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "reversed":
			e.Modifiers = append(e.Modifiers, Modifier{Name: "reversed"})
		case "step":
			if i+1 >= len(rest) {
				return Expr{}, errors.Errorf("step needs a value")
			}
			i++
			e.Modifiers = append(e.Modifiers, Modifier{Name: "step", Arg: rest[i]})
		default:
			return Expr{}, errors.Errorf("unexpected token %q", rest[i])
		}
	}
	return e, nil
}

// IsPlain reports whether the expression is a bare FROM..TO.
func (e Expr) IsPlain() bool {
	return e.Op == OpRangeTo && len(e.Modifiers) == 0
}

func (e Expr) String() string {
	var b strings.Builder
	if e.Op == OpRangeTo {
		b.WriteString(e.From + ".." + e.To)
	} else {
		b.WriteString(e.From + " " + e.Op.String() + " " + e.To)
	}
	for _, m := range e.Modifiers {
		b.WriteString(" " + m.Name)
		if m.Arg != "" {
			b.WriteString(" " + m.Arg)
		}
	}
	return b.String()
}
