package ranges

import "fmt"

// EmptyCharRange is the canonical empty CharRange.
var EmptyCharRange = NewCharRange(1, 0)

// CharProgression is a progression of characters. Its step is a rune used as
// a plain signed integer.
type CharProgression struct {
	Progression[rune]
}

func NewCharProgression(start, end, step rune) (CharProgression, error) {
	p, err := NewProgression(start, end, step)
	if err != nil {
		return CharProgression{}, err
	}
	return CharProgression{p}, nil
}

func (p CharProgression) Equal(other CharProgression) bool {
	return p.Progression.Equal(other.Progression)
}

func (p CharProgression) Reversed() CharProgression {
	return CharProgression{p.Progression.Reversed()}
}

func (p CharProgression) StepBy(step rune) (CharProgression, error) {
	s, err := p.Progression.StepBy(step)
	if err != nil {
		return CharProgression{}, err
	}
	return CharProgression{s}, nil
}

func (p CharProgression) String() string {
	if p.step > 0 {
		return fmt.Sprintf("%c..%c step %d", p.first, p.last, p.step)
	}
	return fmt.Sprintf("%c downTo %c step %d", p.first, p.last, -p.step)
}

// CharRange is a closed range of characters.
type CharRange struct {
	Range[rune]
}

func NewCharRange(start, endInclusive rune) CharRange {
	return CharRange{NewRange(start, endInclusive)}
}

// AsProgression returns r as a step-one character progression.
func (r CharRange) AsProgression() CharProgression {
	return CharProgression{r.Range.Progression}
}

func (r CharRange) Equal(other CharRange) bool {
	return r.Range.Equal(other.Range)
}

func (r CharRange) Reversed() CharProgression {
	return r.AsProgression().Reversed()
}

func (r CharRange) StepBy(step rune) (CharProgression, error) {
	return r.AsProgression().StepBy(step)
}

func (r CharRange) String() string {
	return fmt.Sprintf("%c..%c", r.first, r.last)
}
