//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind -transform=kebab -linecomment
package cli

// Kind selects the element domain an expression is evaluated in.
type Kind int

const (
	KindInt Kind = iota
	KindLong
	KindChar
	KindFloat
	KindDouble
	KindText // string
)

// IsIntegral reports whether ranges of this kind are progressions.
func (i Kind) IsIntegral() bool {
	return i == KindInt || i == KindLong || i == KindChar
}

// Set implements pflag.Value.
func (i *Kind) Set(s string) error {
	k, err := KindString(s)
	if err != nil {
		return err
	}
	*i = k
	return nil
}

// Type implements pflag.Value.
func (i *Kind) Type() string {
	return "kind"
}
