package pretokenizer

import (
	"github.com/aqua777/go-pretokenizer/pattern"
)

var (
	digitRuns       = pattern.MustCompile(`[^\p{N}]+|\p{N}+`)
	individualDigit = pattern.MustCompile(`[^\p{N}]+|\p{N}`)
)

// DigitsPreTokenizer separates runs of numeric characters from everything else.
// The pieces always concatenate back to the input.
type DigitsPreTokenizer struct {
	individualDigits bool
}

// NewDigitsPreTokenizer returns a DigitsPreTokenizer. When individualDigits is
// set every numeric character becomes its own piece.
func NewDigitsPreTokenizer(individualDigits bool) *DigitsPreTokenizer {
	return &DigitsPreTokenizer{individualDigits: individualDigits}
}

// IndividualDigits reports whether digits are emitted one per piece.
func (p *DigitsPreTokenizer) IndividualDigits() bool {
	return p.individualDigits
}

func (p *DigitsPreTokenizer) Split(text string) []string {
	if p.individualDigits {
		return individualDigit.Split(text)
	}
	return digitRuns.Split(text)
}

func (*DigitsPreTokenizer) preTokenizer() {}
