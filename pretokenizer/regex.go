package pretokenizer

import (
	"github.com/aqua777/go-pretokenizer/pattern"
)

// RegexPreTokenizer extracts every match of a pattern. Text that does not
// match is dropped, so the pieces need not cover the input.
type RegexPreTokenizer struct {
	matcher *pattern.Matcher
}

// NewRegexPreTokenizer compiles expr. It returns a *PatternError if expr is
// invalid; an empty expr is rejected the same way.
func NewRegexPreTokenizer(expr string) (*RegexPreTokenizer, error) {
	if expr == "" {
		return nil, &PatternError{Pattern: expr, Err: errEmptyPattern}
	}
	m, err := pattern.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: expr, Err: err}
	}
	return &RegexPreTokenizer{matcher: m}, nil
}

// Pattern returns the source expression, or "" for a zero value.
func (p *RegexPreTokenizer) Pattern() string {
	if p.matcher == nil {
		return ""
	}
	return p.matcher.String()
}

// Split returns the matched substrings in order. A zero value returns an empty slice.
func (p *RegexPreTokenizer) Split(text string) []string {
	if p.matcher == nil {
		return []string{}
	}
	spans := p.matcher.FindAll(text)
	pieces := make([]string, len(spans))
	for i, span := range spans {
		pieces[i] = text[span.Start:span.End]
	}
	return pieces
}

func (*RegexPreTokenizer) preTokenizer() {}
