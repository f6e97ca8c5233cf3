package pretokenizer

import (
	"github.com/aqua777/go-pretokenizer/pattern"
)

// DefaultByteLevelPattern is the GPT-2 pre-tokenization expression: English
// contractions, then optionally space-prefixed runs of letters, numbers and
// other non-space characters, then whitespace. Its alternatives cover every
// input character.
const DefaultByteLevelPattern = `'s|'t|'re|'ve|'m|'ll|'d| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`

var defaultByteLevel = pattern.MustCompile(DefaultByteLevelPattern)

// ByteLevelPreTokenizer splits text with DefaultByteLevelPattern or an override,
// keeping the unmatched gaps so no input is lost.
type ByteLevelPreTokenizer struct {
	addPrefixSpace bool
	// noRegex disables splitting; the zero value splits with the default pattern.
	noRegex        bool
	matcher        *pattern.Matcher
}

// ByteLevelOption configures a ByteLevelPreTokenizer.
type ByteLevelOption func(*byteLevelOptions)

type byteLevelOptions struct {
	addPrefixSpace bool
	useRegex       bool
	pattern        string
}

// WithAddPrefixSpace prepends a space to inputs that do not already start with one.
func WithAddPrefixSpace(add bool) ByteLevelOption {
	return func(o *byteLevelOptions) {
		o.addPrefixSpace = add
	}
}

// WithPattern overrides the split expression. An empty expr selects the default.
func WithPattern(expr string) ByteLevelOption {
	return func(o *byteLevelOptions) {
		o.pattern = expr
	}
}

// WithUseRegex disables splitting when false; the (possibly prefixed) input
// is then returned as a single piece.
func WithUseRegex(use bool) ByteLevelOption {
	return func(o *byteLevelOptions) {
		o.useRegex = use
	}
}

// NewByteLevelPreTokenizer returns a ByteLevelPreTokenizer. It fails with a
// *PatternError only when an override pattern does not compile.
func NewByteLevelPreTokenizer(opts ...ByteLevelOption) (*ByteLevelPreTokenizer, error) {
	o := byteLevelOptions{useRegex: true}
	for _, opt := range opts {
		opt(&o)
	}

	matcher := defaultByteLevel
	if o.pattern != "" && o.pattern != DefaultByteLevelPattern {
		m, err := pattern.Compile(o.pattern)
		if err != nil {
			return nil, &PatternError{Pattern: o.pattern, Err: err}
		}
		matcher = m
	}

	return &ByteLevelPreTokenizer{
		addPrefixSpace: o.addPrefixSpace,
		noRegex:        !o.useRegex,
		matcher:        matcher,
	}, nil
}

// AddPrefixSpace reports whether a leading space is inserted.
func (p *ByteLevelPreTokenizer) AddPrefixSpace() bool {
	return p.addPrefixSpace
}

// UseRegex reports whether the input is split at all.
func (p *ByteLevelPreTokenizer) UseRegex() bool {
	return !p.noRegex
}

// Pattern returns the split expression in use.
func (p *ByteLevelPreTokenizer) Pattern() string {
	return p.splitter().String()
}

func (p *ByteLevelPreTokenizer) splitter() *pattern.Matcher {
	if p.matcher == nil {
		return defaultByteLevel
	}
	return p.matcher
}

func (p *ByteLevelPreTokenizer) Split(text string) []string {
	if p.addPrefixSpace && text != "" && text[0] != ' ' {
		text = " " + text
	}

	if p.noRegex {
		if text == "" {
			return []string{}
		}
		return []string{text}
	}
	return p.splitter().Split(text)
}

func (*ByteLevelPreTokenizer) preTokenizer() {}
