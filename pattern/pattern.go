// Package pattern adapts the regexp2 engine to the two operations pre-tokenizers
// need: locating every non-overlapping match and splitting a string exhaustively.
// Expressions may use lookaround such as `\s+(?!\S)`, which RE2 lacks.
package pattern

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Span is a half-open [Start, End) byte range of a match in the searched text.
type Span struct {
	Start int
	End   int
}

// Matcher is a compiled pattern. It is immutable and safe for concurrent use.
type Matcher struct {
	expr string
	re   *regexp2.Regexp
}

// Compile parses expr into a Matcher.
func Compile(expr string) (*Matcher, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern: %w", err)
	}
	return &Matcher{expr: expr, re: re}, nil
}

// MustCompile is like Compile but panics if expr cannot be parsed.
// It is meant for package-level constants.
func MustCompile(expr string) *Matcher {
	m, err := Compile(expr)
	if err != nil {
		panic(fmt.Sprintf("pattern: Compile(%q): %v", expr, err))
	}
	return m
}

// String returns the source expression.
func (m *Matcher) String() string {
	return m.expr
}

// FindAll returns the spans of all non-overlapping, non-empty matches in text,
// left to right.
func (m *Matcher) FindAll(text string) []Span {
	if text == "" {
		return nil
	}

	// regexp2 reports positions in runes; offsets maps rune index -> byte offset.
	// Ranging over the string keeps invalid UTF-8 bytes one rune wide, exactly
	// like the []rune conversion, so the two stay aligned.
	runes := []rune(text)
	offsets := make([]int, 0, len(runes)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	var spans []Span
	match, err := m.re.FindRunesMatch(runes)
	for err == nil && match != nil {
		if match.Length > 0 {
			spans = append(spans, Span{
				Start: offsets[match.Index],
				End:   offsets[match.Index+match.Length],
			})
		}
		match, err = m.re.FindNextMatch(match)
	}
	return spans
}

// Split partitions text into the matched spans and the unmatched gaps between
// them, in order. Concatenating the result always reproduces text.
func (m *Matcher) Split(text string) []string {
	spans := m.FindAll(text)
	parts := make([]string, 0, 2*len(spans)+1)

	var offset int
	for _, span := range spans {
		if span.Start > offset {
			parts = append(parts, text[offset:span.Start])
		}
		parts = append(parts, text[span.Start:span.End])
		offset = span.End
	}

	if offset < len(text) {
		parts = append(parts, text[offset:])
	}
	return parts
}

// Split compiles expr and splits text with it.
func Split(text, expr string) ([]string, error) {
	m, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return m.Split(text), nil
}
