package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const gpt2 = `'s|'t|'re|'ve|'m|'ll|'d| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile(`(unclosed`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile pattern")
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCompile(`[`) })
	assert.NotPanics(t, func() { MustCompile(`[0-9]+`) })
}

func TestMatcher_String(t *testing.T) {
	m := MustCompile(`\p{L}+`)
	assert.Equal(t, `\p{L}+`, m.String())
}

func TestFindAll_ASCII(t *testing.T) {
	m := MustCompile(`[0-9]+`)

	spans := m.FindAll("ab12cd34")
	assert.Equal(t, []Span{{Start: 2, End: 4}, {Start: 6, End: 8}}, spans)
}

func TestFindAll_NoMatch(t *testing.T) {
	m := MustCompile(`[0-9]+`)

	assert.Empty(t, m.FindAll("abcdef"))
	assert.Empty(t, m.FindAll(""))
}

func TestFindAll_ByteOffsetsForMultibyte(t *testing.T) {
	m := MustCompile(`\p{N}+`)
	text := "héllo 42 wörld ٣٤"

	spans := m.FindAll(text)
	require.Len(t, spans, 2)
	assert.Equal(t, "42", text[spans[0].Start:spans[0].End])
	assert.Equal(t, "٣٤", text[spans[1].Start:spans[1].End])
}

func TestFindAll_SkipsEmptyMatches(t *testing.T) {
	m := MustCompile(`a*`)

	spans := m.FindAll("baab")
	assert.Equal(t, []Span{{Start: 1, End: 3}}, spans)
}

func TestSplit_KeepsGaps(t *testing.T) {
	m := MustCompile(`[0-9]+`)

	assert.Equal(t, []string{"ab", "12", "cd", "34"}, m.Split("ab12cd34"))
	assert.Equal(t, []string{"12", "ab"}, m.Split("12ab"))
	assert.Equal(t, []string{"abc"}, m.Split("abc"))
	assert.Empty(t, m.Split(""))
}

func TestSplit_Lookahead(t *testing.T) {
	m := MustCompile(gpt2)

	assert.Equal(t, []string{"Hello", " ", " world"}, m.Split("Hello  world"))
	assert.Equal(t, []string{"hi", "  "}, m.Split("hi  "))
	assert.Equal(t, []string{"it", "'s", " 2024", "!"}, m.Split("it's 2024!"))
}

func TestSplit_InvalidUTF8Coverage(t *testing.T) {
	m := MustCompile(gpt2)
	text := "ab\xffcd \xfe\xfd12"

	parts := m.Split(text)
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestSplitFunc(t *testing.T) {
	parts, err := Split("one two", `\s+`)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", " ", "two"}, parts)

	_, err = Split("one two", `(`)
	assert.Error(t, err)
}

func TestSplit_CoverageProperty(t *testing.T) {
	m := MustCompile(`\p{L}+|\p{N}+`)

	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.String().Draw(rt, "text")

		parts := m.Split(text)
		if got := strings.Join(parts, ""); got != text {
			rt.Fatalf("split lost text: %q -> %q", text, got)
		}
		for _, part := range parts {
			if part == "" {
				rt.Fatalf("split of %q produced an empty part", text)
			}
		}
	})
}
