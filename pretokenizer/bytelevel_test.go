package pretokenizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newByteLevel(t *testing.T, opts ...ByteLevelOption) *ByteLevelPreTokenizer {
	t.Helper()
	p, err := NewByteLevelPreTokenizer(opts...)
	require.NoError(t, err)
	return p
}

func TestByteLevelPreTokenizer_Default(t *testing.T) {
	p := newByteLevel(t)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "words", input: "Hello world", want: []string{"Hello", " world"}},
		{name: "double space", input: "Hello  world", want: []string{"Hello", " ", " world"}},
		{name: "trailing space", input: "hi  ", want: []string{"hi", "  "}},
		{name: "contraction", input: "I'm here", want: []string{"I", "'m", " here"}},
		{name: "numbers and punctuation", input: "it's 2024!", want: []string{"it", "'s", " 2024", "!"}},
		{name: "unicode letters", input: "héllo wörld", want: []string{"héllo", " wörld"}},
		{name: "cjk", input: "你好 世界", want: []string{"你好", " 世界"}},
		{name: "newline", input: "a\nb", want: []string{"a", "\n", "b"}},
		{name: "empty", input: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Split(tt.input))
		})
	}
}

func TestByteLevelPreTokenizer_Accessors(t *testing.T) {
	p := newByteLevel(t)
	assert.False(t, p.AddPrefixSpace())
	assert.True(t, p.UseRegex())
	assert.Equal(t, DefaultByteLevelPattern, p.Pattern())

	p = newByteLevel(t, WithAddPrefixSpace(true), WithUseRegex(false), WithPattern(`\S+`))
	assert.True(t, p.AddPrefixSpace())
	assert.False(t, p.UseRegex())
	assert.Equal(t, `\S+`, p.Pattern())
}

func TestByteLevelPreTokenizer_PrefixSpace(t *testing.T) {
	p := newByteLevel(t, WithAddPrefixSpace(true))

	input := "hello"
	for i := 0; i < 3; i++ {
		pieces := p.Split(input)
		require.NotEmpty(t, pieces)
		assert.Equal(t, " hello", strings.Join(pieces, ""))
		assert.True(t, strings.HasPrefix(pieces[0], " "))
		assert.False(t, strings.HasPrefix(pieces[0], "  "))
	}
	assert.Equal(t, "hello", input)
}

func TestByteLevelPreTokenizer_PrefixSpaceNotDoubled(t *testing.T) {
	p := newByteLevel(t, WithAddPrefixSpace(true))

	assert.Equal(t, []string{" hello"}, p.Split(" hello"))
	assert.Equal(t, []string{" hello", " world"}, p.Split("hello world"))
	assert.Empty(t, p.Split(""))
}

func TestByteLevelPreTokenizer_PrefixBeforeTab(t *testing.T) {
	p := newByteLevel(t, WithAddPrefixSpace(true))

	assert.Equal(t, " \tx", strings.Join(p.Split("\tx"), ""))
}

func TestByteLevelPreTokenizer_WithoutRegex(t *testing.T) {
	p := newByteLevel(t, WithUseRegex(false))
	assert.Equal(t, []string{"Hello world"}, p.Split("Hello world"))
	assert.Empty(t, p.Split(""))

	p = newByteLevel(t, WithUseRegex(false), WithAddPrefixSpace(true))
	assert.Equal(t, []string{" Hello world"}, p.Split("Hello world"))
}

func TestByteLevelPreTokenizer_PatternOverride(t *testing.T) {
	p := newByteLevel(t, WithPattern(`\S+`))

	assert.Equal(t, []string{"a", " ", "b"}, p.Split("a b"))
}

func TestByteLevelPreTokenizer_EmptyOverrideUsesDefault(t *testing.T) {
	p := newByteLevel(t, WithPattern(""))

	assert.Equal(t, DefaultByteLevelPattern, p.Pattern())
	assert.Equal(t, []string{"Hello", " world"}, p.Split("Hello world"))
}

func TestByteLevelPreTokenizer_InvalidOverride(t *testing.T) {
	p, err := NewByteLevelPreTokenizer(WithPattern(`[`))
	require.Error(t, err)
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, ErrInvalidPattern))
}

func TestByteLevelPreTokenizer_ZeroValue(t *testing.T) {
	var p ByteLevelPreTokenizer

	assert.True(t, p.UseRegex())
	assert.Equal(t, []string{"Hello", " world"}, p.Split("Hello world"))
}

func TestByteLevelPreTokenizer_Coverage(t *testing.T) {
	p := newByteLevel(t)
	mixed := rapid.StringOf(rapid.SampledFrom([]rune{
		' ', ' ', '\t', '\n', ' ', '　',
		'a', 'Z', 's', 't', '\'', 'é', '世',
		'1', '٣', '!', '.', '👍',
	}))

	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.OneOf(rapid.String(), mixed).Draw(rt, "text")

		pieces := p.Split(text)
		if got := strings.Join(pieces, ""); got != text {
			rt.Fatalf("%q reassembled as %q", text, got)
		}
		for _, piece := range pieces {
			if piece == "" {
				rt.Fatalf("empty piece in split of %q", text)
			}
		}
	})
}

func TestByteLevelPreTokenizer_PrefixCoverage(t *testing.T) {
	p := newByteLevel(t, WithAddPrefixSpace(true))

	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.String().Draw(rt, "text")

		want := text
		if text != "" && text[0] != ' ' {
			want = " " + text
		}
		if got := strings.Join(p.Split(text), ""); got != want {
			rt.Fatalf("%q reassembled as %q, want %q", text, got, want)
		}
	})
}
