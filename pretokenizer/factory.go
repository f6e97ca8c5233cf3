package pretokenizer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aqua777/go-pretokenizer/validation"
)

// Build constructs the pre-tokenizer tree described by c. Sequence children are
// built in order and the first failure aborts the whole build. Build returns a
// *ConfigError for invalid configurations and a *PatternError for patterns that
// do not compile; either may be wrapped with the path of the failing child.
func (c Config) Build(opts ...Option) (PreTokenizer, error) {
	return c.build(newOptions(opts), 1)
}

// Build parses raw and builds the result in one step.
func Build(raw map[string]any, opts ...Option) (PreTokenizer, error) {
	o := newOptions(opts)
	cfg, err := parse(raw, o, 1)
	if err != nil {
		return nil, err
	}
	return cfg.build(o, 1)
}

func (c Config) build(o *options, depth int) (PreTokenizer, error) {
	if err := c.validate(depth, o.maxDepth); err != nil {
		return nil, err
	}
	o.logger.Debug("building pre-tokenizer", zap.String("type", string(c.Type)), zap.Int("depth", depth))

	switch c.Type {
	case TypeSplit:
		p, err := NewRegexPreTokenizer(*c.Pattern)
		if err != nil {
			return nil, err
		}
		return p, nil
	case TypeDigits:
		return NewDigitsPreTokenizer(boolOr(c.IndividualDigits, false)), nil
	case TypeByteLevel:
		opts := []ByteLevelOption{
			WithAddPrefixSpace(boolOr(c.AddPrefixSpace, false)),
			WithUseRegex(boolOr(c.UseRegex, true)),
		}
		if c.Pattern != nil {
			opts = append(opts, WithPattern(*c.Pattern))
		}
		p, err := NewByteLevelPreTokenizer(opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	case TypeSequence:
		children := make([]PreTokenizer, 0, len(c.PreTokenizers))
		for i, child := range c.PreTokenizers {
			p, err := child.build(o, depth+1)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", FieldPreTokenizers, i, err)
			}
			children = append(children, p)
		}
		return NewSequencePreTokenizer(children...), nil
	}
	return nil, &ConfigError{Kind: UnsupportedKind, Type: string(c.Type)}
}

// validate runs the checks Parse leaves to build time.
func (c Config) validate(depth, maxDepth int) error {
	v := validation.NewValidator()
	v.Depth(depth, maxDepth, FieldPreTokenizers)

	switch c.Type {
	case TypeSplit:
		pattern := ""
		if c.Pattern != nil {
			pattern = *c.Pattern
		}
		v.Present(pattern, FieldPattern)
	case TypeSequence:
		v.NonEmpty(len(c.PreTokenizers), FieldPreTokenizers)
	}

	first := v.First()
	if first == nil {
		return nil
	}

	kind := Malformed
	switch {
	case errors.Is(first, validation.ErrRequired):
		kind = MissingField
	case errors.Is(first, validation.ErrLimitExceeded):
		kind = TooDeep
	}
	return &ConfigError{Kind: kind, Field: first.Field, Type: string(c.Type), Err: first}
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
