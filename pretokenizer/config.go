package pretokenizer

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/aqua777/go-pretokenizer/settings"
)

// Type is the discriminator of a pre-tokenizer configuration. The values match
// the HuggingFace tokenizer.json names.
type Type string

const (
	TypeSplit     Type = "Split"
	TypeDigits    Type = "Digits"
	TypeByteLevel Type = "ByteLevel"
	TypeSequence  Type = "Sequence"
)

// Configuration keys.
const (
	FieldType             = "type"
	FieldKind             = "kind" // accepted in place of "type"
	FieldPattern          = "pattern"
	FieldIndividualDigits = "individual_digits"
	FieldAddPrefixSpace   = "add_prefix_space"
	FieldUseRegex         = "use_regex"
	FieldTrimOffsets      = "trim_offsets"
	FieldPreTokenizers    = "pretokenizers"
)

// Config describes a pre-tokenizer tree. Optional fields are pointers so that an
// absent key stays distinguishable from an explicit zero value. Only the fields
// relevant to Type are meaningful.
type Config struct {
	Type Type

	// Split (required) and ByteLevel (optional override).
	Pattern *string
	// Digits.
	IndividualDigits *bool
	// ByteLevel.
	AddPrefixSpace *bool
	UseRegex       *bool
	TrimOffsets    *bool
	// Sequence.
	PreTokenizers []Config
}

// Option tunes Parse and Build.
type Option func(*options)

type options struct {
	maxDepth int
	logger   *zap.Logger
}

// WithMaxDepth bounds Sequence nesting. Non-positive values fall back to the
// global setting.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithLogger sets the logger used while building.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		maxDepth: settings.GetMaxDepth(),
		logger:   settings.GetLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Parse reads a Config from a generic key/value tree such as the output of
// json.Unmarshal or yaml.Unmarshal into an interface{}.
func Parse(raw map[string]any, opts ...Option) (Config, error) {
	return parse(raw, newOptions(opts), 1)
}

// ParseJSON reads a Config from a JSON object.
func ParseJSON(data []byte, opts ...Option) (Config, error) {
	raw, err := decodeTree(data, "json")
	if err != nil {
		return Config{}, err
	}
	return Parse(raw, opts...)
}

// ParseYAML reads a Config from a YAML mapping.
func ParseYAML(data []byte, opts ...Option) (Config, error) {
	raw, err := decodeTree(data, "yaml")
	if err != nil {
		return Config{}, err
	}
	return Parse(raw, opts...)
}

func parse(raw map[string]any, o *options, depth int) (Config, error) {
	if depth > o.maxDepth {
		return Config{}, &ConfigError{
			Kind:  TooDeep,
			Field: FieldPreTokenizers,
			Err:   fmt.Errorf("depth %d exceeds maximum of %d", depth, o.maxDepth),
		}
	}

	typ, err := parseType(raw)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Type: typ}
	switch typ {
	case TypeSplit:
		cfg.Pattern, err = decodePattern(raw, typ)
	case TypeDigits:
		cfg.IndividualDigits, err = decodeBool(raw, FieldIndividualDigits, typ)
	case TypeByteLevel:
		if cfg.AddPrefixSpace, err = decodeBool(raw, FieldAddPrefixSpace, typ); err != nil {
			break
		}
		if cfg.UseRegex, err = decodeBool(raw, FieldUseRegex, typ); err != nil {
			break
		}
		if cfg.TrimOffsets, err = decodeBool(raw, FieldTrimOffsets, typ); err != nil {
			break
		}
		cfg.Pattern, err = decodePattern(raw, typ)
	case TypeSequence:
		cfg.PreTokenizers, err = parseChildren(raw, o, depth)
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseType(raw map[string]any) (Type, error) {
	v, ok := raw[FieldType]
	if !ok {
		v, ok = raw[FieldKind]
	}
	if !ok || v == nil {
		return "", &ConfigError{Kind: MissingField, Field: FieldType}
	}

	s, ok := v.(string)
	if !ok {
		return "", &ConfigError{Kind: Malformed, Field: FieldType, Err: fmt.Errorf("expected a string, got %T", v)}
	}

	switch typ := Type(s); typ {
	case TypeSplit, TypeDigits, TypeByteLevel, TypeSequence:
		return typ, nil
	}
	return "", &ConfigError{Kind: UnsupportedKind, Type: s}
}

// decodeBool returns nil when key is absent or null.
func decodeBool(raw map[string]any, key string, typ Type) (*bool, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	var b bool
	if err := mapstructure.Decode(v, &b); err != nil {
		return nil, &ConfigError{Kind: Malformed, Field: key, Type: string(typ), Err: err}
	}
	return &b, nil
}

// decodePattern reads {"pattern": {"Regex": "..."}}. Other pattern forms, such
// as {"String": "..."}, leave the pattern unset.
func decodePattern(raw map[string]any, typ Type) (*string, error) {
	v, ok := raw[FieldPattern]
	if !ok || v == nil {
		return nil, nil
	}
	var p struct {
		Regex *string `mapstructure:"Regex"`
	}
	if err := mapstructure.Decode(v, &p); err != nil {
		return nil, &ConfigError{Kind: Malformed, Field: FieldPattern, Type: string(typ), Err: err}
	}
	return p.Regex, nil
}

func parseChildren(raw map[string]any, o *options, depth int) ([]Config, error) {
	v, ok := raw[FieldPreTokenizers]
	if !ok || v == nil {
		return nil, nil
	}

	var entries []any
	if err := mapstructure.Decode(v, &entries); err != nil {
		return nil, &ConfigError{Kind: Malformed, Field: FieldPreTokenizers, Type: string(TypeSequence), Err: err}
	}

	children := make([]Config, 0, len(entries))
	for i, entry := range entries {
		field := fmt.Sprintf("%s[%d]", FieldPreTokenizers, i)

		var node map[string]any
		if err := mapstructure.Decode(entry, &node); err != nil || node == nil {
			if err == nil {
				err = fmt.Errorf("expected an object, got %T", entry)
			}
			return nil, &ConfigError{Kind: Malformed, Field: field, Type: string(TypeSequence), Err: err}
		}

		child, err := parse(node, o, depth+1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		children = append(children, child)
	}
	return children, nil
}

type patternJSON struct {
	Regex string `json:"Regex"`
}

type configJSON struct {
	Type             Type         `json:"type"`
	Pattern          *patternJSON `json:"pattern,omitempty"`
	IndividualDigits *bool        `json:"individual_digits,omitempty"`
	AddPrefixSpace   *bool        `json:"add_prefix_space,omitempty"`
	TrimOffsets      *bool        `json:"trim_offsets,omitempty"`
	UseRegex         *bool        `json:"use_regex,omitempty"`
	PreTokenizers    []Config     `json:"pretokenizers,omitempty"`
}

// MarshalJSON writes c in the tokenizer.json shape. Unset optional fields are omitted.
func (c Config) MarshalJSON() ([]byte, error) {
	out := configJSON{
		Type:             c.Type,
		IndividualDigits: c.IndividualDigits,
		AddPrefixSpace:   c.AddPrefixSpace,
		TrimOffsets:      c.TrimOffsets,
		UseRegex:         c.UseRegex,
		PreTokenizers:    c.PreTokenizers,
	}
	if c.Pattern != nil {
		out.Pattern = &patternJSON{Regex: *c.Pattern}
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses c with the global settings, see ParseJSON.
func (c *Config) UnmarshalJSON(data []byte) error {
	cfg, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

func (c Config) String() string {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Sprintf("Config{Type: %s}", c.Type)
	}
	return string(b)
}
