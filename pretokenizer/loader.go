package pretokenizer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldTokenizerPreTokenizer is the tokenizer.json member holding the pre-tokenizer.
const FieldTokenizerPreTokenizer = "pre_tokenizer"

// LoadFile reads a configuration file and parses it. The format is detected
// from the extension (.json, .yaml, .yml). Both a bare pre-tokenizer object and
// a complete tokenizer.json document are accepted.
func LoadFile(path string, opts ...Option) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read pre-tokenizer config %s: %w", path, err)
	}

	format := detectFormat(path)
	if format == "" {
		return Config{}, fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}

	return LoadBytes(data, format, opts...)
}

// LoadBytes parses raw bytes in the given format ("yaml" or "json").
func LoadBytes(data []byte, format string, opts ...Option) (Config, error) {
	raw, err := decodeTree(data, format)
	if err != nil {
		return Config{}, err
	}
	if isTokenizerDocument(raw) {
		return preTokenizerMember(raw, opts)
	}
	return Parse(raw, opts...)
}

func decodeTree(data []byte, format string) (map[string]any, error) {
	var tree any

	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, &ConfigError{Kind: Malformed, Err: fmt.Errorf("failed to parse YAML: %w", err)}
		}
	case "json":
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, &ConfigError{Kind: Malformed, Err: fmt.Errorf("failed to parse JSON: %w", err)}
		}
	default:
		return nil, fmt.Errorf("unsupported format %q, use \"yaml\" or \"json\"", format)
	}

	raw, ok := tree.(map[string]any)
	if !ok {
		return nil, &ConfigError{Kind: Malformed, Err: fmt.Errorf("expected an object, got %T", tree)}
	}
	return raw, nil
}

// LoadTokenizerJSON extracts and parses the pre_tokenizer member of a
// HuggingFace tokenizer.json document.
func LoadTokenizerJSON(data []byte, opts ...Option) (Config, error) {
	raw, err := decodeTree(data, "json")
	if err != nil {
		return Config{}, err
	}
	return preTokenizerMember(raw, opts)
}

func preTokenizerMember(raw map[string]any, opts []Option) (Config, error) {
	v, ok := raw[FieldTokenizerPreTokenizer]
	if !ok || v == nil {
		return Config{}, &ConfigError{Kind: MissingField, Field: FieldTokenizerPreTokenizer}
	}
	node, ok := v.(map[string]any)
	if !ok {
		return Config{}, &ConfigError{
			Kind:  Malformed,
			Field: FieldTokenizerPreTokenizer,
			Err:   fmt.Errorf("expected an object, got %T", v),
		}
	}
	return Parse(node, opts...)
}

func isTokenizerDocument(raw map[string]any) bool {
	if _, ok := raw[FieldType]; ok {
		return false
	}
	if _, ok := raw[FieldKind]; ok {
		return false
	}
	_, ok := raw[FieldTokenizerPreTokenizer]
	return ok
}

// detectFormat returns "yaml" or "json" based on file extension, or "" if unknown.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return ""
	}
}
