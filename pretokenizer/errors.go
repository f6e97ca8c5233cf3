package pretokenizer

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ConfigError.
type ErrorKind int

const (
	// MissingField means a required field is absent or empty.
	MissingField ErrorKind = iota + 1
	// UnsupportedKind means the discriminator names no known pre-tokenizer.
	UnsupportedKind
	// Malformed means a field is present but has the wrong shape.
	Malformed
	// TooDeep means Sequence nesting exceeds the configured maximum depth.
	TooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case UnsupportedKind:
		return "unsupported kind"
	case Malformed:
		return "malformed field"
	case TooDeep:
		return "nesting too deep"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels matched by errors.Is against a *ConfigError of the same kind,
// and against a *PatternError.
var (
	ErrMissingField    = errors.New("pretokenizer: missing field")
	ErrUnsupportedKind = errors.New("pretokenizer: unsupported kind")
	ErrMalformed       = errors.New("pretokenizer: malformed field")
	ErrTooDeep         = errors.New("pretokenizer: nesting too deep")
	ErrInvalidPattern  = errors.New("pretokenizer: invalid pattern")

	errEmptyPattern = errors.New("pattern is empty")
)

// ConfigError reports a configuration that cannot be parsed or built.
type ConfigError struct {
	Kind ErrorKind
	// Field is the offending key, e.g. "pattern" or "pretokenizers[2]".
	Field string
	// Type is the discriminator of the node being processed, if known.
	Type string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ConfigError) Error() string {
	var msg string
	switch e.Kind {
	case MissingField:
		msg = fmt.Sprintf("pretokenizer: missing required field %q", e.Field)
	case UnsupportedKind:
		msg = fmt.Sprintf("pretokenizer: unsupported type %q", e.Type)
	case Malformed:
		if e.Field == "" {
			msg = "pretokenizer: malformed configuration"
		} else {
			msg = fmt.Sprintf("pretokenizer: malformed field %q", e.Field)
		}
	case TooDeep:
		msg = "pretokenizer: configuration nesting too deep"
	default:
		msg = "pretokenizer: invalid configuration"
	}
	if e.Type != "" && e.Kind != UnsupportedKind {
		msg += " for type " + e.Type
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind.
func (e *ConfigError) Is(target error) bool {
	switch e.Kind {
	case MissingField:
		return target == ErrMissingField
	case UnsupportedKind:
		return target == ErrUnsupportedKind
	case Malformed:
		return target == ErrMalformed
	case TooDeep:
		return target == ErrTooDeep
	}
	return false
}

// PatternError reports a pattern that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pretokenizer: invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}
