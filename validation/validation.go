// Package validation checks configuration values field by field and reports
// every failure with the key it belongs to.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Causes attached to a FieldError; match them with errors.Is.
var (
	ErrRequired      = errors.New("required field is missing or empty")
	ErrOutOfRange    = errors.New("value out of range")
	ErrLimitExceeded = errors.New("limit exceeded")
)

// FieldError is a single failed check.
type FieldError struct {
	Field  string
	Reason string
	// Got is the offending value, nil when there is nothing useful to show.
	Got    any
	Cause  error
}

func (e *FieldError) Error() string {
	if e.Got == nil {
		return e.Field + " " + e.Reason
	}
	return fmt.Sprintf("%s %s, got %v", e.Field, e.Reason, e.Got)
}

func (e *FieldError) Unwrap() error {
	return e.Cause
}

// FieldErrors lists failed checks in the order they ran.
type FieldErrors []FieldError

func (errs FieldErrors) Error() string {
	parts := make([]string, len(errs))
	for i := range errs {
		parts[i] = errs[i].Error()
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

// Validator accumulates FieldErrors. The zero value is ready to use.
type Validator struct {
	failed FieldErrors
}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) fail(field, reason string, got any, cause error) {
	v.failed = append(v.failed, FieldError{Field: field, Reason: reason, Got: got, Cause: cause})
}

// Check records reason against field unless ok holds.
func (v *Validator) Check(ok bool, field, reason string) {
	if !ok {
		v.fail(field, reason, nil, nil)
	}
}

func (v *Validator) Positive(n int, field string) {
	if n <= 0 {
		v.fail(field, "must be greater than zero", n, ErrOutOfRange)
	}
}

func (v *Validator) NonNegative(n int, field string) {
	if n < 0 {
		v.fail(field, "must not be negative", n, ErrOutOfRange)
	}
}

// Present fails when s is empty.
func (v *Validator) Present(s, field string) {
	if s == "" {
		v.fail(field, "is required", nil, ErrRequired)
	}
}

// NonEmpty fails when a list of length n has no entries.
func (v *Validator) NonEmpty(n int, field string) {
	if n == 0 {
		v.fail(field, "needs at least one entry", nil, ErrRequired)
	}
}

// Depth fails when depth is past limit.
func (v *Validator) Depth(depth, limit int, field string) {
	if depth > limit {
		v.fail(field, fmt.Sprintf("nested deeper than %d levels", limit), depth, ErrLimitExceeded)
	}
}

func (v *Validator) Failed() bool {
	return len(v.failed) > 0
}

// Errors returns every recorded failure.
func (v *Validator) Errors() FieldErrors {
	return v.failed
}

// First returns the earliest failure, or nil.
func (v *Validator) First() *FieldError {
	if !v.Failed() {
		return nil
	}
	return &v.failed[0]
}

// Err returns the failures as an error, or nil when every check passed.
func (v *Validator) Err() error {
	if !v.Failed() {
		return nil
	}
	return v.failed
}
