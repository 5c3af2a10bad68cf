package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrTypeCoercion         = errors.New("type coercion failed")
	ErrUnsupportedShape     = errors.New("unsupported value shape")
)

// MissingFieldError reports a required field none of whose keys is present.
type MissingFieldError struct {
	Path        string   // e.g. "Children[2].Id"
	Tried       []string // keys looked up, in order
	Suggestions []string // present keys that look like a misspelling
}

func (e *MissingFieldError) Error() string {
	msg := fmt.Sprintf("missing required field %s (tried keys: %s)", e.Path, strings.Join(e.Tried, ", "))
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf("; did you mean %s?", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// ConversionError reports a raw value that cannot be coerced into the
// declared type of a field.
type ConversionError struct {
	Path     string
	Expected string // declared type
	Actual   string // runtime type of the raw value
	Err      error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTypeCoercion}
	}
	return []error{ErrTypeCoercion, e.Err}
}

// UnsupportedShapeError reports a raw value whose shape cannot hold the field
// at all, e.g. a scalar where a sequence is expected.
type UnsupportedShapeError struct {
	Path     string
	Expected string
	Actual   string
	Reason   string
}

func (e *UnsupportedShapeError) Error() string {
	msg := fmt.Sprintf("unsupported shape at %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *UnsupportedShapeError) Unwrap() error {
	return ErrUnsupportedShape
}

func fieldPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func indexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

func typeName(raw any) string {
	if raw == nil {
		return "null"
	}
	return fmt.Sprintf("%T", raw)
}
