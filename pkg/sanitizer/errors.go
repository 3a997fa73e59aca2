package sanitizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingRef is returned when a constraint that needs a reference value has none.
	ErrMissingRef = errors.New("constraint requires a reference value")

	// ErrInvalidRef is returned when a reference value cannot be used, e.g. a
	// negative length or a value that overflows the field type.
	ErrInvalidRef = errors.New("invalid constraint reference value")

	// ErrInvalidValue is returned under strict severity for values that fail validation.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnknownKind is returned when parsing an unknown constraint kind name.
	ErrUnknownKind = errors.New("unknown constraint kind")

	// ErrUnknownSeverity is returned when parsing an unknown severity name.
	ErrUnknownSeverity = errors.New("unknown validation severity")

	// ErrInvalidProfile is returned when a constraint profile cannot be decoded.
	ErrInvalidProfile = errors.New("invalid constraint profile")

	// ErrAccessorType is returned by New when WithAccessor was given an
	// accessor for a different record type.
	ErrAccessorType = errors.New("accessor does not match record type")
)

// ConfigurationError reports a constraint declared with a missing or unusable
// reference value. Only the affected field is skipped.
type ConfigurationError struct {
	Field string
	Kind  Kind
	Ref   int
	Err   error
}

func (e *ConfigurationError) Error() string {
	if errors.Is(e.Err, ErrInvalidRef) {
		return fmt.Sprintf("field %q: %s(%d): %v", e.Field, e.Kind, e.Ref, e.Err)
	}
	return fmt.Sprintf("field %q: %s: %v", e.Field, e.Kind, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ValidationError reports a value rejected under strict severity.
// Value is the raw field value before trimming.
type ValidationError struct {
	Field string
	Kind  Kind
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s: %q is not valid", e.Field, e.Kind, e.Value)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidValue }

// AccessError reports a failure to read or write a field through the accessor.
type AccessError struct {
	Field string
	Err   error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// Errors collects the field errors of one record.
type Errors []error

func (es Errors) Error() string {
	if len(es) == 0 {
		return "sanitization failed"
	}

	parts := make([]string, 0, len(es))
	for _, err := range es {
		parts = append(parts, err.Error())
	}
	return "sanitization failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the member errors to errors.Is and errors.As.
func (es Errors) Unwrap() []error { return es }

// Has reports whether any error concerns field.
func (es Errors) Has(field string) bool {
	for _, err := range es {
		if fieldOf(err) == field {
			return true
		}
	}
	return false
}

// Get returns the errors that concern field.
func (es Errors) Get(field string) []error {
	var out []error
	for _, err := range es {
		if fieldOf(err) == field {
			out = append(out, err)
		}
	}
	return out
}

// Fields returns the names of the fields with errors, in order of first occurrence.
func (es Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range es {
		f := fieldOf(err)
		if !seen[f] {
			fields = append(fields, f)
			seen[f] = true
		}
	}
	return fields
}

func fieldOf(err error) string {
	switch e := err.(type) {
	case *ConfigurationError:
		return e.Field
	case *ValidationError:
		return e.Field
	case *AccessError:
		return e.Field
	default:
		return ""
	}
}
