package sanitizer

import (
	"fmt"
	"strings"
)

// Severity decides what happens when a value fails validation.
// It only matters for ValidGUID and ValidEmail; every other kind is a plain
// transformation.
type Severity uint8

const (
	// Relaxed repairs invalid values and never reports them. It is the default.
	Relaxed Severity = iota
	// Strict leaves invalid values untouched and reports a *ValidationError.
	Strict
)

func (s Severity) String() string {
	switch s {
	case Relaxed:
		return "relaxed"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("severity(%d)", uint8(s))
	}
}

// ParseSeverity parses "relaxed" or "strict", ignoring case.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relaxed":
		return Relaxed, nil
	case "strict":
		return Strict, nil
	default:
		return Relaxed, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	if s != Relaxed && s != Strict {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
