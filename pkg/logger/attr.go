package logger

import (
	"log/slog"
	"strconv"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a record field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Constraint records a constraint kind under the key "constraint".
// Any fmt.Stringer (or plain string) is accepted.
func Constraint(kind any) slog.Attr {
	return slog.Any("constraint", kind)
}

// Severity records the validation severity under the key "severity".
func Severity(severity any) slog.Attr {
	return slog.Any("severity", severity)
}

// Record records the position of a record within a batch under the key "record".
func Record(index int) slog.Attr {
	return slog.Int("record", index)
}

// RecordType records the Go type of the sanitized records under the key "record_type".
func RecordType(name string) slog.Attr {
	return slog.String("record_type", name)
}
