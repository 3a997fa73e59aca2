package sanitizer

import "github.com/google/uuid"

// outcome is what a rule produces for one value. invalid is set when the
// input failed validation and value holds the repair; the caller decides,
// based on severity, whether to keep the repair or report the failure.
type outcome[V any] struct {
	value   V
	invalid *ValidationError
}

func keep[V any](v V) outcome[V] {
	return outcome[V]{value: v}
}

func text(s string) *string {
	return &s
}

// sanitizeText applies c to a nullable text value (nil is null).
func sanitizeText(in *string, c Constraint) (outcome[*string], error) {
	switch c.Kind() {
	case MaxLength, MaxLengthOrEmpty:
		n, err := c.nonNegativeRef()
		if err != nil {
			return outcome[*string]{}, err
		}
		if in == nil {
			if c.Kind() == MaxLengthOrEmpty {
				return keep(text("")), nil
			}
			return keep[*string](nil), nil
		}
		return keep(text(TruncateRunes(Trim(*in), n))), nil

	case MinLength:
		n, err := c.nonNegativeRef()
		if err != nil {
			return outcome[*string]{}, err
		}
		if in == nil {
			return keep[*string](nil), nil
		}
		return keep(text(PadRight(Trim(*in), n))), nil
	}

	if in == nil {
		return keep(nullText(c.Kind())), nil
	}

	raw := *in
	if pipeline, ok := textPipelines[c.Kind()]; ok {
		return keep(text(pipeline(raw))), nil
	}

	s := Trim(raw)
	switch c.Kind() {
	case ValidDateTime:
		if IsDateTime(s) {
			return keep(text(s)), nil
		}
		return keep(text("")), nil
	case ForceValidDateTime:
		if IsDateTime(s) {
			return keep(text(s)), nil
		}
		return keep(text(MinDateTime)), nil
	case ValidGUID:
		// Empty is what null turns into, so it must pass a second time.
		if _, err := uuid.Parse(s); s == "" || err == nil {
			return keep(text(s)), nil
		}
		return outcome[*string]{
			value:   text(uuid.NewString()),
			invalid: &ValidationError{Kind: c.Kind(), Value: raw},
		}, nil
	case ValidEmail:
		if s == "" || IsEmail(s) {
			return keep(text(s)), nil
		}
		return outcome[*string]{
			value:   text(""),
			invalid: &ValidationError{Kind: c.Kind(), Value: raw},
		}, nil
	default:
		return keep(text(s)), nil
	}
}

// textPipelines are the text kinds that are plain transformations of the
// raw value.
var textPipelines = map[Kind]func(string) string{
	NotNull:             Trim,
	Lowercase:           Compose(Trim, ToLowerInvariant),
	Uppercase:           Compose(Trim, ToUpperInvariant),
	NoWhiteSpace:        RemoveWhitespace,
	NoSpecialCharacters: RemoveSpecialChars,
	OnlyDigits:          Compose(KeepDigits, Trim),
	SingleChar:          Compose(Trim, FirstChar),
}

// nullText is the replacement for a null text value under kind k.
func nullText(k Kind) *string {
	switch k {
	case ForceValidDateTime:
		return text(MinDateTime)
	case NotNull, Lowercase, Uppercase, NoWhiteSpace, NoSpecialCharacters, OnlyDigits,
		ValidDateTime, SingleChar, ValidGUID, ValidEmail:
		return text("")
	default:
		return nil
	}
}
