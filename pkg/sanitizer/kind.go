package sanitizer

import (
	"fmt"
	"strings"
)

// Kind identifies a constraint rule.
//
// Which kinds have an effect depends on the field's category; a kind that
// does not apply to a category leaves the value as is (text values are still
// trimmed).
type Kind uint8

const (
	// NotNull replaces absent text with "" and absent nullable values with a
	// default instance of the declared type.
	NotNull Kind = iota + 1
	// MaxLength truncates text to Ref runes. Absent text stays absent.
	MaxLength
	// MinLength right-pads text with spaces to Ref runes. Absent text stays absent.
	MinLength
	// MaxLengthOrEmpty is MaxLength, but absent text becomes "".
	MaxLengthOrEmpty
	// Lowercase maps text to lower case.
	Lowercase
	// Uppercase maps text to upper case.
	Uppercase
	// NoWhiteSpace removes every whitespace character.
	NoWhiteSpace
	// NoSpecialCharacters keeps only ASCII letters, digits, '_' and '.'.
	NoSpecialCharacters
	// OnlyDigits keeps only digits.
	OnlyDigits
	// ValidDateTime empties text that is not a recognised date/time.
	ValidDateTime
	// ForceValidDateTime replaces text that is not a recognised date/time with MinDateTime.
	ForceValidDateTime
	// SingleChar keeps the first character.
	SingleChar
	// ValidGUID requires a UUID or empty text. Relaxed severity substitutes a
	// new UUID.
	ValidGUID
	// ValidEmail requires an e-mail address or empty text. Relaxed severity
	// substitutes "".
	ValidEmail
	// MinValue clamps whole numbers greater than Ref down to Ref.
	MinValue
	// MaxValue clamps whole numbers greater than Ref down to Ref.
	MaxValue
	// NotNegative replaces negative whole numbers with Ref.
	NotNegative
	// MaxDecimalPlaces truncates fractional numbers to Ref decimal places.
	MaxDecimalPlaces
	// NoDBSentinel replaces database-null markers with nil.
	NoDBSentinel
)

var kindNames = map[Kind]string{
	NotNull:             "not_null",
	MaxLength:           "max_length",
	MinLength:           "min_length",
	MaxLengthOrEmpty:    "max_length_or_empty",
	Lowercase:           "lowercase",
	Uppercase:           "uppercase",
	NoWhiteSpace:        "no_whitespace",
	NoSpecialCharacters: "no_special_characters",
	OnlyDigits:          "only_digits",
	ValidDateTime:       "valid_datetime",
	ForceValidDateTime:  "force_valid_datetime",
	SingleChar:          "single_char",
	ValidGUID:           "valid_guid",
	ValidEmail:          "valid_email",
	MinValue:            "min_value",
	MaxValue:            "max_value",
	NotNegative:         "not_negative",
	MaxDecimalPlaces:    "max_decimal_places",
	NoDBSentinel:        "no_db_sentinel",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// String returns the snake_case name used in profiles and error messages.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// NeedsRef reports whether constraints of this kind require a reference value.
func (k Kind) NeedsRef() bool {
	switch k {
	case MaxLength, MinLength, MaxLengthOrEmpty, MinValue, MaxValue, NotNegative, MaxDecimalPlaces:
		return true
	default:
		return false
	}
}

// ParseKind returns the kind with the given name. Matching ignores case and
// surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindsByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
