package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLowerInvariant lower-cases s without language-specific rules.
func ToLowerInvariant(s string) string {
	// Casers are stateful, so each call gets its own.
	return cases.Lower(language.Und).String(s)
}

// ToUpperInvariant upper-cases s without language-specific rules.
func ToUpperInvariant(s string) string {
	return cases.Upper(language.Und).String(s)
}

// TruncateRunes cuts s to at most maxLen runes.
func TruncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// PadRight appends spaces until s is minLen runes long.
func PadRight(s string, minLen int) string {
	n := utf8.RuneCountInString(s)
	if n >= minLen {
		return s
	}
	return s + strings.Repeat(" ", minLen-n)
}

// RemoveWhitespace removes every whitespace character, including inner ones.
func RemoveWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// RemoveSpecialChars keeps only ASCII letters, digits, underscores and periods.
func RemoveSpecialChars(s string) string {
	return specialCharRegex.ReplaceAllString(s, "")
}

// KeepDigits keeps only numeric digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// FirstChar returns the first rune of s, or "" for an empty string.
func FirstChar(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// IsEmail reports whether s looks like local@domain.tld.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}
