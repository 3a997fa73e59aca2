package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Anything outside the allowed identifier-like alphabet.
	specialCharRegex = regexp.MustCompile(`[^a-zA-Z0-9_.]+`)

	// local@domain.tld with no '@' or whitespace in any part. The whitespace
	// set matches unicode.IsSpace: ASCII space, separators and NEL.
	emailRegex = regexp.MustCompile(`(?i)^[^@[:space:]\pZ\x{85}]+@[^@[:space:]\pZ\x{85}]+\.[^@[:space:]\pZ\x{85}]+$`)
)
