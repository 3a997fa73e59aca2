package sanitizer

import "time"

// MinDateTime is the text written by ForceValidDateTime when a value cannot be
// parsed: the zero time in the invariant "01/02/2006 15:04:05" layout.
const MinDateTime = "01/01/0001 00:00:00"

// dateTimeLayouts are tried in order. Slash dates are month first.
var dateTimeLayouts = []string{
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 3:04:05 PM",
	"1/2/2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
}

// IsDateTime reports whether s parses with one of the invariant layouts.
func IsDateTime(s string) bool {
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
