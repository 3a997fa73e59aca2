package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/structsan/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "applies transforms in sequence",
			input: "  HELLO WORLD  ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.ToLowerInvariant,
			},
			expected: "hello world",
		},
		{
			name:  "removes then pads",
			input: "  ab cd!  ",
			transforms: []func(string) string{
				sanitizer.RemoveSpecialChars,
				func(s string) string { return sanitizer.PadRight(s, 6) },
			},
			expected: "abcd  ",
		},
		{
			name:       "handles empty transforms slice",
			input:      "hello world",
			transforms: []func(string) string{},
			expected:   "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.Apply(tt.input, tt.transforms...)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("composed rule can be reused", func(t *testing.T) {
		t.Parallel()

		code := sanitizer.Compose(
			sanitizer.RemoveWhitespace,
			sanitizer.ToUpperInvariant,
			func(s string) string { return sanitizer.TruncateRunes(s, 6) },
		)

		assert.Equal(t, "AB12CD", code(" ab 12 cd 34 "))
		assert.Equal(t, "XY", code("x\ty"))
	})

	t.Run("compose with no transforms is identity", func(t *testing.T) {
		t.Parallel()

		identity := sanitizer.Compose[string]()
		assert.Equal(t, "test value", identity("test value"))
	})

	t.Run("compositions nest", func(t *testing.T) {
		t.Parallel()

		combined := sanitizer.Compose(
			sanitizer.Compose(sanitizer.Trim),
			sanitizer.Compose(sanitizer.ToLowerInvariant),
		)
		assert.Equal(t, "hello", combined("  HELLO  "))
	})

	t.Run("works for numbers", func(t *testing.T) {
		t.Parallel()

		money := sanitizer.Compose(
			func(v float64) float64 { return sanitizer.TruncateToDecimalPlaces(v, 2) },
		)
		assert.Equal(t, 10.99, money(10.999))
	})
}
