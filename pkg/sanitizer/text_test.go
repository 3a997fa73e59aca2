package sanitizer_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/structsan/pkg/sanitizer"
)

type textRecord struct {
	Value *string
}

type plainRecord struct {
	Value string
}

func str(s string) *string { return &s }

func TestSanitize_Text(t *testing.T) {
	t.Parallel()

	c := sanitizer.NewConstraint
	ref := sanitizer.WithRef

	tests := []struct {
		name       string
		input      *string
		constraint sanitizer.Constraint
		expected   *string
	}{
		{name: "not null on null", input: nil, constraint: c(sanitizer.NotNull), expected: str("")},
		{name: "not null trims", input: str("  John  "), constraint: c(sanitizer.NotNull), expected: str("John")},

		{name: "max length keeps null", input: nil, constraint: ref(sanitizer.MaxLength, 4), expected: nil},
		{name: "max length truncates", input: str("abcdefghilmnopqrstuvz"), constraint: ref(sanitizer.MaxLength, 4), expected: str("abcd")},
		{name: "max length trims first", input: str("   ab   "), constraint: ref(sanitizer.MaxLength, 4), expected: str("ab")},
		{name: "max length zero", input: str("abc"), constraint: ref(sanitizer.MaxLength, 0), expected: str("")},

		{name: "min length keeps null", input: nil, constraint: ref(sanitizer.MinLength, 5), expected: nil},
		{name: "min length pads", input: str(" ab "), constraint: ref(sanitizer.MinLength, 5), expected: str("ab   ")},
		{name: "min length keeps long", input: str("abcdef"), constraint: ref(sanitizer.MinLength, 3), expected: str("abcdef")},

		{name: "max length or empty on null", input: nil, constraint: ref(sanitizer.MaxLengthOrEmpty, 3), expected: str("")},
		{name: "max length or empty truncates", input: str("abcdef"), constraint: ref(sanitizer.MaxLengthOrEmpty, 3), expected: str("abc")},

		{name: "lowercase on null", input: nil, constraint: c(sanitizer.Lowercase), expected: str("")},
		{name: "lowercase", input: str(" HeLLo World "), constraint: c(sanitizer.Lowercase), expected: str("hello world")},
		{name: "uppercase", input: str(" abc "), constraint: c(sanitizer.Uppercase), expected: str("ABC")},

		{name: "no whitespace on null", input: nil, constraint: c(sanitizer.NoWhiteSpace), expected: str("")},
		{name: "no whitespace strips inner", input: str("fjd auwc s 111"), constraint: c(sanitizer.NoWhiteSpace), expected: str("fjdauwcs111")},

		{name: "no special characters", input: str("%test&''^@"), constraint: c(sanitizer.NoSpecialCharacters), expected: str("test")},
		{name: "no special characters keeps _ and .", input: str(" a-b_c.d! "), constraint: c(sanitizer.NoSpecialCharacters), expected: str("ab_c.d")},

		{name: "only digits", input: str("tel: 555-01 "), constraint: c(sanitizer.OnlyDigits), expected: str("55501")},
		{name: "only digits on null", input: nil, constraint: c(sanitizer.OnlyDigits), expected: str("")},

		{name: "valid datetime keeps", input: str(" 12/25/2021 "), constraint: c(sanitizer.ValidDateTime), expected: str("12/25/2021")},
		{name: "valid datetime empties", input: str("yesterday"), constraint: c(sanitizer.ValidDateTime), expected: str("")},
		{name: "valid datetime on null", input: nil, constraint: c(sanitizer.ValidDateTime), expected: str("")},

		{name: "force datetime keeps", input: str("2021-12-25"), constraint: c(sanitizer.ForceValidDateTime), expected: str("2021-12-25")},
		{name: "force datetime replaces", input: str("yesterday"), constraint: c(sanitizer.ForceValidDateTime), expected: str(sanitizer.MinDateTime)},
		{name: "force datetime on null", input: nil, constraint: c(sanitizer.ForceValidDateTime), expected: str(sanitizer.MinDateTime)},

		{name: "single char", input: str("  xyz"), constraint: c(sanitizer.SingleChar), expected: str("x")},
		{name: "single char on blank", input: str("   "), constraint: c(sanitizer.SingleChar), expected: str("")},
		{name: "single char on null", input: nil, constraint: c(sanitizer.SingleChar), expected: str("")},

		{name: "guid keeps valid", input: str(" 6ba7b810-9dad-11d1-80b4-00c04fd430c8 "), constraint: c(sanitizer.ValidGUID), expected: str("6ba7b810-9dad-11d1-80b4-00c04fd430c8")},
		{name: "guid on null", input: nil, constraint: c(sanitizer.ValidGUID), expected: str("")},
		{name: "guid on blank", input: str("   "), constraint: c(sanitizer.ValidGUID), expected: str("")},

		{name: "email keeps valid", input: str(" User@Example.com "), constraint: c(sanitizer.ValidEmail), expected: str("User@Example.com")},
		{name: "email repairs invalid", input: str("user@example"), constraint: c(sanitizer.ValidEmail), expected: str("")},
		{name: "email on null", input: nil, constraint: c(sanitizer.ValidEmail), expected: str("")},
		{name: "email on blank", input: str(" "), constraint: c(sanitizer.ValidEmail), expected: str("")},
		{name: "email with non breaking space", input: str("a\u00a0b@c.d"), constraint: c(sanitizer.ValidEmail), expected: str("")},

		{name: "numeric kind only trims", input: str(" 42 "), constraint: ref(sanitizer.MaxValue, 1), expected: str("42")},
		{name: "numeric kind keeps null", input: nil, constraint: ref(sanitizer.MaxValue, 1), expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := sanitizer.New[*textRecord](sanitizer.Set{"Value": tt.constraint})
			require.NoError(t, err)

			rec := &textRecord{Value: tt.input}
			require.NoError(t, s.Sanitize(rec))
			assert.Equal(t, tt.expected, rec.Value)

			// A second pass must not change anything.
			first := rec.Value
			require.NoError(t, s.Sanitize(rec))
			assert.Equal(t, first, rec.Value)

			// string fields behave like non-null *string fields.
			if tt.input != nil && tt.expected != nil {
				plain := &plainRecord{Value: *tt.input}
				ps := sanitizer.MustNew[*plainRecord](sanitizer.Set{"Value": tt.constraint})
				require.NoError(t, ps.Sanitize(plain))
				assert.Equal(t, *tt.expected, plain.Value)
			}
		})
	}
}

func TestSanitize_TextKeepsUnchangedPointer(t *testing.T) {
	t.Parallel()

	s := sanitizer.MustNew[*textRecord](sanitizer.Set{"Value": sanitizer.NewConstraint(sanitizer.NotNull)})

	v := str("clean")
	rec := &textRecord{Value: v}
	require.NoError(t, s.Sanitize(rec))
	assert.Same(t, v, rec.Value)

	dirty := str(" dirty ")
	rec.Value = dirty
	require.NoError(t, s.Sanitize(rec))
	assert.NotSame(t, dirty, rec.Value)
	assert.Equal(t, " dirty ", *dirty, "input string must not be modified through the pointer")
}

func TestSanitize_NamedStringType(t *testing.T) {
	t.Parallel()

	type code string
	type record struct {
		Code code
	}

	s := sanitizer.MustNew[*record](sanitizer.Set{"Code": sanitizer.NewConstraint(sanitizer.Uppercase)})
	rec := &record{Code: " ab-1 "}
	require.NoError(t, s.Sanitize(rec))
	assert.Equal(t, code("AB-1"), rec.Code)
}

func TestSanitize_ValidGUID(t *testing.T) {
	t.Parallel()

	const malformed = "this-is-not-a-guid"

	t.Run("relaxed regenerates", func(t *testing.T) {
		t.Parallel()

		s := sanitizer.MustNew[*plainRecord](sanitizer.Set{"Value": sanitizer.NewConstraint(sanitizer.ValidGUID)})
		rec := &plainRecord{Value: malformed}
		require.NoError(t, s.Sanitize(rec))

		assert.NotEqual(t, malformed, rec.Value)
		_, err := uuid.Parse(rec.Value)
		assert.NoError(t, err)
	})

	t.Run("strict rejects", func(t *testing.T) {
		t.Parallel()

		s := sanitizer.MustNew[*plainRecord](
			sanitizer.Set{"Value": sanitizer.NewConstraint(sanitizer.ValidGUID)},
			sanitizer.WithSeverity(sanitizer.Strict),
		)
		assert.Equal(t, sanitizer.Strict, s.Severity())

		rec := &plainRecord{Value: malformed}
		err := s.Sanitize(rec)
		require.ErrorIs(t, err, sanitizer.ErrInvalidValue)

		var verr *sanitizer.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Value", verr.Field)
		assert.Equal(t, sanitizer.ValidGUID, verr.Kind)
		assert.Equal(t, malformed, verr.Value)
		assert.Contains(t, err.Error(), malformed)

		assert.Equal(t, malformed, rec.Value, "strict severity leaves the field untouched")
	})

	t.Run("strict accepts valid", func(t *testing.T) {
		t.Parallel()

		id := uuid.NewString()
		s := sanitizer.MustNew[*plainRecord](
			sanitizer.Set{"Value": sanitizer.NewConstraint(sanitizer.ValidGUID)},
			sanitizer.WithSeverity(sanitizer.Strict),
		)
		rec := &plainRecord{Value: " " + id + " "}
		require.NoError(t, s.Sanitize(rec))
		assert.Equal(t, id, rec.Value)
	})
}

func TestSanitize_ValidEmailStrict(t *testing.T) {
	t.Parallel()

	s := sanitizer.MustNew[*plainRecord](
		sanitizer.Set{"Value": sanitizer.NewConstraint(sanitizer.ValidEmail)},
		sanitizer.WithSeverity(sanitizer.Strict),
	)

	rec := &plainRecord{Value: " not an email "}
	err := s.Sanitize(rec)

	var verr *sanitizer.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, sanitizer.ValidEmail, verr.Kind)
	assert.Equal(t, " not an email ", verr.Value)
	assert.Equal(t, " not an email ", rec.Value)

	rec.Value = "a@b.co"
	assert.NoError(t, s.Sanitize(rec))
}

func TestSanitize_StrictNullIsStable(t *testing.T) {
	t.Parallel()

	for _, kind := range []sanitizer.Kind{sanitizer.ValidGUID, sanitizer.ValidEmail} {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			s := sanitizer.MustNew[*textRecord](
				sanitizer.Set{"Value": sanitizer.NewConstraint(kind)},
				sanitizer.WithSeverity(sanitizer.Strict),
			)

			rec := &textRecord{}
			require.NoError(t, s.Sanitize(rec))
			assert.Equal(t, str(""), rec.Value)

			require.NoError(t, s.Sanitize(rec))
			assert.Equal(t, str(""), rec.Value)
		})
	}
}

func TestSanitize_ValidEmailRejectsUnicodeSpace(t *testing.T) {
	t.Parallel()

	s := sanitizer.MustNew[*plainRecord](
		sanitizer.Set{"Value": sanitizer.NewConstraint(sanitizer.ValidEmail)},
		sanitizer.WithSeverity(sanitizer.Strict),
	)

	for _, addr := range []string{"a\u00a0b@c.d", "a@b\u2003c.d", "a\vb@c.d", "a@b.c\u0085d"} {
		rec := &plainRecord{Value: addr}
		err := s.Sanitize(rec)
		assert.ErrorIs(t, err, sanitizer.ErrInvalidValue, "%q", addr)
		assert.Equal(t, addr, rec.Value)
	}
}
