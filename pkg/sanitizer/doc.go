// Package sanitizer repairs the fields of loosely validated records in place
// according to declared constraints.
//
// A Set maps field names to constraints. Each field is classified by its
// declared type into a Category (text, whole number, fractional number or
// nullable) and the constraint's rule for that category is applied to the
// field's current value. Fields without a constraint, and fields of
// unsupported types, are never touched. Fields are independent of each other:
// there is no cross-field validation.
//
//	type Customer struct {
//	    ID       string
//	    Email    string
//	    Nickname *string
//	    Age      int32
//	    Balance  float64
//	    Tags     []string
//	}
//
//	s, err := sanitizer.New[*Customer](sanitizer.Set{
//	    "ID":       sanitizer.NewConstraint(sanitizer.ValidGUID),
//	    "Email":    sanitizer.NewConstraint(sanitizer.ValidEmail),
//	    "Nickname": sanitizer.WithRef(sanitizer.MaxLength, 16),
//	    "Age":      sanitizer.WithRef(sanitizer.NotNegative, 0),
//	    "Balance":  sanitizer.WithRef(sanitizer.MaxDecimalPlaces, 2),
//	    "Tags":     sanitizer.NewConstraint(sanitizer.NotNull),
//	})
//	if err != nil {
//	    return err
//	}
//	err = s.Sanitize(customer)
//
// # Severity
//
// ValidGUID and ValidEmail can find a value invalid. Under Relaxed severity
// (the default) the value is repaired: a new UUID, or an empty string. Under
// Strict severity the field is left as it was and a *ValidationError carrying
// the field name, the kind and the raw value is reported. All other kinds
// are deterministic transformations and never fail validation.
//
// # Errors
//
// Sanitize attempts every constrained field and returns the failures together
// as Errors. A constraint that needs a reference value but was created
// without one (or with an unusable one) yields a *ConfigurationError for that
// field only. Accessor failures are reported as *AccessError. SanitizeAll
// attempts every record and returns the first record's error.
//
// # Records
//
// By default records are pointers to structs and fields are found through
// reflection (see package fieldaccess for the `sanitize` tag). Other record
// shapes, or callers who prefer an explicit table, pass WithAccessor.
//
// # Profiles
//
// Constraint sets can be kept in YAML files, see Profile. FromEnv combines a
// profile with SANITIZER_* environment variables.
//
// # Helpers
//
// The string and numeric helpers used by the rules (Trim, TruncateRunes,
// PadRight, RemoveSpecialChars, TruncateToDecimalPlaces, ...) are exported and
// can be combined with Apply and Compose:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLowerInvariant)
//	clean("  Mixed CASE ") // "mixed case"
//
// A Sanitizer holds no mutable state and is safe for concurrent use; two
// goroutines must not sanitize the same record at the same time.
package sanitizer
