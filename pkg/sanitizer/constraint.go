package sanitizer

import (
	"fmt"
	"maps"
)

// Constraint is a rule bound to one field: a kind and an optional integer
// reference value. Constraints are immutable values.
//
// A missing reference value is not detected here: it surfaces as a
// *ConfigurationError when the constraint is applied.
type Constraint struct {
	kind   Kind
	ref    int
	hasRef bool
}

// NewConstraint returns a constraint without a reference value.
func NewConstraint(kind Kind) Constraint {
	return Constraint{kind: kind}
}

// WithRef returns a constraint with reference value ref.
func WithRef(kind Kind, ref int) Constraint {
	return Constraint{kind: kind, ref: ref, hasRef: true}
}

func (c Constraint) Kind() Kind { return c.kind }

// HasRef reports whether a reference value was given.
func (c Constraint) HasRef() bool { return c.hasRef }

// Ref returns the reference value, or a *ConfigurationError wrapping
// ErrMissingRef if there is none.
func (c Constraint) Ref() (int, error) {
	if !c.hasRef {
		return 0, &ConfigurationError{Kind: c.kind, Err: ErrMissingRef}
	}
	return c.ref, nil
}

// nonNegativeRef is Ref for kinds that count characters or digits.
func (c Constraint) nonNegativeRef() (int, error) {
	n, err := c.Ref()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &ConfigurationError{Kind: c.kind, Ref: n, Err: ErrInvalidRef}
	}
	return n, nil
}

func (c Constraint) String() string {
	if c.hasRef {
		return fmt.Sprintf("%s(%d)", c.kind, c.ref)
	}
	return c.kind.String()
}

// Set maps field names to constraints.
// Fields without an entry are left untouched.
type Set map[string]Constraint

// Clone returns a copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return Set{}
	}
	return maps.Clone(s)
}
