package sanitizer

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5/pgtype"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/structsan/pkg/fieldaccess"
	"github.com/dmitrymomot/structsan/pkg/logger"
)

// sanitize runs one pass over the fields of a non-nil record.
func (s *Sanitizer[T]) sanitize(record T) error {
	var errs Errors

	for _, f := range s.accessor.Fields(record) {
		c, ok := s.constraints[f.Name]
		if !ok {
			continue
		}

		cat := Classify(f.Type)
		if cat == Unsupported {
			continue
		}

		current, err := s.accessor.Get(record, f.Name)
		if err != nil {
			errs = append(errs, &AccessError{Field: f.Name, Err: err})
			continue
		}

		next, invalid, err := applyConstraint(cat, f.Type, current, c)
		if err != nil {
			errs = append(errs, s.fieldError(f.Name, c, err))
			continue
		}

		if invalid != nil {
			invalid.Field = f.Name
			if s.severity == Strict {
				s.log.Debug("rejected invalid value", logger.Field(f.Name), logger.Constraint(c.Kind()))
				errs = append(errs, invalid)
				continue
			}
			s.log.Debug("repaired invalid value", logger.Field(f.Name), logger.Constraint(c.Kind()))
		}

		if err := s.accessor.Set(record, f.Name, next); err != nil {
			errs = append(errs, &AccessError{Field: f.Name, Err: err})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// fieldError attaches the field name to a rule error.
func (s *Sanitizer[T]) fieldError(field string, c Constraint, err error) error {
	var cerr *ConfigurationError
	if errors.As(err, &cerr) {
		cerr.Field = field
		s.log.Warn("constraint misconfigured",
			logger.Field(field),
			logger.Constraint(c.Kind()),
			logger.Error(err),
		)
		return cerr
	}
	return &AccessError{Field: field, Err: err}
}

// applyConstraint converts the field value into the category's working type,
// runs the rule and converts the result back into t.
func applyConstraint(cat Category, t reflect.Type, current any, c Constraint) (any, *ValidationError, error) {
	switch cat {
	case Text:
		return applyText(t, current, c)
	case WholeNumber:
		v, err := applyWhole(t, current, c)
		return v, nil, err
	case FractionalNumber:
		v, err := applyFractional(t, current, c)
		return v, nil, err
	case Nullable:
		return sanitizeNullable(current, t, c), nil, nil
	default:
		return current, nil, nil
	}
}

func applyText(t reflect.Type, current any, c Constraint) (any, *ValidationError, error) {
	var in *string
	if rv := reflect.ValueOf(current); rv.IsValid() {
		switch {
		case rv.Kind() == reflect.String:
			in = text(rv.String())
		case rv.Kind() == reflect.Pointer && !rv.IsNil():
			in = text(rv.Elem().String())
		}
	}

	out, err := sanitizeText(in, c)
	if err != nil {
		return nil, nil, err
	}

	if t.Kind() == reflect.String {
		var s string
		if out.value != nil {
			s = *out.value
		}
		v := reflect.New(t).Elem()
		v.SetString(s)
		return v.Interface(), out.invalid, nil
	}

	switch {
	case out.value == nil:
		return nil, out.invalid, nil
	case in != nil && *in == *out.value:
		// Unchanged: keep the caller's pointer.
		return current, out.invalid, nil
	}
	p := reflect.New(t.Elem())
	p.Elem().SetString(*out.value)
	return p.Interface(), out.invalid, nil
}

func applyWhole(t reflect.Type, current any, c Constraint) (any, error) {
	rv := reflect.ValueOf(current)
	if !rv.IsValid() || !rv.CanInt() {
		return nil, fmt.Errorf("%w: got %T, want %s", fieldaccess.ErrTypeMismatch, current, t)
	}

	n, err := sanitizeWhole(rv.Int(), c)
	if err != nil {
		return nil, err
	}

	out := reflect.New(t).Elem()
	if out.OverflowInt(n) {
		return nil, &ConfigurationError{Kind: c.Kind(), Ref: int(n), Err: ErrInvalidRef}
	}
	out.SetInt(n)
	return out.Interface(), nil
}

func applyFractional(t reflect.Type, current any, c Constraint) (any, error) {
	switch v := current.(type) {
	case pgtype.Numeric:
		return sanitizeNumeric(v, c)
	case bson.Decimal128:
		return sanitizeDecimal128(v, c)
	}

	rv := reflect.ValueOf(current)
	if !rv.IsValid() || !rv.CanFloat() {
		return nil, fmt.Errorf("%w: got %T, want %s", fieldaccess.ErrTypeMismatch, current, t)
	}

	f, err := sanitizeFloat(rv.Float(), c)
	if err != nil {
		return nil, err
	}

	out := reflect.New(t).Elem()
	out.SetFloat(f)
	return out.Interface(), nil
}
