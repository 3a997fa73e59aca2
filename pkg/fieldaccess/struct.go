package fieldaccess

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// TagName is the struct tag consulted for field names.
const TagName = "sanitize"

// StructAccessor reads and writes exported struct fields through reflection.
type StructAccessor[T any] struct {
	fields []Field
	index  map[string][]int
}

// Struct builds an accessor for T, which must be a pointer to a struct type.
func Struct[T any]() (*StructAccessor[T], error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Pointer || rt.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotStructPointer, rt)
	}

	acc := &StructAccessor[T]{index: make(map[string][]int)}
	for _, sf := range reflect.VisibleFields(rt.Elem()) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}

		name, skip := parseFieldTag(sf)
		if skip {
			continue
		}
		if _, ok := acc.index[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, name)
		}

		acc.index[name] = sf.Index
		acc.fields = append(acc.fields, Field{Name: name, Type: sf.Type})
	}

	return acc, nil
}

// parseFieldTag returns the field's name and whether it is hidden.
func parseFieldTag(sf reflect.StructField) (name string, skip bool) {
	tag := sf.Tag.Get(TagName)
	if tag == "" {
		return sf.Name, false
	}
	if tag == "-" {
		return "", true
	}

	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		return sf.Name, false
	}
	return name, false
}

// Fields returns the accessible fields in declaration order.
// The record is not inspected: every value of T has the same fields.
func (a *StructAccessor[T]) Fields(T) []Field {
	return slices.Clone(a.fields)
}

// Get returns the current value of the named field.
func (a *StructAccessor[T]) Get(record T, name string) (any, error) {
	fv, err := a.field(record, name)
	if err != nil {
		return nil, err
	}
	return fv.Interface(), nil
}

// Set assigns value to the named field. A nil value resets the field to the
// zero value of its type.
func (a *StructAccessor[T]) Set(record T, name string, value any) error {
	fv, err := a.field(record, name)
	if err != nil {
		return err
	}

	if !fv.CanSet() {
		return fmt.Errorf("%w: field %s is not settable", ErrTypeMismatch, name)
	}

	if value == nil {
		fv.SetZero()
		return nil
	}

	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(fv.Type()) {
		return fmt.Errorf("%w: field %s: cannot assign %s to %s", ErrTypeMismatch, name, rv.Type(), fv.Type())
	}
	fv.Set(rv)
	return nil
}

func (a *StructAccessor[T]) field(record T, name string) (reflect.Value, error) {
	idx, ok := a.index[name]
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	rv := reflect.ValueOf(record)
	if !rv.IsValid() || rv.IsNil() {
		return reflect.Value{}, ErrNilRecord
	}

	// FieldByIndexErr refuses to step through a nil embedded pointer.
	fv, err := rv.Elem().FieldByIndexErr(idx)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("field %s: %w", name, err)
	}
	return fv, nil
}
