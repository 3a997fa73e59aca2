package fieldaccess

import (
	"fmt"
	"reflect"
	"slices"
)

// Binding is one entry of a Registry: a field name, its declared type and
// typed accessors. Create bindings with Bind.
type Binding[T any] struct {
	field Field
	get   func(T) any
	set   func(T, any) error
}

// Bind declares a field of type V on records of type T.
func Bind[T, V any](name string, get func(T) V, set func(T, V)) Binding[T] {
	return Binding[T]{
		field: Field{Name: name, Type: reflect.TypeFor[V]()},
		get:   func(r T) any { return get(r) },
		set: func(r T, value any) error {
			if value == nil {
				var zero V
				set(r, zero)
				return nil
			}
			v, ok := value.(V)
			if !ok {
				return fmt.Errorf("%w: field %s: cannot assign %T to %s", ErrTypeMismatch, name, value, reflect.TypeFor[V]())
			}
			set(r, v)
			return nil
		},
	}
}

// Registry is an explicit field table for records of type T.
type Registry[T any] struct {
	fields   []Field
	bindings map[string]Binding[T]
}

// NewRegistry builds a registry from bindings. Names must be unique.
func NewRegistry[T any](bindings ...Binding[T]) (*Registry[T], error) {
	r := &Registry[T]{
		fields:   make([]Field, 0, len(bindings)),
		bindings: make(map[string]Binding[T], len(bindings)),
	}
	for _, b := range bindings {
		if _, ok := r.bindings[b.field.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, b.field.Name)
		}
		r.bindings[b.field.Name] = b
		r.fields = append(r.fields, b.field)
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
// Intended for package-level registries declared next to their record type.
func MustRegistry[T any](bindings ...Binding[T]) *Registry[T] {
	r, err := NewRegistry(bindings...)
	if err != nil {
		panic(err)
	}
	return r
}

// Fields returns the registered fields in registration order.
func (r *Registry[T]) Fields(T) []Field {
	return slices.Clone(r.fields)
}

// Get returns the current value of the named field.
func (r *Registry[T]) Get(record T, name string) (any, error) {
	b, ok := r.bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return b.get(record), nil
}

// Set assigns value to the named field.
func (r *Registry[T]) Set(record T, name string, value any) error {
	b, ok := r.bindings[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return b.set(record, value)
}
