package sanitizer

import (
	"reflect"

	"github.com/dmitrymomot/structsan/pkg/dbnull"
)

// sanitizeNullable applies c to a value of a pointer, slice, map or interface type t.
func sanitizeNullable(v any, t reflect.Type, c Constraint) any {
	switch c.Kind() {
	case NotNull:
		if isAbsent(v) {
			return defaultInstance(t)
		}
	case NoDBSentinel:
		if dbnull.Is(v) {
			return nil
		}
	}
	return v
}

// isAbsent reports whether v is nil, including typed nils.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// defaultInstance returns an empty, non-nil value of t. Interfaces have no
// default instance and yield nil.
func defaultInstance(t reflect.Type) any {
	switch t.Kind() {
	case reflect.Pointer:
		return reflect.New(t.Elem()).Interface()
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0).Interface()
	case reflect.Map:
		return reflect.MakeMap(t).Interface()
	default:
		return nil
	}
}
