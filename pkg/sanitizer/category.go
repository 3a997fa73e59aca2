package sanitizer

import (
	"reflect"

	"github.com/jackc/pgx/v5/pgtype"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Category is the value shape a field's declared type is sanitized as.
type Category uint8

const (
	// Unsupported fields are never touched.
	Unsupported Category = iota
	// Text covers string kinds and pointers to them (nil is "null").
	Text
	// WholeNumber covers int, int16 and int32 kinds.
	WholeNumber
	// FractionalNumber covers float64 and the pgtype.Numeric and
	// bson.Decimal128 fixed-point types.
	FractionalNumber
	// Nullable covers pointers, slices, maps and interfaces.
	Nullable
)

func (c Category) String() string {
	switch c {
	case Text:
		return "text"
	case WholeNumber:
		return "whole_number"
	case FractionalNumber:
		return "fractional_number"
	case Nullable:
		return "nullable"
	default:
		return "unsupported"
	}
}

var (
	numericType    = reflect.TypeFor[pgtype.Numeric]()
	decimal128Type = reflect.TypeFor[bson.Decimal128]()
)

// Classify maps a declared field type to its category.
// int8, int64, unsigned integers, float32, bool and structs such as
// time.Time are Unsupported.
//
// int is WholeNumber even though it is 64 bits wide on 64-bit platforms, while
// int64 is not: int is the default Go integer type for counts and limits, and
// a replacement that does not fit an int field is reported as ErrInvalidRef.
func Classify(t reflect.Type) Category {
	if t == nil {
		return Unsupported
	}

	switch t {
	case numericType, decimal128Type:
		return FractionalNumber
	}

	switch t.Kind() {
	case reflect.String:
		return Text
	case reflect.Int, reflect.Int16, reflect.Int32:
		return WholeNumber
	case reflect.Float64:
		return FractionalNumber
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.String {
			return Text
		}
		return Nullable
	case reflect.Slice, reflect.Map, reflect.Interface:
		return Nullable
	default:
		return Unsupported
	}
}
