// Package dbnull recognises "database null" sentinel values.
//
// Database drivers often represent a missing column value with a marker that
// is distinct from a Go nil: sql.NullString{Valid: false}, pgtype.Text{Valid:
// false}, bson.Null{} and so on. Is reports whether a value is one of those
// markers so that callers can replace it with a real nil.
//
// Recognised sentinels:
//
//   - Value, the package's own marker;
//   - bson.Null and bson.Undefined from the MongoDB driver;
//   - any database/sql/driver.Valuer whose Value method returns (nil, nil),
//     which covers the database/sql Null* types and every pgx pgtype value
//     with Valid set to false.
//
// Pointers to any of the above are followed.
package dbnull

import (
	"database/sql/driver"
	"reflect"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Sentinel is the type of Value.
type Sentinel struct{}

// Value is a database-null marker for sources that have no marker of their own.
var Value = Sentinel{}

// Is reports whether v is a database-null sentinel.
// A plain nil is absence, not a sentinel, and returns false.
func Is(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	if !rv.CanInterface() {
		return false
	}

	switch x := rv.Interface().(type) {
	case Sentinel, bson.Null, bson.Undefined:
		return true
	case driver.Valuer:
		val, err := x.Value()
		return err == nil && val == nil
	}

	return false
}
