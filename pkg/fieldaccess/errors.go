package fieldaccess

import "errors"

var (
	// ErrNotStructPointer is returned when Struct is instantiated with a type
	// that is not a pointer to a struct.
	ErrNotStructPointer = errors.New("record type must be a pointer to struct")

	// ErrUnknownField is returned when a field name is not in the accessor's table.
	ErrUnknownField = errors.New("unknown field")

	// ErrTypeMismatch is returned when a value cannot be assigned to a field.
	ErrTypeMismatch = errors.New("value type does not match field type")

	// ErrDuplicateField is returned when two fields resolve to the same name.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrNilRecord is returned when reading or writing through a nil record.
	ErrNilRecord = errors.New("nil record")
)
