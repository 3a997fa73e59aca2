package fieldaccess

import "reflect"

// Field describes one named field of a record.
type Field struct {
	Name string
	Type reflect.Type
}
