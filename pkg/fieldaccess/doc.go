// Package fieldaccess enumerates, reads and writes the named fields of a
// record.
//
// Two accessors are provided. Struct builds its field table once from a
// pointer-to-struct type using reflection:
//
//	acc, err := fieldaccess.Struct[*User]()
//	fields := acc.Fields(u)            // exported fields with their types
//	v, _ := acc.Get(u, "Email")
//	_ = acc.Set(u, "Email", "a@b.io")
//
// Field names default to the Go field name. The `sanitize` struct tag renames
// a field (`sanitize:"email"`) or hides it (`sanitize:"-"`). Fields promoted
// from embedded structs are visible under their own names.
//
// Registry is an explicit, compile-time typed table for records that should
// not be inspected through reflection, or that are not structs at all:
//
//	reg, err := fieldaccess.NewRegistry(
//	    fieldaccess.Bind("Email",
//	        func(u *User) string { return u.Email },
//	        func(u *User, v string) { u.Email = v },
//	    ),
//	)
//
// Both accessors are immutable after construction and safe for concurrent use.
// Synchronising access to a single record is the caller's job.
package fieldaccess
