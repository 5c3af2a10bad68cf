// Package analyze loads Go packages and describes their record types the
// way the schema package would, without compiling them in.
//
// It uses golang.org/x/tools/go/packages with go/types. The description
// lists every field with its shape, nullability, write key and read key
// ladder, and reports the problems the schema builder would reject.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/array/external)
//   - FieldInfo: describes field name, type, tags, and embedding
//   - Record: the field table of one record type
package analyze
