package schema

import (
	"reflect"

	"record-mapper/convention"
	"record-mapper/primitive"
)

// FieldDescriptor describes one field of a record.
type FieldDescriptor struct {
	Name     string       // Go field name
	Alias    string       // explicit container key, empty if none
	Kind     TypeKind     // shape of the field
	Type     reflect.Type // declared Go type
	Index    []int        // reflect field index path, embedded structs included
	Nullable bool         // may be absent or nil
	Required bool         // must be present when decoding

	// Default is the default value, already coerced to Type, and
	// DefaultExpr the expression it was evaluated from.
	Default     reflect.Value
	DefaultExpr string

	// ConstructorParam marks fields passed to the constructor, at Position.
	ConstructorParam bool
	Position         int

	// Elem describes the value behind a pointer or the element of a collection.
	Elem Element

	// WriteKey is the key the field is encoded under; ReadKeys are tried in
	// order when decoding.
	WriteKey string
	ReadKeys []string
}

// HasDefault reports whether a default value is configured.
func (f *FieldDescriptor) HasDefault() bool {
	return f.Default.IsValid()
}

// Element describes a single value of a field: the field itself for scalars,
// the pointee of optional fields and the element of collections.
type Element struct {
	Type    reflect.Type       // element type, pointer included
	Scalar  primitive.KindEnum // scalar kind, zero for records
	Enum    bool               // registered enumeration type
	Pointer bool               // element is a pointer
	Length  int                // array length, zero otherwise

	// Nested is the schema of record elements.
	Nested *Schema
}

// Value is the element type with the pointer removed.
func (e Element) Value() reflect.Type {
	if e.Pointer {
		return e.Type.Elem()
	}
	return e.Type
}

// IsRecord reports whether elements are nested records.
func (e Element) IsRecord() bool {
	return e.Nested != nil || (e.Scalar == 0 && !e.Enum && e.Type != nil && e.Value().Kind() == reflect.Struct)
}

// Schema describes how a record type is encoded and decoded.
// It is immutable once built and safe for concurrent use.
type Schema struct {
	Type        reflect.Type
	Flavor      Flavor
	Convention  convention.Convention
	Fields      []*FieldDescriptor
	Constructor *Constructor // nil means the record starts as its zero value

	byName map[string]*FieldDescriptor
}

// Name is the type name the schema was built for.
func (s *Schema) Name() string {
	return s.Type.String()
}

// Field finds a field by its Go name.
func (s *Schema) Field(name string) (*FieldDescriptor, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// Categories are the scalar conversions allowed by the schema flavor.
func (s *Schema) Categories() primitive.CategoryEnum {
	if s.Flavor == FlavorGraph {
		return primitive.GraphCategories
	}
	return primitive.GenericCategories
}
