package analyze

import (
	"go/types"
	"reflect"

	"record-mapper/internal/common"
	"record-mapper/schema"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "example.com/shop"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindAlias              // named type wrapping a basic type
	TypeKindExternal           // opaque scalar (time.Time, time.Duration, text unmarshalers)
	TypeKindInterface          // empty interface
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	case TypeKindInterface:
		return "interface"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For alias types, the underlying type
	ElemType   *TypeInfo   // For pointers, slices and arrays, the element type
	Len        int64       // For arrays, the length
	Fields     []FieldInfo // For structs, the list of fields
	GoType     types.Type  // The original go/types.Type
	Stringer   bool        // Named type with a String() string method
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// IsBytes reports a []byte, which maps to a scalar.
func (t *TypeInfo) IsBytes() bool {
	if t.Kind != TypeKindSlice || t.ElemType == nil {
		return false
	}

	basic, ok := t.ElemType.GoType.Underlying().(*types.Basic)
	return ok && basic.Kind() == types.Uint8
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// DictTag parses the dict tag the same way the schema builder does.
func (f *FieldInfo) DictTag() schema.FieldTag {
	return schema.ParseFieldTag(reflect.StructField{Name: f.Name, Tag: f.Tag, Anonymous: f.Embedded})
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	return f.Tag.Get(key) != ""
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Structs lists the struct types of a package in name order.
func (g *TypeGraph) Structs(pkgPath string) []*TypeInfo {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	var out []*TypeInfo
	for _, id := range pkg.Types {
		if t := g.Types[id]; t != nil && t.Kind == TypeKindStruct {
			out = append(out, t)
		}
	}

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package, in name order
}
