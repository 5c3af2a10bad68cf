package analyze

import (
	"fmt"
	"strings"

	"record-mapper/internal/common"
)

// TypePath builds a readable path string for a field.
// Examples:
//   - "Order" for a simple struct
//   - "Order.Customer" for a nested field
//   - "Order.Lines[]" for a slice field
//   - "Order.Lines[].Sku" for a field within slice elements
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Slice appends a slice indicator "[]" to the path.
func (p *TypePath) Slice() *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{"[]"}}
	}
	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] = newParts[len(newParts)-1] + "[]"
	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeStringer provides methods for creating readable type strings.
type TypeStringer struct{}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// TypeString returns a human-readable string representation of a TypeInfo.
// Types of other packages are qualified by their package name.
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindPointer:
		return "*" + s.TypeString(t.ElemType)

	case TypeKindSlice:
		return "[]" + s.TypeString(t.ElemType)

	case TypeKindArray:
		return fmt.Sprintf("[%d]%s", t.Len, s.TypeString(t.ElemType))

	case TypeKindInterface:
		if !t.IsNamed() {
			return "any"
		}
	}

	if t.IsNamed() {
		if alias := common.PkgAlias(t.ID.PkgPath); alias != "" {
			return alias + "." + t.ID.Name
		}
		return t.ID.Name
	}

	return t.GoType.String()
}
