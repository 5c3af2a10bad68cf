package schema

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=TypeKind -trimprefix=Kind -output=typekind_string.go

// TypeKind is the shape of a field, resolved once when the schema is built.
type TypeKind int

const (
	_ TypeKind = iota // skip zero value, use it as a default (invalid) value for TypeKind

	KindScalar
	KindEnum
	KindNestedRecord
	KindArray
	KindList
	KindOptionalScalar
	KindOptionalNestedRecord
)

// IsCollection reports whether values of the kind are arrays or lists.
func (k TypeKind) IsCollection() bool {
	return k == KindArray || k == KindList
}

// IsRecord reports whether values of the kind are nested records.
func (k TypeKind) IsRecord() bool {
	return k == KindNestedRecord || k == KindOptionalNestedRecord
}

// Flavor selects the coercion rules of a backend.
type Flavor int

const (
	// FlavorGeneric accepts general purpose conversions, including text parsing.
	FlavorGeneric Flavor = iota
	// FlavorGraph follows the graph database driver: typed accessors and
	// temporal wire shapes, no text to number parsing.
	FlavorGraph
)

var flavorNames = map[string]Flavor{
	"generic": FlavorGeneric,
	"graph":   FlavorGraph,
	"neo4j":   FlavorGraph,
}

func (f Flavor) String() string {
	switch f {
	case FlavorGeneric:
		return "generic"
	case FlavorGraph:
		return "graph"
	default:
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
}

// ParseFlavor accepts "generic", "graph" and "neo4j" in any letter case.
func ParseFlavor(s string) (Flavor, error) {
	f, ok := flavorNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown flavor %q", s)
	}

	return f, nil
}

func (f Flavor) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Flavor) UnmarshalText(text []byte) error {
	parsed, err := ParseFlavor(string(text))
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}
