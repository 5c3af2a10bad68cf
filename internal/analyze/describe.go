package analyze

import (
	"fmt"
	"go/types"
	"slices"

	"record-mapper/convention"
	"record-mapper/internal/config"
	"record-mapper/internal/diagnostic"
	"record-mapper/internal/keys"
	"record-mapper/internal/match"
	"record-mapper/schema"
)

// Field is one row of a record description.
type Field struct {
	Path     string // e.g. "Order.Lines[].Sku"
	Name     string
	GoType   string
	Kind     schema.TypeKind
	Nullable bool
	Required bool
	Default  string
	WriteKey string
	ReadKeys []string
}

// Record describes a record type and the records nested in it.
type Record struct {
	ID          TypeID
	Convention  convention.Convention
	Fields      []Field
	Diagnostics diagnostic.Diagnostics
}

// Overrides are the configured settings of the described record. Nested
// records only inherit the convention.
type Overrides struct {
	Convention convention.Convention
	Fields     map[string]config.Field
	Ignore     []string
}

// Describe lists the fields of t, followed by those of its nested records.
func Describe(t *TypeInfo, o Overrides) *Record {
	r := &Record{ID: t.ID, Convention: o.Convention}

	d := describer{
		record:   r,
		stringer: NewTypeStringer(),
		visiting: make(map[*TypeInfo]bool),
	}
	d.describe(t, NewTypePath(t.ID.Name), o)

	return r
}

type describer struct {
	record   *Record
	stringer *TypeStringer
	visiting map[*TypeInfo]bool
}

type nestedRecord struct {
	t    *TypeInfo
	path *TypePath
}

func (d *describer) describe(t *TypeInfo, path *TypePath, o Overrides) {
	d.visiting[t] = true
	defer delete(d.visiting, t)

	var (
		diags   = &d.record.Diagnostics
		typ     = t.ID.String()
		fields  = recordFields(t)
		names   = make([]string, 0, len(fields))
		written = make(map[string]string)
		nested  []nestedRecord
	)

	for _, f := range fields {
		names = append(names, f.Name)

		tag := f.DictTag()
		if tag.Skip || slices.Contains(o.Ignore, f.Name) {
			continue
		}

		fieldPath := path.Field(f.Name)
		for _, unknown := range tag.Unknown {
			diags.AddError(diagnostic.CodeBadTag, fmt.Sprintf("unknown tag option %q", unknown), typ, fieldPath.String())
		}

		kind, elem, ok := Classify(f.Type)
		if !ok {
			diags.AddError(diagnostic.CodeUnsupportedType,
				fmt.Sprintf("%s cannot be mapped", d.stringer.TypeString(f.Type)), typ, fieldPath.String())
			continue
		}

		conf := o.Fields[f.Name]
		alias := tag.Alias
		if conf.Alias != "" {
			alias = conf.Alias
		}
		defaultExpr := tag.DefaultExpr
		if conf.Default != "" {
			defaultExpr = conf.Default
		}

		row := Field{
			Path:     fieldPath.String(),
			Name:     f.Name,
			GoType:   d.stringer.TypeString(f.Type),
			Kind:     kind,
			Nullable: kind == schema.KindOptionalScalar || kind == schema.KindOptionalNestedRecord || tag.Optional || conf.Optional,
			Default:  defaultExpr,
			WriteKey: keys.WriteKey(f.Name, alias, o.Convention),
			ReadKeys: keys.Ladder(f.Name, alias),
		}
		row.Required = !row.Nullable && row.Default == "" && !tag.HasDefault && !kind.IsCollection()

		if row.WriteKey == "" {
			diags.AddError(diagnostic.CodeEmptyName, "field is written under an empty key", typ, row.Path)
		}
		if other, dup := written[row.WriteKey]; dup {
			diags.AddError(diagnostic.CodeDuplicateKey,
				fmt.Sprintf("key %q is also written by field %s", row.WriteKey, other), typ, row.Path)
		} else {
			written[row.WriteKey] = f.Name
		}

		d.record.Fields = append(d.record.Fields, row)

		if elem != nil && elem.Kind == TypeKindStruct && !d.visiting[elem] {
			nestedPath := fieldPath
			if kind.IsCollection() {
				nestedPath = fieldPath.Slice()
			}
			nested = append(nested, nestedRecord{t: elem, path: nestedPath})
		}
	}

	for _, name := range configured(o) {
		if !slices.Contains(names, name) {
			diags.AddError(diagnostic.CodeUnknownField, fmt.Sprintf("configuration names unknown field %q", name),
				typ, name, match.Suggest(name, names, 3)...)
		}
	}

	for _, n := range nested {
		d.describe(n.t, n.path, Overrides{Convention: o.Convention})
	}
}

func configured(o Overrides) []string {
	names := append([]string{}, o.Ignore...)
	for name := range o.Fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// recordFields flattens untagged embedded structs, their fields first.
// Declared fields shadow promoted ones of the same name.
func recordFields(t *TypeInfo) []FieldInfo {
	declared := make(map[string]bool)
	for _, f := range t.Fields {
		if !f.Embedded {
			declared[f.Name] = true
		}
	}

	var base, own []FieldInfo
	for _, f := range t.Fields {
		if f.Embedded && f.Type.Kind == TypeKindStruct && !f.HasTag(schema.TagName) && !f.HasTag("json") {
			for _, inner := range recordFields(f.Type) {
				if !declared[inner.Name] {
					base = append(base, inner)
				}
			}
			continue
		}

		if f.Exported {
			own = append(own, f)
		}
	}

	return append(base, own...)
}

type shape int

const (
	shapeScalar shape = iota + 1
	shapeEnum
	shapeRecord
)

// element classifies a single value, optionally behind one pointer. The
// returned type has the pointer removed.
func element(t *TypeInfo) (shape, *TypeInfo, bool, bool) {
	pointer := false
	if t.Kind == TypeKindPointer {
		pointer, t = true, t.ElemType
	}

	switch t.Kind {
	case TypeKindBasic:
		if isScalarBasic(t.GoType) {
			return shapeScalar, t, pointer, true
		}

	case TypeKindExternal, TypeKindInterface:
		return shapeScalar, t, pointer, true

	case TypeKindAlias:
		switch {
		case t.Underlying.Kind == TypeKindBasic && isScalarBasic(t.Underlying.GoType):
			if t.Stringer {
				return shapeEnum, t, pointer, true
			}
			return shapeScalar, t, pointer, true
		case t.Underlying.IsBytes():
			return shapeScalar, t, pointer, true
		}

	case TypeKindSlice:
		if t.IsBytes() {
			return shapeScalar, t, pointer, true
		}

	case TypeKindStruct:
		return shapeRecord, t, pointer, true
	}

	return 0, nil, false, false
}

func isScalarBasic(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok || basic.Kind() == types.Uintptr {
		return false
	}

	return basic.Info()&(types.IsInteger|types.IsFloat|types.IsString|types.IsBoolean) != 0 &&
		basic.Info()&types.IsUntyped == 0
}

// Classify maps a field type to the shape the schema builder resolves.
// For records and collections of records the record type is returned.
func Classify(t *TypeInfo) (schema.TypeKind, *TypeInfo, bool) {
	if s, base, pointer, ok := element(t); ok {
		switch {
		case s == shapeRecord && pointer:
			return schema.KindOptionalNestedRecord, base, true
		case s == shapeRecord:
			return schema.KindNestedRecord, base, true
		case pointer:
			return schema.KindOptionalScalar, nil, true
		case s == shapeEnum:
			return schema.KindEnum, nil, true
		default:
			return schema.KindScalar, nil, true
		}
	}

	u := t
	if t.Kind == TypeKindAlias {
		u = t.Underlying
	}

	var kind schema.TypeKind
	switch u.Kind {
	case TypeKindSlice:
		kind = schema.KindList
	case TypeKindArray:
		kind = schema.KindArray
	default:
		return 0, nil, false
	}

	s, base, _, ok := element(u.ElemType)
	if !ok {
		return 0, nil, false
	}
	if s != shapeRecord {
		base = nil
	}

	return kind, base, true
}
