package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/expr-lang/expr"

	"record-mapper/convention"
	"record-mapper/enum"
	"record-mapper/internal/diagnostic"
	"record-mapper/internal/keys"
	"record-mapper/internal/match"
	"record-mapper/primitive"
)

// settings are inherited by nested records that are not configured themselves.
type settings struct {
	flavor     Flavor
	convention convention.Convention
}

type structField struct {
	reflect.StructField
	index []int
}

// buildRecord describes a single record type. Record types of nested fields
// are returned so the caller can build them too; they are linked afterwards.
func buildRecord(t reflect.Type, inherited settings, o options, diags *diagnostic.Diagnostics) (*Schema, []reflect.Type) {
	s := &Schema{
		Type:       t,
		Flavor:     inherited.flavor,
		Convention: inherited.convention,
		byName:     make(map[string]*FieldDescriptor),
	}

	if o.flavor != nil {
		s.Flavor = *o.flavor
	}

	if o.convention != nil {
		s.Convention = *o.convention
	}

	if t.Kind() != reflect.Struct {
		diags.AddError(diagnostic.CodeUnsupportedType, fmt.Sprintf("%v is not a struct", t), t.String(), "")
		return s, nil
	}

	var (
		nested  []reflect.Type
		seen    []string
		written = make(map[string]string)
	)

	for _, sf := range structFields(t) {
		seen = append(seen, sf.Name)

		tag := ParseFieldTag(sf.StructField)
		if tag.Skip || o.ignored[sf.Name] {
			continue
		}

		for _, unknown := range tag.Unknown {
			diags.AddError(diagnostic.CodeBadTag, fmt.Sprintf("unknown tag option %q", unknown),
				s.Name(), sf.Name, match.Suggest(unknown, knownTagOptions, 1)...)
		}

		f := &FieldDescriptor{
			Name:  sf.Name,
			Alias: tag.Alias,
			Type:  sf.Type,
			Index: sf.index,
		}

		if alias, ok := o.aliases[sf.Name]; ok {
			f.Alias = alias
		}

		kind, elem, ok := resolveKind(sf.Type)
		if !ok {
			diags.AddError(diagnostic.CodeUnsupportedType, fmt.Sprintf("%v cannot be mapped", sf.Type), s.Name(), sf.Name)
			continue
		}

		f.Kind, f.Elem = kind, elem
		if elem.IsRecord() {
			nested = append(nested, elem.Value())
		}

		f.Nullable = kind == KindOptionalScalar || kind == KindOptionalNestedRecord || tag.Optional || o.optional[sf.Name]

		expression, hasDefault := tag.DefaultExpr, tag.HasDefault
		if e, ok := o.defaults[sf.Name]; ok {
			expression, hasDefault = e, true
		}

		if hasDefault {
			value, err := evalDefault(expression, f)
			if err != nil {
				diags.AddError(diagnostic.CodeBadDefault, err.Error(), s.Name(), sf.Name)
			} else {
				f.Default, f.DefaultExpr = value, expression
			}
		}

		f.Required = !f.Nullable && !f.HasDefault() && !kind.IsCollection()
		f.WriteKey = keys.WriteKey(f.Name, f.Alias, s.Convention)
		f.ReadKeys = keys.Ladder(f.Name, f.Alias)

		if f.WriteKey == "" {
			diags.AddError(diagnostic.CodeEmptyName, "field is written under an empty key", s.Name(), sf.Name)
		}

		if other, dup := written[f.WriteKey]; dup {
			diags.AddError(diagnostic.CodeDuplicateKey,
				fmt.Sprintf("key %q is also written by field %s", f.WriteKey, other), s.Name(), sf.Name)
		} else {
			written[f.WriteKey] = f.Name
		}

		s.Fields = append(s.Fields, f)
		s.byName[f.Name] = f
	}

	for _, name := range o.referenced() {
		switch {
		case name == "":
			diags.AddError(diagnostic.CodeEmptyName, "option names an empty field", s.Name(), "")
		case !slices.Contains(seen, name):
			diags.AddError(diagnostic.CodeUnknownField, fmt.Sprintf("option names unknown field %q", name),
				s.Name(), name, match.Suggest(name, seen, 3)...)
		}
	}

	bindConstructor(s, o.constructors, diags)

	return s, nested
}

// structFields lists exported fields with the fields of embedded structs
// first. Declared fields shadow promoted ones of the same name.
func structFields(t reflect.Type) []structField {
	declared := make(map[string]bool)
	for i := range t.NumField() {
		if sf := t.Field(i); !sf.Anonymous {
			declared[sf.Name] = true
		}
	}

	var base, own []structField
	for i := range t.NumField() {
		sf := t.Field(i)

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && primitive.FromReflectType(sf.Type) == 0 &&
			jsonTagName(sf) == "" && sf.Tag.Get(TagName) == "" {
			for _, inner := range structFields(sf.Type) {
				if declared[inner.Name] {
					continue
				}
				inner.index = append([]int{i}, inner.index...)
				base = append(base, inner)
			}
			continue
		}

		if !sf.IsExported() {
			continue
		}

		own = append(own, structField{StructField: sf, index: []int{i}})
	}

	return append(base, own...)
}

func resolveKind(t reflect.Type) (TypeKind, Element, bool) {
	if elem, ok := resolveElement(t); ok && !elem.Pointer {
		switch {
		case elem.Enum:
			return KindEnum, elem, true
		case elem.Scalar != 0:
			return KindScalar, elem, true
		default:
			return KindNestedRecord, elem, true
		}
	}

	switch t.Kind() {
	case reflect.Ptr:
		elem, ok := resolveElement(t)
		if !ok {
			break
		}
		if elem.Enum || elem.Scalar != 0 {
			return KindOptionalScalar, elem, true
		}
		return KindOptionalNestedRecord, elem, true

	case reflect.Slice:
		if elem, ok := resolveElement(t.Elem()); ok {
			return KindList, elem, true
		}

	case reflect.Array:
		if elem, ok := resolveElement(t.Elem()); ok {
			elem.Length = t.Len()
			return KindArray, elem, true
		}
	}

	return 0, Element{}, false
}

func resolveElement(t reflect.Type) (Element, bool) {
	e := Element{Type: t}

	v := t
	if t.Kind() == reflect.Ptr {
		e.Pointer = true
		v = t.Elem()
	}

	switch {
	case enum.IsEnum(v):
		e.Enum = true
		e.Scalar = primitive.FromReflectType(v)
	case primitive.FromReflectType(v) != 0:
		e.Scalar = primitive.FromReflectType(v)
	case v.Kind() == reflect.Struct:
	default:
		return Element{}, false
	}

	return e, true
}

func bindConstructor(s *Schema, ctors []constructorOption, diags *diagnostic.Diagnostics) {
	var candidates []Constructor
	for _, opt := range ctors {
		c, err := ParseConstructor(opt.fn, s.Type, opt.names)
		if err != nil {
			diags.AddError(diagnostic.CodeBadConstructor, err.Error(), s.Name(), "")
			continue
		}
		candidates = append(candidates, c)
	}

	selected := selectConstructor(s.Type, candidates, diags)
	if selected == nil {
		return
	}

	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}

	ctor := *selected
	ctor.Params = slices.Clone(selected.Params)

	ok := true
	for i, p := range ctor.Params {
		idx := slices.IndexFunc(s.Fields, func(f *FieldDescriptor) bool { return strings.EqualFold(f.Name, p.Name) })
		if idx < 0 {
			diags.AddError(diagnostic.CodeBadConstructor, fmt.Sprintf("parameter %q matches no field", p.Name),
				s.Name(), "", match.Suggest(p.Name, names, 3)...)
			ok = false
			continue
		}

		f := s.Fields[idx]
		if !f.Type.AssignableTo(p.Type) {
			diags.AddError(diagnostic.CodeBadConstructor,
				fmt.Sprintf("parameter %q is %v but the field is %v", p.Name, p.Type, f.Type), s.Name(), f.Name)
			ok = false
			continue
		}

		ctor.Params[i].Field = idx
		f.ConstructorParam, f.Position = true, i
	}

	if ok {
		s.Constructor = &ctor
	}
}

// evalDefault evaluates a default expression and coerces the result to the
// field type.
func evalDefault(expression string, f *FieldDescriptor) (reflect.Value, error) {
	program, err := expr.Compile(expression)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("default %q: %w", expression, err)
	}

	out, err := expr.Run(program, nil)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("default %q: %w", expression, err)
	}

	if out == nil {
		return reflect.Value{}, fmt.Errorf("default %q evaluates to nil", expression)
	}

	switch f.Kind {
	case KindScalar, KindEnum:
		return coerceDefault(out, f.Elem)

	case KindOptionalScalar:
		v, err := coerceDefault(out, f.Elem)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(f.Elem.Value())
		ptr.Elem().Set(v)
		return ptr, nil

	case KindList, KindArray:
		items, ok := out.([]any)
		if !ok || f.Elem.IsRecord() || f.Elem.Pointer {
			break
		}

		var collection reflect.Value
		if f.Kind == KindList {
			collection = reflect.MakeSlice(f.Type, len(items), len(items))
		} else {
			if len(items) > f.Elem.Length {
				return reflect.Value{}, fmt.Errorf("default %q has %d elements, the array holds %d", expression, len(items), f.Elem.Length)
			}
			collection = reflect.New(f.Type).Elem()
		}

		for i, item := range items {
			v, err := coerceDefault(item, f.Elem)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("default %q element %d: %w", expression, i, err)
			}
			collection.Index(i).Set(v)
		}

		return collection, nil
	}

	return reflect.Value{}, fmt.Errorf("default %q cannot be used for %v", expression, f.Type)
}

func coerceDefault(raw any, elem Element) (reflect.Value, error) {
	if s, ok := raw.(string); ok && elem.Enum {
		if v, found := enum.Parse(elem.Value(), s); found {
			return v, nil
		}
		return reflect.Value{}, fmt.Errorf("%q is not a %v", s, elem.Value())
	}

	return primitive.Convert(raw, elem.Value(), primitive.GenericCategories)
}
