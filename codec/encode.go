package codec

import (
	"fmt"
	"reflect"

	"record-mapper/container"
	"record-mapper/enum"
	"record-mapper/schema"
)

// encode writes every field of record under its write key. Nil nullable
// fields are left out.
func (e *engine) encode(s *schema.Schema, record reflect.Value, path string) (container.Map, error) {
	out := make(container.Map, len(s.Fields))

	for _, f := range s.Fields {
		fv := record.FieldByIndex(f.Index)
		if f.Nullable && isNil(fv) {
			continue
		}

		v, err := e.encodeField(s, f, fv, fieldPath(path, f.Name))
		if err != nil {
			return nil, err
		}
		out[f.WriteKey] = v
	}

	return out, nil
}

func (e *engine) encodeField(s *schema.Schema, f *schema.FieldDescriptor, fv reflect.Value, path string) (any, error) {
	switch f.Kind {
	case schema.KindScalar, schema.KindEnum, schema.KindOptionalScalar,
		schema.KindNestedRecord, schema.KindOptionalNestedRecord:
		return e.encodeElement(f.Elem, fv, path)

	case schema.KindList, schema.KindArray:
		switch {
		case f.Elem.IsRecord():
			items := make([]container.Map, fv.Len())
			for i := range items {
				v, err := e.encodeElement(f.Elem, fv.Index(i), indexPath(path, i))
				if err != nil {
					return nil, err
				}
				if v != nil {
					items[i] = v.(container.Map)
				}
			}
			return items, nil

		case f.Elem.Enum && !f.Elem.Pointer:
			names := make([]string, fv.Len())
			for i := range names {
				names[i] = enum.Name(fv.Index(i))
			}
			return names, nil

		case f.Elem.Pointer:
			// optional enums and scalars are stored dereferenced, nil stays nil
			items := make([]any, fv.Len())
			for i := range items {
				v, err := e.encodeElement(f.Elem, fv.Index(i), indexPath(path, i))
				if err != nil {
					return nil, err
				}
				items[i] = v
			}
			return items, nil
		}

		if f.Kind == schema.KindList && !fv.IsNil() {
			return clone(fv).Interface(), nil
		}
		out := reflect.MakeSlice(reflect.SliceOf(f.Elem.Type), fv.Len(), fv.Len())
		reflect.Copy(out, fv)
		return out.Interface(), nil
	}

	return nil, fmt.Errorf("%s: cannot encode %v", path, f.Type)
}

func (e *engine) encodeElement(elem schema.Element, v reflect.Value, path string) (any, error) {
	if elem.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}

	switch {
	case elem.Enum:
		return enum.Name(v), nil
	case elem.Scalar != 0:
		return v.Interface(), nil
	}

	nested := elem.Nested
	if nested == nil {
		var err error
		if nested, err = e.registry.Build(v.Type()); err != nil {
			return nil, err
		}
	}

	return e.encode(nested, v, path)
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
