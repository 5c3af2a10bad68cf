package codec

import (
	"fmt"
	"reflect"

	"record-mapper/container"
	"record-mapper/enum"
	"record-mapper/primitive"
	"record-mapper/schema"
)

// coerce turns a raw, non-null container value into the declared type of f.
func (e *engine) coerce(s *schema.Schema, f *schema.FieldDescriptor, raw any, path string) (reflect.Value, error) {
	switch f.Kind {
	case schema.KindScalar, schema.KindEnum, schema.KindOptionalScalar,
		schema.KindNestedRecord, schema.KindOptionalNestedRecord:
		return e.element(s, f.Elem, raw, path)
	case schema.KindList, schema.KindArray:
		return e.collection(s, f, raw, path)
	default:
		return reflect.Value{}, &UnsupportedShapeError{Path: path, Expected: f.Type.String(), Actual: typeName(raw)}
	}
}

// element coerces a single value, the pointer of optional elements included.
func (e *engine) element(s *schema.Schema, elem schema.Element, raw any, path string) (reflect.Value, error) {
	if primitive.VariantOf(raw) == primitive.VariantNull {
		if elem.Pointer || elem.Type.Kind() == reflect.Interface {
			return reflect.Zero(elem.Type), nil
		}
		return reflect.Value{}, &ConversionError{Path: path, Expected: elem.Type.String(), Actual: typeName(raw)}
	}

	rv := reflect.ValueOf(raw)
	if rv.Type() == elem.Type {
		return rv, nil
	}

	var (
		v   reflect.Value
		err error
	)
	switch {
	case elem.Enum:
		v, err = e.enumValue(s, elem.Value(), raw, path)
	case elem.Scalar != 0:
		v, err = e.scalar(s, elem.Value(), raw, path)
	default:
		v, err = e.record(elem, raw, path)
	}
	if err != nil || !elem.Pointer {
		return v, err
	}

	ptr := reflect.New(elem.Value())
	ptr.Elem().Set(v)
	return ptr, nil
}

func (e *engine) scalar(s *schema.Schema, t reflect.Type, raw any, path string) (reflect.Value, error) {
	var (
		v   reflect.Value
		err error
	)
	if variant := primitive.VariantOf(raw); s.Flavor == schema.FlavorGraph && variant.IsGraphTemporal() {
		v, err = graphTemporal(raw, variant, t)
	} else {
		v, err = primitive.Convert(raw, t, s.Categories())
	}
	if err != nil {
		return reflect.Value{}, &ConversionError{Path: path, Expected: t.String(), Actual: typeName(raw), Err: err}
	}

	return v, nil
}

// enumValue parses names case-insensitively. Numbers are cast directly into
// integer enumerations; the generic flavor also accepts numeric text.
func (e *engine) enumValue(s *schema.Schema, t reflect.Type, raw any, path string) (reflect.Value, error) {
	numeric := primitive.CategorySafeNumber | primitive.CategoryUnsafeNumber
	if s.Flavor == schema.FlavorGeneric {
		numeric |= primitive.CategoryTextNumber
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.String {
		if v, ok := enum.Parse(t, rv.String()); ok {
			return v, nil
		}
	}

	if t.Kind() != reflect.String {
		if v, err := primitive.Convert(raw, t, numeric); err == nil {
			return v, nil
		}
	}

	return reflect.Value{}, &ConversionError{
		Path:     path,
		Expected: t.String(),
		Actual:   typeName(raw),
		Err:      fmt.Errorf("%v is not one of %v", raw, enum.Names(t)),
	}
}

func (e *engine) record(elem schema.Element, raw any, path string) (reflect.Value, error) {
	t := elem.Value()

	rv := reflect.ValueOf(raw)
	switch {
	case rv.Type() == t:
		return rv, nil
	case rv.Kind() == reflect.Pointer && rv.Type().Elem() == t && !rv.IsNil():
		return rv.Elem(), nil
	}

	src, ok := container.Of(raw)
	if !ok {
		return reflect.Value{}, &UnsupportedShapeError{Path: path, Expected: "map for " + t.String(), Actual: typeName(raw)}
	}

	nested := elem.Nested
	if nested == nil {
		var err error
		if nested, err = e.registry.Build(t); err != nil {
			return reflect.Value{}, err
		}
	}

	return e.decode(nested, src, path)
}

// collection builds a list or array element by element. A value of exactly
// the declared type is copied.
func (e *engine) collection(s *schema.Schema, f *schema.FieldDescriptor, raw any, path string) (reflect.Value, error) {
	rv := reflect.ValueOf(raw)
	if rv.Type() == f.Type {
		return clone(rv), nil
	}

	switch primitive.VariantOf(raw) {
	case primitive.VariantSequence, primitive.VariantBytes:
	default:
		return reflect.Value{}, &UnsupportedShapeError{Path: path, Expected: f.Type.String(), Actual: typeName(raw), Reason: "not a sequence"}
	}

	n := rv.Len()

	var out reflect.Value
	if f.Kind == schema.KindList {
		out = reflect.MakeSlice(f.Type, n, n)
	} else {
		if n > f.Elem.Length {
			return reflect.Value{}, &UnsupportedShapeError{
				Path:     path,
				Expected: f.Type.String(),
				Actual:   typeName(raw),
				Reason:   fmt.Sprintf("%d elements do not fit", n),
			}
		}
		out = reflect.New(f.Type).Elem()
	}

	if rv.Type().Elem() == f.Elem.Type {
		reflect.Copy(out, rv)
		return out, nil
	}

	for i := range n {
		v, err := e.element(s, f.Elem, rv.Index(i).Interface(), indexPath(path, i))
		if err != nil {
			return reflect.Value{}, err
		}
		out.Index(i).Set(v)
	}

	return out, nil
}

// clone copies slices and pointers so decoded records never share memory
// with the container or with configured defaults.
func clone(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(out, v)
		return out
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(v.Elem())
		return out
	default:
		return v
	}
}
