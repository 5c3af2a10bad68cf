package codec

import (
	"fmt"
	"reflect"

	"record-mapper/container"
	"record-mapper/primitive"
	"record-mapper/schema"
)

// decode resolves every field from src, calls the constructor with its
// parameters and sets the remaining fields on the result.
func (e *engine) decode(s *schema.Schema, src container.Source, path string) (reflect.Value, error) {
	values := make([]reflect.Value, len(s.Fields))

	for i, f := range s.Fields {
		v, err := e.decodeField(s, f, src, fieldPath(path, f.Name))
		if err != nil {
			return reflect.Value{}, err
		}
		values[i] = v
	}

	var record reflect.Value
	if c := s.Constructor; c != nil {
		args := make([]reflect.Value, len(c.Params))
		for i, p := range c.Params {
			if args[i] = values[p.Field]; !args[i].IsValid() {
				args[i] = reflect.Zero(p.Type)
			}
		}

		var err error
		if record, err = c.Call(args); err != nil {
			if path == "" {
				path = s.Name()
			}
			return reflect.Value{}, fmt.Errorf("%s: %w", path, err)
		}
	} else {
		record = reflect.New(s.Type).Elem()
	}

	for i, f := range s.Fields {
		if f.ConstructorParam || !values[i].IsValid() {
			continue
		}
		record.FieldByIndex(f.Index).Set(values[i])
	}

	return record, nil
}

// decodeField returns an invalid value when the field keeps its zero value.
func (e *engine) decodeField(s *schema.Schema, f *schema.FieldDescriptor, src container.Source, path string) (reflect.Value, error) {
	raw, found := e.lookup(s, f, src, path)

	if found && primitive.VariantOf(raw) != primitive.VariantNull {
		return e.coerce(s, f, raw, path)
	}

	switch {
	case found && f.Nullable:
		return reflect.Value{}, nil
	case f.HasDefault():
		return clone(f.Default), nil
	case f.Nullable:
		return reflect.Value{}, nil
	case f.Kind.IsCollection():
		if f.Kind == schema.KindList {
			return reflect.MakeSlice(f.Type, 0, 0), nil
		}
		return reflect.Value{}, nil
	case found:
		return reflect.Value{}, &ConversionError{Path: path, Expected: f.Type.String(), Actual: typeName(nil)}
	default:
		return reflect.Value{}, missing(f, src, path)
	}
}
