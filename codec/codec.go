// Package codec converts records to and from string-keyed containers.
//
// A Codec is built once per record type from its schema and is safe for
// concurrent use:
//
//	c, err := codec.New[Order](schema.WithConvention(convention.CamelCase))
//	m, err := c.Encode(order)
//	order, err = c.Decode(m)
//
// Decoding looks every field up by its key ladder, so containers written
// under a different naming convention still decode. Absent fields take
// their default, nullable fields become nil and collections become empty;
// any other absent field fails with a MissingFieldError.
//
// A nil list that is not nullable encodes as an empty sequence and decodes
// back as an empty, non-nil slice. Tag the field optional to keep nil.
package codec

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"record-mapper/container"
	"record-mapper/schema"
)

type engine struct {
	registry *schema.Registry
	logger   *zap.Logger
}

// Codec encodes and decodes records of type T.
type Codec[T any] struct {
	engine
	schema *schema.Schema
}

// New builds a codec from the default registry.
func New[T any](opts ...schema.Option) (*Codec[T], error) {
	return NewWithRegistry[T](schema.Default, opts...)
}

// NewWithRegistry builds a codec from the schemas cached in r.
func NewWithRegistry[T any](r *schema.Registry, opts ...schema.Option) (*Codec[T], error) {
	s, err := r.Build(reflect.TypeFor[T](), opts...)
	if err != nil {
		return nil, err
	}

	return &Codec[T]{
		engine: engine{registry: r, logger: zap.NewNop()},
		schema: s,
	}, nil
}

// Must panics when a codec cannot be built.
func Must[T any](c *Codec[T], err error) *Codec[T] {
	if err != nil {
		panic(err)
	}
	return c
}

// WithLogger returns a copy of the codec logging to logger.
func (c *Codec[T]) WithLogger(logger *zap.Logger) *Codec[T] {
	out := *c
	out.logger = logger
	return &out
}

func (c *Codec[T]) Schema() *schema.Schema {
	return c.schema
}

// Encode converts a record into a fresh map.
func (c *Codec[T]) Encode(v T) (container.Map, error) {
	return c.encode(c.schema, reflect.ValueOf(&v).Elem(), "")
}

// EncodePersistent is Encode into an immutable map. Nested records are
// plain maps owned by the result.
func (c *Codec[T]) EncodePersistent(v T) (container.Persistent, error) {
	m, err := c.Encode(v)
	if err != nil {
		return container.Persistent{}, err
	}
	return container.PersistentOf(m), nil
}

func (c *Codec[T]) Decode(m map[string]any) (T, error) {
	return c.DecodeSource(container.Map(m))
}

func (c *Codec[T]) DecodeReadOnly(r container.ReadOnly) (T, error) {
	return c.DecodeSource(r)
}

func (c *Codec[T]) DecodePersistent(p container.Persistent) (T, error) {
	return c.DecodeSource(p)
}

// DecodeSource builds a record from any keyed source.
func (c *Codec[T]) DecodeSource(src container.Source) (T, error) {
	var out T

	v, err := c.decode(c.schema, src, "")
	if err != nil {
		return out, err
	}

	reflect.ValueOf(&out).Elem().Set(v)
	return out, nil
}

// EncodeValue encodes a record, or a pointer to one, with the default registry.
func EncodeValue(v any) (container.Map, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil %v", ErrUnsupportedShape, rv.Type())
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: nil record", ErrUnsupportedShape)
	}

	s, err := schema.Default.Build(rv.Type())
	if err != nil {
		return nil, err
	}

	e := engine{registry: schema.Default, logger: zap.NewNop()}
	return e.encode(s, rv, "")
}

// DecodeInto decodes src into the record ptr points to, using the default
// registry. src may be any value container.Of accepts.
func DecodeInto(src any, ptr any) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: DecodeInto needs a non-nil pointer, got %T", ErrUnsupportedShape, ptr)
	}

	source, ok := container.Of(src)
	if !ok {
		return &UnsupportedShapeError{Path: rv.Type().Elem().String(), Expected: "map", Actual: typeName(src)}
	}

	s, err := schema.Default.Build(rv.Type().Elem())
	if err != nil {
		return err
	}

	e := engine{registry: schema.Default, logger: zap.NewNop()}
	v, err := e.decode(s, source, "")
	if err != nil {
		return err
	}

	rv.Elem().Set(v)
	return nil
}
