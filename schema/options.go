package schema

import (
	"record-mapper/convention"
)

// Option configures how a record type is described.
type Option func(*options)

type constructorOption struct {
	fn    any
	names []string
}

type options struct {
	flavor       *Flavor
	convention   *convention.Convention
	constructors []constructorOption
	aliases      map[string]string
	defaults     map[string]string
	optional     map[string]bool
	ignored      map[string]bool
}

// WithFlavor selects the coercion rules. Records that are not configured
// themselves inherit the flavor of the record they are nested in.
func WithFlavor(f Flavor) Option {
	return func(o *options) { o.flavor = &f }
}

// WithConvention selects the naming convention keys are written with.
func WithConvention(c convention.Convention) Option {
	return func(o *options) { o.convention = &c }
}

// WithConstructor offers a constructor function for the record. Accepted
// signatures return T or *T, optionally followed by an error. Go does not
// keep parameter names, so they are given in order and matched to field
// names ignoring case. Of several constructors the one taking the most
// parameters is used; copy constructors func(T) T are never used.
func WithConstructor(fn any, paramNames ...string) Option {
	return func(o *options) {
		o.constructors = append(o.constructors, constructorOption{fn: fn, names: paramNames})
	}
}

// WithAlias sets the container key of a field, overriding tags.
func WithAlias(field, key string) Option {
	return func(o *options) { set(&o.aliases, field, key) }
}

// WithDefault sets the default expression of a field, overriding tags.
func WithDefault(field, expression string) Option {
	return func(o *options) { set(&o.defaults, field, expression) }
}

// WithOptional marks fields nullable: they may be absent when decoding.
func WithOptional(fields ...string) Option {
	return func(o *options) {
		for _, f := range fields {
			set(&o.optional, f, true)
		}
	}
}

// WithIgnore excludes fields from encoding and decoding.
func WithIgnore(fields ...string) Option {
	return func(o *options) {
		for _, f := range fields {
			set(&o.ignored, f, true)
		}
	}
}

func set[V any](m *map[string]V, key string, value V) {
	if *m == nil {
		*m = make(map[string]V)
	}
	(*m)[key] = value
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// referenced lists every field name mentioned by the options.
func (o *options) referenced() []string {
	var names []string
	for _, m := range []map[string]bool{o.optional, o.ignored} {
		for name := range m {
			names = append(names, name)
		}
	}
	for _, m := range []map[string]string{o.aliases, o.defaults} {
		for name := range m {
			names = append(names, name)
		}
	}
	return names
}
