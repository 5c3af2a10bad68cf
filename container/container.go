// Package container holds the string-keyed value containers records are
// encoded into and decoded from.
//
// Three shapes are supported: the mutable Map, any ReadOnly view and the
// Persistent immutable map. All of them are a Source, so decoding resolves
// keys against each of them in exactly the same way.
package container

import (
	"maps"
	"slices"
)

// Source is the read side shared by every container.
type Source interface {
	Lookup(key string) (any, bool)
	Keys() []string
}

// ReadOnly is a read-only view of a container.
type ReadOnly interface {
	Source
	Len() int
}

// Map is the mutable container produced by encoding.
type Map map[string]any

func (m Map) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the keys in sorted order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

func (m Map) Len() int {
	return len(m)
}

// View wraps a plain map into a ReadOnly container without copying it.
func View(m map[string]any) ReadOnly {
	return view{m: m}
}

type view struct {
	m map[string]any
}

func (v view) Lookup(key string) (any, bool) {
	value, ok := v.m[key]
	return value, ok
}

func (v view) Keys() []string {
	return slices.Sorted(maps.Keys(v.m))
}

func (v view) Len() int {
	return len(v.m)
}

// Of adapts raw into a Source when it is one of the supported string-keyed
// shapes: a Source itself, map[string]any or a map with string keys and
// arbitrary values.
func Of(raw any) (Source, bool) {
	switch m := raw.(type) {
	case Source:
		return m, true
	case map[string]any:
		return Map(m), true
	case map[string]string:
		converted := make(Map, len(m))
		for k, v := range m {
			converted[k] = v
		}
		return converted, true
	}

	return reflectMap(raw)
}
