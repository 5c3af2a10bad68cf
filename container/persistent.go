package container

import (
	"slices"

	"github.com/benbjohnson/immutable"
)

// Persistent is an immutable map. Every update returns a new map sharing
// structure with the old one, so values can be handed between goroutines
// freely. The zero value is an empty map.
type Persistent struct {
	m *immutable.Map[string, any]
}

func NewPersistent() Persistent {
	return Persistent{m: immutable.NewMap[string, any](nil)}
}

// PersistentOf copies a plain map into a persistent one.
func PersistentOf(m map[string]any) Persistent {
	b := immutable.NewMapBuilder[string, any](nil)
	for k, v := range m {
		b.Set(k, v)
	}

	return Persistent{m: b.Map()}
}

func (p Persistent) Lookup(key string) (any, bool) {
	if p.m == nil {
		return nil, false
	}

	return p.m.Get(key)
}

// Set returns a copy of p with key bound to value.
func (p Persistent) Set(key string, value any) Persistent {
	if p.m == nil {
		p = NewPersistent()
	}

	return Persistent{m: p.m.Set(key, value)}
}

// Delete returns a copy of p without key.
func (p Persistent) Delete(key string) Persistent {
	if p.m == nil {
		return p
	}

	return Persistent{m: p.m.Delete(key)}
}

func (p Persistent) Len() int {
	if p.m == nil {
		return 0
	}

	return p.m.Len()
}

// Keys returns the keys in sorted order.
func (p Persistent) Keys() []string {
	if p.m == nil {
		return nil
	}

	keys := make([]string, 0, p.m.Len())
	for itr := p.m.Iterator(); !itr.Done(); {
		k, _, _ := itr.Next()
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// Map copies p into a mutable map.
func (p Persistent) Map() Map {
	out := make(Map, p.Len())
	if p.m == nil {
		return out
	}

	for itr := p.m.Iterator(); !itr.Done(); {
		k, v, _ := itr.Next()
		out[k] = v
	}

	return out
}
