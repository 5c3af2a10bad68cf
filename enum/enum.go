// Package enum keeps name tables for enumeration types.
//
// Go has no reflective access to constant names, so enumeration types are
// registered once with their values; names come from the String method.
// Parsing is case-insensitive.
package enum

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Enum is the set of types that can be registered: named integer or string
// types that render their names with String.
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~string

	String() string
}

type table struct {
	byName map[string]any // lower-cased name -> value
	byVal  map[any]string
	names  []string // registration order
}

var (
	registry = make(map[reflect.Type]*table)
	mu       sync.RWMutex
)

// Register records the names of the given values of T.
// Registering the same type again adds to its table.
func Register[T Enum](values ...T) {
	mu.Lock()
	defer mu.Unlock()

	rtype := reflect.TypeFor[T]()
	tbl := registry[rtype]
	if tbl == nil {
		tbl = &table{byName: make(map[string]any), byVal: make(map[any]string)}
		registry[rtype] = tbl
	}

	for _, v := range values {
		name := v.String()
		if _, dup := tbl.byVal[v]; !dup {
			tbl.names = append(tbl.names, name)
		}

		tbl.byName[strings.ToLower(name)] = v
		tbl.byVal[v] = name
	}
}

// IsEnum reports whether t was registered.
func IsEnum(t reflect.Type) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registry[t]
	return ok
}

// Parse finds the value of type t named s, ignoring letter case.
func Parse(t reflect.Type, s string) (reflect.Value, bool) {
	mu.RLock()
	defer mu.RUnlock()

	tbl, ok := registry[t]
	if !ok {
		return reflect.Value{}, false
	}

	v, ok := tbl.byName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return reflect.Value{}, false
	}

	return reflect.ValueOf(v), true
}

// Name renders v. Unregistered values of a Stringer type use String,
// anything else is formatted with %v.
func Name(v reflect.Value) string {
	mu.RLock()
	var name string
	tbl, found := registry[v.Type()]
	if found {
		name, found = tbl.byVal[v.Interface()]
	}
	mu.RUnlock()

	if found {
		return name
	}

	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprint(v.Interface())
}

// Names lists the registered names of t in registration order.
func Names(t reflect.Type) []string {
	mu.RLock()
	defer mu.RUnlock()

	tbl, ok := registry[t]
	if !ok {
		return nil
	}

	return append([]string(nil), tbl.names...)
}

// ParseAs is the typed form of Parse.
func ParseAs[T Enum](s string) (T, error) {
	v, ok := Parse(reflect.TypeFor[T](), s)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%q is not a %T", s, zero)
	}

	return v.Interface().(T), nil
}

// Clear resets the registry.
// This is primarily useful for testing.
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	registry = make(map[reflect.Type]*table)
}
