package schema

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"record-mapper/internal/common"
	"record-mapper/internal/diagnostic"
	"record-mapper/utils"
)

var (
	ErrIsNotAConstructor         = errors.New("provided function is not a recognizable constructor")
	ErrConstructorIsNotAFunction = errors.New("provided constructor is not a function")
	ErrDoublePointer             = errors.New("constructor function does not support double pointers")
	ErrParameterNames            = errors.New("constructor parameter names do not match its parameters")
	ErrConstructorFailed         = errors.New("constructor failed")
)

var errorType = reflect.TypeFor[error]()

// Constructor is a function that creates a record from some of its fields.
type Constructor struct {
	Fn           reflect.Value
	Params       []Param
	PackageAlias string
	Name         string
	Pointer      bool // returns *T
	HasErr       bool
}

// Param is a constructor parameter bound to a field of the record.
type Param struct {
	Name  string
	Type  reflect.Type
	Field int // index into Schema.Fields, set when the schema is built
}

// ParseConstructor inspects the provided function and returns a Constructor
// if it creates values of type target.
//
// Supports signatures:
//   - func(args...) T
//   - func(args...) *T
//   - func(args...) (T, error)
//   - func(args...) (*T, error)
func ParseConstructor(fn any, target reflect.Type, names []string) (Constructor, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.IsVariadic() || fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return Constructor{}, ErrIsNotAConstructor
	}

	out := fnType.Out(0)
	if out.Kind() == reflect.Ptr && out.Elem().Kind() == reflect.Ptr {
		return Constructor{}, ErrDoublePointer
	}

	ctor := Constructor{Fn: fnVal}

	switch {
	default:
		return Constructor{}, fmt.Errorf("%w: returns %v instead of %v", ErrIsNotAConstructor, out, target)
	case out == target:
	case out.Kind() == reflect.Ptr && out.Elem() == target:
		ctor.Pointer = true
	}

	if fnType.NumOut() == 2 {
		if !fnType.Out(1).Implements(errorType) {
			return Constructor{}, ErrIsNotAConstructor
		}
		ctor.HasErr = true
	}

	for i := range fnType.NumIn() {
		in := fnType.In(i)
		if in.Kind() == reflect.Ptr && in.Elem().Kind() == reflect.Ptr {
			return Constructor{}, ErrDoublePointer
		}

		var name string
		if i < len(names) {
			name = names[i]
		}

		ctor.Params = append(ctor.Params, Param{Name: name, Type: in, Field: -1})
	}

	// copy constructors are never called, their parameter needs no name
	if len(names) != fnType.NumIn() && !ctor.IsCopy(target) {
		return Constructor{}, fmt.Errorf("%w: %d names for %d parameters", ErrParameterNames, len(names), fnType.NumIn())
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	if fnPC != nil {
		alias, name := utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))
		ctor.Name = name
		ctor.PackageAlias = utils.Second(path.Split(alias))
	}

	return ctor, nil
}

// IsCopy reports whether the constructor only copies an existing record.
func (c Constructor) IsCopy(target reflect.Type) bool {
	if len(c.Params) != 1 {
		return false
	}

	in := c.Params[0].Type
	return in == target || (in.Kind() == reflect.Ptr && in.Elem() == target)
}

// Arity is the number of parameters.
func (c Constructor) Arity() int {
	return len(c.Params)
}

// Call invokes the constructor and returns an addressable record value.
func (c Constructor) Call(args []reflect.Value) (reflect.Value, error) {
	results := c.Fn.Call(args)

	if c.HasErr && !results[1].IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrConstructorFailed, results[1].Interface().(error))
	}

	value := results[0]
	if c.Pointer {
		if value.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: returned nil", ErrConstructorFailed)
		}
		value = value.Elem()
	}

	record := reflect.New(value.Type()).Elem()
	record.Set(value)

	return record, nil
}

// selectConstructor picks the constructor with the most parameters, ignoring
// copy constructors. No candidates at all means the zero value is used.
func selectConstructor(target reflect.Type, candidates []Constructor, diags *diagnostic.Diagnostics) *Constructor {
	if common.IsEmpty(candidates) {
		return nil
	}

	var best []Constructor
	for _, c := range candidates {
		if c.IsCopy(target) {
			continue
		}

		switch first, ok := common.First(best); {
		case !ok || c.Arity() > first.Arity():
			best = []Constructor{c}
		case c.Arity() == first.Arity():
			best = append(best, c)
		}
	}

	switch {
	case common.IsEmpty(best):
		diags.AddError(diagnostic.CodeNoConstructor,
			"only copy constructors were given", target.String(), "")
		return nil
	case common.IsMultiple(best):
		diags.AddError(diagnostic.CodeAmbiguousConstructor,
			fmt.Sprintf("%d constructors take %d parameters", len(best), best[0].Arity()), target.String(), "")
		return nil
	}

	return &best[0]
}
