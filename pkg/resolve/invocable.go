package resolve

import (
	"context"
	"fmt"
	"reflect"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// Invocable reports whether value is treated as deferred. That covers
// Resolver implementations and any non-nil func that takes no arguments (or a
// single context.Context) and returns one value, optionally followed by an
// error.
func Invocable(value any) bool {
	if value == nil {
		return false
	}
	if _, ok := value.(Resolver); ok {
		return true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return false
	}
	return supportedSignature(rv.Type())
}

// checkFunc rejects func values that Invocable refused so they never reach the
// assembler as opaque pointers.
func checkFunc(value any) error {
	if value == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Func {
		return nil
	}
	if rv.IsNil() {
		return fmt.Errorf("%w: nil %s", ErrNotInvocable, rv.Type())
	}
	return fmt.Errorf("%w: %s", ErrNotInvocable, rv.Type())
}

func supportedSignature(t reflect.Type) bool {
	if t.IsVariadic() {
		return false
	}
	switch t.NumIn() {
	case 0:
	case 1:
		if t.In(0) != contextType {
			return false
		}
	default:
		return false
	}
	switch t.NumOut() {
	case 1:
		return true
	case 2:
		return t.Out(1) == errorType
	default:
		return false
	}
}

func callReflect(ctx context.Context, fn reflect.Value) (any, error) {
	t := fn.Type()
	if !supportedSignature(t) {
		return nil, fmt.Errorf("%w: %s", ErrNotInvocable, t)
	}

	var args []reflect.Value
	if t.NumIn() == 1 {
		args = []reflect.Value{reflect.ValueOf(ctx)}
	}

	results := fn.Call(args)
	if len(results) == 2 {
		if errVal := results[1]; !errVal.IsNil() {
			return nil, errVal.Interface().(error)
		}
	}
	return results[0].Interface(), nil
}
