package adt

import (
	"reflect"
)

// IsNil reports whether i is untyped nil or a typed nil of a nillable kind.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens an errors.Join result into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Cast recovers a typed value from an erased payload. A nil payload yields
// the zero value of T.
func Cast[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		panic(newTypeConstraintError("cast", v, "expected "+reflect.TypeOf(&zero).Elem().String()))
	}
	return t
}

// Invoke calls fn with arg. fn must be a func(any) any or any other
// non-variadic function with exactly one parameter and one result; anything
// else panics with *TypeConstraintError.
func Invoke(fn any, arg any) any {
	if f, ok := fn.(func(any) any); ok && f != nil {
		return f(arg)
	}

	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		panic(newTypeConstraintError("apply", fn, "expected a unary function"))
	}
	ft := rv.Type()
	if ft.NumIn() != 1 || ft.NumOut() != 1 || ft.IsVariadic() {
		panic(newTypeConstraintError("apply", fn, "expected a unary function"))
	}

	in := reflect.ValueOf(arg)
	if !in.IsValid() {
		in = reflect.Zero(ft.In(0))
	} else if !in.Type().AssignableTo(ft.In(0)) {
		panic(newTypeConstraintError("apply", arg, "argument not assignable to "+ft.In(0).String()))
	}

	return rv.Call([]reflect.Value{in})[0].Interface()
}

// Identity returns v unchanged.
func Identity[T any](v T) T {
	return v
}

// Compose returns x => g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Constant returns its first argument and ignores the second.
func Constant(a, _ any) any {
	return a
}

// EraseSlice copies xs into a []any.
func EraseSlice[T any](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

// CastSlice is the inverse of EraseSlice; every element goes through Cast.
func CastSlice[T any](xs []any) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = Cast[T](x)
	}
	return out
}
