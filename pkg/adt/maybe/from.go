package maybe

import (
	"math"
	"reflect"

	"github.com/ib-77/adt/pkg/adt"
)

// From returns Absent if v is nil (untyped nil or a nil pointer, map, slice,
// func, chan or interface) and Present(v) otherwise. Zero values such as 0
// or "" are Present.
func From[T any](v T) Maybe[T] {
	if adt.IsNil(v) {
		return Absent[T]()
	}
	return Present(v)
}

// FromNullable is From. Go has a single nil, so "null" and "no value"
// cannot be told apart.
func FromNullable[T any](v T) Maybe[T] {
	return From(v)
}

// FromUndefined is From, kept as a separate name for callers that
// distinguish the two sentinels elsewhere.
func FromUndefined[T any](v T) Maybe[T] {
	return From(v)
}

// FromTruthy is looser than From: it returns Absent for every falsy value,
// which includes false, numeric zero, NaN and "" in addition to nil.
// Non-nil empty slices and maps, and all structs, are truthy.
func FromTruthy[T any](v T) Maybe[T] {
	if isFalsy(v) {
		return Absent[T]()
	}
	return Present(v)
}

// FromPtr dereferences p, returning Absent for a nil pointer.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// FromOk adapts the comma-ok idiom: v, ok := m[k].
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Absent[T]()
	}
	return Present(v)
}

func isFalsy(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() == 0
	case reflect.String:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
