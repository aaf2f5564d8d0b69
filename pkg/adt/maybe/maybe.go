package maybe

import (
	"fmt"
	"log/slog"

	"github.com/ib-77/adt/pkg/adt"
)

type Maybe[T any] struct {
	present bool
	value   T
}

func Present[T any](value T) Maybe[T] {
	return Maybe[T]{present: true, value: value}
}

func Absent[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Pure is Present, named for the applicative laws.
func Pure[T any](value T) Maybe[T] {
	return Present(value)
}

func (m Maybe[T]) IsPresent() bool {
	return m.present
}

func (m Maybe[T]) IsAbsent() bool {
	return !m.present
}

// Get returns the value and true, or zero and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// WithDefault returns the value if Present, else defaultValue.
func (m Maybe[T]) WithDefault(defaultValue T) T {
	if m.present {
		return m.value
	}
	return defaultValue
}

// Extract returns the value, or an error wrapping adt.ErrTypeConstraint if Absent.
func (m Maybe[T]) Extract() (T, error) {
	if m.present {
		return m.value, nil
	}
	var zero T
	return zero, adt.NewTypeConstraintError("extract", nil, "tried to extract a Present value from Absent")
}

// ExtractUnsafe returns the value and panics with *adt.TypeConstraintError
// if Absent.
func (m Maybe[T]) ExtractUnsafe() T {
	v, err := m.Extract()
	if err != nil {
		panic(err)
	}
	return v
}

func (m Maybe[T]) String() string {
	if m.present {
		return fmt.Sprintf("Present (%v)", m.value)
	}
	return "Absent"
}

func (m Maybe[T]) LogValue() slog.Value {
	if !m.present {
		return slog.GroupValue(slog.String("state", "absent"))
	}
	return slog.GroupValue(slog.String("state", "present"), slog.Any("value", m.value))
}

// Fmap implements adt.Mappable. The result is a Maybe[any].
func (m Maybe[T]) Fmap(fn func(any) any) adt.Mappable {
	if m.present {
		return Present[any](fn(m.value))
	}
	return Absent[any]()
}

// Ap implements adt.Appliable. The value must be a unary function when both
// m and arg are Present.
func (m Maybe[T]) Ap(arg adt.Appliable) adt.Appliable {
	other := mustMaybe("apply", arg)
	if m.present && other.present {
		return Present[any](adt.Invoke(m.value, other.value))
	}
	return Absent[any]()
}

// Bind implements adt.Chainable. fn must return a Maybe.
func (m Maybe[T]) Bind(fn func(any) adt.Chainable) adt.Chainable {
	if m.present {
		return mustMaybe("chain", fn(m.value))
	}
	return Absent[any]()
}

type erasable interface {
	erase() Maybe[any]
}

func (m Maybe[T]) erase() Maybe[any] {
	if m.present {
		return Present[any](m.value)
	}
	return Absent[any]()
}

func mustMaybe(op string, v any) Maybe[any] {
	e, ok := v.(erasable)
	if !ok {
		panic(adt.NewTypeConstraintError(op, v, "expected a Maybe"))
	}
	return e.erase()
}

func fromErased[T any](a adt.Appliable) Maybe[T] {
	e := mustMaybe("narrow", a)
	if e.present {
		return Present(adt.Cast[T](e.value))
	}
	return Absent[T]()
}

func pureAny(x any) adt.Appliable {
	return Present[any](x)
}
