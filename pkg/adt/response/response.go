package response

import (
	"fmt"
	"log/slog"

	"github.com/ib-77/adt/pkg/adt"
)

type state uint8

const (
	statePending state = iota
	stateResolved
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateResolved:
		return "resolved"
	case stateFailed:
		return "failed"
	default:
		return "pending"
	}
}

type Response[E, T any] struct {
	state state
	value T
	err   E
}

func Pending[E, T any]() Response[E, T] {
	return Response[E, T]{state: statePending}
}

func Resolved[E, T any](value T) Response[E, T] {
	return Response[E, T]{state: stateResolved, value: value}
}

func Failed[E, T any](err E) Response[E, T] {
	return Response[E, T]{state: stateFailed, err: err}
}

// Pure is Resolved, named for the applicative laws.
func Pure[E, T any](value T) Response[E, T] {
	return Resolved[E](value)
}

// FromResult adapts a (value, error) pair.
func FromResult[T any](value T, err error) Response[error, T] {
	if err != nil {
		return Failed[error, T](err)
	}
	return Resolved[error](value)
}

func (r Response[E, T]) IsPending() bool {
	return r.state == statePending
}

func (r Response[E, T]) IsResolved() bool {
	return r.state == stateResolved
}

func (r Response[E, T]) IsFailed() bool {
	return r.state == stateFailed
}

// GetValue returns the Resolved value and true, or zero and false.
func (r Response[E, T]) GetValue() (T, bool) {
	if r.state != stateResolved {
		var zero T
		return zero, false
	}
	return r.value, true
}

// GetError returns the Failed error and true, or zero and false.
func (r Response[E, T]) GetError() (E, bool) {
	if r.state != stateFailed {
		var zero E
		return zero, false
	}
	return r.err, true
}

func (r Response[E, T]) WithDefault(defaultValue T) T {
	if r.state == stateResolved {
		return r.value
	}
	return defaultValue
}

func (r Response[E, T]) String() string {
	switch r.state {
	case stateResolved:
		return fmt.Sprintf("Resolved (%v)", r.value)
	case stateFailed:
		return fmt.Sprintf("Failed (%v)", r.err)
	default:
		return "Pending"
	}
}

func (r Response[E, T]) LogValue() slog.Value {
	switch r.state {
	case stateResolved:
		return slog.GroupValue(slog.String("state", r.state.String()), slog.Any("value", r.value))
	case stateFailed:
		return slog.GroupValue(slog.String("state", r.state.String()), slog.Any("error", r.err))
	default:
		return slog.GroupValue(slog.String("state", r.state.String()))
	}
}

// Fmap implements adt.Mappable. The result is a Response[any, any].
func (r Response[E, T]) Fmap(fn func(any) any) adt.Mappable {
	if r.state == stateResolved {
		return Resolved[any, any](fn(r.value))
	}
	return r.erase()
}

// Ap implements adt.Appliable. Unless both sides are Resolved, a Failed
// receiver wins, then a Failed argument, then Pending.
func (r Response[E, T]) Ap(arg adt.Appliable) adt.Appliable {
	other := mustResponse("apply", arg)
	switch {
	case r.state == stateResolved && other.state == stateResolved:
		return Resolved[any, any](adt.Invoke(r.value, other.value))
	case r.state == stateFailed:
		return Failed[any, any](r.err)
	case other.state == stateFailed:
		return Failed[any, any](other.err)
	default:
		return Pending[any, any]()
	}
}

// Bind implements adt.Chainable. fn must return a Response.
func (r Response[E, T]) Bind(fn func(any) adt.Chainable) adt.Chainable {
	if r.state == stateResolved {
		return mustResponse("chain", fn(r.value))
	}
	return r.erase()
}

type erasable interface {
	erase() Response[any, any]
}

func (r Response[E, T]) erase() Response[any, any] {
	switch r.state {
	case stateResolved:
		return Resolved[any, any](r.value)
	case stateFailed:
		return Failed[any, any](r.err)
	default:
		return Pending[any, any]()
	}
}

func mustResponse(op string, v any) Response[any, any] {
	e, ok := v.(erasable)
	if !ok {
		panic(adt.NewTypeConstraintError(op, v, "expected a Response"))
	}
	return e.erase()
}

func fromErased[E, T any](a adt.Appliable) Response[E, T] {
	r := mustResponse("narrow", a)
	switch r.state {
	case stateResolved:
		return Resolved[E](adt.Cast[T](r.value))
	case stateFailed:
		return Failed[E, T](adt.Cast[E](r.err))
	default:
		return Pending[E, T]()
	}
}

func pureAny(x any) adt.Appliable {
	return Resolved[any, any](x)
}
