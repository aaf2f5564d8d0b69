package maybe

import (
	"github.com/ib-77/adt/pkg/adt/either"
	"github.com/ib-77/adt/pkg/adt/response"
)

// FromEither keeps the Preferred value and drops the Alternative payload.
func FromEither[L, R any](e either.Either[L, R]) Maybe[R] {
	if v, ok := e.GetPreferred(); ok {
		return Present(v)
	}
	return Absent[R]()
}

// FromResponse keeps the Resolved value. Pending and Failed both become
// Absent; the error payload is lost.
func FromResponse[E, T any](r response.Response[E, T]) Maybe[T] {
	if v, ok := r.GetValue(); ok {
		return Present(v)
	}
	return Absent[T]()
}

// ToEither returns Preferred(value), or Alternative(alternative) if Absent.
func ToEither[L, T any](m Maybe[T], alternative L) either.Either[L, T] {
	if m.present {
		return either.Preferred[L](m.value)
	}
	return either.Alternative[L, T](alternative)
}

// ToResponseAsPending maps Absent to Pending.
func ToResponseAsPending[E, T any](m Maybe[T]) response.Response[E, T] {
	if m.present {
		return response.Resolved[E](m.value)
	}
	return response.Pending[E, T]()
}

// ToResponseAsFailed maps Absent to Failed(err).
func ToResponseAsFailed[E, T any](m Maybe[T], err E) response.Response[E, T] {
	if m.present {
		return response.Resolved[E](m.value)
	}
	return response.Failed[E, T](err)
}
