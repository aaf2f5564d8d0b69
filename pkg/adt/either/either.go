package either

import (
	"fmt"
	"log/slog"

	"github.com/ib-77/adt/pkg/adt"
)

type Either[L, R any] struct {
	preferred   bool
	alternative L
	value       R
}

func Alternative[L, R any](alternative L) Either[L, R] {
	return Either[L, R]{alternative: alternative}
}

func Preferred[L, R any](value R) Either[L, R] {
	return Either[L, R]{preferred: true, value: value}
}

// Pure is Preferred, named for the applicative laws.
func Pure[L, R any](value R) Either[L, R] {
	return Preferred[L](value)
}

func (e Either[L, R]) IsAlternative() bool {
	return !e.preferred
}

func (e Either[L, R]) IsPreferred() bool {
	return e.preferred
}

// GetAlternative returns the Alternative value and true, or zero and false.
func (e Either[L, R]) GetAlternative() (L, bool) {
	if e.preferred {
		var zero L
		return zero, false
	}
	return e.alternative, true
}

// GetPreferred returns the Preferred value and true, or zero and false.
func (e Either[L, R]) GetPreferred() (R, bool) {
	if !e.preferred {
		var zero R
		return zero, false
	}
	return e.value, true
}

func (e Either[L, R]) WithDefault(defaultValue R) R {
	if e.preferred {
		return e.value
	}
	return defaultValue
}

func (e Either[L, R]) String() string {
	if e.preferred {
		return fmt.Sprintf("Preferred (%v)", e.value)
	}
	return fmt.Sprintf("Alternative (%v)", e.alternative)
}

func (e Either[L, R]) LogValue() slog.Value {
	if e.preferred {
		return slog.GroupValue(slog.String("state", "preferred"), slog.Any("value", e.value))
	}
	return slog.GroupValue(slog.String("state", "alternative"), slog.Any("value", e.alternative))
}

// Fmap implements adt.Mappable. The result is an Either[any, any].
func (e Either[L, R]) Fmap(fn func(any) any) adt.Mappable {
	if e.preferred {
		return Preferred[any, any](fn(e.value))
	}
	return Alternative[any, any](e.alternative)
}

// Ap implements adt.Appliable. The receiver's Alternative wins over the
// argument's Alternative.
func (e Either[L, R]) Ap(arg adt.Appliable) adt.Appliable {
	other := mustEither("apply", arg)
	switch {
	case e.preferred && other.preferred:
		return Preferred[any, any](adt.Invoke(e.value, other.value))
	case !e.preferred:
		return Alternative[any, any](e.alternative)
	default:
		return Alternative[any, any](other.alternative)
	}
}

// Bind implements adt.Chainable. fn must return an Either.
func (e Either[L, R]) Bind(fn func(any) adt.Chainable) adt.Chainable {
	if e.preferred {
		return mustEither("chain", fn(e.value))
	}
	return Alternative[any, any](e.alternative)
}

type erasable interface {
	erase() Either[any, any]
}

func (e Either[L, R]) erase() Either[any, any] {
	if e.preferred {
		return Preferred[any, any](e.value)
	}
	return Alternative[any, any](e.alternative)
}

func mustEither(op string, v any) Either[any, any] {
	e, ok := v.(erasable)
	if !ok {
		panic(adt.NewTypeConstraintError(op, v, "expected an Either"))
	}
	return e.erase()
}

func fromErased[L, R any](a adt.Appliable) Either[L, R] {
	e := mustEither("narrow", a)
	if e.preferred {
		return Preferred[L](adt.Cast[R](e.value))
	}
	return Alternative[L, R](adt.Cast[L](e.alternative))
}

func pureAny(x any) adt.Appliable {
	return Preferred[any, any](x)
}
