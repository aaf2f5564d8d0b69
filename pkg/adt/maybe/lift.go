package maybe

import "github.com/ib-77/adt/pkg/adt"

// Lift2 turns fn into a function over Maybe arguments. The result is Absent
// if any argument is Absent.
func Lift2[A, B, R any](fn func(A, B) R) func(Maybe[A], Maybe[B]) Maybe[R] {
	return func(a Maybe[A], b Maybe[B]) Maybe[R] {
		return fromErased[R](adt.LiftA2(func(x, y any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y))
		}, a, b))
	}
}

func Lift3[A, B, C, R any](fn func(A, B, C) R) func(Maybe[A], Maybe[B], Maybe[C]) Maybe[R] {
	return func(a Maybe[A], b Maybe[B], c Maybe[C]) Maybe[R] {
		return fromErased[R](adt.LiftA3(func(x, y, z any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y), adt.Cast[C](z))
		}, a, b, c))
	}
}

func Lift4[A, B, C, D, R any](fn func(A, B, C, D) R) func(Maybe[A], Maybe[B], Maybe[C], Maybe[D]) Maybe[R] {
	return func(a Maybe[A], b Maybe[B], c Maybe[C], d Maybe[D]) Maybe[R] {
		return fromErased[R](adt.LiftA4(func(x, y, z, w any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y), adt.Cast[C](z), adt.Cast[D](w))
		}, a, b, c, d))
	}
}

func Lift5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R) func(Maybe[A], Maybe[B], Maybe[C], Maybe[D], Maybe[E]) Maybe[R] {
	return func(a Maybe[A], b Maybe[B], c Maybe[C], d Maybe[D], e Maybe[E]) Maybe[R] {
		return fromErased[R](adt.LiftA5(func(x, y, z, w, v any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y), adt.Cast[C](z), adt.Cast[D](w), adt.Cast[E](v))
		}, a, b, c, d, e))
	}
}

func Lift6[A, B, C, D, E, F, R any](fn func(A, B, C, D, E, F) R) func(Maybe[A], Maybe[B], Maybe[C], Maybe[D], Maybe[E], Maybe[F]) Maybe[R] {
	return func(a Maybe[A], b Maybe[B], c Maybe[C], d Maybe[D], e Maybe[E], f Maybe[F]) Maybe[R] {
		return fromErased[R](adt.LiftA6(func(x, y, z, w, v, u any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y), adt.Cast[C](z), adt.Cast[D](w), adt.Cast[E](v), adt.Cast[F](u))
		}, a, b, c, d, e, f))
	}
}

// Traverse applies fn to each item and collects the Present values in order.
// A single Absent makes the whole result Absent.
func Traverse[T, U any](fn func(T) Maybe[U], items []T) Maybe[[]U] {
	res := adt.Traverse(pureAny, func(x any) adt.Appliable {
		return fn(adt.Cast[T](x))
	}, adt.EraseSlice(items))
	return Map(fromErased[[]any](res), adt.CastSlice[U])
}

// Sequence turns a slice of Maybe into a Maybe of slice.
func Sequence[T any](items []Maybe[T]) Maybe[[]T] {
	return Traverse(adt.Identity[Maybe[T]], items)
}

// TakeLeft returns a if both a and b are Present.
func TakeLeft[A, B any](a Maybe[A], b Maybe[B]) Maybe[A] {
	return fromErased[A](adt.TakeLeft(a, b))
}

// TakeRight returns b if both a and b are Present.
func TakeRight[A, B any](a Maybe[A], b Maybe[B]) Maybe[B] {
	return fromErased[B](adt.TakeRight(a, b))
}
