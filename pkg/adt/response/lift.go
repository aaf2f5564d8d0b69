package response

import "github.com/ib-77/adt/pkg/adt"

// Lift2 turns fn into a function over Response arguments. The result is
// Resolved only if every argument is; otherwise the first Failed argument
// wins, then Pending. E cannot be inferred from fn and must be given
// explicitly, as in Lift2[error](fn); the same holds for Lift3..Lift6.
func Lift2[E, A, B, R any](fn func(A, B) R) func(Response[E, A], Response[E, B]) Response[E, R] {
	return func(a Response[E, A], b Response[E, B]) Response[E, R] {
		return fromErased[E, R](adt.LiftA2(func(x, y any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y))
		}, a, b))
	}
}

func Lift3[E, A, B, C, R any](fn func(A, B, C) R) func(Response[E, A], Response[E, B], Response[E, C]) Response[E, R] {
	return func(a Response[E, A], b Response[E, B], c Response[E, C]) Response[E, R] {
		return fromErased[E, R](adt.LiftA3(func(x, y, z any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y), adt.Cast[C](z))
		}, a, b, c))
	}
}

func Lift4[E, A, B, C, D, R any](fn func(A, B, C, D) R) func(Response[E, A], Response[E, B], Response[E, C], Response[E, D]) Response[E, R] {
	return func(a Response[E, A], b Response[E, B], c Response[E, C], d Response[E, D]) Response[E, R] {
		return fromErased[E, R](adt.LiftA4(func(x, y, z, w any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y), adt.Cast[C](z), adt.Cast[D](w))
		}, a, b, c, d))
	}
}

func Lift5[E, A, B, C, D, F, R any](fn func(A, B, C, D, F) R) func(Response[E, A], Response[E, B], Response[E, C], Response[E, D], Response[E, F]) Response[E, R] {
	return func(a Response[E, A], b Response[E, B], c Response[E, C], d Response[E, D], f Response[E, F]) Response[E, R] {
		return fromErased[E, R](adt.LiftA5(func(x, y, z, w, v any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y), adt.Cast[C](z), adt.Cast[D](w), adt.Cast[F](v))
		}, a, b, c, d, f))
	}
}

func Lift6[E, A, B, C, D, F, G, R any](fn func(A, B, C, D, F, G) R) func(Response[E, A], Response[E, B], Response[E, C], Response[E, D], Response[E, F], Response[E, G]) Response[E, R] {
	return func(a Response[E, A], b Response[E, B], c Response[E, C], d Response[E, D], f Response[E, F], g Response[E, G]) Response[E, R] {
		return fromErased[E, R](adt.LiftA6(func(x, y, z, w, v, u any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y), adt.Cast[C](z), adt.Cast[D](w), adt.Cast[F](v), adt.Cast[G](u))
		}, a, b, c, d, f, g))
	}
}

// Traverse applies fn to each item and collects the Resolved values in order.
func Traverse[E, T, U any](fn func(T) Response[E, U], items []T) Response[E, []U] {
	res := adt.Traverse(pureAny, func(x any) adt.Appliable {
		return fn(adt.Cast[T](x))
	}, adt.EraseSlice(items))
	return Map(fromErased[E, []any](res), adt.CastSlice[U])
}

func Sequence[E, T any](items []Response[E, T]) Response[E, []T] {
	return Traverse(adt.Identity[Response[E, T]], items)
}

func TakeLeft[E, A, B any](a Response[E, A], b Response[E, B]) Response[E, A] {
	return fromErased[E, A](adt.TakeLeft(a, b))
}

func TakeRight[E, A, B any](a Response[E, A], b Response[E, B]) Response[E, B] {
	return fromErased[E, B](adt.TakeRight(a, b))
}
