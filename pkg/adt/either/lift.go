package either

import "github.com/ib-77/adt/pkg/adt"

// Lift2 turns fn into a function over Either arguments. The leftmost
// Alternative argument becomes the result. L cannot be inferred from fn and
// must be given explicitly, as in Lift2[error](fn); the same holds for
// Lift3..Lift6.
func Lift2[L, A, B, R any](fn func(A, B) R) func(Either[L, A], Either[L, B]) Either[L, R] {
	return func(a Either[L, A], b Either[L, B]) Either[L, R] {
		return fromErased[L, R](adt.LiftA2(func(x, y any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y))
		}, a, b))
	}
}

func Lift3[L, A, B, C, R any](fn func(A, B, C) R) func(Either[L, A], Either[L, B], Either[L, C]) Either[L, R] {
	return func(a Either[L, A], b Either[L, B], c Either[L, C]) Either[L, R] {
		return fromErased[L, R](adt.LiftA3(func(x, y, z any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y), adt.Cast[C](z))
		}, a, b, c))
	}
}

func Lift4[L, A, B, C, D, R any](fn func(A, B, C, D) R) func(Either[L, A], Either[L, B], Either[L, C], Either[L, D]) Either[L, R] {
	return func(a Either[L, A], b Either[L, B], c Either[L, C], d Either[L, D]) Either[L, R] {
		return fromErased[L, R](adt.LiftA4(func(x, y, z, w any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y), adt.Cast[C](z), adt.Cast[D](w))
		}, a, b, c, d))
	}
}

func Lift5[L, A, B, C, D, E, R any](fn func(A, B, C, D, E) R) func(Either[L, A], Either[L, B], Either[L, C], Either[L, D], Either[L, E]) Either[L, R] {
	return func(a Either[L, A], b Either[L, B], c Either[L, C], d Either[L, D], e Either[L, E]) Either[L, R] {
		return fromErased[L, R](adt.LiftA5(func(x, y, z, w, v any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y), adt.Cast[C](z), adt.Cast[D](w), adt.Cast[E](v))
		}, a, b, c, d, e))
	}
}

func Lift6[L, A, B, C, D, E, F, R any](fn func(A, B, C, D, E, F) R) func(Either[L, A], Either[L, B], Either[L, C], Either[L, D], Either[L, E], Either[L, F]) Either[L, R] {
	return func(a Either[L, A], b Either[L, B], c Either[L, C], d Either[L, D], e Either[L, E], f Either[L, F]) Either[L, R] {
		return fromErased[L, R](adt.LiftA6(func(x, y, z, w, v, u any) any {
			return fn(adt.Cast[A](x), adt.Cast[B](y), adt.Cast[C](z), adt.Cast[D](w), adt.Cast[E](v), adt.Cast[F](u))
		}, a, b, c, d, e, f))
	}
}

// Traverse applies fn to each item and collects the Preferred values in
// order. The first Alternative produced becomes the result.
func Traverse[L, T, U any](fn func(T) Either[L, U], items []T) Either[L, []U] {
	res := adt.Traverse(pureAny, func(x any) adt.Appliable {
		return fn(adt.Cast[T](x))
	}, adt.EraseSlice(items))
	return Map(fromErased[L, []any](res), adt.CastSlice[U])
}

func Sequence[L, T any](items []Either[L, T]) Either[L, []T] {
	return Traverse(adt.Identity[Either[L, T]], items)
}

func TakeLeft[L, A, B any](a Either[L, A], b Either[L, B]) Either[L, A] {
	return fromErased[L, A](adt.TakeLeft(a, b))
}

func TakeRight[L, A, B any](a Either[L, A], b Either[L, B]) Either[L, B] {
	return fromErased[L, B](adt.TakeRight(a, b))
}
