// Package maybe provides Maybe[T], an immutable box that is either
// Present(value) or Absent.
//
// Operations that need the value skip Absent and return a new Absent:
// - Present/Absent/Pure: construct a Maybe
// - From, FromNullable, FromUndefined, FromTruthy, FromPtr, FromOk: build from plain values
// - FromEither/FromResponse and ToEither/ToResponseAsPending/ToResponseAsFailed: conversions
// - Map/Apply/Chain: typed functor, applicative and monad operations
// - CaseOf/WithDefault/ExtractUnsafe: collapse to a concrete value
// - Lift2..Lift6, Traverse, Sequence: lifting over several boxes
//
// The zero value of Maybe[T] is Absent.
package maybe
