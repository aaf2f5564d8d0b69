// Package either provides Either[L, R], a box holding exactly one of an
// Alternative (L) or a Preferred (R) value.
//
// Operations act on Preferred and pass Alternative through unchanged, unless
// the operation targets the alternative side explicitly (MapAlternative,
// BiMap). Either[error, T] is the usual shape for fallible results, and
// FromResult, Try, Validate and ValidateAll build exactly that.
package either
