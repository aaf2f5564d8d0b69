// Package adt holds the capability contracts shared by the maybe, either and
// response containers, together with the generic lifting and traversal
// utilities written once against those contracts.
//
// The contracts are type-erased: payloads travel as any and functions as
// func(any) any. Each container package wraps them in a typed API
// (maybe.Map, either.Lift2, response.Traverse, ...) so callers rarely touch
// this package directly.
package adt
