// Package response provides Response[E, T], a snapshot of an asynchronous
// request that is Pending, Resolved(value) or Failed(error).
//
// A Response never changes. A request moving from Pending to Resolved is
// modelled by replacing one Response with another; Snapshot stamps those
// successive values with a shared request id so they can be correlated.
//
// Pending does not mean any work is in flight. The package performs no I/O
// and starts no goroutines.
package response
