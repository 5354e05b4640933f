// Package rop defines Result[T], the two-track value every fallible step
// returns: a Success holding a value or a Failure holding an optional error.
//
// Callers branch on IsSuccess/IsFailure (or use Get) before reading the
// value. Packages solo and chain build synchronous pipelines on top of it.
package rop
