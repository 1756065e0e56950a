// Package rop holds the two result containers of fnkit and their
// combinators.
//
// Result[T] is an already resolved outcome, success or failure. AsyncResult[T]
// wraps a pending Computation and resolves into a Result exactly once.
//
// Combinators short-circuit: on a failure the function argument is never
// called and the error is passed on unchanged. A panic inside a function
// argument is recovered and stored as a *PanicError failure, so a pipeline
// never panics midway. Unwrap and Expect are the only calls that panic on a
// failure.
//
// Type-changing combinators are package functions (MapValue, Then, MapAsync,
// Map, ThenAsync, ...). The methods are the same-type shorthand and call the
// functions.
package rop
