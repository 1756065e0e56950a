// Package chain provides a fluent wrapper that carries a context through a
// pipeline of rop stages, so sync and async steps can be mixed without
// passing the context to every Await.
//
// Stages are lazy: nothing runs until Result or Finally awaits the chain.
//
// Key operations:
// - Start/FromValue/FromComputation: begin a chain
// - Then: switch to a new Result[U] via a function
// - ThenAsync: continue with another asynchronous stage
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - OrElse: recover from a failure
// - Finally: collapse the chain into a final value via handlers
package chain
