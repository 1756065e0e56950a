// Package solo contains context-aware helpers over a single rop.Result. They
// build on the combinators of package rop and keep its short-circuit rules.
//
// Highlights:
// - Validate/AndValidate/ValidateAll: turn checks into failures, optionally
//   collecting every failure into one joined error
// - Switch/Map/Try: move from Result[In] to Result[Out]
// - Tee/TeeIf/DoubleTee/Logged: side effects that keep the result
// - Finally: reduce to a concrete value via success/error handlers
// - Join: run a sequence of steps with a custom merge
package solo
