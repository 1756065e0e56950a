// Package group combines many rop.Awaiter values into one rop.AsyncResult.
//
// Every combinator is lazy like rop.NewAsync: nothing is awaited until the
// returned AsyncResult is. Concurrency is bounded with [Procs] and each input
// can be given its own deadline with [Timeout].
//
//	users := []rop.Awaiter[User]{loadUser(1), loadUser(2), loadUser(3)}
//	all, err := group.All(users, group.Procs(2)).Get(ctx)
package group
