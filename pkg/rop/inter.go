package rop

import "context"

// Awaiter is anything that eventually resolves to a Result. Result and
// *AsyncResult both implement it, so pipelines can mix sync and async stages.
type Awaiter[T any] interface {
	// Await blocks until the outcome is known or ctx is done.
	Await(ctx context.Context) Result[T]
}

// Computation is a pending operation owned by an AsyncResult.
type Computation[T any] func(ctx context.Context) (T, error)

var (
	_ Awaiter[int] = Result[int]{}
	_ Awaiter[int] = (*AsyncResult[int])(nil)
)
