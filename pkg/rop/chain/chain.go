package chain

import (
	"context"

	"github.com/ib-77/fnkit/pkg/rop"
	"github.com/ib-77/fnkit/pkg/rop/solo"
)

// Chain binds a stage of a pipeline to the context used to await it.
type Chain[T any] struct {
	ctx   context.Context
	stage *rop.AsyncResult[T]
}

// Start creates a new chain from any awaiter
func Start[T any](ctx context.Context, aw rop.Awaiter[T]) *Chain[T] {
	return &Chain[T]{
		ctx:   ctx,
		stage: rop.FromAwaiter(aw),
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start[T](ctx, rop.Success(value))
}

// FromComputation creates a new chain from a lazy computation
func FromComputation[T any](ctx context.Context, c rop.Computation[T]) *Chain[T] {
	return Start[T](ctx, rop.NewAsync(c))
}

// Result awaits the chain with its context
func (c *Chain[T]) Result() rop.Result[T] {
	return c.stage.Await(c.ctx)
}

// Async returns the stage without awaiting it
func (c *Chain[T]) Async() *rop.AsyncResult[T] {
	return c.stage
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return ThenAsync(c, func(ctx context.Context, v T) rop.Awaiter[U] {
		return onSuccess(ctx, v)
	})
}

// ThenAsync chains a function that starts another asynchronous stage
func ThenAsync[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Awaiter[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		stage: rop.ThenAsync(c.stage, func(v T) rop.Awaiter[U] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		stage: rop.MapTryAsync(c.stage, func(v T) (U, error) {
			return tryOnSuccess(c.ctx, v)
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		stage: rop.Map(c.stage, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		stage: c.stage.Map(func(v T) T {
			onSuccess(c.ctx, v)
			return v
		}),
	}
}

// OrElse recovers a failed chain with fallback
func (c *Chain[T]) OrElse(fallback func(context.Context, rop.Result[T]) rop.Awaiter[T]) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		stage: c.stage.OrElse(func(failed rop.Result[T]) rop.Awaiter[T] {
			return fallback(c.ctx, failed)
		}),
	}
}

// Finally awaits the chain and collapses it using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.Result(), onSuccess, onFailure)
}
