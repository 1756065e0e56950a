package group

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/fnkit/pkg/rop"
)

func await[T any](ctx context.Context, o *option, aw rop.Awaiter[T]) rop.Result[T] {
	if rop.IsNil(aw) {
		return rop.Fail[T](rop.ErrNoResult)
	}
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	return aw.Await(ctx)
}

// All awaits every input concurrently and succeeds with the values in input
// order. The first failure cancels the context of the remaining inputs and
// becomes the result.
func All[T any](aws []rop.Awaiter[T], opts ...Option) *rop.AsyncResult[[]T] {
	o := newOption(opts)
	return rop.NewAsync(func(ctx context.Context) ([]T, error) {
		values := make([]T, len(aws))
		g, gctx := errgroup.WithContext(ctx)
		if o.procs > 0 {
			g.SetLimit(o.procs)
		}
		for i, aw := range aws {
			g.Go(func() error {
				v, err := await(gctx, o, aw).Get()
				if err != nil {
					return err
				}
				values[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return values, nil
	})
}

// Settle awaits every input and never fails: each slot holds the resolved
// Result of the input at the same index.
func Settle[T any](aws []rop.Awaiter[T], opts ...Option) *rop.AsyncResult[[]rop.Result[T]] {
	o := newOption(opts)
	return rop.NewAsync(func(ctx context.Context) ([]rop.Result[T], error) {
		return settle(ctx, o, aws), nil
	})
}

// Collect is Settle followed by rop.Combine: it fails with every error
// joined when any input failed.
func Collect[T any](aws []rop.Awaiter[T], opts ...Option) *rop.AsyncResult[[]T] {
	o := newOption(opts)
	return rop.NewAsync(func(ctx context.Context) ([]T, error) {
		return rop.Combine(settle(ctx, o, aws)...).Get()
	})
}

func settle[T any](ctx context.Context, o *option, aws []rop.Awaiter[T]) []rop.Result[T] {
	results := make([]rop.Result[T], len(aws))
	var g errgroup.Group
	if o.procs > 0 {
		g.SetLimit(o.procs)
	}
	for i, aw := range aws {
		g.Go(func() error {
			results[i] = await(ctx, o, aw)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Race resolves to whichever input resolves first, success or failure. The
// others are awaited with a cancelled context once there is a winner. Procs
// is ignored: every input has to be started. With no inputs it fails with
// rop.ErrNoResult.
func Race[T any](aws []rop.Awaiter[T], opts ...Option) *rop.AsyncResult[T] {
	o := newOption(opts)
	return rop.NewAsync(func(ctx context.Context) (T, error) {
		if len(aws) == 0 {
			var zero T
			return zero, rop.ErrNoResult
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		first := make(chan rop.Result[T], len(aws))
		for _, aw := range aws {
			go func() {
				first <- await(ctx, o, aw)
			}()
		}
		return (<-first).Get()
	})
}

// Sequence awaits the inputs one after another and stops at the first
// failure; later inputs are never awaited.
func Sequence[T any](aws []rop.Awaiter[T], opts ...Option) *rop.AsyncResult[[]T] {
	o := newOption(opts)
	return rop.NewAsync(func(ctx context.Context) ([]T, error) {
		values := make([]T, 0, len(aws))
		for _, aw := range aws {
			v, err := await(ctx, o, aw).Get()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	})
}

// Reduce awaits the inputs in order and folds them with f, starting from the
// first value.
func Reduce[T any](f func(acc, v T) T, aws []rop.Awaiter[T], opts ...Option) *rop.AsyncResult[T] {
	return rop.MapTryAsync(Sequence(aws, opts...), func(values []T) (T, error) {
		if len(values) == 0 {
			var zero T
			return zero, rop.ErrNoResult
		}
		acc := values[0]
		for _, v := range values[1:] {
			acc = f(acc, v)
		}
		return acc, nil
	})
}

// Filter awaits every input like All and keeps the values accepted by keep.
func Filter[T any](keep func(T) bool, aws []rop.Awaiter[T], opts ...Option) *rop.AsyncResult[[]T] {
	return All(aws, opts...).Map(func(values []T) []T {
		out := make([]T, 0, len(values))
		for _, v := range values {
			if keep(v) {
				out = append(out, v)
			}
		}
		return out
	})
}
