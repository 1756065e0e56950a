package solo

import (
	"context"
	"errors"

	"github.com/ib-77/fnkit/pkg/rop"
	"github.com/ib-77/fnkit/pkg/xlog"
)

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, rop.Success(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	return rop.Then(input, func(in T) rop.Result[T] {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return rop.Fail[T](errors.New(errMsg))
		}
		return input
	})
}

// ValidateAll runs every validator against input. With breakOnError it stops
// at the first failure, otherwise all failures are joined into one error.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T]) rop.Result[T] {

			if current.IsFailure() {
				e := rop.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return current
			}

			return rop.Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	return rop.Then(input, func(r In) rop.Result[Out] {
		return onSuccess(ctx, r)
	})
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return rop.MapValue(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return rop.MapTry(input, func(r In) (Out, error) {
		return onTryExecute(ctx, r)
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	return rop.Then(input, func(in T) rop.Result[T] {
		if err := maybeErr(ctx, in); err != nil {
			return rop.Fail[T](err)
		}
		return input
	})
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r rop.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(ctx, input.Value())
		}
	} else if onError != nil {
		onError(ctx, input.Err())
	}

	return input
}

// Logged writes input to l (the default logger when nil): successes at debug
// level, failures at warn level. It returns input unchanged.
func Logged[T any](ctx context.Context, input rop.Result[T], l *xlog.Logger, msg string) rop.Result[T] {
	if l == nil {
		l = xlog.Default()
	}
	return DoubleTee(ctx, input,
		func(ctx context.Context, r T) {
			l.Debug(msg, xlog.Rid(input.Id().String()), xlog.Any("value", r))
		},
		func(ctx context.Context, err error) {
			l.Warn(msg, xlog.Rid(input.Id().String()), xlog.Err(err))
		})
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onError(ctx, input.Err())
}

// Join feeds input through steps in order, passing every step's output to
// concat. With breakOnError the first failed step ends the run. A done ctx
// stops the run and returns what was built so far.
func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool,
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	steps ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if concat == nil {
		return input
	}

	current := input
	for _, step := range steps {
		if ctx.Err() != nil {
			break
		}
		current = concat(ctx, step(ctx, current))
		if current.IsFailure() && breakOnError {
			break
		}
	}
	return current
}
