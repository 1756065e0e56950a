package rop

import "context"

// MapValue applies f to the value of a successful r. A panic in f becomes a
// failure holding a *PanicError. A failed r is passed on and f is not called.
func MapValue[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.IsFailure() {
		return failFrom[T, U](r)
	}
	return Of[U](catch(func() (U, error) {
		return f(r.value), nil
	}))
}

// Chain is MapValue under the name used by pipeline-style callers.
func Chain[T, U any](r Result[T], f func(T) U) Result[U] {
	return MapValue(r, f)
}

// MapTry is MapValue for functions that report failure with an error.
func MapTry[T, U any](r Result[T], f func(T) (U, error)) Result[U] {
	if r.IsFailure() {
		return failFrom[T, U](r)
	}
	return Of[U](catch(func() (U, error) {
		return f(r.value)
	}))
}

// Then binds f, which builds the next Result itself.
func Then[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.IsFailure() {
		return failFrom[T, U](r)
	}
	return catchResult(func() Result[U] {
		return f(r.value)
	})
}

// OrElse returns fallback(r) when r failed and r itself otherwise.
func OrElse[T any](r Result[T], fallback func(Result[T]) Result[T]) Result[T] {
	if r.IsSuccess() {
		return r
	}
	return catchResult(func() Result[T] {
		return fallback(r)
	})
}

// MapErr replaces the error of a failed r with f(err). If f returns nil the
// result fails with ErrNilError; use OrElse to recover.
func MapErr[T any](r Result[T], f func(error) error) Result[T] {
	if r.IsSuccess() {
		return r
	}
	mapped, err := catch(func() (error, error) {
		return f(r.Err()), nil
	})
	if err != nil {
		return Fail[T](err)
	}
	if mapped == nil {
		return Fail[T](ErrNilError)
	}
	return Fail[T](mapped)
}

// MapAsync starts an asynchronous stage from a resolved r. f is called only
// when the returned AsyncResult is awaited, and only if r succeeded.
func MapAsync[T, U any](r Result[T], f func(T) Awaiter[U]) *AsyncResult[U] {
	if r.IsFailure() {
		return Resolved(failFrom[T, U](r))
	}
	return newAsync(func(ctx context.Context) Result[U] {
		return bindAwait(ctx, r, f)
	})
}

// Unwrap returns the value of r or panics with an *UnwrapError.
func Unwrap[T any](r Result[T]) T {
	return unwrap(r, "")
}

func Expect[T any](r Result[T], msg string) T {
	return unwrap(r, msg)
}

func bindAwait[T, U any](ctx context.Context, r Result[T], f func(T) Awaiter[U]) Result[U] {
	if r.IsFailure() {
		return failFrom[T, U](r)
	}
	next, err := catch(func() (Awaiter[U], error) {
		return f(r.value), nil
	})
	if err != nil {
		return Fail[U](err)
	}
	if IsNil(next) {
		return Fail[U](ErrNoResult)
	}
	return next.Await(ctx)
}
