package rop

import (
	"context"
	"errors"
	"reflect"
	"runtime/debug"

	"github.com/ib-77/fnkit/pkg/xlog"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// catch calls f and turns a panic into a *PanicError.
func catch[T any](f func() (T, error)) (v T, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero T
			v = zero
			err = &PanicError{Value: p, Stack: debug.Stack()}
			xlog.Debug("rop: recovered panic", xlog.Any("panic", p))
		}
	}()
	return f()
}

// catchResult is catch for functions that already return a Result.
func catchResult[T any](f func() Result[T]) Result[T] {
	var r Result[T]
	_, err := catch(func() (struct{}, error) {
		r = f()
		return struct{}{}, nil
	})
	if err != nil {
		return Fail[T](err)
	}
	return r
}
