package rop

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"
)

type state uint8

const (
	stateEmpty state = iota
	stateSuccess
	stateFailure
)

// Result is a resolved outcome: either a success carrying a value or a
// failure carrying an error. It is immutable; every combinator returns a new
// Result. The zero value is empty and behaves as a failure with
// ErrEmptyResult.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	state     state
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		state:     stateSuccess,
	}
}

// Fail panics with ErrNilError when err is nil: a failure must carry a cause.
func Fail[T any](err error) Result[T] {
	if err == nil {
		panic(ErrNilError)
	}
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		state:     stateFailure,
	}
}

// Of builds a Result from a (value, error) pair. A non-nil err wins and v is
// dropped.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// Try runs f and converts its error or panic into a failure.
func Try[T any](f func() (T, error)) Result[T] {
	return Of[T](catch(f))
}

// failFrom moves a failure to another value type, keeping id and timestamp.
func failFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.Err(),
		state:     stateFailure,
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	if r.state == stateEmpty {
		return ErrEmptyResult
	}
	return r.err
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.Err()
}

func (r Result[T]) ValueOr(def T) T {
	if r.IsSuccess() {
		return r.value
	}
	return def
}

func (r Result[T]) IsSuccess() bool {
	return r.state == stateSuccess
}

func (r Result[T]) IsFailure() bool {
	return r.state != stateSuccess
}

func (r Result[T]) IsEmpty() bool {
	return r.state == stateEmpty
}

// All yields the value or the error once. An empty result yields nothing.
func (r Result[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if !r.IsEmpty() {
			yield(r.value, r.err)
		}
	}
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Await returns r. It never blocks; it lets a Result stand in wherever an
// Awaiter is expected.
func (r Result[T]) Await(context.Context) Result[T] {
	return r
}

func (r Result[T]) MapValue(f func(T) T) Result[T] {
	return MapValue(r, f)
}

func (r Result[T]) MapTry(f func(T) (T, error)) Result[T] {
	return MapTry(r, f)
}

func (r Result[T]) Then(f func(T) Result[T]) Result[T] {
	return Then(r, f)
}

func (r Result[T]) OrElse(fallback func(Result[T]) Result[T]) Result[T] {
	return OrElse(r, fallback)
}

func (r Result[T]) MapErr(f func(error) error) Result[T] {
	return MapErr(r, f)
}

func (r Result[T]) MapAsync(f func(T) Awaiter[T]) *AsyncResult[T] {
	return MapAsync(r, f)
}

// Unwrap returns the value or panics with an *UnwrapError wrapping the cause.
func (r Result[T]) Unwrap() T {
	return unwrap(r, "")
}

// Expect is Unwrap with msg attached to the panic.
func (r Result[T]) Expect(msg string) T {
	return unwrap(r, msg)
}

func unwrap[T any](r Result[T], msg string) T {
	if r.IsSuccess() {
		return r.value
	}
	panic(&UnwrapError{Msg: msg, Err: r.Err()})
}
