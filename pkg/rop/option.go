package rop

import (
	"fmt"
	"iter"
)

// Option is a value that may be absent. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr is Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) ValueOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// ValueOrElse is ValueOr with a lazily built default.
func (o Option[T]) ValueOrElse(fallback func() T) T {
	if o.some {
		return o.value
	}
	return fallback()
}

// Unwrap returns the value or panics with an *UnwrapError wrapping ErrNone.
func (o Option[T]) Unwrap() T {
	return o.Expect("")
}

func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(&UnwrapError{Msg: msg, Err: ErrNone})
	}
	return o.value
}

func (o Option[T]) Map(f func(T) T) Option[T] {
	return MapOption(o, f)
}

// Filter keeps the value only when keep accepts it.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.some && keep(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) FlatMap(f func(T) Option[T]) Option[T] {
	return FlatMap(o, f)
}

// OkOr turns o into a Result, failing with err when o is None.
func (o Option[T]) OkOr(err error) Result[T] {
	if o.some {
		return Success(o.value)
	}
	return Fail[T](err)
}

// All yields the value once when present.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMap applies f, which decides presence itself, to a present value.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.value)
}

// Contains reports whether o holds v.
func Contains[T comparable](o Option[T], v T) bool {
	return o.some && o.value == v
}

// OptionOf drops the error of r: Some(value) on success, None otherwise.
func OptionOf[T any](r Result[T]) Option[T] {
	if r.IsSuccess() {
		return Some(r.value)
	}
	return None[T]()
}
