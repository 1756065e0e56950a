package rop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

const (
	asyncPending int32 = iota
	asyncRunning
	asyncResolved
)

// AsyncResult wraps a pending computation that resolves exactly once into a
// Result. Combinators return new AsyncResults that describe later stages;
// they do not run anything until awaited.
//
// A run that fails only because the context it was driven with ended is not
// an outcome: the AsyncResult goes back to pending and the next awaiter runs
// it again.
type AsyncResult[T any] struct {
	state atomic.Int32
	run   func(ctx context.Context) Result[T]
	done  chan struct{}
	res   Result[T]

	mu      sync.Mutex
	attempt chan struct{} // closed when the current run ends, guarded by mu
}

func newAsync[T any](run func(ctx context.Context) Result[T]) *AsyncResult[T] {
	return &AsyncResult[T]{
		run:  run,
		done: make(chan struct{}),
	}
}

// NewAsync wraps c lazily: c runs on the goroutine of the first Await, with
// that caller's context. It panics with ErrNilComputation if c is nil.
func NewAsync[T any](c Computation[T]) *AsyncResult[T] {
	if c == nil {
		panic(ErrNilComputation)
	}
	return newAsync(func(ctx context.Context) Result[T] {
		return Of[T](c(ctx))
	})
}

// Go starts c on its own goroutine right away.
func Go[T any](ctx context.Context, c Computation[T]) *AsyncResult[T] {
	return NewAsync(c).Start(ctx)
}

// Resolved returns an AsyncResult that is already resolved to r.
func Resolved[T any](r Result[T]) *AsyncResult[T] {
	a := &AsyncResult[T]{
		done: make(chan struct{}),
		res:  r,
	}
	a.state.Store(asyncResolved)
	close(a.done)
	return a
}

// FromAwaiter adapts any Awaiter. An *AsyncResult is returned as is.
func FromAwaiter[T any](aw Awaiter[T]) *AsyncResult[T] {
	switch v := aw.(type) {
	case *AsyncResult[T]:
		if v != nil {
			return v
		}
	case Result[T]:
		return Resolved(v)
	}
	if IsNil(aw) {
		return Resolved(Fail[T](ErrNoResult))
	}
	return newAsync(aw.Await)
}

// Start begins resolving a on a new goroutine if nobody has yet. It returns a.
func (a *AsyncResult[T]) Start(ctx context.Context) *AsyncResult[T] {
	if _, won := a.claim(); won {
		go a.drive(ctx)
	}
	return a
}

// claim moves a pending a to running and reports whether the caller won.
// Otherwise it returns the attempt in progress, nil once a is resolved.
func (a *AsyncResult[T]) claim() (attempt <-chan struct{}, won bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.state.Load() {
	case asyncPending:
		a.attempt = make(chan struct{})
		a.state.Store(asyncRunning)
		return a.attempt, true
	case asyncRunning:
		return a.attempt, false
	}
	return nil, false
}

// drive runs the computation with ctx and caches the outcome unless ctx
// interrupted it.
func (a *AsyncResult[T]) drive(ctx context.Context) Result[T] {
	r := catchResult(func() Result[T] {
		return a.run(ctx)
	})

	a.mu.Lock()
	defer a.mu.Unlock()

	close(a.attempt)
	a.attempt = nil
	if interrupted(ctx, r) {
		a.state.Store(asyncPending)
		return r
	}
	a.res = r
	a.run = nil
	a.state.Store(asyncResolved)
	close(a.done)
	return r
}

// interrupted reports whether r failed only because ctx ended.
func interrupted[T any](ctx context.Context, r Result[T]) bool {
	if r.IsSuccess() || ctx.Err() == nil {
		return false
	}
	err := r.Err()
	return errors.Is(err, ctx.Err()) || errors.Is(err, context.Cause(ctx))
}

// Await blocks until a is resolved and returns the resolved Result. If ctx
// ends first the caller gets a failure with the context cause while a stays
// unresolved for other callers.
func (a *AsyncResult[T]) Await(ctx context.Context) Result[T] {
	if a == nil {
		return Fail[T](ErrNoResult)
	}
	for {
		if a.IsResolved() {
			return a.res
		}
		if ctx.Err() != nil {
			return Fail[T](context.Cause(ctx))
		}

		attempt, won := a.claim()
		if won {
			return a.drive(ctx)
		}
		if attempt == nil {
			return a.res
		}

		select {
		case <-a.done:
			return a.res
		case <-attempt:
			// the driver gave up, take over
		case <-ctx.Done():
			if a.IsResolved() {
				return a.res
			}
			return Fail[T](context.Cause(ctx))
		}
	}
}

// Get is Await split into value and error.
func (a *AsyncResult[T]) Get(ctx context.Context) (T, error) {
	return a.Await(ctx).Get()
}

// Done is closed once a is resolved. A lazy AsyncResult is only resolved
// after Await or Start.
func (a *AsyncResult[T]) Done() <-chan struct{} {
	return a.done
}

func (a *AsyncResult[T]) IsResolved() bool {
	return a.state.Load() == asyncResolved
}

func (a *AsyncResult[T]) Map(f func(T) T) *AsyncResult[T] {
	return Map(a, f)
}

func (a *AsyncResult[T]) MapTry(f func(T) (T, error)) *AsyncResult[T] {
	return MapTryAsync(a, f)
}

func (a *AsyncResult[T]) MapErr(f func(error) error) *AsyncResult[T] {
	return MapErrAsync(a, f)
}

func (a *AsyncResult[T]) MapAsync(f func(T) Awaiter[T]) *AsyncResult[T] {
	return ThenAsync(a, f)
}

func (a *AsyncResult[T]) OrElse(fn func(Result[T]) Awaiter[T]) *AsyncResult[T] {
	return OrElseAsync(a, fn)
}

// Unwrap awaits a and returns its value, or panics with an *UnwrapError
// whose cause is the failure.
func (a *AsyncResult[T]) Unwrap(ctx context.Context) T {
	return unwrap(a.Await(ctx), "")
}

func (a *AsyncResult[T]) Expect(ctx context.Context, msg string) T {
	return unwrap(a.Await(ctx), msg)
}

// Map awaits a and applies f to a successful value.
func Map[T, U any](a *AsyncResult[T], f func(T) U) *AsyncResult[U] {
	return newAsync(func(ctx context.Context) Result[U] {
		return MapValue(a.Await(ctx), f)
	})
}

func MapTryAsync[T, U any](a *AsyncResult[T], f func(T) (U, error)) *AsyncResult[U] {
	return newAsync(func(ctx context.Context) Result[U] {
		return MapTry(a.Await(ctx), f)
	})
}

func MapErrAsync[T any](a *AsyncResult[T], f func(error) error) *AsyncResult[T] {
	return newAsync(func(ctx context.Context) Result[T] {
		return MapErr(a.Await(ctx), f)
	})
}

// ThenAsync awaits a, then awaits the stage f builds from its value.
func ThenAsync[T, U any](a *AsyncResult[T], f func(T) Awaiter[U]) *AsyncResult[U] {
	return newAsync(func(ctx context.Context) Result[U] {
		return bindAwait(ctx, a.Await(ctx), f)
	})
}

// OrElseAsync awaits a and, if it failed, adopts the outcome of fn. A failure
// caused only by the waiter's context ending is returned without calling fn.
func OrElseAsync[T any](a *AsyncResult[T], fn func(Result[T]) Awaiter[T]) *AsyncResult[T] {
	return newAsync(func(ctx context.Context) Result[T] {
		r := a.Await(ctx)
		if r.IsSuccess() {
			return r
		}
		if interrupted(ctx, r) {
			return r
		}
		next, err := catch(func() (Awaiter[T], error) {
			return fn(r), nil
		})
		if err != nil {
			return Fail[T](err)
		}
		if IsNil(next) {
			return Fail[T](ErrNoResult)
		}
		return next.Await(ctx)
	})
}
