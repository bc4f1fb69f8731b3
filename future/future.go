// Package future provides a minimal generic future: a value that is resolved
// exactly once by a background computation and can be awaited, polled, or
// chained.
package future

import (
	"context"
	"sync"
)

// State describes where a future is in its lifecycle.
type State string

const (
	// Pending means the future has not settled yet.
	Pending State = "pending"
	// Fulfilled means the future settled with a value.
	Fulfilled State = "fulfilled"
	// Rejected means the future settled with an error.
	Rejected State = "rejected"
)

// Future represents the result of an asynchronous computation.
type Future[T any] struct {
	value T
	err   error
	once  sync.Once
	done  chan struct{}
}

// New returns a pending future and the function that settles it.
// Only the first call to resolve has any effect.
func New[T any]() (*Future[T], func(T, error)) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.resolve
}

// Go runs fn in a new goroutine and returns a future for its result.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f, resolve := New[T]()

	go func() {
		// A context canceled before start never runs fn.
		if err := ctx.Err(); err != nil {
			var zero T
			resolve(zero, err)
			return
		}
		resolve(fn(ctx))
	}()

	return f
}

// Resolved returns a future already fulfilled with v.
func Resolved[T any](v T) *Future[T] {
	f, resolve := New[T]()
	resolve(v, nil)
	return f
}

// Failed returns a future already rejected with err.
func Failed[T any](err error) *Future[T] {
	f, resolve := New[T]()
	var zero T
	resolve(zero, err)
	return f
}

func (f *Future[T]) resolve(v T, err error) {
	f.once.Do(func() {
		f.value = v
		f.err = err
		close(f.done)
	})
}

// Wait blocks until the future settles and returns its result.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}

// Await waits for the future to settle or for ctx to be done, whichever
// comes first. The future itself is unaffected by ctx.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// State reports the current state without blocking.
func (f *Future[T]) State() State {
	select {
	case <-f.done:
		if f.err != nil {
			return Rejected
		}
		return Fulfilled
	default:
		return Pending
	}
}

// Then returns a future settled with fn's result once f settles.
// fn runs on its own goroutine.
func Then[T, U any](f *Future[T], fn func(T, error) (U, error)) *Future[U] {
	next, resolve := New[U]()

	go func() {
		resolve(fn(f.Wait()))
	}()

	return next
}
