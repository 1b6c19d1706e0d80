package invoke

import (
	"context"

	"github.com/samber/mo"

	"github.com/jvens/fsresult/fserr"
)

// Future is the pending outcome of a non-blocking call. It settles exactly
// once.
type Future[T any] struct {
	done chan struct{}
	res  mo.Result[T]
}

// Go starts fn on its own goroutine and returns a future for its result.
// fn always runs exactly once and is never interrupted.
func Go[T any](fn func() mo.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		f.settle(fn())
	}()
	return f
}

func (f *Future[T]) settle(r mo.Result[T]) {
	f.res = r
	close(f.done)
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Result returns the settled result, or false if the future is pending.
func (f *Future[T]) Result() (mo.Result[T], bool) {
	select {
	case <-f.done:
		return f.res, true
	default:
		return mo.Result[T]{}, false
	}
}

// Await blocks until the future settles or ctx is done. ctx bounds only the
// caller's wait: when it ends first, Await returns the classified context
// error, which says nothing about the operation. The operation keeps running
// and the future still settles with its own result.
func (f *Future[T]) Await(ctx context.Context) mo.Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		// Prefer a result that raced with cancellation.
		select {
		case <-f.done:
			return f.res
		default:
		}
		return mo.Err[T](fserr.Classify(ctx.Err()))
	}
}
