// Package futures provides an implementation of a Future which represents an asynchronous computation.
// A Future can be created and then passed around and read by multiple consumers.  This is the key difference
// between a Future and using a channel for an asynchronous computation as a channel value can only be read once.
//
// A Future resolves to a result.Result carrying either a success of type S or a typed failure of type F.
// The error returned by Get is reserved for the machinery around the computation, such as cancellation
// or shutdown, and never carries the computation's own failure.
package futures

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/abevier/rsk/result"
)

var (
	// ErrCanceled is the error reported when a future is completed by calling Cancel
	ErrCanceled = errors.New("future canceled")
)

// FutureFunc is the function signature required to create a Future via FromFunc
type FutureFunc[S any, F any] func() result.Result[S, F]

// Future is a structure that represents an asynchronous computation.
// A Future should be created by calling New() or using the FromFunc convience function.
// Once a future has been created it can be completed exactly once.  The first completion value
// wins and all other completions are silently ignored.
//
// The functions Complete, Succeed, Fail, Abort and Cancel will all complete a future.
// Complete resolves the future with a result.Result
// Succeed and Fail are shorthands that resolve it with a success or a failure result
// Abort is used for signaling that the result will never arrive because of an error
// Cancel is used to signal that the asynchronous computation was canceled
//
// Get is used to extract the result and an error from the Future.  If the future has not been
// completed calling Get will block until the future completes or until the context is canceled.
// Get can be called by multiple go routines simultaneously and they will all receive the same result.
type Future[S any, F any] struct {
	isCompleted uint32
	completed   chan struct{}

	res result.Result[S, F]
	err error
}

// New creates a new uncompleted Future that will eventually resolve to a result carrying an S or an F.
// This future must be manually completed by calling Complete, Succeed, Fail, Abort, or Cancel
func New[S any, F any]() *Future[S, F] {
	return &Future[S, F]{
		completed: make(chan struct{}),
	}
}

// FromFunc creates a new uncompleted Future that will eventually contain the result of the provided function.
// The provided function is run asynchronously when this function is invoked.
func FromFunc[S any, F any](do FutureFunc[S, F]) *Future[S, F] {
	f := New[S, F]()

	go func() {
		f.Complete(do())
	}()

	return f
}

// Complete completes this Future with the provided result.  If the future has already been completed this call is ignored.
func (f *Future[S, F]) Complete(res result.Result[S, F]) {
	f.internalComplete(res, nil)
}

// Succeed completes this Future with a success result carrying the provided value.
// If the future has already been completed this call is ignored.
func (f *Future[S, F]) Succeed(value S) {
	f.Complete(result.Success[S, F](value))
}

// Fail completes this Future with a failure result carrying the provided failure value.
// If the future has already been completed this call is ignored.
func (f *Future[S, F]) Fail(failure F) {
	f.Complete(result.Failure[S, F](failure))
}

// Cancel completes this Future with the ErrCanceled error.  If the future has already been completed this call is ignored.
func (f *Future[S, F]) Cancel() {
	f.Abort(ErrCanceled)
}

// Abort completes this Future with the provided error instead of a result.
// If the future has already been completed this call is ignored.
func (f *Future[S, F]) Abort(err error) {
	f.internalComplete(result.Result[S, F]{}, err)
}

func (f *Future[S, F]) internalComplete(res result.Result[S, F], err error) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.res = res
		f.err = err
		close(f.completed)
	}
}

// Get retrieves the result of this Future.  If the future is not yet completed this call will block until the future is
// completed or until the provided context is canceled.
func (f *Future[S, F]) Get(ctx context.Context) (result.Result[S, F], error) {
	select {
	case <-f.completed:
		return f.res, f.err
	case <-ctx.Done():
		return result.Result[S, F]{}, context.Canceled
	}
}
