package ratelimiter

import (
	"context"

	"github.com/abevier/rsk/futures"
	"github.com/abevier/rsk/internal/gate"
	"github.com/abevier/rsk/internal/rsk"
	"github.com/abevier/rsk/result"
	"golang.org/x/time/rate"
)

// RunFunction is the function invoked for each submitted task once the rate limiter
// has allowed it to run.
type RunFunction[T any, R any, F any] func(ctx context.Context, task T) result.Result[R, F]

// RateLimiter runs submitted tasks no faster than the configured rate.  Tasks that
// have been allowed to run are executed concurrently, each on its own go routine.
type RateLimiter[T any, R any, F any] struct {
	limiter  *rate.Limiter
	taskChan chan (rsk.TaskFuture[T, R, F])

	submit rsk.SubmitFunction[T, R, F]
	run    RunFunction[T, R, F]

	g *gate.Gate
}

// New creates a RateLimiter that runs tasks with the provided run function.
// It panics if the provided opts are invalid.
func New[T any, R any, F any](opts Opts, run RunFunction[T, R, F]) *RateLimiter[T, R, F] {
	opts.validate()

	rl := &RateLimiter[T, R, F]{
		limiter:  rate.NewLimiter(opts.Limit, opts.Burst),
		taskChan: make(chan rsk.TaskFuture[T, R, F], opts.MaxQueueDepth),
		submit:   rsk.GetSubmitFunction[T, R, F](rsk.FullQueueStrategy(opts.FullQueueStrategy)),
		run:      run,
		g:        gate.New(),
	}

	rl.startWorker()

	return rl
}

func (rl *RateLimiter[T, R, F]) startWorker() {
	go func() {
		for {
			tf, ok := <-rl.taskChan
			if !ok {
				return
			}

			if err := rl.limiter.Wait(tf.Ctx); err != nil {
				tf.Future.Abort(err)
				continue
			}

			rl.runTask(tf)
		}
	}()
}

func (rl *RateLimiter[T, R, F]) runTask(tf rsk.TaskFuture[T, R, F]) {
	go func() {
		tf.Future.Complete(rl.run(tf.Ctx, tf.Task))
	}()
}

// Submit hands a task to the rate limiter and blocks until its result is available.
// The returned error reports delivery problems only: one of the SubmitF errors, or
// the limiter's wait error if the task's context ends before the limiter admits the
// task.  The task's own outcome, success or failure, is always carried inside the
// returned result.Result.
func (rl *RateLimiter[T, R, F]) Submit(ctx context.Context, task T) (result.Result[R, F], error) {
	f, err := rl.SubmitF(ctx, task)
	if err != nil {
		return result.Result[R, F]{}, err
	}

	return f.Get(ctx)
}

// SubmitF hands a task to the rate limiter and returns a future that will resolve to
// the task's result.  It returns ErrStopped if the rate limiter has been closed,
// ErrQueueFull if the queue is full and the ErrorWhenFull strategy is configured, or
// context.Canceled if the provided context is canceled while waiting for queue space.
func (rl *RateLimiter[T, R, F]) SubmitF(ctx context.Context, task T) (*futures.Future[R, F], error) {
	tf := rsk.NewTaskFuture[T, R, F](ctx, task)

	var submitErr error
	if err := rl.g.Do(func() {
		submitErr = rl.submit(rl.taskChan, tf)
	}); err != nil {
		return nil, ErrStopped
	}
	if submitErr != nil {
		return nil, submitErr
	}

	return tf.Future, nil
}

// Close stops the rate limiter from accepting new tasks.  Tasks that were already
// queued are still run.  Close does not wait for running tasks to finish.  It is
// safe to call Close multiple times and from multiple go routines.
func (rl *RateLimiter[T, R, F]) Close() {
	rl.g.Close(func() {
		close(rl.taskChan)
	})
}
