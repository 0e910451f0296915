package taskqueue

import (
	"context"
	"sync"

	"github.com/abevier/rsk/internal/gate"
	"github.com/abevier/rsk/internal/rsk"
	"github.com/abevier/rsk/result"
)

// RunFunction is the function invoked by the queue's workers for each submitted task.
// It returns a result.Result so that a task's failure is an ordinary typed value of type F
// rather than an error.
type RunFunction[T any, R any, F any] func(ctx context.Context, task T) result.Result[R, F]

// TaskQueue runs submitted tasks on a fixed pool of worker go routines and delivers each
// task's result back to the goroutine that submitted it.
type TaskQueue[T any, R any, F any] struct {
	run      RunFunction[T, R, F]
	taskChan chan rsk.TaskFuture[T, R, F]

	submit rsk.SubmitFunction[T, R, F]

	g        *gate.Gate
	waitStop *sync.WaitGroup
}

// New creates a TaskQueue and starts its workers.  It panics if the provided opts are invalid.
func New[T any, R any, F any](opts Opts, run RunFunction[T, R, F]) *TaskQueue[T, R, F] {
	opts.validate()

	waitStop := sync.WaitGroup{}

	tq := &TaskQueue[T, R, F]{
		run:      run,
		taskChan: make(chan rsk.TaskFuture[T, R, F], opts.MaxQueueDepth),
		submit:   rsk.GetSubmitFunction[T, R, F](rsk.FullQueueStrategy(opts.FullQueueStrategy)),
		g:        gate.New(),
		waitStop: &waitStop,
	}

	for i := 0; i < opts.MaxWorkers; i++ {
		waitStop.Add(1)
		go tq.worker(i)
	}

	return tq
}

func (tq *TaskQueue[T, R, F]) worker(workerNum int) {
	defer tq.waitStop.Done()

	for tf := range tq.taskChan {
		if err := tf.Ctx.Err(); err != nil {
			tf.Future.Abort(err)
			continue
		}

		ctx := withWorkerID(tf.Ctx, workerNum)
		tf.Future.Complete(tq.run(ctx, tf.Task))
	}
}

// Submit enqueues a task and blocks until its result is available.  The returned error
// reports delivery problems only: ErrStopped if the queue has been closed, ErrQueueFull
// if the queue is full and the ErrorWhenFull strategy is configured, or a context error,
// context.Canceled or context.DeadlineExceeded, if the provided context ends before the
// task's result is delivered.  The task's own outcome, success or failure, is always
// carried inside the returned result.Result.
func (tq *TaskQueue[T, R, F]) Submit(ctx context.Context, task T) (result.Result[R, F], error) {
	tf := rsk.NewTaskFuture[T, R, F](ctx, task)

	var submitErr error
	if err := tq.g.Do(func() {
		submitErr = tq.submit(tq.taskChan, tf)
	}); err != nil {
		return result.Result[R, F]{}, ErrStopped
	}
	if submitErr != nil {
		return result.Result[R, F]{}, submitErr
	}

	return tf.Future.Get(ctx)
}

// Close stops the queue from accepting new tasks, lets already queued tasks drain and waits
// for all workers to exit.  It is safe to call Close multiple times and from multiple
// go routines.  Submissions racing with Close either complete normally or return ErrStopped.
func (tq *TaskQueue[T, R, F]) Close() {
	tq.g.Close(func() {
		close(tq.taskChan)
	})

	tq.waitStop.Wait()
}
