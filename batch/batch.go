package batch

import (
	"context"
	"sync"
	"time"

	"github.com/abevier/rsk/internal/gate"
	"github.com/abevier/rsk/result"
)

// RunBatchFunction executes one batch of tasks and returns a result.Result per task,
// in task order.  The error return is for failures of the batch as a whole: when it is
// non-nil every submitter waiting on the batch receives that error instead of a result.
type RunBatchFunction[T any, R any, F any] func(tasks []T) ([]result.Result[R, F], error)

type delivery[R any, F any] struct {
	res result.Result[R, F]
	err error
}

type batch[T any, R any, F any] struct {
	id            int
	tasks         []T
	deliveryChans []chan<- delivery[R, F]
}

func (b *batch[T, R, F]) add(task T, dc chan<- delivery[R, F]) {
	b.tasks = append(b.tasks, task)
	b.deliveryChans = append(b.deliveryChans, dc)
}

func (b *batch[T, R, F]) deliverError(err error) {
	for i := range b.tasks {
		b.deliveryChans[i] <- delivery[R, F]{err: err}
	}
}

// BatchExecutor groups individually submitted tasks into batches.  A batch is run
// when it reaches MaxSize tasks or when MaxLinger has elapsed since the batch was
// started, whichever comes first.
type BatchExecutor[T any, R any, F any] struct {
	m            *sync.Mutex
	sequenceNum  int
	currentBatch *batch[T, R, F]
	run          RunBatchFunction[T, R, F]
	maxSize      int
	maxLinger    time.Duration

	g       *gate.Gate
	waitRun *sync.WaitGroup
}

// NewExecutor creates a BatchExecutor that runs batches with the provided run function.
// It panics if the provided opts are invalid.
func NewExecutor[T any, R any, F any](opts Opts, run RunBatchFunction[T, R, F]) *BatchExecutor[T, R, F] {
	opts.validate()

	return &BatchExecutor[T, R, F]{
		m:           &sync.Mutex{},
		sequenceNum: 0,
		run:         run,
		maxSize:     opts.MaxSize,
		maxLinger:   opts.MaxLinger,
		g:           gate.New(),
		waitRun:     &sync.WaitGroup{},
	}
}

// Submit adds a task to the current batch and blocks until the batch has run.  The
// returned error reports delivery problems only: ErrStopped if the executor has been
// closed, ErrBatchResultMismatch or the run function's own error if the batch could
// not produce per task results, or context.Canceled if the provided context is
// canceled while waiting.  The task's outcome is otherwise carried inside the
// returned result.Result.
func (be *BatchExecutor[T, R, F]) Submit(ctx context.Context, task T) (result.Result[R, F], error) {
	dc := make(chan delivery[R, F], 1)

	if err := be.g.Do(func() {
		be.addTask(task, dc)
	}); err != nil {
		return result.Result[R, F]{}, ErrStopped
	}

	select {
	case d := <-dc:
		return d.res, d.err

	case <-ctx.Done():
		return result.Result[R, F]{}, context.Canceled
	}
}

func (be *BatchExecutor[T, R, F]) addTask(task T, dc chan<- delivery[R, F]) {
	be.m.Lock()
	defer be.m.Unlock()

	if be.currentBatch == nil {
		be.currentBatch = be.newBatch()
	}
	be.currentBatch.add(task, dc)

	if len(be.currentBatch.tasks) >= be.maxSize {
		be.dispatch(be.currentBatch)
		be.currentBatch = nil
	}
}

// newBatch must be called while holding the mutex
func (be *BatchExecutor[T, R, F]) newBatch() *batch[T, R, F] {
	be.sequenceNum++

	b := &batch[T, R, F]{
		id:    be.sequenceNum,
		tasks: make([]T, 0, be.maxSize),
	}

	go be.expireBatch(b.id)
	return b
}

func (be *BatchExecutor[T, R, F]) expireBatch(batchId int) {
	time.Sleep(be.maxLinger)

	be.m.Lock()
	defer be.m.Unlock()

	if be.currentBatch != nil && be.currentBatch.id == batchId {
		be.dispatch(be.currentBatch)
		be.currentBatch = nil
	}
}

// dispatch must be called while holding the mutex
func (be *BatchExecutor[T, R, F]) dispatch(b *batch[T, R, F]) {
	be.waitRun.Add(1)
	go be.runBatch(b)
}

func (be *BatchExecutor[T, R, F]) runBatch(b *batch[T, R, F]) {
	defer be.waitRun.Done()

	rs, err := be.run(b.tasks)
	if err != nil {
		b.deliverError(err)
		return
	}

	if len(rs) != len(b.tasks) {
		b.deliverError(ErrBatchResultMismatch)
		return
	}

	for i, r := range rs {
		b.deliveryChans[i] <- delivery[R, F]{res: r}
	}
}

// Close runs the current partial batch if there is one, waits for all in flight
// batches to finish and stops the executor from accepting new tasks.  It is safe
// to call Close multiple times and from multiple go routines.
func (be *BatchExecutor[T, R, F]) Close() {
	be.g.Close(func() {
		be.m.Lock()
		defer be.m.Unlock()

		if be.currentBatch != nil {
			be.dispatch(be.currentBatch)
			be.currentBatch = nil
		}
	})

	be.waitRun.Wait()
}
