package batch

import "errors"

var (
	// ErrBatchResultMismatch is returned by Submit when the run function returned a number
	// of results that does not match the number of tasks in the batch.
	ErrBatchResultMismatch = errors.New("number of results does not match the number of tasks")
	// ErrStopped is returned by Submit after the executor has been closed.
	ErrStopped = errors.New("batch executor has been stopped")
)
