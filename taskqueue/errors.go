package taskqueue

import "github.com/abevier/rsk/internal/rsk"

var (
	// ErrQueueFull is returned by Submit when the queue is full and the ErrorWhenFull strategy is configured.
	ErrQueueFull = rsk.ErrQueueFull
	// ErrStopped is returned by Submit after the queue has been closed.
	ErrStopped = rsk.ErrStopped
)
