package taskqueue

import (
	"context"
	"strconv"
)

type workerIDKey struct{}

// withWorkerID tags the context handed to the run function with the id of the
// worker that runs the task.
func withWorkerID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, workerIDKey{}, "worker-"+strconv.Itoa(id))
}

// WorkerIDFromContext attempts to retrieve a worker id string from the current context.
// The TaskQueue itself never logs; callers that want to log which worker ran a task can
// read the id from the context passed to their run function.
func WorkerIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(workerIDKey{}).(string)
	return v, ok
}
