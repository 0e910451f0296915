package rsk

import (
	"context"

	"github.com/abevier/rsk/futures"
)

type TaskFuture[T any, R any, F any] struct {
	Ctx    context.Context
	Task   T
	Future *futures.Future[R, F]
}

func NewTaskFuture[T any, R any, F any](ctx context.Context, task T) TaskFuture[T, R, F] {
	return TaskFuture[T, R, F]{
		Ctx:    ctx,
		Task:   task,
		Future: futures.New[R, F](),
	}
}
