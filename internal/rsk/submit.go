package rsk

import (
	"context"
	"errors"
	"log"
)

var (
	ErrQueueFull = errors.New("task queue is full")
	ErrStopped   = errors.New("task queue has been stopped")
)

type FullQueueStrategy int

const (
	BlockWhenFull FullQueueStrategy = iota
	ErrorWhenFull
)

type SubmitFunction[T any, R any, F any] func(taskChan chan<- TaskFuture[T, R, F], tf TaskFuture[T, R, F]) error

func GetSubmitFunction[T any, R any, F any](s FullQueueStrategy) SubmitFunction[T, R, F] {
	switch s {
	case BlockWhenFull:
		return blockWhenFullStrategy[T, R, F]
	case ErrorWhenFull:
		return errorWhenFullStrategy[T, R, F]
	default:
		log.Panicf("invalid submit strategy value %d", s)
	}
	return blockWhenFullStrategy[T, R, F]
}

func blockWhenFullStrategy[T any, R any, F any](taskChan chan<- TaskFuture[T, R, F], t TaskFuture[T, R, F]) error {
	select {
	case taskChan <- t:
		return nil
	case <-t.Ctx.Done():
		return context.Canceled
	}
}

func errorWhenFullStrategy[T any, R any, F any](taskChan chan<- TaskFuture[T, R, F], t TaskFuture[T, R, F]) error {
	select {
	case taskChan <- t:
		return nil
	default:
		return ErrQueueFull
	}
}
