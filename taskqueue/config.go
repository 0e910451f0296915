package taskqueue

import "github.com/abevier/rsk/internal/rsk"

type FullQueueStrategy rsk.FullQueueStrategy

const (
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(rsk.BlockWhenFull)
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(rsk.ErrorWhenFull)
)

type Opts struct {
	MaxWorkers        int
	MaxQueueDepth     int
	FullQueueStrategy FullQueueStrategy
}

func (o Opts) validate() {
	if o.MaxWorkers < 1 {
		panic("task queue max workers must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("task queue max queue depth must be 0 or greater")
	}
}
