package gate

import (
	"errors"
	"runtime"
	"sync/atomic"
)

const (
	open     = 0
	closed   = 1
	minusOne = ^uint32(0)
)

var (
	ErrClosed = errors.New("gate is closed")
)

// Gate admits work while open and coordinates a single close action that
// runs only after all admitted work has finished.  It makes sending on a
// task channel safe against closing that channel.
type Gate struct {
	isClosed  uint32
	activeCnt uint32

	closed chan struct{}
}

func New() *Gate {
	return &Gate{
		closed: make(chan struct{}),
	}
}

// Do runs f if the gate is still open and returns ErrClosed otherwise.
// The gate's close action will not run while any call to Do is in flight.
func (g *Gate) Do(f func()) error {
	atomic.AddUint32(&g.activeCnt, 1)
	defer atomic.AddUint32(&g.activeCnt, minusOne)

	if atomic.LoadUint32(&g.isClosed) == closed {
		return ErrClosed
	}

	f()
	return nil
}

// Close closes the gate, runs f exactly once after every admitted call to Do
// has returned, and then unblocks.  Close may be called any number of times
// from any number of go routines; every call blocks until the close action
// has finished and only the first call runs f.
func (g *Gate) Close(f func()) {
	if atomic.CompareAndSwapUint32(&g.isClosed, open, closed) {
		go func() {
			for atomic.LoadUint32(&g.activeCnt) != 0 {
				// busy wait while yielding until all calls to Do have exited
				runtime.Gosched()
			}

			f()

			close(g.closed)
		}()
	}

	<-g.closed
}
