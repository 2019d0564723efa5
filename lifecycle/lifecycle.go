package lifecycle

import (
	"context"
	"sync"
)

// Lifecycle tracks background goroutines that must be stopped and waited
// for before their owner releases shared resources.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return &Lifecycle{ctx: ctx, cancel: cancel, wg: sync.WaitGroup{}}
}

// Go runs fn in a goroutine tracked by the lifecycle.
func (lc *Lifecycle) Go(fn func()) {
	lc.Started()
	go func() {
		defer lc.Done()
		fn()
	}()
}

func (lc *Lifecycle) Started() {
	lc.wg.Add(1)
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

func (lc *Lifecycle) Done() {
	lc.wg.Done()
}

// Stop signals every tracked goroutine and waits for them to return.
func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}
