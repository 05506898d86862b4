// Package parallel runs independent tasks on a fixed number of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool executes submitted tasks. A pool of one worker runs every task
// inline in Do.
type Pool struct {
	wg      sync.WaitGroup
	workers int
	work    chan func()
	close   func()
}

// Start launches a pool of numWorkers goroutines, GOMAXPROCS when
// numWorkers < 1.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		close:   func() {},
	}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

func (p *Pool) Workers() int {
	return p.workers
}

// Do runs f on the pool, blocking while every worker is busy and the queue
// is full. Do must not be called after Wait.
func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait stops accepting tasks and returns once every submitted task is done.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}
