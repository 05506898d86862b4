package parallel_test

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"walrus/parallel"
)

func TestPool(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		pool := parallel.Start(workers)
		assert.Equal(t, workers, pool.Workers())

		var n atomic.Int64
		for i := range 100 {
			pool.Do(func() { n.Add(int64(i)) })
		}
		pool.Wait()
		assert.Equal(t, int64(4950), n.Load(), "workers %d", workers)

		// waiting again is harmless
		pool.Wait()
	}
}

func TestPoolDefaultSize(t *testing.T) {
	pool := parallel.Start(0)
	assert.Equal(t, runtime.GOMAXPROCS(0), pool.Workers())
	pool.Wait()
}
