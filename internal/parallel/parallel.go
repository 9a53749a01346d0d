// Package parallel provides the worker fan-out used to run independent
// derivative passes concurrently.
//
// Unlike element-wise loops, a derivative pass is a full expression
// evaluation: per-item cost is high and item counts are small (one per
// input for a forward-mode Jacobian). Work is therefore handed out one
// index at a time over a channel instead of being chunked.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls pass-level parallelism.
type Config struct {
	Enabled    bool // Whether concurrent passes are enabled.
	NumWorkers int  // Number of worker goroutines.
	MinPasses  int  // Below this many passes, run sequentially.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinPasses:  4, // A couple of passes are cheaper than goroutine setup.
	}
}

// For executes f(i) for i in [0, n). Each invocation must be independent:
// no shared mutable state between passes. Falls back to sequential
// execution when parallelism is disabled or n is small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinPasses || cfg.NumWorkers < 2 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	workers := min(cfg.NumWorkers, n)
	work := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range work {
				f(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		work <- i
	}
	close(work)
	wg.Wait()
}
