// Package parallel provides parallel execution utilities for pixel loops.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinRows    int  // Minimum rows per invocation before going parallel.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinRows:    32,
	}
}

// ForRows executes f(y) for y in [0, rows) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or the
// grid is too small to amortize goroutine overhead.
//
// f must not write outside its own row's output region; rows are
// scheduled in contiguous chunks, one chunk per worker.
func ForRows(rows int, f func(y int), cfg Config) {
	if !cfg.Enabled || rows < cfg.MinRows {
		for y := 0; y < rows; y++ {
			f(y)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := max((rows+cfg.NumWorkers-1)/cfg.NumWorkers, 1)

	for start := 0; start < rows; start += chunk {
		end := min(start+chunk, rows)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for y := s; y < e; y++ {
				f(y)
			}
		}(start, end)
	}
	wg.Wait()
}
