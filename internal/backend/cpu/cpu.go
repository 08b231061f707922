// Package cpu implements the default row-parallel CPU executor.
package cpu

import (
	"github.com/Qinka/shanan-cv/internal/compute"
	"github.com/Qinka/shanan-cv/internal/parallel"
)

// CPUExecutor sweeps kernels over the output grid, parallelizing across
// rows. Small grids fall back to sequential execution to avoid goroutine
// overhead (threshold from parallel.Config.MinRows).
type CPUExecutor struct {
	cfg parallel.Config
}

// New creates a CPU executor with defaults based on runtime.NumCPU.
func New() *CPUExecutor {
	return &CPUExecutor{cfg: parallel.DefaultConfig()}
}

// NewWithConfig creates a CPU executor with an explicit parallelism config.
func NewWithConfig(cfg parallel.Config) *CPUExecutor {
	return &CPUExecutor{cfg: cfg}
}

// ForEach implements compute.Executor. Rows are distributed across workers;
// within a row the kernel runs left to right.
func (e *CPUExecutor) ForEach(width, height int, k compute.Kernel) {
	parallel.ForRows(height, func(y int) {
		for x := 0; x < width; x++ {
			k(x, y)
		}
	}, e.cfg)
}

// Name implements compute.Executor.
func (e *CPUExecutor) Name() string { return "CPU" }

var _ compute.Executor = (*CPUExecutor)(nil)
