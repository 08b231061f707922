// Package compute defines the per-pixel execution contract shared by all
// pure tensor transforms.
//
// Every transform in this library is expressed as a Kernel: a function that
// fills exactly one output pixel from a read-only view of its input. An
// Executor decides how the kernel is swept over the output grid. Because no
// two kernel invocations write the same pixel, an executor may run them in
// any order and with any degree of parallelism without changing results.
package compute

// Kernel computes one output pixel at (x, y). Implementations read shared
// input state but must write only to the (x, y) cell of their output.
type Kernel func(x, y int)

// Executor sweeps a Kernel over a width×height output grid.
//
// Implementations:
//   - Sequential: single-threaded baseline, defined here.
//   - backend/cpu: row-parallel over worker goroutines.
//
// A device-offloaded executor can satisfy the same contract as long as the
// per-pixel math stays on the Go side or is compiled equivalently.
type Executor interface {
	// ForEach invokes k once for every (x, y) with 0 <= x < width and
	// 0 <= y < height, returning only after all invocations complete.
	ForEach(width, height int, k Kernel)

	// Name identifies the executor (e.g. "Sequential", "CPU").
	Name() string
}

// Sequential runs kernels one pixel at a time in row-major order.
type Sequential struct{}

// NewSequential returns the single-threaded executor.
func NewSequential() Sequential { return Sequential{} }

// ForEach implements Executor.
func (Sequential) ForEach(width, height int, k Kernel) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			k(x, y)
		}
	}
}

// Name implements Executor.
func (Sequential) Name() string { return "Sequential" }
