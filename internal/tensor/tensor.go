// Package tensor implements the HWC pixel tensor and the pure transforms
// that operate on it.
package tensor

import (
	"fmt"

	"github.com/Qinka/shanan-cv/internal/backend/cpu"
	"github.com/Qinka/shanan-cv/internal/compute"
)

// defaultExecutor sweeps kernels for tensors that were not given an
// explicit executor. Stateless and safe to share.
var defaultExecutor compute.Executor = cpu.New()

// Tensor is an image held as a flat float32 buffer in row-major,
// channel-interleaved (HWC) order: index = (y*width + x)*channels + c.
//
// Color samples are conceptually normalized to [0, 1]. Transforms do not
// clamp intermediate values; clamping happens only where documented
// (Sobel magnitude, 8-bit export).
//
// A Tensor exclusively owns its buffer. Pure transforms never alias their
// input: they allocate and return a new Tensor.
type Tensor struct {
	width    int
	height   int
	channels int
	data     []float32
	exec     compute.Executor
}

// New creates a tensor over data, which must have exactly
// width*height*channels samples. The buffer is owned by the returned
// tensor; the caller must not retain it.
func New(width, height, channels int, data []float32) (*Tensor, error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: extents %dx%dx%d must be positive", ErrInvalidDimensions, width, height, channels)
	}
	if len(data) != width*height*channels {
		return nil, fmt.Errorf("%w: buffer length %d, want %d (%dx%dx%d)",
			ErrInvalidDimensions, len(data), width*height*channels, width, height, channels)
	}
	return &Tensor{width: width, height: height, channels: channels, data: data}, nil
}

// NewZero creates a zero-filled tensor.
func NewZero(width, height, channels int) (*Tensor, error) {
	return New(width, height, channels, make([]float32, width*height*channels))
}

// NewFull creates a tensor with every sample set to value.
func NewFull(width, height, channels int, value float32) (*Tensor, error) {
	t, err := NewZero(width, height, channels)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Width returns the tensor width in pixels.
func (t *Tensor) Width() int { return t.width }

// Height returns the tensor height in pixels.
func (t *Tensor) Height() int { return t.height }

// Channels returns the number of interleaved channels.
func (t *Tensor) Channels() int { return t.channels }

// Data returns the underlying HWC buffer. Mutating it mutates the tensor.
func (t *Tensor) Data() []float32 { return t.data }

// WithExecutor sets the executor used by this tensor's transforms and
// returns the tensor for chaining. Outputs inherit the executor.
func (t *Tensor) WithExecutor(ex compute.Executor) *Tensor {
	t.exec = ex
	return t
}

// Executor returns the executor transforms on this tensor run under.
func (t *Tensor) Executor() compute.Executor {
	if t.exec == nil {
		return defaultExecutor
	}
	return t.exec
}

// Clone returns a deep copy sharing no buffer with t.
func (t *Tensor) Clone() *Tensor {
	data := make([]float32, len(t.data))
	copy(data, t.data)
	return &Tensor{width: t.width, height: t.height, channels: t.channels, data: data, exec: t.exec}
}

// At returns the sample at (x, y, c), or ErrOutOfBounds if any index
// exceeds the tensor extents. No clamping is performed.
func (t *Tensor) At(x, y, c int) (float32, error) {
	if !t.inBounds(x, y, c) {
		return 0, fmt.Errorf("%w: (%d, %d, %d) outside %dx%dx%d", ErrOutOfBounds, x, y, c, t.width, t.height, t.channels)
	}
	return t.data[t.index(x, y, c)], nil
}

// Set writes the sample at (x, y, c), or returns ErrOutOfBounds.
func (t *Tensor) Set(x, y, c int, v float32) error {
	if !t.inBounds(x, y, c) {
		return fmt.Errorf("%w: (%d, %d, %d) outside %dx%dx%d", ErrOutOfBounds, x, y, c, t.width, t.height, t.channels)
	}
	t.data[t.index(x, y, c)] = v
	return nil
}

func (t *Tensor) inBounds(x, y, c int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height && c >= 0 && c < t.channels
}

func (t *Tensor) index(x, y, c int) int {
	return (y*t.width+x)*t.channels + c
}

// at reads without bounds checks. Callers must guarantee validity.
func (t *Tensor) at(x, y, c int) float32 {
	return t.data[(y*t.width+x)*t.channels+c]
}

// sample reads with clamp-to-edge boundary handling: out-of-range x or y
// are replaced by the nearest valid coordinate. c must be valid.
func (t *Tensor) sample(x, y, c int) float32 {
	if x < 0 {
		x = 0
	} else if x >= t.width {
		x = t.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.height {
		y = t.height - 1
	}
	return t.data[(y*t.width+x)*t.channels+c]
}

// newLike allocates a zero output tensor with the given extents, carrying
// over t's executor so chained transforms stay on the same backend.
func (t *Tensor) newLike(width, height, channels int) *Tensor {
	return &Tensor{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]float32, width*height*channels),
		exec:     t.exec,
	}
}
