package tensor

import (
	"fmt"
	"math"
)

// GaussianBlur applies a Gaussian blur with the given standard deviation.
// The kernel is built in 1-D with radius ceil(3*sigma), normalized to sum
// 1, and applied separably along rows then columns. Borders use
// clamp-to-edge so edges do not darken. sigma must be positive.
func (t *Tensor) GaussianBlur(sigma float64) (*Tensor, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: sigma %v must be positive", ErrInvalidParameter, sigma)
	}

	kernel := gaussianKernel(sigma)
	radius := len(kernel) / 2

	// Horizontal pass into an intermediate, then vertical into the output.
	mid := t.newLike(t.width, t.height, t.channels)
	t.Executor().ForEach(t.width, t.height, func(x, y int) {
		for c := 0; c < t.channels; c++ {
			var acc float64
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * float64(t.sample(x+k, y, c))
			}
			mid.data[mid.index(x, y, c)] = float32(acc)
		}
	})

	out := t.newLike(t.width, t.height, t.channels)
	t.Executor().ForEach(t.width, t.height, func(x, y int) {
		for c := 0; c < t.channels; c++ {
			var acc float64
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * float64(mid.sample(x, y+k, c))
			}
			out.data[out.index(x, y, c)] = float32(acc)
		}
	})
	return out, nil
}

// gaussianKernel builds a normalized 1-D Gaussian of radius ceil(3*sigma).
func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for k := -radius; k <= radius; k++ {
		w := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		kernel[k+radius] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
