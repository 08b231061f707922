package tensor

import (
	"fmt"
	"math"
	"slices"
)

// checkKernelSize validates the odd, positive kernel-size contract shared
// by the neighborhood filters and morphology.
func checkKernelSize(size int) error {
	if size < 1 || size%2 == 0 {
		return fmt.Errorf("%w: kernel size %d must be odd and >= 1", ErrInvalidParameter, size)
	}
	return nil
}

// MedianFilter replaces each sample with the median of its size×size
// neighborhood, per channel, with clamp-to-edge borders. size must be odd
// and >= 1; there is no even-window tie-break because even sizes are
// rejected.
func (t *Tensor) MedianFilter(size int) (*Tensor, error) {
	if err := checkKernelSize(size); err != nil {
		return nil, err
	}
	radius := size / 2
	out := t.newLike(t.width, t.height, t.channels)
	t.Executor().ForEach(t.width, t.height, func(x, y int) {
		window := make([]float32, 0, size*size)
		for c := 0; c < t.channels; c++ {
			window = window[:0]
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					window = append(window, t.sample(x+dx, y+dy, c))
				}
			}
			slices.Sort(window)
			out.data[out.index(x, y, c)] = window[len(window)/2]
		}
	})
	return out, nil
}

// BilateralFilter smooths while preserving edges: each neighbor is
// weighted by both its spatial distance (sigmaSpatial) and its intensity
// difference from the center sample (sigmaRange), so high-contrast
// neighbors contribute little. The output is the weighted average
// normalized by total weight. size must be odd and >= 1, both sigmas
// positive.
func (t *Tensor) BilateralFilter(size int, sigmaSpatial, sigmaRange float64) (*Tensor, error) {
	if err := checkKernelSize(size); err != nil {
		return nil, err
	}
	if sigmaSpatial <= 0 || sigmaRange <= 0 {
		return nil, fmt.Errorf("%w: sigmas (%v, %v) must be positive", ErrInvalidParameter, sigmaSpatial, sigmaRange)
	}

	radius := size / 2
	twoSpatialSq := 2 * sigmaSpatial * sigmaSpatial
	twoRangeSq := 2 * sigmaRange * sigmaRange

	out := t.newLike(t.width, t.height, t.channels)
	t.Executor().ForEach(t.width, t.height, func(x, y int) {
		for c := 0; c < t.channels; c++ {
			center := float64(t.sample(x, y, c))
			var acc, total float64
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					v := float64(t.sample(x+dx, y+dy, c))
					diff := v - center
					w := math.Exp(-float64(dx*dx+dy*dy)/twoSpatialSq) *
						math.Exp(-diff*diff/twoRangeSq)
					acc += w * v
					total += w
				}
			}
			out.data[out.index(x, y, c)] = float32(acc / total)
		}
	})
	return out, nil
}
