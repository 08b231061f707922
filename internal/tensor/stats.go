package tensor

import "fmt"

// Histogram buckets per-pixel intensity over [0, 1] into bins counts.
// Intensity is the raw value for single-channel tensors, the BT.601
// luminance of the first three channels for 3- and 4-channel tensors, and
// the channel mean otherwise. The bucket index is floor(v*bins) clamped to
// [0, bins-1], so out-of-range values land in the end buckets. The counts
// sum to width*height.
func (t *Tensor) Histogram(bins int) ([]int, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("%w: bin count %d must be positive", ErrInvalidParameter, bins)
	}

	counts := make([]int, bins)
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			v := t.intensity(x, y)
			idx := int(float64(v) * float64(bins))
			if idx < 0 {
				idx = 0
			} else if idx >= bins {
				idx = bins - 1
			}
			counts[idx]++
		}
	}
	return counts, nil
}

func (t *Tensor) intensity(x, y int) float32 {
	switch {
	case t.channels == 1:
		return t.at(x, y, 0)
	case t.channels >= 3:
		return luminance(t.at(x, y, 0), t.at(x, y, 1), t.at(x, y, 2))
	default:
		var sum float32
		for c := 0; c < t.channels; c++ {
			sum += t.at(x, y, c)
		}
		return sum / float32(t.channels)
	}
}
