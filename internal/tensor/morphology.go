package tensor

// Erode replaces each sample with the minimum over a square structuring
// element of the given odd size, per channel, with clamp-to-edge borders.
func (t *Tensor) Erode(size int) (*Tensor, error) {
	return t.morph(size, func(a, b float32) float32 {
		if b < a {
			return b
		}
		return a
	})
}

// Dilate replaces each sample with the maximum over a square structuring
// element of the given odd size, per channel, with clamp-to-edge borders.
// Erode followed by Dilate with the same size (opening) is idempotent on
// regions larger than the structuring element.
func (t *Tensor) Dilate(size int) (*Tensor, error) {
	return t.morph(size, func(a, b float32) float32 {
		if b > a {
			return b
		}
		return a
	})
}

func (t *Tensor) morph(size int, reduce func(a, b float32) float32) (*Tensor, error) {
	if err := checkKernelSize(size); err != nil {
		return nil, err
	}
	radius := size / 2
	out := t.newLike(t.width, t.height, t.channels)
	t.Executor().ForEach(t.width, t.height, func(x, y int) {
		for c := 0; c < t.channels; c++ {
			acc := t.sample(x, y, c)
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					acc = reduce(acc, t.sample(x+dx, y+dy, c))
				}
			}
			out.data[out.index(x, y, c)] = acc
		}
	})
	return out, nil
}
