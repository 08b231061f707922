package tensor

import "math"

// Sobel 3x3 horizontal gradient kernel; the vertical kernel is its
// transpose.
var sobelGx = [3][3]float64{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

// Sobel computes gradient magnitude per channel with the fixed 3x3 Sobel
// kernels. Each output sample is sqrt(Gx^2 + Gy^2) clamped to [0, 1].
// Borders use clamp-to-edge. A constant input yields an all-zero output.
func (t *Tensor) Sobel() (*Tensor, error) {
	out := t.newLike(t.width, t.height, t.channels)
	t.Executor().ForEach(t.width, t.height, func(x, y int) {
		for c := 0; c < t.channels; c++ {
			var gx, gy float64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					v := float64(t.sample(x+dx, y+dy, c))
					gx += sobelGx[dy+1][dx+1] * v
					gy += sobelGx[dx+1][dy+1] * v
				}
			}
			mag := math.Sqrt(gx*gx + gy*gy)
			if mag > 1 {
				mag = 1
			}
			out.data[out.index(x, y, c)] = float32(mag)
		}
	})
	return out, nil
}
