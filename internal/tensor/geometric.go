package tensor

import (
	"fmt"
	"math"
)

// ResizeBilinear resamples the tensor to newWidth×newHeight. Each output
// pixel maps to a fractional source coordinate via the half-pixel-center
// convention src = (dst + 0.5)*(srcDim/dstDim) - 0.5 and is bilinearly
// interpolated from the four nearest samples, with coordinates clamped to
// the valid range at borders. Resizing to the same dimensions is the
// identity.
func (t *Tensor) ResizeBilinear(newWidth, newHeight int) (*Tensor, error) {
	if newWidth <= 0 || newHeight <= 0 {
		return nil, fmt.Errorf("%w: target size %dx%d must be positive", ErrInvalidParameter, newWidth, newHeight)
	}

	scaleX := float64(t.width) / float64(newWidth)
	scaleY := float64(t.height) / float64(newHeight)

	out := t.newLike(newWidth, newHeight, t.channels)
	t.Executor().ForEach(newWidth, newHeight, func(x, y int) {
		srcX := (float64(x)+0.5)*scaleX - 0.5
		srcY := (float64(y)+0.5)*scaleY - 0.5
		for c := 0; c < t.channels; c++ {
			out.data[out.index(x, y, c)] = t.bilinear(srcX, srcY, c)
		}
	})
	return out, nil
}

// Rotate rotates the tensor by angleDegrees about the image center using
// inverse mapping: each output pixel is traced back to its source
// coordinate and bilinearly interpolated. Positive angles rotate clockwise
// in the image's y-down coordinate system. Pixels whose source falls
// outside the input are filled with zero.
func (t *Tensor) Rotate(angleDegrees float64) (*Tensor, error) {
	rad := angleDegrees * math.Pi / 180
	sin, cos := math.Sincos(rad)

	cx := float64(t.width-1) / 2
	cy := float64(t.height-1) / 2

	out := t.newLike(t.width, t.height, t.channels)
	t.Executor().ForEach(t.width, t.height, func(x, y int) {
		// Inverse rotation of the output coordinate.
		dx := float64(x) - cx
		dy := float64(y) - cy
		srcX := cos*dx + sin*dy + cx
		srcY := -sin*dx + cos*dy + cy

		if srcX < 0 || srcX > float64(t.width-1) || srcY < 0 || srcY > float64(t.height-1) {
			return // background stays zero
		}
		for c := 0; c < t.channels; c++ {
			out.data[out.index(x, y, c)] = t.bilinear(srcX, srcY, c)
		}
	})
	return out, nil
}

// bilinear interpolates channel c at a fractional coordinate, clamping
// neighbor indices to the valid range.
func (t *Tensor) bilinear(x, y float64, c int) float32 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	v00 := float64(t.sample(x0, y0, c))
	v10 := float64(t.sample(x0+1, y0, c))
	v01 := float64(t.sample(x0, y0+1, c))
	v11 := float64(t.sample(x0+1, y0+1, c))

	top := v00*(1-fx) + v10*fx
	bottom := v01*(1-fx) + v11*fx
	return float32(top*(1-fy) + bottom*fy)
}
