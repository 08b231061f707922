package draw

import (
	"fmt"
	"math"

	"github.com/Qinka/shanan-cv/internal/tensor"
)

// BBox draws the rectangle outline of box with the given color and stroke
// thickness, clipping silently against the tensor bounds. If the box
// carries a label or confidence, the text is rendered just above its
// top-left corner (inside the box when there is no room above).
// thickness must be >= 1.
func BBox(t *tensor.Tensor, box BoundingBox, color Color, thickness int) error {
	if thickness < 1 {
		return fmt.Errorf("%w: thickness %d must be >= 1", tensor.ErrInvalidParameter, thickness)
	}

	x0 := int(math.Round(float64(box.X)))
	y0 := int(math.Round(float64(box.Y)))
	w := int(math.Round(float64(box.Width)))
	h := int(math.Round(float64(box.Height)))
	if w <= 0 || h <= 0 {
		return nil
	}
	x1 := x0 + w - 1
	y1 := y0 + h - 1

	// Horizontal bands (top, bottom), then vertical bands (left, right).
	for i := 0; i < thickness && i < h; i++ {
		for x := x0; x <= x1; x++ {
			setPixel(t, x, y0+i, color)
			setPixel(t, x, y1-i, color)
		}
	}
	for i := 0; i < thickness && i < w; i++ {
		for y := y0; y <= y1; y++ {
			setPixel(t, x0+i, y, color)
			setPixel(t, x1-i, y, color)
		}
	}

	if caption := box.caption(); caption != "" {
		const scale = 1.0
		ty := y0 - textHeight(scale) - 1
		if ty < 0 {
			ty = y0 + thickness + 1
		}
		Text(t, caption, x0, ty, color, scale)
	}
	return nil
}

// caption formats the optional label and confidence, e.g. "cat 0.97".
func (b BoundingBox) caption() string {
	switch {
	case b.Label != "" && b.HasConfidence:
		return fmt.Sprintf("%s %.2f", b.Label, b.Confidence)
	case b.Label != "":
		return b.Label
	case b.HasConfidence:
		return fmt.Sprintf("%.2f", b.Confidence)
	default:
		return ""
	}
}
