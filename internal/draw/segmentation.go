package draw

import (
	"fmt"

	"github.com/Qinka/shanan-cv/internal/tensor"
)

// DefaultPalette is the class color table used by MulticlassSegmentation
// when the caller does not supply one. Classes beyond its length wrap
// around.
var DefaultPalette = []Color{
	{R: 1, G: 0, B: 0},
	{R: 0, G: 1, B: 0},
	{R: 0, G: 0, B: 1},
	{R: 1, G: 1, B: 0},
	{R: 1, G: 0, B: 1},
	{R: 0, G: 1, B: 1},
	{R: 1, G: 0.5, B: 0},
	{R: 0.5, G: 0, B: 1},
	{R: 0, G: 0.5, B: 0.5},
	{R: 0.5, G: 0.5, B: 0},
}

// SegmentationMask alpha-blends color into every pixel where mask is set:
// out = (1-alpha)*base + alpha*color. mask is row-major with one entry per
// pixel and must cover exactly width*height entries.
func SegmentationMask(t *tensor.Tensor, mask []bool, color Color, alpha float32) error {
	if len(mask) != t.Width()*t.Height() {
		return fmt.Errorf("%w: mask length %d, want %d (%dx%d)",
			tensor.ErrInvalidDimensions, len(mask), t.Width()*t.Height(), t.Width(), t.Height())
	}
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			if mask[y*t.Width()+x] {
				blendPixel(t, x, y, color, alpha)
			}
		}
	}
	return nil
}

// MulticlassSegmentation blends a per-class color into every pixel whose
// class id is positive; class 0 is background and stays untouched. classes
// is row-major with one id per pixel. A nil palette selects
// DefaultPalette; class ids beyond the palette wrap around.
func MulticlassSegmentation(t *tensor.Tensor, classes []int, palette []Color, alpha float32) error {
	if len(classes) != t.Width()*t.Height() {
		return fmt.Errorf("%w: class map length %d, want %d (%dx%d)",
			tensor.ErrInvalidDimensions, len(classes), t.Width()*t.Height(), t.Width(), t.Height())
	}
	if palette == nil {
		palette = DefaultPalette
	}
	if len(palette) == 0 {
		return fmt.Errorf("%w: empty palette", tensor.ErrInvalidParameter)
	}
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			class := classes[y*t.Width()+x]
			if class <= 0 {
				continue
			}
			blendPixel(t, x, y, palette[(class-1)%len(palette)], alpha)
		}
	}
	return nil
}
