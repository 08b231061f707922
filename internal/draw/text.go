package draw

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Qinka/shanan-cv/internal/tensor"
)

// face is the built-in 7x13 bitmap face used for annotation text. It
// covers printable ASCII; runes without a glyph are skipped by the
// rasterizer.
var face = basicfont.Face7x13

// Text renders s starting at pixel (x, y) (top-left of the first glyph)
// in the given color. Glyph size is proportional to scale (1.0 draws the
// face at its native 7x13 cell). Characters falling outside the tensor are
// clipped. scale must be positive.
func Text(t *tensor.Tensor, s string, x, y int, c Color, scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("%w: scale %v must be positive", tensor.ErrInvalidParameter, scale)
	}
	if s == "" {
		return nil
	}

	mask := rasterize(s)
	b := mask.Bounds()
	outW := int(float64(b.Dx()) * scale)
	outH := int(float64(b.Dy()) * scale)

	for dy := 0; dy < outH; dy++ {
		srcY := int(float64(dy) / scale)
		for dx := 0; dx < outW; dx++ {
			srcX := int(float64(dx) / scale)
			if mask.AlphaAt(srcX, srcY).A >= 128 {
				setPixel(t, x+dx, y+dy, c)
			}
		}
	}
	return nil
}

// textHeight returns the pixel height of one text line at the given scale.
func textHeight(scale float64) int {
	return int(float64(face.Height) * scale)
}

// rasterize draws s into a fresh alpha mask at the face's native size.
func rasterize(s string) *image.Alpha {
	w := font.MeasureString(face, s).Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, w, face.Height))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(color.Alpha{A: 255}),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)
	return mask
}
