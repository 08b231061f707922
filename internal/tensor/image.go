package tensor

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// FromBytes creates a tensor from a packed 8-bit pixel buffer (gray for 1
// channel, RGB for 3, RGBA for 4), normalizing each sample to [0, 1] by
// dividing by 255.
func FromBytes(width, height, channels int, pix []byte) (*Tensor, error) {
	if len(pix) != width*height*channels {
		return nil, fmt.Errorf("%w: pixel buffer length %d, want %d",
			ErrInvalidDimensions, len(pix), width*height*channels)
	}
	data := make([]float32, len(pix))
	for i, p := range pix {
		data[i] = float32(p) / 255
	}
	return New(width, height, channels, data)
}

// ToBytes exports the tensor as a packed 8-bit buffer, multiplying each
// sample by 255, rounding, and clamping to [0, 255]. This is the only
// point where values are clamped on the way out.
func (t *Tensor) ToBytes() []byte {
	out := make([]byte, len(t.data))
	for i, v := range t.data {
		out[i] = quantize(v)
	}
	return out
}

func quantize(v float32) byte {
	q := math.Round(float64(v) * 255)
	if q < 0 {
		return 0
	}
	if q > 255 {
		return 255
	}
	return byte(q)
}

// FromImage converts a decoded image into a tensor. *image.Gray becomes a
// 1-channel tensor, *image.RGBA and *image.NRGBA become 4 channels, and
// any other image type is read through its generic color model as 3-channel
// RGB. All samples are normalized to [0, 1].
func FromImage(img image.Image) (*Tensor, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		data := make([]float32, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				data[y*w+x] = float32(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y) / 255
			}
		}
		return New(w, h, 1, data)

	case *image.RGBA:
		data := make([]float32, w*h*4)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				px := src.RGBAAt(b.Min.X+x, b.Min.Y+y)
				i := (y*w + x) * 4
				data[i] = float32(px.R) / 255
				data[i+1] = float32(px.G) / 255
				data[i+2] = float32(px.B) / 255
				data[i+3] = float32(px.A) / 255
			}
		}
		return New(w, h, 4, data)

	case *image.NRGBA:
		data := make([]float32, w*h*4)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				px := src.NRGBAAt(b.Min.X+x, b.Min.Y+y)
				i := (y*w + x) * 4
				data[i] = float32(px.R) / 255
				data[i+1] = float32(px.G) / 255
				data[i+2] = float32(px.B) / 255
				data[i+3] = float32(px.A) / 255
			}
		}
		return New(w, h, 4, data)

	default:
		data := make([]float32, w*h*3)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, bv, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				i := (y*w + x) * 3
				data[i] = float32(r>>8) / 255
				data[i+1] = float32(g>>8) / 255
				data[i+2] = float32(bv>>8) / 255
			}
		}
		return New(w, h, 3, data)
	}
}

// ToImage exports the tensor as a standard library image: *image.Gray for
// 1 channel, *image.RGBA for 3 (opaque alpha) or 4 channels. Samples are
// denormalized with rounding and clamped to [0, 255]. Other channel counts
// return ErrUnsupportedChannelCount.
func (t *Tensor) ToImage() (image.Image, error) {
	switch t.channels {
	case 1:
		img := image.NewGray(image.Rect(0, 0, t.width, t.height))
		for y := 0; y < t.height; y++ {
			for x := 0; x < t.width; x++ {
				img.SetGray(x, y, color.Gray{Y: quantize(t.at(x, y, 0))})
			}
		}
		return img, nil

	case 3:
		img := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
		for y := 0; y < t.height; y++ {
			for x := 0; x < t.width; x++ {
				img.SetRGBA(x, y, color.RGBA{
					R: quantize(t.at(x, y, 0)),
					G: quantize(t.at(x, y, 1)),
					B: quantize(t.at(x, y, 2)),
					A: 255,
				})
			}
		}
		return img, nil

	case 4:
		img := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
		for y := 0; y < t.height; y++ {
			for x := 0; x < t.width; x++ {
				img.SetRGBA(x, y, color.RGBA{
					R: quantize(t.at(x, y, 0)),
					G: quantize(t.at(x, y, 1)),
					B: quantize(t.at(x, y, 2)),
					A: quantize(t.at(x, y, 3)),
				})
			}
		}
		return img, nil

	default:
		return nil, fmt.Errorf("%w: cannot export %d channels as an image", ErrUnsupportedChannelCount, t.channels)
	}
}
