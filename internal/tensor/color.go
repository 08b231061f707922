package tensor

import (
	"fmt"
	"math"
)

// ITU-R BT.601 luminance weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// luminance computes the BT.601 weighted sum of an RGB triple.
func luminance(r, g, b float32) float32 {
	return lumaR*r + lumaG*g + lumaB*b
}

// Grayscale converts a 3- or 4-channel tensor to a single luminance
// channel using the BT.601 weights. An alpha channel is dropped. Other
// channel counts return ErrUnsupportedChannelCount.
func (t *Tensor) Grayscale() (*Tensor, error) {
	if t.channels != 3 && t.channels != 4 {
		return nil, fmt.Errorf("%w: grayscale needs 3 or 4 channels, got %d", ErrUnsupportedChannelCount, t.channels)
	}
	out := t.newLike(t.width, t.height, 1)
	t.Executor().ForEach(t.width, t.height, func(x, y int) {
		out.data[y*out.width+x] = luminance(t.at(x, y, 0), t.at(x, y, 1), t.at(x, y, 2))
	})
	return out, nil
}

// RGBToHSV converts a 3-channel RGB tensor to HSV. Hue is normalized to
// [0, 1) rather than degrees; saturation and value are in [0, 1]. When
// saturation is zero the hue is undefined and set to 0.
func (t *Tensor) RGBToHSV() (*Tensor, error) {
	if t.channels != 3 {
		return nil, fmt.Errorf("%w: RGB to HSV needs 3 channels, got %d", ErrUnsupportedChannelCount, t.channels)
	}
	out := t.newLike(t.width, t.height, 3)
	t.Executor().ForEach(t.width, t.height, func(x, y int) {
		h, s, v := rgbToHSV(float64(t.at(x, y, 0)), float64(t.at(x, y, 1)), float64(t.at(x, y, 2)))
		i := out.index(x, y, 0)
		out.data[i] = float32(h)
		out.data[i+1] = float32(s)
		out.data[i+2] = float32(v)
	})
	return out, nil
}

// HSVToRGB converts a 3-channel HSV tensor (hue in [0, 1)) back to RGB.
// HSVToRGB(RGBToHSV(t)) reproduces t within numeric tolerance.
func (t *Tensor) HSVToRGB() (*Tensor, error) {
	if t.channels != 3 {
		return nil, fmt.Errorf("%w: HSV to RGB needs 3 channels, got %d", ErrUnsupportedChannelCount, t.channels)
	}
	out := t.newLike(t.width, t.height, 3)
	t.Executor().ForEach(t.width, t.height, func(x, y int) {
		r, g, b := hsvToRGB(float64(t.at(x, y, 0)), float64(t.at(x, y, 1)), float64(t.at(x, y, 2)))
		i := out.index(x, y, 0)
		out.data[i] = float32(r)
		out.data[i+1] = float32(g)
		out.data[i+2] = float32(b)
	})
	return out, nil
}

func rgbToHSV(r, g, b float64) (h, s, v float64) {
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	delta := mx - mn

	v = mx
	if mx > 0 {
		s = delta / mx
	}
	if delta == 0 {
		return 0, s, v // hue undefined, conventionally 0
	}

	switch mx {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h /= 6
	if h < 0 {
		h += 1
	}
	return h, s, v
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	h = math.Mod(h, 1)
	if h < 0 {
		h += 1
	}
	sector := h * 6
	i := math.Floor(sector)
	f := sector - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	u := v * (1 - s*(1-f))

	switch int(i) % 6 {
	case 0:
		return v, u, p
	case 1:
		return q, v, p
	case 2:
		return p, v, u
	case 3:
		return p, q, v
	case 4:
		return u, p, v
	default:
		return v, p, q
	}
}
