package tensor

import "fmt"

// FromHWC creates a tensor from a buffer already in the native HWC
// (channel-interleaved) layout. The buffer is copied.
func FromHWC(width, height, channels int, data []float32) (*Tensor, error) {
	buf := make([]float32, len(data))
	copy(buf, data)
	return New(width, height, channels, buf)
}

// ToHWC returns a copy of the buffer in HWC layout.
func (t *Tensor) ToHWC() []float32 {
	out := make([]float32, len(t.data))
	copy(out, t.data)
	return out
}

// FromCHW creates a tensor from a channel-planar (CHW) buffer, reordering
// into the native interleaved layout. CHW index = (c*height + y)*width + x.
func FromCHW(width, height, channels int, data []float32) (*Tensor, error) {
	if len(data) != width*height*channels {
		return nil, fmt.Errorf("%w: CHW buffer length %d, want %d",
			ErrInvalidDimensions, len(data), width*height*channels)
	}
	t, err := NewZero(width, height, channels)
	if err != nil {
		return nil, err
	}
	plane := width * height
	for c := 0; c < channels; c++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				t.data[t.index(x, y, c)] = data[c*plane+y*width+x]
			}
		}
	}
	return t, nil
}

// ToCHW returns the buffer reordered into channel-planar (CHW) layout.
// FromCHW(ToCHW(t)) reproduces t's buffer bit-for-bit.
func (t *Tensor) ToCHW() []float32 {
	out := make([]float32, len(t.data))
	plane := t.width * t.height
	for c := 0; c < t.channels; c++ {
		for y := 0; y < t.height; y++ {
			for x := 0; x < t.width; x++ {
				out[c*plane+y*t.width+x] = t.data[t.index(x, y, c)]
			}
		}
	}
	return out
}
