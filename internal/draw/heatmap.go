package draw

import (
	"fmt"

	"github.com/Qinka/shanan-cv/internal/tensor"
)

// ApplyHeatmap maps a single-channel scalar tensor through the colormap's
// interpolated lookup, producing a new 3-channel RGB tensor. Scalars are
// clamped to [0, 1] by the lookup. Multi-channel inputs return
// ErrUnsupportedChannelCount.
func ApplyHeatmap(t *tensor.Tensor, cmap Colormap) (*tensor.Tensor, error) {
	if t.Channels() != 1 {
		return nil, fmt.Errorf("%w: heatmap input must be single-channel, got %d",
			tensor.ErrUnsupportedChannelCount, t.Channels())
	}
	out, err := tensor.NewZero(t.Width(), t.Height(), 3)
	if err != nil {
		return nil, err
	}
	src := t.Data()
	dst := out.Data()
	t.Executor().ForEach(t.Width(), t.Height(), func(x, y int) {
		c := cmap.Lookup(src[y*t.Width()+x])
		i := (y*t.Width() + x) * 3
		dst[i] = c.R
		dst[i+1] = c.G
		dst[i+2] = c.B
	})
	return out.WithExecutor(t.Executor()), nil
}

// ApplyHeatmapNamed resolves a colormap by name and applies it; unknown
// names return ErrInvalidParameter.
func ApplyHeatmapNamed(t *tensor.Tensor, name string) (*tensor.Tensor, error) {
	cmap, err := ParseColormap(name)
	if err != nil {
		return nil, err
	}
	return ApplyHeatmap(t, cmap)
}

// OverlayHeatmap colorizes the single-channel heat tensor through the
// colormap and alpha-blends it onto t, which must have matching width and
// height: out = (1-alpha)*base + alpha*heatColor for every pixel.
func OverlayHeatmap(t *tensor.Tensor, heat *tensor.Tensor, cmap Colormap, alpha float32) error {
	if heat.Channels() != 1 {
		return fmt.Errorf("%w: heatmap input must be single-channel, got %d",
			tensor.ErrUnsupportedChannelCount, heat.Channels())
	}
	if heat.Width() != t.Width() || heat.Height() != t.Height() {
		return fmt.Errorf("%w: heatmap %dx%d, target %dx%d",
			tensor.ErrInvalidDimensions, heat.Width(), heat.Height(), t.Width(), t.Height())
	}
	src := heat.Data()
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			blendPixel(t, x, y, cmap.Lookup(src[y*t.Width()+x]), alpha)
		}
	}
	return nil
}
