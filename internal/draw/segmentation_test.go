package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qinka/shanan-cv/internal/tensor"
)

func TestSegmentationMaskBlends(t *testing.T) {
	tn, err := tensor.NewFull(2, 2, 3, 0.5)
	require.NoError(t, err)

	mask := []bool{true, false, false, true}
	require.NoError(t, SegmentationMask(tn, mask, Color{R: 1}, 0.4))

	// Masked: (1-0.4)*0.5 + 0.4*color.
	assert.InDelta(t, 0.7, pixel(tn, 0, 0)[0], 1e-6)
	assert.InDelta(t, 0.3, pixel(tn, 0, 0)[1], 1e-6)
	assert.InDelta(t, 0.3, pixel(tn, 0, 0)[2], 1e-6)
	assert.InDelta(t, 0.7, pixel(tn, 1, 1)[0], 1e-6)

	// Unmasked pixels keep their base value.
	assert.Equal(t, []float32{0.5, 0.5, 0.5}, pixel(tn, 1, 0))
	assert.Equal(t, []float32{0.5, 0.5, 0.5}, pixel(tn, 0, 1))
}

func TestSegmentationMaskDimensionMismatch(t *testing.T) {
	tn := blank(t, 3, 3, 3)
	before := append([]float32(nil), tn.Data()...)

	err := SegmentationMask(tn, make([]bool, 8), Color{R: 1}, 0.5)
	assert.ErrorIs(t, err, tensor.ErrInvalidDimensions)
	assert.Equal(t, before, tn.Data(), "failed validation must not mutate")
}

func TestSegmentationMaskAlphaExtremes(t *testing.T) {
	tn, err := tensor.NewFull(1, 1, 3, 0.25)
	require.NoError(t, err)
	mask := []bool{true}

	require.NoError(t, SegmentationMask(tn, mask, Color{G: 1}, 0))
	assert.Equal(t, []float32{0.25, 0.25, 0.25}, pixel(tn, 0, 0), "alpha 0 is a no-op")

	require.NoError(t, SegmentationMask(tn, mask, Color{G: 1}, 1))
	assert.Equal(t, []float32{0, 1, 0}, pixel(tn, 0, 0), "alpha 1 replaces")
}

func TestMulticlassSegmentation(t *testing.T) {
	tn := blank(t, 2, 2, 3)
	classes := []int{0, 1, 2, 1}

	require.NoError(t, MulticlassSegmentation(tn, classes, nil, 1))

	assert.Equal(t, []float32{0, 0, 0}, pixel(tn, 0, 0), "class 0 is background")
	assert.Equal(t, []float32{1, 0, 0}, pixel(tn, 1, 0), "class 1 = palette[0]")
	assert.Equal(t, []float32{0, 1, 0}, pixel(tn, 0, 1), "class 2 = palette[1]")
	assert.Equal(t, []float32{1, 0, 0}, pixel(tn, 1, 1))
}

func TestMulticlassSegmentationCustomPaletteWraps(t *testing.T) {
	tn := blank(t, 3, 1, 3)
	palette := []Color{{B: 1}, {G: 1}}

	require.NoError(t, MulticlassSegmentation(tn, []int{1, 2, 3}, palette, 1))

	assert.Equal(t, []float32{0, 0, 1}, pixel(tn, 0, 0))
	assert.Equal(t, []float32{0, 1, 0}, pixel(tn, 1, 0))
	assert.Equal(t, []float32{0, 0, 1}, pixel(tn, 2, 0), "class 3 wraps to palette[0]")
}

func TestMulticlassSegmentationValidation(t *testing.T) {
	tn := blank(t, 2, 2, 3)

	err := MulticlassSegmentation(tn, []int{1}, nil, 0.5)
	assert.ErrorIs(t, err, tensor.ErrInvalidDimensions)

	err = MulticlassSegmentation(tn, []int{1, 1, 1, 1}, []Color{}, 0.5)
	assert.ErrorIs(t, err, tensor.ErrInvalidParameter)
}

func TestSegmentationOnAlphaTensorLeavesAlpha(t *testing.T) {
	tn, err := tensor.NewFull(1, 1, 4, 0.5)
	require.NoError(t, err)

	require.NoError(t, SegmentationMask(tn, []bool{true}, Color{R: 1}, 1))
	px := pixel(tn, 0, 0)
	assert.Equal(t, []float32{1, 0, 0, 0.5}, px, "alpha channel untouched")
}
