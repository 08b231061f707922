// Package draw implements in-place annotation rendering on pixel tensors:
// bounding boxes, segmentation overlays, keypoints and skeletons, heatmaps,
// and text.
//
// All operations mutate their target tensor and require exclusive write
// access to it. Validation happens before any pixel is written, so a failed
// call leaves the target unchanged. Geometry that extends past the tensor
// bounds is clipped silently; partially visible annotations are still drawn.
package draw

import "github.com/Qinka/shanan-cv/internal/tensor"

// Color is an RGB triple in the tensor's normalized [0, 1] range.
type Color struct {
	R, G, B float32
}

// BoundingBox is an axis-aligned detection rectangle in pixel units.
// Label and Confidence are optional; configure them at construction with
// the fluent With methods. The zero defaults are no label and no
// confidence.
type BoundingBox struct {
	X, Y          float32
	Width, Height float32

	Label         string
	Confidence    float32
	HasConfidence bool
}

// NewBoundingBox creates a box with no label and no confidence.
func NewBoundingBox(x, y, width, height float32) BoundingBox {
	return BoundingBox{X: x, Y: y, Width: width, Height: height}
}

// WithLabel returns a copy of the box carrying a label.
func (b BoundingBox) WithLabel(label string) BoundingBox {
	b.Label = label
	return b
}

// WithConfidence returns a copy of the box carrying a confidence score.
func (b BoundingBox) WithConfidence(confidence float32) BoundingBox {
	b.Confidence = confidence
	b.HasConfidence = true
	return b
}

// Keypoint is a 2D landmark in pixel units. Visible marks validity;
// invisible keypoints are skipped by the drawing operations. Confidence is
// optional, mirroring BoundingBox.
type Keypoint struct {
	X, Y          float32
	Visible       bool
	Confidence    float32
	HasConfidence bool
}

// NewKeypoint creates a visible keypoint.
func NewKeypoint(x, y float32) Keypoint {
	return Keypoint{X: x, Y: y, Visible: true}
}

// WithConfidence returns a copy of the keypoint carrying a confidence
// score.
func (k Keypoint) WithConfidence(confidence float32) Keypoint {
	k.Confidence = confidence
	k.HasConfidence = true
	return k
}

// Connection joins two keypoints by index, forming one skeleton edge.
type Connection [2]int

// setPixel writes the color into the pixel's color channels, leaving any
// alpha channel untouched. Out-of-bounds coordinates are ignored.
func setPixel(t *tensor.Tensor, x, y int, c Color) {
	if x < 0 || x >= t.Width() || y < 0 || y >= t.Height() {
		return
	}
	writeColor(t, x, y, c)
}

// blendPixel alpha-blends the color over the pixel's color channels:
// out = (1-alpha)*base + alpha*color.
func blendPixel(t *tensor.Tensor, x, y int, c Color, alpha float32) {
	if x < 0 || x >= t.Width() || y < 0 || y >= t.Height() {
		return
	}
	data := t.Data()
	ch := t.Channels()
	base := (y*t.Width() + x) * ch
	for i, v := range colorComponents(c, ch) {
		data[base+i] = (1-alpha)*data[base+i] + alpha*v
	}
}

func writeColor(t *tensor.Tensor, x, y int, c Color) {
	data := t.Data()
	ch := t.Channels()
	base := (y*t.Width() + x) * ch
	for i, v := range colorComponents(c, ch) {
		data[base+i] = v
	}
}

// colorComponents maps an RGB color onto a tensor's color channels:
// 1-channel targets get the BT.601 luminance, 3- and 4-channel targets get
// R, G, B (alpha untouched), and a 2-channel target gets luminance in
// channel 0 only.
func colorComponents(c Color, channels int) []float32 {
	if channels < 3 {
		return []float32{0.299*c.R + 0.587*c.G + 0.114*c.B}
	}
	return []float32{c.R, c.G, c.B}
}
