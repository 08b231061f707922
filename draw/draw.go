// Copyright 2025 Shanan CV Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package draw provides in-place annotation rendering on pixel tensors:
// bounding boxes, segmentation overlays, keypoints and skeletons, heatmaps,
// and text.
//
// Drawing operations mutate their target tensor and require exclusive
// write access to it; auxiliary inputs (geometry, masks, heat tensors) are
// read-only. Validation happens before any pixel is written, so a failed
// call leaves the target unchanged. Geometry extending past the tensor
// bounds is clipped silently rather than erroring, so partially visible
// detections still render.
//
// Example:
//
//	box := draw.NewBoundingBox(24, 16, 80, 60).
//	    WithLabel("cat").
//	    WithConfidence(0.97)
//	err := draw.BBox(t, box, draw.Color{R: 1}, 2)
package draw

import (
	"github.com/Qinka/shanan-cv/internal/draw"
	"github.com/Qinka/shanan-cv/tensor"
)

// Color is an RGB triple in the tensor's normalized [0, 1] range. On
// single-channel targets its BT.601 luminance is drawn instead.
type Color = draw.Color

// BoundingBox is an axis-aligned detection rectangle in pixel units with
// optional label and confidence, configured fluently:
//
//	draw.NewBoundingBox(x, y, w, h).WithLabel("person").WithConfidence(0.9)
type BoundingBox = draw.BoundingBox

// Keypoint is a 2D landmark in pixel units with a visibility flag and
// optional confidence.
type Keypoint = draw.Keypoint

// Connection joins two keypoints by index, forming one skeleton edge.
type Connection = draw.Connection

// Colormap is a closed set of scalar-to-RGB lookup tables.
type Colormap = draw.Colormap

// Supported colormaps.
const (
	Jet     = draw.Jet
	Hot     = draw.Hot
	Viridis = draw.Viridis
)

// NewBoundingBox creates a box with no label and no confidence.
func NewBoundingBox(x, y, width, height float32) BoundingBox {
	return draw.NewBoundingBox(x, y, width, height)
}

// NewKeypoint creates a visible keypoint.
func NewKeypoint(x, y float32) Keypoint {
	return draw.NewKeypoint(x, y)
}

// ParseColormap resolves a name (case-insensitive) to a Colormap; unknown
// names return tensor.ErrInvalidParameter rather than a default.
func ParseColormap(name string) (Colormap, error) {
	return draw.ParseColormap(name)
}

// DefaultPalette returns the class color table used by
// MulticlassSegmentation when none is supplied.
func DefaultPalette() []Color {
	palette := make([]Color, len(draw.DefaultPalette))
	copy(palette, draw.DefaultPalette)
	return palette
}

// BBox draws the rectangle outline of box with the given color and stroke
// thickness, clipped to the tensor bounds. An optional label and
// confidence render as text near the box's top-left corner.
func BBox(t *tensor.Tensor, box BoundingBox, color Color, thickness int) error {
	return draw.BBox(t, box, color, thickness)
}

// SegmentationMask alpha-blends color into every pixel where mask is set:
// out = (1-alpha)*base + alpha*color. mask must hold exactly
// width*height entries or tensor.ErrInvalidDimensions is returned.
func SegmentationMask(t *tensor.Tensor, mask []bool, color Color, alpha float32) error {
	return draw.SegmentationMask(t, mask, color, alpha)
}

// MulticlassSegmentation blends per-class colors into pixels with a
// positive class id; class 0 is background. A nil palette selects the
// default table.
func MulticlassSegmentation(t *tensor.Tensor, classes []int, palette []Color, alpha float32) error {
	return draw.MulticlassSegmentation(t, classes, palette, alpha)
}

// Keypoints draws a filled disc of the given radius at every visible
// keypoint; out-of-bounds discs are clipped.
func Keypoints(t *tensor.Tensor, points []Keypoint, radius int, color Color) error {
	return draw.Keypoints(t, points, radius, color)
}

// SkeletonLines draws a segment of the given thickness between each
// connected keypoint pair. A connection index at or beyond len(points)
// returns tensor.ErrOutOfBounds before anything is drawn.
func SkeletonLines(t *tensor.Tensor, points []Keypoint, connections []Connection, thickness int, color Color) error {
	return draw.SkeletonLines(t, points, connections, thickness, color)
}

// ApplyHeatmap maps a single-channel scalar tensor through the colormap's
// interpolated lookup into a new 3-channel RGB tensor.
func ApplyHeatmap(t *tensor.Tensor, cmap Colormap) (*tensor.Tensor, error) {
	return draw.ApplyHeatmap(t, cmap)
}

// ApplyHeatmapNamed resolves a colormap by name and applies it.
//
// Example:
//
//	rgb, err := draw.ApplyHeatmapNamed(attention, "viridis")
func ApplyHeatmapNamed(t *tensor.Tensor, name string) (*tensor.Tensor, error) {
	return draw.ApplyHeatmapNamed(t, name)
}

// OverlayHeatmap colorizes heat through the colormap and alpha-blends it
// onto t; dimensions must match.
func OverlayHeatmap(t *tensor.Tensor, heat *tensor.Tensor, cmap Colormap, alpha float32) error {
	return draw.OverlayHeatmap(t, heat, cmap, alpha)
}

// Text renders s starting at pixel (x, y) in the given color, with glyph
// size proportional to scale. Out-of-bounds characters are clipped.
func Text(t *tensor.Tensor, s string, x, y int, color Color, scale float64) error {
	return draw.Text(t, s, x, y, color, scale)
}
