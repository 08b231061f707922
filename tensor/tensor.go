// Copyright 2025 Shanan CV Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for pixel tensors: a flat float32
// buffer in row-major, channel-interleaved (HWC) order, together with the
// pure transforms that operate on it.
//
// Example:
//
//	t, err := tensor.NewFull(64, 64, 3, 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	blurred, err := t.GaussianBlur(1.5)
package tensor

import (
	"image"

	"github.com/Qinka/shanan-cv/internal/tensor"
)

// Tensor is an image held as a flat float32 buffer in HWC order:
// index = (y*width + x)*channels + c. Color samples are conceptually
// normalized to [0, 1]; intermediate values are left unclamped and only
// quantized exports (ToBytes, ToImage) clamp.
//
// Pure transforms return a newly owned Tensor and never alias their input.
type Tensor = tensor.Tensor

// Validation errors returned by constructors and transforms. Match with
// errors.Is; returned errors carry wrapped context.
var (
	ErrInvalidDimensions       = tensor.ErrInvalidDimensions
	ErrUnsupportedChannelCount = tensor.ErrUnsupportedChannelCount
	ErrInvalidParameter        = tensor.ErrInvalidParameter
	ErrOutOfBounds             = tensor.ErrOutOfBounds
)

// New creates a tensor over data, which must hold exactly
// width*height*channels samples or ErrInvalidDimensions is returned. The
// tensor takes ownership of the buffer.
//
// Example:
//
//	t, err := tensor.New(2, 2, 1, []float32{0, 0.25, 0.5, 1})
func New(width, height, channels int, data []float32) (*Tensor, error) {
	return tensor.New(width, height, channels, data)
}

// NewZero creates a zero-filled tensor.
func NewZero(width, height, channels int) (*Tensor, error) {
	return tensor.NewZero(width, height, channels)
}

// NewFull creates a tensor with every sample set to value.
func NewFull(width, height, channels int, value float32) (*Tensor, error) {
	return tensor.NewFull(width, height, channels, value)
}

// FromHWC creates a tensor from a buffer already in the native
// channel-interleaved layout. The buffer is copied.
func FromHWC(width, height, channels int, data []float32) (*Tensor, error) {
	return tensor.FromHWC(width, height, channels, data)
}

// FromCHW creates a tensor from a channel-planar buffer
// (index = (c*height + y)*width + x), reordering into the native
// interleaved layout. Round-tripping through ToCHW reproduces the buffer
// bit-for-bit.
//
// Example:
//
//	chw := modelOutput()                    // [C][H][W] planes, flattened
//	t, err := tensor.FromCHW(w, h, 3, chw)
func FromCHW(width, height, channels int, data []float32) (*Tensor, error) {
	return tensor.FromCHW(width, height, channels, data)
}

// FromBytes creates a tensor from a packed 8-bit pixel buffer (gray, RGB,
// or RGBA depending on channels), normalizing each sample to [0, 1].
func FromBytes(width, height, channels int, pix []byte) (*Tensor, error) {
	return tensor.FromBytes(width, height, channels, pix)
}

// FromImage converts a decoded standard-library image into a tensor:
// *image.Gray becomes 1 channel, *image.RGBA and *image.NRGBA become 4,
// anything else is read as 3-channel RGB.
//
// Example:
//
//	img, _, err := image.Decode(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t, err := tensor.FromImage(img)
func FromImage(img image.Image) (*Tensor, error) {
	return tensor.FromImage(img)
}
