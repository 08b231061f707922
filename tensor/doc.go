// Copyright 2025 Shanan CV Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides pixel tensors for computer-vision pipelines.
//
// # Overview
//
// A Tensor is an image as a flat float32 buffer in HWC order
// (channel-interleaved, row-major), with samples conceptually normalized
// to [0, 1]. The package provides:
//   - Constructors and 8-bit image/byte adapters (FromImage, FromBytes)
//   - HWC/CHW layout reordering for framework interop (FromCHW, ToCHW)
//   - Color transforms (Grayscale, RGBToHSV, HSVToRGB)
//   - Neighborhood filters (GaussianBlur, Sobel, MedianFilter,
//     BilateralFilter)
//   - Morphology (Erode, Dilate)
//   - Geometric resampling (ResizeBilinear, Rotate)
//   - Statistics (Histogram)
//
// # Basic Usage
//
//	img, _, err := image.Decode(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t, err := tensor.FromImage(img)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	blurred, err := t.GaussianBlur(1.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	edges, err := blurred.Sobel()
//
// # Purity and Ownership
//
// Every transform above is pure: the input is read-only and the result is
// a newly allocated Tensor with a disjoint buffer. In-place annotation
// rendering lives in the draw package and requires exclusive write access
// to its target.
//
// # Clamping
//
// Intermediate values are left unclamped; only Sobel's magnitude and the
// quantized exports (ToBytes, ToImage) clamp. Histogram tolerates
// out-of-range values by bucketing them at the ends.
//
// # Execution Backends
//
// Transforms are written as per-pixel kernels swept by an Executor. The
// default executor (backend/cpu) parallelizes across rows; NewSequential
// gives a single-threaded sweep, and a custom Executor can offload the
// same kernels elsewhere:
//
//	t.WithExecutor(cpu.NewWithConfig(cpu.Config{Enabled: false}))
//
// # Errors
//
// Validation happens eagerly at operation entry and failures are reported
// through four sentinels: ErrInvalidDimensions, ErrUnsupportedChannelCount,
// ErrInvalidParameter, and ErrOutOfBounds. Match with errors.Is.
package tensor
