// Copyright 2025 Shanan CV Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/Qinka/shanan-cv/internal/compute"

// Kernel computes one output pixel at (x, y). Kernels read shared input
// state but write only their own output cell, so executors are free to run
// them in any order and with any parallelism.
type Kernel = compute.Kernel

// Executor sweeps a Kernel over an output grid. Every pure transform in
// this library is expressed against this contract.
//
// Implementations:
//   - Sequential (this package): single-threaded baseline.
//   - backend/cpu: row-parallel across worker goroutines (the default).
//
// A device-offloaded executor can satisfy the same contract without
// touching the per-pixel math.
//
// Example:
//
//	t, _ := tensor.FromImage(img)
//	t.WithExecutor(cpu.New())
//	edges, err := t.Sobel()
type Executor = compute.Executor

// Sequential is the single-threaded executor.
type Sequential = compute.Sequential

// NewSequential returns the single-threaded executor.
func NewSequential() Sequential { return compute.NewSequential() }
