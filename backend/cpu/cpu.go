// Copyright 2025 Shanan CV Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the default CPU executor for tensor transforms.
//
// The executor distributes kernel rows across worker goroutines and falls
// back to sequential execution for small grids. It is stateless and safe
// to share between tensors.
//
// Example:
//
//	ex := cpu.New()
//	t, _ := tensor.NewFull(1024, 768, 3, 0.5)
//	t.WithExecutor(ex)
package cpu

import (
	internalcpu "github.com/Qinka/shanan-cv/internal/backend/cpu"
	"github.com/Qinka/shanan-cv/internal/parallel"
	"github.com/Qinka/shanan-cv/tensor"
)

// Executor is the row-parallel CPU executor.
type Executor = internalcpu.CPUExecutor

// Config controls worker count and the sequential-fallback threshold.
type Config = parallel.Config

// Compile-time check that Executor implements tensor.Executor.
var _ tensor.Executor = (*Executor)(nil)

// New creates a CPU executor with defaults based on runtime.NumCPU.
func New() *Executor {
	return internalcpu.New()
}

// NewWithConfig creates a CPU executor with an explicit parallelism
// config.
func NewWithConfig(cfg Config) *Executor {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns the parallelism defaults used by New.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}
