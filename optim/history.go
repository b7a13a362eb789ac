// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optim implements the outer optimization loop (C8): it drives
// C4->C5->C6->C7 to convergence, tracking iteration history and writing
// mesh checkpoints and a data log as it goes.
package optim

import "time"

// History accumulates the per-iteration scalars spec.md section 3 names,
// pre-allocated to iter_max+1 the way the teacher's fem.Summary
// pre-allocates its residual slices at Run-time (fem/summary.go's Resids).
type History struct {
	Pnu  []float64 // P_nu(Omega_k)
	Pop  []float64 // population, Sum k*P_k
	D0p  []float64 // |pnu[k]-pnu[k-1]|
	D1p  []float64 // shape residual (or d0p again for combinatorial modes)
	D2p  []float64 // |d1p[k]-d1p[k-1]| (d1p is d0p for combinatorial modes)
	Tim  []float64 // wall-clock time of iteration k, seconds
	Ctim []float64 // cumulative wall-clock time through iteration k

	start time.Time
}

// NewHistory pre-allocates every slice to iterMax+1 entries (spec.md 4.8,
// "allocate history to iter_max+1").
func NewHistory(iterMax int) *History {
	n := iterMax + 1
	return &History{
		Pnu:  make([]float64, n),
		Pop:  make([]float64, n),
		D0p:  make([]float64, n),
		D1p:  make([]float64, n),
		D2p:  make([]float64, n),
		Tim:  make([]float64, n),
		Ctim: make([]float64, n),
	}
}

// Start marks the beginning of wall-clock timing for the loop.
func (h *History) Start() { h.start = time.Now() }

// RecordIteration fills in iteration k's scalars and derives d0p/d2p from
// the running history (spec.md 4.8, step 3).
func (h *History) RecordIteration(k int, pnu, pop, d1p float64, iterStart time.Time) {
	h.Pnu[k] = pnu
	h.Pop[k] = pop
	h.D1p[k] = d1p
	if k > 0 {
		h.D0p[k] = abs(pnu - h.Pnu[k-1])
		h.D2p[k] = abs(d1p - h.D1p[k-1])
	}
	h.Tim[k] = time.Since(iterStart).Seconds()
	prev := 0.0
	if k > 0 {
		prev = h.Ctim[k-1]
	}
	h.Ctim[k] = prev + h.Tim[k]
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
