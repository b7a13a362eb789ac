// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlap assembles the symmetric orbital-overlap matrix S(Omega)
// over a mesh (C4), delegating per-element integration to quad's
// tetrahedral or hexahedral kernels.
package overlap

import (
	"github.com/cpmech/gosl/la"
)

// Matrix is the N x N symmetric overlap matrix for one iteration. Coef is
// row-major and fully populated (both triangles), but assembly only ever
// writes the lower triangle before mirroring, as spec.md 4.4 requires.
type Matrix struct {
	N    int
	Coef [][]float64
}

// NewMatrix allocates a zeroed N x N matrix using gosl's dense-matrix helper.
func NewMatrix(n int) *Matrix {
	return &Matrix{N: n, Coef: la.MatAlloc(n, n)}
}

// Mirror copies the lower triangle onto the upper triangle.
func (m *Matrix) Mirror() {
	for i := 0; i < m.N; i++ {
		for j := 0; j < i; j++ {
			m.Coef[j][i] = m.Coef[i][j]
		}
	}
}

// MaxAbs returns the largest |S_ij|, used to scale the symmetry tolerance
// check in tests (spec.md 8, "Symmetry").
func (m *Matrix) MaxAbs() float64 {
	max := 0.0
	for i := 0; i < m.N; i++ {
		for j := 0; j < m.N; j++ {
			v := m.Coef[i][j]
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
	}
	return max
}
