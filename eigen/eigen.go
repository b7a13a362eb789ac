// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eigen wraps a symmetric eigen-decomposition of the orbital
// overlap matrix (C5): eigenvalues ascending, orthonormal eigenvectors in
// columns, and closed-shell duplication of the eigenvector table so every
// downstream consumer can index it as if the system were unrestricted.
package eigen

import (
	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/overlap"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Result holds the decomposition of one iteration's overlap matrix.
// Diag holds eigenvalues ascending (for closed-shell systems, the active
// block's ascending values followed by the same values again, so Diag[l]
// pairs with eigenvector l); Vect is the Fortran-ordered flattening
// noted in spec.md 4.6: Vect[l*N+i] is the i-th coordinate of the l-th
// eigenvector, where N is the full (possibly closed-shell-duplicated) size.
type Result struct {
	N    int
	Diag []float64
	Vect []float64
}

// Solve copies the lower triangle of active (sized to chm.ActiveOrbitals())
// into a scratch symmetric matrix, calls gonum's symmetric eigensolver, and
// for closed-shell systems duplicates the resulting eigenvector table into
// two identical diagonal blocks with zero off-diagonal blocks (spec.md 4.5).
// Fails if the underlying solver does not converge.
func Solve(active *overlap.Matrix, chm *chem.ChemicalSystem) (*Result, error) {
	n := active.N
	if n != chm.ActiveOrbitals() {
		return nil, chk.Err("eigen: active matrix has size %d, expected %d", n, chm.ActiveOrbitals())
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			data[i*n+j] = active.Coef[i][j]
			data[j*n+i] = active.Coef[i][j]
		}
	}
	sym := mat.NewSymDense(n, data)

	var es mat.EigenSym
	ok := es.Factorize(sym, true)
	if !ok {
		return nil, chk.Err("eigen: symmetric eigen-decomposition failed to converge for N=%d", n)
	}

	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	// vectors is N x N column-major in meaning; VectorsTo fills a row-major
	// *mat.Dense where column i is the i-th eigenvector. Flatten Fortran-style
	// so Vect[l*n+i] reads the l-th eigenvector's i-th coordinate.
	activeVect := make([]float64, n*n)
	for l := 0; l < n; l++ {
		for i := 0; i < n; i++ {
			activeVect[l*n+i] = vectors.At(i, l)
		}
	}

	if !chm.OrbRhf {
		return &Result{N: n, Diag: values, Vect: activeVect}, nil
	}

	full := chm.N
	if full != 2*n {
		return nil, chk.Err("eigen: closed-shell system requires N=2*active, got N=%d active=%d", full, n)
	}
	fullVect := make([]float64, full*full)
	for l := 0; l < n; l++ {
		for i := 0; i < n; i++ {
			v := activeVect[l*n+i]
			fullVect[l*full+i] = v
			fullVect[(l+n)*full+(i+n)] = v
		}
	}
	fullDiag := make([]float64, full)
	copy(fullDiag[:n], values)
	copy(fullDiag[n:], values)

	return &Result{N: full, Diag: fullDiag, Vect: fullVect}, nil
}

// At returns the i-th coordinate of the l-th eigenvector (Fortran-ordered
// flattening, spec.md 4.6).
func (r *Result) At(l, i int) float64 {
	return r.Vect[l*r.N+i]
}
