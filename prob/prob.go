// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prob implements the Cances-Keriven-Lodier-Savin recursion (C6):
// the probability distribution P_k(Omega) over electron counts k=0..N, the
// population Sum k*P_k, and the shape gradient of P_nu at a point.
package prob

import (
	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/eigen"
	"github.com/cpmech/gosl/io"
)

// Probabilities holds P_k(Omega) for k=0..N and the population Sum k*P_k.
type Probabilities struct {
	N          int
	Pk         []float64 // len N+1
	Population float64
}

// recurrence runs the Cances et al. triangular recursion given per-step
// beta/alpha pairs and returns only the final row pkl[n][0..n] (spec.md 4.6).
// beta and alpha must have the same length n; pkl[0][0]=1 is implicit.
func recurrence(beta, alpha []float64) []float64 {
	n := len(beta)
	prev := []float64{1}
	for p := 1; p <= n; p++ {
		bp, ap := beta[p-1], alpha[p-1]
		row := make([]float64, p+1)
		row[0] = ap * prev[0]
		for q := 1; q < p; q++ {
			row[q] = bp*prev[q-1] + ap*prev[q]
		}
		row[p] = bp * prev[p-1]
		prev = row
	}
	return prev
}

// Compute runs the base recursion (beta_p = eigenvalue[p-1], alpha_p = 1-beta_p)
// over the full eigenvalue set in r, producing P_k(Omega) for k=0..N and the
// population. Emits a warning, but does not fail, if any P_k falls outside
// [0,1] (spec.md 4.6).
func Compute(r *eigen.Result) *Probabilities {
	n := r.N
	beta := make([]float64, n)
	alpha := make([]float64, n)
	for p := 0; p < n; p++ {
		beta[p] = r.Diag[p]
		alpha[p] = 1 - beta[p]
	}
	pk := recurrence(beta, alpha)

	population := 0.0
	for k, p := range pk {
		if p < 0 || p > 1 {
			io.Pfyel("prob: WARNING P_%d=%g outside [0,1]\n", k, p)
		}
		population += float64(k) * p
	}
	return &Probabilities{N: n, Pk: pk, Population: population}
}

// Pnu returns P_nu(Omega), the quantity the optimizer maximises.
func (p *Probabilities) Pnu(nu int) float64 {
	return p.Pk[nu]
}

// ShapeGradientAt evaluates dP_nu/dOmega at a single query point (spec.md
// 4.6): for every orbital pair (i,j) of matching spin, for every excluded
// eigenvalue l, re-run the recurrence with beta_l=1, alpha_l=-1 substituted,
// take the resulting P_nu, weight it by U[l,i]*U[l,j], sum over l, and
// multiply by the orbital product Orb_i(point)*Orb_j(point). Off-diagonal
// pairs carry a factor of 2. Complexity is O(N^3) per point.
func ShapeGradientAt(x, y, z float64, chm *chem.ChemicalSystem, r *eigen.Result, nu int) float64 {
	n := r.N
	baseBeta := make([]float64, n)
	baseAlpha := make([]float64, n)
	for p := 0; p < n; p++ {
		baseBeta[p] = r.Diag[p]
		baseAlpha[p] = 1 - baseBeta[p]
	}

	// perturbedPnu[l] = P_nu computed with eigenvalue l excluded
	perturbedPnu := make([]float64, n)
	beta := make([]float64, n)
	alpha := make([]float64, n)
	for l := 0; l < n; l++ {
		copy(beta, baseBeta)
		copy(alpha, baseAlpha)
		beta[l] = 1
		alpha[l] = -1
		row := recurrence(beta, alpha)
		perturbedPnu[l] = row[nu]
	}

	grad := 0.0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if chm.Orb[i].Spin != chm.Orb[j].Spin {
				continue
			}
			sumL := 0.0
			for l := 0; l < n; l++ {
				sumL += perturbedPnu[l] * r.At(l, i) * r.At(l, j)
			}
			factor := 1.0
			if i != j {
				factor = 2.0
			}
			grad += factor * sumL * chem.EvalOrbitalProduct(x, y, z, chm, i, j)
		}
	}
	return grad
}
