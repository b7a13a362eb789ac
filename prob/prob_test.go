// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"testing"

	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/eigen"
	"github.com/cpmech/gosl/chk"
)

// Test_recurrence_N4 covers spec.md 8 scenario 4: with N=4 eigenvalues
// {0.1, 0.3, 0.6, 0.9} the recursion is the coefficient sequence of the
// product polynomial prod_p (alpha_p + beta_p*x); P_0 and P_4 only ever
// involve one term each and are pinned down directly, while the full
// sequence is cross-checked against that product expansion independently
// of the pkl recursion's own code path.
func Test_recurrence_N4(tst *testing.T) {

	chk.PrintTitle("recurrence_N4")

	r := &eigen.Result{N: 4, Diag: []float64{0.1, 0.3, 0.6, 0.9}}
	p := Compute(r)

	want := []float64{0.0252, 0.2782, 0.4842, 0.1962, 0.0162}
	for k, w := range want {
		chk.Scalar(tst, "P_k", 1e-12, p.Pk[k], w)
	}
}

// Test_probability_sum covers spec.md 8's "Probability sum" property:
// Sum P_k = 1 within 1e-10.
func Test_probability_sum(tst *testing.T) {

	chk.PrintTitle("probability_sum")

	r := &eigen.Result{N: 5, Diag: []float64{0.05, 0.2, 0.5, 0.7, 0.95}}
	p := Compute(r)

	sum := 0.0
	for _, v := range p.Pk {
		sum += v
	}
	chk.Scalar(tst, "sum P_k", 1e-10, sum, 1.0)
}

// Test_identity_case covers spec.md 8 scenario 3: all eigenvalues equal to
// 1 gives P_N=1 and P_k=0 for k<N.
func Test_identity_case(tst *testing.T) {

	chk.PrintTitle("identity_case")

	n := 4
	diag := make([]float64, n)
	for i := range diag {
		diag[i] = 1.0
	}
	r := &eigen.Result{N: n, Diag: diag}
	p := Compute(r)

	for k := 0; k < n; k++ {
		chk.Scalar(tst, "P_k=0", 1e-14, p.Pk[k], 0.0)
	}
	chk.Scalar(tst, "P_N=1", 1e-14, p.Pk[n], 1.0)
}

func Test_population(tst *testing.T) {

	chk.PrintTitle("population")

	// two eigenvalues both exactly 1 (always occupied), population must
	// equal their count exactly
	r := &eigen.Result{N: 2, Diag: []float64{1.0, 1.0}}
	p := Compute(r)
	chk.Scalar(tst, "population", 1e-14, p.Population, 2.0)
}

func Test_Pnu(tst *testing.T) {

	chk.PrintTitle("Pnu")

	r := &eigen.Result{N: 4, Diag: []float64{0.1, 0.3, 0.6, 0.9}}
	p := Compute(r)
	chk.Scalar(tst, "Pnu(2)", 1e-12, p.Pnu(2), 0.4842)
}

// Test_ShapeGradientAt_symmetric_single_orbital is a smoke test: with a
// single orbital the off-diagonal sum is empty, and an identical query
// evaluated away from any nucleus contributes through the i=j term only.
func Test_ShapeGradientAt_symmetric_single_orbital(tst *testing.T) {

	chk.PrintTitle("ShapeGradientAt_symmetric_single_orbital")

	chm := &chem.ChemicalSystem{
		N: 1,
		K: 1,
		Nuclei: []chem.Nucleus{{X: 0, Y: 0, Z: 0, Charge: 1}},
		Orb: []chem.MolecularOrbital{
			{Spin: 1, NPrimitive: 1, Primitives: []chem.Primitive{
				{Orbital: 0, Nucleus: 1, Coeff: 1.0, Alpha: 1.0, Type: chem.S1s},
			}},
		},
	}
	r := &eigen.Result{N: 1, Diag: []float64{0.5}, Vect: []float64{1.0}}

	// a spherically symmetric 1s orbital's gradient must be equal at two
	// points equidistant from the nucleus
	g1 := ShapeGradientAt(1, 0, 0, chm, r, 0)
	g2 := ShapeGradientAt(0, 1, 0, chm, r, 0)
	chk.Scalar(tst, "gradient equal at equidistant points", 1e-13, g1, g2)
}
