// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quad implements the two volumetric quadrature kernels used to
// assemble the overlap matrix: Keast's 14-point tetrahedral rule (C2) and
// the analytic hexahedral Gaussian integrator (C3).
package quad

import (
	"math"

	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/cpmech/gosl/chk"
)

// tetPoint is one Keast quadrature sample: barycentric coordinates and weight
type tetPoint struct {
	L      [4]float64
	Weight float64
}

// keast14 is the 14-point degree-5 rule of Keast (1986): six samples with
// barycentric coordinates (a,a,d,d) d=(1-2a)/2 and weight wA, four samples
// (b,b,b,1-3b) with weight wB, four samples (c,c,c,1-3c) with weight wC.
// Weights sum to 1/6, the volume of the reference tetrahedron.
var keast14 = buildKeast14()

const (
	keastA = 0.045503704125650
	keastB = 0.092735250310891
	keastC = 0.310885919263300
	keastWA = 0.007091003462847
	keastWB = 0.012248840519394
	keastWC = 0.018781320953003
)

func buildKeast14() []tetPoint {
	pts := make([]tetPoint, 0, 14)

	// group A: six permutations of (a,a,d,d) choosing 2 of 4 slots for 'a'
	d := (1 - 2*keastA) / 2
	pairs := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for _, pr := range pairs {
		var L [4]float64
		for i := range L {
			L[i] = d
		}
		L[pr[0]] = keastA
		L[pr[1]] = keastA
		pts = append(pts, tetPoint{L: L, Weight: keastWA})
	}

	// group B: four permutations of (b,b,b,1-3b)
	for skip := 0; skip < 4; skip++ {
		var L [4]float64
		for i := range L {
			L[i] = keastB
		}
		L[skip] = 1 - 3*keastB
		pts = append(pts, tetPoint{L: L, Weight: keastWB})
	}

	// group C: four permutations of (c,c,c,1-3c)
	for skip := 0; skip < 4; skip++ {
		var L [4]float64
		for i := range L {
			L[i] = keastC
		}
		L[skip] = 1 - 3*keastC
		pts = append(pts, tetPoint{L: L, Weight: keastWC})
	}
	return pts
}

// tetVolume returns |det(v2-v1, v3-v1, v4-v1)| / 6
func tetVolume(v1, v2, v3, v4 [3]float64) float64 {
	a := [3]float64{v2[0] - v1[0], v2[1] - v1[1], v2[2] - v1[2]}
	b := [3]float64{v3[0] - v1[0], v3[1] - v1[1], v3[2] - v1[2]}
	c := [3]float64{v4[0] - v1[0], v4[1] - v1[1], v4[2] - v1[2]}
	det := a[0]*(b[1]*c[2]-b[2]*c[1]) -
		a[1]*(b[0]*c[2]-b[2]*c[0]) +
		a[2]*(b[0]*c[1]-b[1]*c[0])
	return math.Abs(det) / 6
}

// TetIntegral integrates Orb_i . Orb_j over tetrahedron (v1,v2,v3,v4) using
// the Keast 14-point rule (spec.md 4.2). When i==j the diagonal shortcut
// chem.EvalOrbitalSquare is used instead of the general product.
func TetIntegral(v1, v2, v3, v4 [3]float64, chm *chem.ChemicalSystem, orbI, orbJ int) float64 {
	vol := tetVolume(v1, v2, v3, v4)
	if vol == 0 {
		chk.Panic("quad: degenerate tetrahedron with zero volume")
	}
	sum := 0.0
	diag := orbI == orbJ
	for _, p := range keast14 {
		x := p.L[0]*v1[0] + p.L[1]*v2[0] + p.L[2]*v3[0] + p.L[3]*v4[0]
		y := p.L[0]*v1[1] + p.L[1]*v2[1] + p.L[2]*v3[1] + p.L[3]*v4[1]
		z := p.L[0]*v1[2] + p.L[1]*v2[2] + p.L[2]*v3[2] + p.L[3]*v4[2]
		var f float64
		if diag {
			f = chem.EvalOrbitalSquare(x, y, z, chm, orbI)
		} else {
			f = chem.EvalOrbitalProduct(x, y, z, chm, orbI, orbJ)
		}
		sum += p.Weight * f
	}
	// weights already sum to the reference-tetrahedron volume (1/6), so the
	// physical integral requires the extra factor of six times the volume
	return sum * 6 * vol
}
