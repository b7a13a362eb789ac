// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func hydrogen1s() *ChemicalSystem {
	return &ChemicalSystem{
		N: 1,
		K: 1,
		Nuclei: []Nucleus{
			{X: 0, Y: 0, Z: 0, Charge: 1},
		},
		Orb: []MolecularOrbital{
			{Spin: 1, NPrimitive: 1, Primitives: []Primitive{
				{Orbital: 0, Nucleus: 1, Coeff: 1.0, Alpha: 1.0, Type: S1s},
			}},
		},
	}
}

func Test_primitive_shortcircuit(tst *testing.T) {

	chk.PrintTitle("primitive_shortcircuit")

	chm := hydrogen1s()
	chm.Orb[0].Primitives[0].Coeff = 0.0

	v := EvalPrimitive(1e9, 1e9, 1e9, chm, 0, 0)
	chk.Scalar(tst, "coeff=0 primitive", 0, v, 0.0)
}

func Test_primitive_1s(tst *testing.T) {

	chk.PrintTitle("primitive_1s")

	chm := hydrogen1s()
	v := EvalPrimitive(1, 0, 0, chm, 0, 0)
	chk.Scalar(tst, "exp(-1)", 1e-15, v, math.Exp(-1))
}

func Test_orbital_product_spin_mismatch(tst *testing.T) {

	chk.PrintTitle("orbital_product_spin_mismatch")

	chm := hydrogen1s()
	chm.N = 2
	chm.Orb = append(chm.Orb, MolecularOrbital{
		Spin: -1, NPrimitive: 1, Primitives: []Primitive{
			{Orbital: 1, Nucleus: 1, Coeff: 1.0, Alpha: 1.0, Type: S1s},
		},
	})

	v := EvalOrbitalProduct(0.3, 0.1, -0.2, chm, 0, 1)
	chk.Scalar(tst, "different spin => 0", 0, v, 0.0)
}

func Test_orbital_square_matches_product(tst *testing.T) {

	chk.PrintTitle("orbital_square_matches_product")

	chm := hydrogen1s()
	sq := EvalOrbitalSquare(0.4, -0.2, 0.1, chm, 0)
	pr := EvalOrbitalProduct(0.4, -0.2, 0.1, chm, 0, 0)
	chk.Scalar(tst, "square==product(i,i)", 1e-15, sq, pr)
}

func Test_angular_exponents(tst *testing.T) {

	chk.PrintTitle("angular_exponents")

	a, b, c := D3xy.Exponents()
	chk.IntAssert(a, 1)
	chk.IntAssert(b, 1)
	chk.IntAssert(c, 0)

	a, b, c = F4xyz.Exponents()
	chk.IntAssert(a, 1)
	chk.IntAssert(b, 1)
	chk.IntAssert(c, 1)

	// unrecognised tag falls back to 1s (all zero exponents)
	a, b, c = AngularType(999).Exponents()
	chk.IntAssert(a, 0)
	chk.IntAssert(b, 0)
	chk.IntAssert(c, 0)
}
