// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import "math"

// EvalPrimitive returns coeff * exp(-alpha*r^2) * monomial(dx,dy,dz) for the
// k-th primitive of orbital orb, evaluated at (x,y,z). A zero coefficient
// short-circuits to exactly 0.0 without touching the exponential or the
// monomial (spec.md 8, "Primitive short-circuit").
func EvalPrimitive(x, y, z float64, chm *ChemicalSystem, orb, k int) float64 {
	p := chm.Orb[orb].Primitives[k]
	if p.Coeff == 0.0 {
		return 0.0
	}
	n := chm.Nuclei[p.Nucleus-1]
	dx := x - n.X
	dy := y - n.Y
	dz := z - n.Z
	r2 := dx*dx + dy*dy + dz*dz
	a, b, g := p.Type.Exponents()
	m := monomial(dx, dy, dz, a, b, g)
	return p.Coeff * math.Exp(-p.Alpha*r2) * m
}

// monomial evaluates x^a y^b z^c, short-circuiting the identity case
func monomial(dx, dy, dz float64, a, b, c int) float64 {
	m := 1.0
	for i := 0; i < a; i++ {
		m *= dx
	}
	for i := 0; i < b; i++ {
		m *= dy
	}
	for i := 0; i < c; i++ {
		m *= dz
	}
	return m
}

// EvalOrbital returns the value of orbital orb at (x,y,z): the sum of all
// of its primitive contributions.
func EvalOrbital(x, y, z float64, chm *ChemicalSystem, orb int) float64 {
	o := chm.Orb[orb]
	sum := 0.0
	for k := 0; k < o.NPrimitive; k++ {
		sum += EvalPrimitive(x, y, z, chm, orb, k)
	}
	return sum
}

// EvalOrbitalProduct returns Orb_i(p)*Orb_j(p). Orbitals of differing spin
// never overlap and this returns 0.0 without summing either expansion.
func EvalOrbitalProduct(x, y, z float64, chm *ChemicalSystem, orbI, orbJ int) float64 {
	if chm.Orb[orbI].Spin != chm.Orb[orbJ].Spin {
		return 0.0
	}
	return EvalOrbital(x, y, z, chm, orbI) * EvalOrbital(x, y, z, chm, orbJ)
}

// EvalOrbitalSquare returns Orb_i(p)^2, avoiding one of the two sums that
// EvalOrbitalProduct(i,i) would otherwise perform twice.
func EvalOrbitalSquare(x, y, z float64, chm *ChemicalSystem, orb int) float64 {
	v := EvalOrbital(x, y, z, chm, orb)
	return v * v
}
