// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chem holds the electronic-structure data model read from a
// wave-function file: nuclei, Gaussian primitives and molecular orbitals,
// and the primitive/orbital evaluators (C1) used by the quadrature layers.
package chem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// AngularType identifies one of the 20 recognised Cartesian Gaussian types.
type AngularType int

// recognised angular-type tags, as stored 1-based in .wfn files
const (
	S1s AngularType = iota + 1
	P2x
	P2y
	P2z
	D3xx
	D3yy
	D3zz
	D3xy
	D3xz
	D3yz
	F4xxx
	F4yyy
	F4zzz
	F4xxy
	F4xxz
	F4yyz
	F4xyy
	F4xzz
	F4yzz
	F4xyz
)

// exponents gives the monomial exponent triple (a,b,c) for x^a y^b z^c
var exponents = map[AngularType][3]int{
	S1s:   {0, 0, 0},
	P2x:   {1, 0, 0},
	P2y:   {0, 1, 0},
	P2z:   {0, 0, 1},
	D3xx:  {2, 0, 0},
	D3yy:  {0, 2, 0},
	D3zz:  {0, 0, 2},
	D3xy:  {1, 1, 0},
	D3xz:  {1, 0, 1},
	D3yz:  {0, 1, 1},
	F4xxx: {3, 0, 0},
	F4yyy: {0, 3, 0},
	F4zzz: {0, 0, 3},
	F4xxy: {2, 1, 0},
	F4xxz: {2, 0, 1},
	F4yyz: {0, 2, 1},
	F4xyy: {1, 2, 0},
	F4xzz: {1, 0, 2},
	F4yzz: {0, 1, 2},
	F4xyz: {1, 1, 1},
}

// Exponents returns the monomial exponent triple (a,b,c) for x^a y^b z^c.
// Tags outside the recognised set emit a warning and fall back to 1s.
func (a AngularType) Exponents() (e, f, g int) {
	if t, ok := exponents[a]; ok {
		return t[0], t[1], t[2]
	}
	io.Pfyel("chem: WARNING unrecognised angular type %d; using 1s\n", int(a))
	return 0, 0, 0
}

// Nucleus holds the centre and charge of one atom
type Nucleus struct {
	X, Y, Z float64 // coordinates [a.u.]
	Charge  int     // integer nuclear charge
}

// Primitive is a single contracted Gaussian primitive belonging to an orbital
type Primitive struct {
	Orbital int         // owning orbital index (0-based)
	Nucleus int         // nucleus index, 1-based as stored in the .wfn file
	Coeff   float64     // contraction coefficient
	Alpha   float64     // Gaussian exponent
	Type    AngularType // angular-type tag
}

// MolecularOrbital holds one orbital's spin and primitive expansion
type MolecularOrbital struct {
	Spin       int         // +1 or -1
	NPrimitive int         // number of primitives
	Primitives []Primitive // primitive list, len == NPrimitive
}

// ChemicalSystem is the read-only electronic structure of the molecule
type ChemicalSystem struct {
	N       int                 // number of orbitals == electron count
	K       int                 // number of primitives per orbital (common to all)
	Orb     []MolecularOrbital  // orbital array, len == N
	Nuclei  []Nucleus           // nuclei array
	OrbRhf  bool                // closed-shell restricted Hartree-Fock
}

// Validate checks basic invariants of the loaded system
func (c *ChemicalSystem) Validate() error {
	if c == nil {
		return chk.Err("chemical system is nil")
	}
	if c.N <= 0 {
		return chk.Err("number of orbitals must be positive: N=%d", c.N)
	}
	if len(c.Orb) != c.N {
		return chk.Err("inconsistent orbital count: len(Orb)=%d, N=%d", len(c.Orb), c.N)
	}
	if c.OrbRhf && c.N%2 != 0 {
		return chk.Err("closed-shell system requires even electron count, got N=%d", c.N)
	}
	for i, o := range c.Orb {
		if o.Spin != 1 && o.Spin != -1 {
			return chk.Err("orbital %d has invalid spin %d", i, o.Spin)
		}
		if len(o.Primitives) != o.NPrimitive {
			return chk.Err("orbital %d: inconsistent primitive count %d != %d", i, len(o.Primitives), o.NPrimitive)
		}
	}
	return nil
}

// ActiveOrbitals returns the number of orbitals that must actually be
// integrated: N for unrestricted systems, N/2 for closed-shell ones, whose
// overlap matrix stays N/2 x N/2 and whose eigen-decomposition eigen.Solve
// later duplicates to size N (spec.md 3, "Invariants").
func (c *ChemicalSystem) ActiveOrbitals() int {
	if c.OrbRhf {
		return c.N / 2
	}
	return c.N
}
