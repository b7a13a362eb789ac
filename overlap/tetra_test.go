// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlap

import (
	"testing"

	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/meshio"
	"github.com/cpmech/gosl/chk"
)

func unitTetMesh() *meshio.Mesh {
	return &meshio.Mesh{
		Verts: []meshio.Point{
			{X: 0, Y: 0, Z: 0, Label: meshio.LabelInterior},
			{X: 1, Y: 0, Z: 0, Label: meshio.LabelInterior},
			{X: 0, Y: 1, Z: 0, Label: meshio.LabelInterior},
			{X: 0, Y: 0, Z: 1, Label: meshio.LabelInterior},
		},
		Tets: []meshio.Tetrahedron{
			{V: [4]int{1, 2, 3, 4}, Label: meshio.LabelInterior},
		},
	}
}

func twoOrbitalSystem() *chem.ChemicalSystem {
	return &chem.ChemicalSystem{
		N: 2,
		K: 1,
		Nuclei: []chem.Nucleus{
			{X: 0, Y: 0, Z: 0, Charge: 1},
		},
		Orb: []chem.MolecularOrbital{
			{Spin: 1, NPrimitive: 1, Primitives: []chem.Primitive{
				{Orbital: 0, Nucleus: 1, Coeff: 1.0, Alpha: 1.0, Type: chem.S1s},
			}},
			{Spin: -1, NPrimitive: 1, Primitives: []chem.Primitive{
				{Orbital: 1, Nucleus: 1, Coeff: 1.0, Alpha: 1.0, Type: chem.S1s},
			}},
		},
	}
}

// Test_AssembleTet_symmetry checks spec.md 8's symmetry property: any
// assembled S(Omega) must be symmetric to machine precision.
func Test_AssembleTet_symmetry(tst *testing.T) {

	chk.PrintTitle("AssembleTet_symmetry")

	msh := unitTetMesh()
	chm := twoOrbitalSystem()

	m, err := AssembleTet(msh, chm, -1, 1)
	if err != nil {
		tst.Errorf("AssembleTet failed: %v\n", err)
		return
	}
	chk.IntAssert(m.N, 2) // one orbital per spin, but both spins present in the system => active=N since OrbRhf=false and K differing spin only disjoint

	maxAbs := m.MaxAbs()
	for i := 0; i < m.N; i++ {
		for j := 0; j < m.N; j++ {
			chk.Scalar(tst, "symmetric", 1e-12*maxAbs, m.Coef[i][j], m.Coef[j][i])
		}
	}
}

// Test_AssembleTet_excludes_label checks that tetrahedra labelled
// labelToAvoid contribute nothing to the assembled matrix.
func Test_AssembleTet_excludes_label(tst *testing.T) {

	chk.PrintTitle("AssembleTet_excludes_label")

	msh := unitTetMesh()
	msh.Tets[0].Label = meshio.LabelExterior
	chm := twoOrbitalSystem()

	m, err := AssembleTet(msh, chm, meshio.LabelExterior, 1)
	if err != nil {
		tst.Errorf("AssembleTet failed: %v\n", err)
		return
	}
	for i := 0; i < m.N; i++ {
		for j := 0; j < m.N; j++ {
			chk.Scalar(tst, "excluded element contributes 0", 0, m.Coef[i][j], 0.0)
		}
	}
}

// Test_AssembleTet_worker_count_invariance covers spec.md 9's "parallel
// reduction" property: the assembled sum must not depend on worker count.
func Test_AssembleTet_worker_count_invariance(tst *testing.T) {

	chk.PrintTitle("AssembleTet_worker_count_invariance")

	msh := unitTetMesh()
	// duplicate the tetrahedron several times (same geometry is fine: we
	// only care about reduction determinism, not physical correctness)
	base := msh.Tets[0]
	for i := 0; i < 20; i++ {
		msh.Tets = append(msh.Tets, base)
	}
	chm := twoOrbitalSystem()

	serial, err := AssembleTet(msh, chm, -1, 1)
	if err != nil {
		tst.Errorf("AssembleTet(1) failed: %v\n", err)
		return
	}
	parallel, err := AssembleTet(msh, chm, -1, 6)
	if err != nil {
		tst.Errorf("AssembleTet(6) failed: %v\n", err)
		return
	}
	for i := 0; i < serial.N; i++ {
		for j := 0; j < serial.N; j++ {
			chk.Scalar(tst, "worker-count invariant", 1e-10, parallel.Coef[i][j], serial.Coef[i][j])
		}
	}
}
