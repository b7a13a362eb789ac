// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlap

import (
	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/meshio"
	"github.com/ISCDtoolbox/MPD-sub003/quad"
	"github.com/cpmech/gosl/chk"
)

// AssembleTet builds S(Omega) on a tetrahedral mesh, integrating every
// tetrahedron whose label differs from labelToAvoid (spec.md 4.4). The
// element loop over (i,j) orbital pairs and tetrahedra is embarrassingly
// parallel with a scalar reduction per pair; nWorkers controls the
// worker count used for that reduction. The returned matrix is always
// sized to chm.ActiveOrbitals(); eigen.Solve is the sole consumer and
// performs its own closed-shell eigenvector-table duplication.
func AssembleTet(msh *meshio.Mesh, chm *chem.ChemicalSystem, labelToAvoid int, nWorkers int) (*Matrix, error) {
	if labelToAvoid != -1 && labelToAvoid != meshio.LabelExterior && labelToAvoid != meshio.LabelInterior {
		return nil, chk.Err("overlap: invalid labelToAvoid %d", labelToAvoid)
	}
	active := chm.ActiveOrbitals()
	m := NewMatrix(active)

	coords := func(idx int) [3]float64 {
		v := msh.Verts[idx-1]
		return [3]float64{v.X, v.Y, v.Z}
	}

	for i := 0; i < active; i++ {
		for j := i; j < active; j++ {
			if chm.Orb[i].Spin != chm.Orb[j].Spin {
				continue
			}
			sum := parallelReduceTets(msh, labelToAvoid, nWorkers, func(t meshio.Tetrahedron) float64 {
				v1 := coords(t.V[0])
				v2 := coords(t.V[1])
				v3 := coords(t.V[2])
				v4 := coords(t.V[3])
				return quad.TetIntegral(v1, v2, v3, v4, chm, i, j)
			})
			m.Coef[j][i] = sum
		}
	}
	m.Mirror()
	return m, nil
}

// parallelReduceTets sums f over every tetrahedron whose label != labelToAvoid,
// splitting the element range across nWorkers goroutines with a per-worker
// partial sum combined at the end, so the total is independent of worker
// count to numerical round-off (spec.md 9, "Parallel reduction").
func parallelReduceTets(msh *meshio.Mesh, labelToAvoid int, nWorkers int, f func(meshio.Tetrahedron) float64) float64 {
	return parallelReduce(len(msh.Tets), nWorkers, func(idx int) float64 {
		t := msh.Tets[idx]
		if t.Label == labelToAvoid {
			return 0
		}
		return f(t)
	})
}
