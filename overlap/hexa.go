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

// hexPrimPairIntegral sums the contribution of hexahedron h to S[i,j] over
// all primitive pairs of orbitals i and j (spec.md 4.3-4.4).
func hexPrimPairIntegral(h meshio.Hexahedron, msh *meshio.Mesh, chm *chem.ChemicalSystem, i, j int) float64 {
	v0 := msh.Verts[h.V[0]-1]
	v6 := msh.Verts[h.V[6]-1] // opposite corner in the canonical ordering
	lo := [3]float64{v0.X, v0.Y, v0.Z}
	delta := [3]float64{v6.X - v0.X, v6.Y - v0.Y, v6.Z - v0.Z}

	sum := 0.0
	oi, oj := chm.Orb[i], chm.Orb[j]
	for pi := 0; pi < oi.NPrimitive; pi++ {
		for pj := 0; pj < oj.NPrimitive; pj++ {
			sum += quad.HexIntegral(lo, delta, chm, i, pi, j, pj)
		}
	}
	return sum
}

// AssembleHexFresh builds S(Omega) from scratch, summing every hexahedron
// whose label != labelToUse (labelToUse in {LabelExterior, LabelInterior})
// into a zero-initialised matrix (spec.md 4.4, "Fresh build"). The returned
// matrix is always sized to chm.ActiveOrbitals(), matching the incremental
// AssembleHexSubtract/AssembleHexAdd pair.
func AssembleHexFresh(msh *meshio.Mesh, chm *chem.ChemicalSystem, labelToUse int, nWorkers int) (*Matrix, error) {
	if labelToUse != meshio.LabelExterior && labelToUse != meshio.LabelInterior {
		return nil, chk.Err("overlap: fresh hex build requires labelToUse in {2,3}, got %d", labelToUse)
	}
	active := chm.ActiveOrbitals()
	m := NewMatrix(active)
	for i := 0; i < active; i++ {
		for j := i; j < active; j++ {
			if chm.Orb[i].Spin != chm.Orb[j].Spin {
				continue
			}
			m.Coef[j][i] = parallelReduce(len(msh.Hexes), nWorkers, func(idx int) float64 {
				h := msh.Hexes[idx]
				if h.Label == labelToUse {
					return 0
				}
				return hexPrimPairIntegral(h, msh, chm, i, j)
			})
		}
	}
	m.Mirror()
	return m, nil
}

// AssembleHexSubtract performs the incremental "-2" step: copies prev and
// subtracts the contribution of every hexahedron labelled exactly -2. Must
// be followed by AssembleHexAdd in the same iteration (spec.md 4.4).
func AssembleHexSubtract(msh *meshio.Mesh, chm *chem.ChemicalSystem, prev *Matrix, nWorkers int) (*Matrix, error) {
	return incrementalHex(msh, chm, prev, -2, -1, nWorkers)
}

// AssembleHexAdd performs the incremental "-3" step: adds the contribution
// of every hexahedron labelled exactly -3 to the matrix produced by
// AssembleHexSubtract.
func AssembleHexAdd(msh *meshio.Mesh, chm *chem.ChemicalSystem, afterSubtract *Matrix, nWorkers int) (*Matrix, error) {
	return incrementalHex(msh, chm, afterSubtract, -3, 1, nWorkers)
}

func incrementalHex(msh *meshio.Mesh, chm *chem.ChemicalSystem, base *Matrix, label int, sign float64, nWorkers int) (*Matrix, error) {
	active := chm.ActiveOrbitals()
	if base == nil || base.N != active {
		return nil, chk.Err("overlap: incremental hex update requires a previous matrix of size %d", active)
	}
	m := NewMatrix(active)
	for i := 0; i < active; i++ {
		for j := i; j < active; j++ {
			m.Coef[j][i] = base.Coef[j][i]
			if chm.Orb[i].Spin != chm.Orb[j].Spin {
				continue
			}
			delta := parallelReduce(len(msh.Hexes), nWorkers, func(idx int) float64 {
				h := msh.Hexes[idx]
				if h.Label != label {
					return 0
				}
				return hexPrimPairIntegral(h, msh, chm, i, j)
			})
			m.Coef[j][i] += sign * delta
		}
	}
	m.Mirror()
	return m, nil
}
