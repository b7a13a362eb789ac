// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/config"
	"github.com/ISCDtoolbox/MPD-sub003/eigen"
	"github.com/ISCDtoolbox/MPD-sub003/meshio"
	"github.com/ISCDtoolbox/MPD-sub003/overlap"
	"github.com/ISCDtoolbox/MPD-sub003/prob"
)

// runExhaustiveHex implements opt_mode -2 (spec.md 4.7): for every boundary
// quadrilateral, try adding the outside hexahedron and try removing the
// inside one, each time via the incremental hex assembler so a single
// trial costs one eigen-decomposition rather than a full reassembly.
// Only moves that raise P_nu are committed.
func runExhaustiveHex(msh *meshio.Mesh, chm *chem.ChemicalSystem, cfg *config.Params, cur *Snapshot) (*meshio.Mesh, *Snapshot, error) {
	if msh.Adjacency == nil {
		msh.Adjacency = meshio.BuildAdjacency(msh)
	}
	base := cur.Active
	curPnu := cur.Prob.Pnu(cfg.NuElectrons)

	for _, a := range msh.Adjacency {
		hexOut := int(a.HexOut)
		hexIn := int(a.HexIn)

		if msh.Hexes[hexOut].Label == meshio.LabelExterior {
			msh.Hexes[hexOut].Label = -3
			trial, err := overlap.AssembleHexAdd(msh, chm, base, cfg.NCpu)
			if err != nil {
				return nil, nil, err
			}
			eg, err := eigen.Solve(trial, chm)
			if err != nil {
				return nil, nil, err
			}
			pr := prob.Compute(eg)
			if pr.Pnu(cfg.NuElectrons) > curPnu {
				base, curPnu = trial, pr.Pnu(cfg.NuElectrons)
				cur = &Snapshot{Active: trial, Eig: eg, Prob: pr}
				// commit immediately: leaving the label at -3 would make the
				// next candidate's AssembleHexAdd re-sum this hex as new
				msh.Hexes[hexOut].Label = meshio.LabelInterior
			} else {
				msh.Hexes[hexOut].Label = meshio.LabelExterior
			}
		}

		if msh.Hexes[hexIn].Label == meshio.LabelInterior {
			msh.Hexes[hexIn].Label = -2
			trial, err := overlap.AssembleHexSubtract(msh, chm, base, cfg.NCpu)
			if err != nil {
				return nil, nil, err
			}
			eg, err := eigen.Solve(trial, chm)
			if err != nil {
				return nil, nil, err
			}
			pr := prob.Compute(eg)
			if pr.Pnu(cfg.NuElectrons) > curPnu {
				base, curPnu = trial, pr.Pnu(cfg.NuElectrons)
				cur = &Snapshot{Active: trial, Eig: eg, Prob: pr}
				// commit immediately, same reasoning as the add branch above
				msh.Hexes[hexIn].Label = meshio.LabelExterior
			} else {
				msh.Hexes[hexIn].Label = meshio.LabelInterior
			}
		}
	}

	commitPendingLabels(msh)
	msh.Adjacency = meshio.BuildAdjacency(msh)
	return msh, cur, nil
}

// commitPendingLabels replaces every transient +-2/+-3 label with its
// absolute value, the normalisation spec.md 4.7 and 8 require after an
// exhaustive-hex or direct-hex sweep ("round-trip of hex labels").
func commitPendingLabels(msh *meshio.Mesh) {
	for i := range msh.Hexes {
		l := msh.Hexes[i].Label
		if l < 0 {
			msh.Hexes[i].Label = -l
		}
	}
}

// runDirectHex implements opt_mode -1 (spec.md 4.7): a cheaper sign test
// using the shape gradient at the quadrilateral centre (and a second probe
// one cell further out) instead of a full trial re-assembly per candidate.
func runDirectHex(msh *meshio.Mesh, chm *chem.ChemicalSystem, cfg *config.Params, cur *Snapshot) (*meshio.Mesh, error) {
	if msh.Adjacency == nil {
		msh.Adjacency = meshio.BuildAdjacency(msh)
	}
	nu := cfg.NuElectrons

	for _, a := range msh.Adjacency {
		hexOut := int(a.HexOut)
		hexIn := int(a.HexIn)
		cx, cy, cz := quadCentre(msh, int(a.Quad))
		g0 := prob.ShapeGradientAt(cx, cy, cz, chm, cur.Eig, nu)

		if g0 > 0 && msh.Hexes[hexOut].Label == meshio.LabelExterior {
			// the neighbour's centroid lies half a cell out from the quad centre
			ox, oy, oz := hexCentroid(msh, hexOut)
			g1 := prob.ShapeGradientAt(2*ox-cx, 2*oy-cy, 2*oz-cz, chm, cur.Eig, nu)
			if g1 > 0 {
				if cfg.TrickMatrix {
					msh.Hexes[hexOut].Label = -3
				} else {
					msh.Hexes[hexOut].Label = meshio.LabelInterior
				}
			}
		} else if g0 < 0 && msh.Hexes[hexIn].Label == meshio.LabelInterior {
			ix, iy, iz := hexCentroid(msh, hexIn)
			g1 := prob.ShapeGradientAt(2*ix-cx, 2*iy-cy, 2*iz-cz, chm, cur.Eig, nu)
			if g1 < 0 {
				if cfg.TrickMatrix {
					msh.Hexes[hexIn].Label = -2
				} else {
					msh.Hexes[hexIn].Label = meshio.LabelExterior
				}
			}
		}
	}

	commitPendingLabels(msh)
	msh.Adjacency = meshio.BuildAdjacency(msh)
	return msh, nil
}

func quadCentre(msh *meshio.Mesh, qi int) (x, y, z float64) {
	q := msh.Quads[qi]
	for _, vi := range q.V {
		v := msh.Verts[vi-1]
		x += v.X / 4
		y += v.Y / 4
		z += v.Z / 4
	}
	return
}

func hexCentroid(msh *meshio.Mesh, hi int) (x, y, z float64) {
	h := msh.Hexes[hi]
	for _, vi := range h.V {
		v := msh.Verts[vi-1]
		x += v.X / 8
		y += v.Y / 8
		z += v.Z / 8
	}
	return
}
