// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape implements the five mode-specific strategies that update
// Omega from the probability engine's shape gradient (C7).
package shape

import (
	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/eigen"
	"github.com/ISCDtoolbox/MPD-sub003/meshio"
	"github.com/ISCDtoolbox/MPD-sub003/overlap"
	"github.com/ISCDtoolbox/MPD-sub003/prob"
	"github.com/ISCDtoolbox/MPD-sub003/quad"
)

// Snapshot bundles one iteration's C4-C5-C6 output, the triple every shape
// mode both consumes and, after mutating the mesh, recomputes (spec.md 4.8,
// step 2: "Invoke C7 for the active mode, which itself re-runs C4->C5->C6").
type Snapshot struct {
	Active *overlap.Matrix
	Eig    *eigen.Result
	Prob   *prob.Probabilities
}

// RunPipeline assembles S(Omega), diagonalises it and computes P_k(Omega)
// from scratch, dispatching to the tetrahedral or hexahedral assembler
// depending on the mesh kind (spec.md 4.4-4.6).
func RunPipeline(msh *meshio.Mesh, chm *chem.ChemicalSystem, nWorkers int) (*Snapshot, error) {
	var active *overlap.Matrix
	var err error
	if msh.IsHex() {
		active, err = overlap.AssembleHexFresh(msh, chm, meshio.LabelExterior, nWorkers)
	} else {
		active, err = overlap.AssembleTet(msh, chm, meshio.LabelExterior, nWorkers)
	}
	if err != nil {
		return nil, err
	}
	eg, err := eigen.Solve(active, chm)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Active: active, Eig: eg, Prob: prob.Compute(eg)}, nil
}

// ShapeResidual integrates the squared shape gradient over the Omega
// boundary (the mesh's labelled-10 triangles, or two triangles per
// labelled-10 quadrilateral for a hex mesh) using Cowper's 7-point rule
// (spec.md 4.7, "Shape residual").
func ShapeResidual(msh *meshio.Mesh, chm *chem.ChemicalSystem, eg *eigen.Result, nu int) float64 {
	g2 := func(x, y, z float64) float64 {
		g := prob.ShapeGradientAt(x, y, z, chm, eg, nu)
		return g * g
	}
	sum := 0.0
	for _, t := range msh.Triangles {
		if t.Label != meshio.LabelBoundary {
			continue
		}
		v1, v2, v3 := vertexXYZ(msh, t.V[0]), vertexXYZ(msh, t.V[1]), vertexXYZ(msh, t.V[2])
		sum += quad.TriangleIntegral(v1, v2, v3, g2)
	}
	for _, q := range msh.Quads {
		if q.Label != meshio.LabelBoundary {
			continue
		}
		v1, v2, v3, v4 := vertexXYZ(msh, q.V[0]), vertexXYZ(msh, q.V[1]), vertexXYZ(msh, q.V[2]), vertexXYZ(msh, q.V[3])
		sum += quad.TriangleIntegral(v1, v2, v3, g2)
		sum += quad.TriangleIntegral(v1, v3, v4, g2)
	}
	return sum
}

func vertexXYZ(msh *meshio.Mesh, idx1based int) [3]float64 {
	v := msh.Verts[idx1based-1]
	return [3]float64{v.X, v.Y, v.Z}
}
