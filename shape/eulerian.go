// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/config"
	"github.com/ISCDtoolbox/MPD-sub003/eigen"
	"github.com/ISCDtoolbox/MPD-sub003/meshio"
	"github.com/ISCDtoolbox/MPD-sub003/prob"
)

// runEulerian implements opt_mode 2 (spec.md 4.7): save the scalar shape
// gradient at each vertex, extend it off the Omega boundary, renormalise to
// a signed-distance level set, advect that level set with the extended
// gradient as velocity over one step of size delta_t, then adapt the mesh
// to the result. All four operations are external tools invoked
// synchronously (spec.md 5, 6).
func runEulerian(msh *meshio.Mesh, chm *chem.ChemicalSystem, cfg *config.Params, eg *eigen.Result, tools Tools) (*meshio.Mesh, error) {
	grad := vertexGradients(msh, chm, eg, cfg.NuElectrons)

	var result *meshio.Mesh
	err := withScopedMesh(cfg.NameMesh, func(chiPath string) error {
		gradPath := cfg.NameMesh + ".grad.sol"
		if err := meshio.WriteSolScalar(gradPath, grad); err != nil {
			return err
		}

		extendedPath := cfg.NameElas + ".ext.sol"
		if err := run(tools.Extension, chiPath, gradPath, extendedPath); err != nil {
			return err
		}

		levelSetPath := cfg.NameMesh + ".ls.sol"
		if err := run(tools.Renormaliser, "-dom", chiPath, levelSetPath); err != nil {
			return err
		}

		advectedPath := cfg.NameMesh + ".adv.sol"
		if err := run(tools.Renormaliser, "-sol", chiPath, levelSetPath, extendedPath, advectedPath, formatDeltaT(cfg.DeltaT)); err != nil {
			return err
		}

		outMeshPath := cfg.NameMesh + ".out.mesh"
		if err := run(tools.Adapter, "-ls", chiPath, advectedPath, outMeshPath); err != nil {
			return err
		}

		var err error
		result, err = meshio.ReadMedit(outMeshPath)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// runLagrangian implements opt_mode 3 (spec.md 4.7): save the shape
// gradient as a vertex-normal-scaled vector field, move the mesh via the
// adapter's Lagrangian mode, then rebuild a coarse signed distance.
func runLagrangian(msh *meshio.Mesh, chm *chem.ChemicalSystem, cfg *config.Params, eg *eigen.Result, tools Tools) (*meshio.Mesh, error) {
	normals := vertexNormals(msh)
	grad := vertexGradients(msh, chm, eg, cfg.NuElectrons)
	vec := make([][3]float64, len(grad))
	for i, g := range grad {
		vec[i] = [3]float64{g * normals[i][0], g * normals[i][1], g * normals[i][2]}
	}

	var result *meshio.Mesh
	err := withScopedMesh(cfg.NameMesh, func(chiPath string) error {
		vecPath := cfg.NameMesh + ".vec.sol"
		if err := meshio.WriteSolVector(vecPath, vec); err != nil {
			return err
		}

		outMeshPath := cfg.NameMesh + ".out.mesh"
		if err := run(tools.Adapter, "-lag", chiPath, vecPath, outMeshPath); err != nil {
			return err
		}

		if err := run(tools.Renormaliser, "-dom", outMeshPath); err != nil {
			return err
		}

		var err error
		result, err = meshio.ReadMedit(outMeshPath)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// vertexGradients evaluates the shape gradient at every mesh vertex.
func vertexGradients(msh *meshio.Mesh, chm *chem.ChemicalSystem, eg *eigen.Result, nu int) []float64 {
	g := make([]float64, len(msh.Verts))
	for i, v := range msh.Verts {
		g[i] = prob.ShapeGradientAt(v.X, v.Y, v.Z, chm, eg, nu)
	}
	return g
}

// vertexNormals approximates an outward normal at each vertex as the mean
// of its incident boundary-triangle normals; vertices with no boundary
// incidence get the zero vector.
func vertexNormals(msh *meshio.Mesh) [][3]float64 {
	normals := make([][3]float64, len(msh.Verts))
	counts := make([]int, len(msh.Verts))
	for _, t := range msh.Triangles {
		if t.Label != meshio.LabelBoundary {
			continue
		}
		v1, v2, v3 := msh.Verts[t.V[0]-1], msh.Verts[t.V[1]-1], msh.Verts[t.V[2]-1]
		ux, uy, uz := v2.X-v1.X, v2.Y-v1.Y, v2.Z-v1.Z
		wx, wy, wz := v3.X-v1.X, v3.Y-v1.Y, v3.Z-v1.Z
		nx, ny, nz := uy*wz-uz*wy, uz*wx-ux*wz, ux*wy-uy*wx
		for _, vi := range t.V {
			normals[vi-1][0] += nx
			normals[vi-1][1] += ny
			normals[vi-1][2] += nz
			counts[vi-1]++
		}
	}
	for i := range normals {
		if counts[i] == 0 {
			continue
		}
		n := normals[i]
		length := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
		if length == 0 {
			continue
		}
		inv := 1 / math.Sqrt(length)
		normals[i] = [3]float64{n[0] * inv, n[1] * inv, n[2] * inv}
	}
	return normals
}
