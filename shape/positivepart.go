// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/config"
	"github.com/ISCDtoolbox/MPD-sub003/eigen"
	"github.com/ISCDtoolbox/MPD-sub003/meshio"
)

// runPositivePart implements the experimental opt_mode 4 (spec.md 4.7):
// Omega_new = {g > 0}. The shape gradient itself is handed to the adapter
// as the level set directly, skipping the extension and renormalisation
// passes Eulerian mode needs, since no advection is performed: the domain
// is simply redefined as the gradient's positive region.
func runPositivePart(msh *meshio.Mesh, chm *chem.ChemicalSystem, cfg *config.Params, eg *eigen.Result, tools Tools) (*meshio.Mesh, error) {
	grad := vertexGradients(msh, chm, eg, cfg.NuElectrons)

	var result *meshio.Mesh
	err := withScopedMesh(cfg.NameMesh, func(chiPath string) error {
		levelSetPath := cfg.NameMesh + ".pp.sol"
		if err := meshio.WriteSolScalar(levelSetPath, grad); err != nil {
			return err
		}
		outMeshPath := cfg.NameMesh + ".out.mesh"
		if err := run(tools.Adapter, "-ls", chiPath, levelSetPath, outMeshPath); err != nil {
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
