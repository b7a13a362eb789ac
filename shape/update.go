// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/config"
	"github.com/ISCDtoolbox/MPD-sub003/meshio"
	"github.com/cpmech/gosl/chk"
)

// Outcome is what C8 needs after invoking C7 for one iteration: the
// (possibly replaced) mesh, the C4-C5-C6 triple evaluated on it, and the
// mode actually committed (relevant for LineSearch, which resolves to
// whichever of EulerianLevelSet/Lagrangian the step-size test picked).
type Outcome struct {
	Mesh     *meshio.Mesh
	Snapshot *Snapshot
	Ran      Mode
}

// Update dispatches to the mode-specific strategy and re-runs C4->C5->C6 on
// the resulting mesh (spec.md 4.7-4.8, "Invoke C7 for the active mode,
// which itself re-runs C4->C5->C6"). p0 and h are only consulted by
// LineSearch (p0 = pnu[k-1], h = d1p[k-1]); other modes ignore them.
func Update(mode Mode, msh *meshio.Mesh, chm *chem.ChemicalSystem, cfg *config.Params, cur *Snapshot, tools Tools, p0, h float64) (*Outcome, error) {
	switch mode {
	case ExhaustiveHex:
		newMesh, snap, err := runExhaustiveHex(msh, chm, cfg, cur)
		if err != nil {
			return nil, err
		}
		return &Outcome{Mesh: newMesh, Snapshot: snap, Ran: mode}, nil

	case DirectHex:
		newMesh, err := runDirectHex(msh, chm, cfg, cur)
		if err != nil {
			return nil, err
		}
		snap, err := RunPipeline(newMesh, chm, cfg.NCpu)
		if err != nil {
			return nil, err
		}
		return &Outcome{Mesh: newMesh, Snapshot: snap, Ran: mode}, nil

	case EulerianLevelSet:
		newMesh, err := runEulerian(msh, chm, cfg, cur.Eig, tools)
		if err != nil {
			return nil, err
		}
		snap, err := RunPipeline(newMesh, chm, cfg.NCpu)
		if err != nil {
			return nil, err
		}
		return &Outcome{Mesh: newMesh, Snapshot: snap, Ran: mode}, nil

	case Lagrangian:
		newMesh, err := runLagrangian(msh, chm, cfg, cur.Eig, tools)
		if err != nil {
			return nil, err
		}
		snap, err := RunPipeline(newMesh, chm, cfg.NCpu)
		if err != nil {
			return nil, err
		}
		return &Outcome{Mesh: newMesh, Snapshot: snap, Ran: mode}, nil

	case LineSearch:
		newMesh, snap, ran, err := runLineSearch(msh, chm, cfg, cur, tools, p0, h)
		if err != nil {
			return nil, err
		}
		return &Outcome{Mesh: newMesh, Snapshot: snap, Ran: ran}, nil

	case PositivePart:
		newMesh, err := runPositivePart(msh, chm, cfg, cur.Eig, tools)
		if err != nil {
			return nil, err
		}
		snap, err := RunPipeline(newMesh, chm, cfg.NCpu)
		if err != nil {
			return nil, err
		}
		return &Outcome{Mesh: newMesh, Snapshot: snap, Ran: mode}, nil
	}
	return nil, chk.Err("shape: unhandled mode %v", mode)
}
