// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optim

import (
	"os"
	"time"

	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/config"
	"github.com/ISCDtoolbox/MPD-sub003/meshio"
	"github.com/ISCDtoolbox/MPD-sub003/shape"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Loop drives C4->C5->C6->C7 to convergence or iter_max (C8, spec.md 4.8).
type Loop struct {
	Cfg  *config.Params
	Chm  *chem.ChemicalSystem
	Mode shape.Mode
	Hist *History

	mesh  *meshio.Mesh
	tools shape.Tools
}

// NewLoop validates cfg.OptMode into a shape.Mode and allocates history.
func NewLoop(cfg *config.Params, chm *chem.ChemicalSystem, msh *meshio.Mesh) (*Loop, error) {
	mode, err := shape.ModeFromInt(cfg.OptMode)
	if err != nil {
		return nil, err
	}
	if err := chm.Validate(); err != nil {
		return nil, err
	}
	return &Loop{
		Cfg:   cfg,
		Chm:   chm,
		Mode:  mode,
		Hist:  NewHistory(cfg.IterMax),
		mesh:  msh,
		tools: shape.DefaultTools(),
	}, nil
}

// Run executes the initialisation step (k=0) and the main iteration loop
// (spec.md 4.8). On any fatal error it aborts, leaving every checkpoint
// already written on disk intact (spec.md 4.8, "Failure semantics").
func (l *Loop) Run() error {
	l.Hist.Start()

	if err := config.WriteInfo(l.Cfg.NameInfo, l.Cfg); err != nil {
		return err
	}

	t0 := time.Now()
	snap, err := shape.RunPipeline(l.mesh, l.Chm, l.Cfg.NCpu)
	if err != nil {
		return err
	}
	d1p0 := shape.ShapeResidual(l.mesh, l.Chm, snap.Eig, l.Cfg.NuElectrons)
	l.Hist.RecordIteration(0, snap.Prob.Pnu(l.Cfg.NuElectrons), snap.Prob.Population, d1p0, t0)

	if err := l.checkpoint(0, l.mesh); err != nil {
		return err
	}
	io.Pf("mpd: iteration 0: pnu=%.10f pop=%.10f\n", l.Hist.Pnu[0], l.Hist.Pop[0])

	for k := 1; k <= l.Cfg.IterMax; k++ {
		if l.stop(k) {
			io.Pfgreen("mpd: converged at iteration %d\n", k-1)
			break
		}

		tk := time.Now()
		outcome, err := shape.Update(l.Mode, l.mesh, l.Chm, l.Cfg, snap, l.tools, l.Hist.Pnu[k-1], l.Hist.D1p[k-1])
		if err != nil {
			return chk.Err("mpd: iteration %d failed: %v", k, err)
		}
		l.mesh = outcome.Mesh
		snap = outcome.Snapshot

		pnuK := snap.Prob.Pnu(l.Cfg.NuElectrons)
		var d1pk float64
		if l.Mode == shape.ExhaustiveHex || l.Mode == shape.DirectHex {
			// purely combinatorial modes have no continuous shape gradient to
			// integrate a residual from, so d1p falls back to d0p
			d1pk = abs(pnuK - l.Hist.Pnu[k-1])
		} else {
			d1pk = shape.ShapeResidual(l.mesh, l.Chm, snap.Eig, l.Cfg.NuElectrons)
		}
		l.Hist.RecordIteration(k, pnuK, snap.Prob.Population, d1pk, tk)

		if err := l.checkpoint(k, l.mesh); err != nil {
			return err
		}
		if l.Cfg.SavePrint {
			io.Pf("mpd: iteration %d (%s): pnu=%.10f d0p=%.3e d1p=%.3e\n",
				k, outcome.Ran, l.Hist.Pnu[k], l.Hist.D0p[k], l.Hist.D1p[k])
		}
		if l.Cfg.SaveData > 0 && k%l.Cfg.SaveData == 0 {
			if err := l.appendDataLog(k); err != nil {
				return err
			}
		}
	}
	return nil
}

// stop implements the three-tolerance stopping test (spec.md 4.8, step 1).
func (l *Loop) stop(k int) bool {
	c := l.Cfg
	if c.IterTold0p <= 0 || c.IterTold1p <= 0 || c.IterTold2p <= 0 {
		return false
	}
	if k < 1 {
		return false
	}
	relax := 1.0
	if l.Mode == shape.ExhaustiveHex || l.Mode == shape.DirectHex {
		relax = 10.0 // combinatorial modes settle their d1p/d0p slower; documented relaxation
	}
	return abs(l.Hist.D0p[k-1]) < c.IterTold0p &&
		abs(l.Hist.D1p[k-1]) < c.IterTold1p &&
		abs(l.Hist.D2p[k-1]) < c.IterTold2p*relax
}

// checkpoint writes the *.k.mesh file and deletes the (k-1)-th one unless it
// is a multiple of save_mesh (spec.md 4.8, step 4).
func (l *Loop) checkpoint(k int, msh *meshio.Mesh) error {
	path := io.Sf("%s.%d.mesh", l.Cfg.NameMesh, k)
	if err := meshio.WriteMedit(path, msh); err != nil {
		return err
	}
	if k > 0 {
		prev := k - 1
		keep := l.Cfg.SaveMesh > 0 && prev%l.Cfg.SaveMesh == 0
		if !keep {
			os.Remove(io.Sf("%s.%d.mesh", l.Cfg.NameMesh, prev))
		}
	}
	return nil
}

// appendDataLog appends one line to *.data: k pnu pop d0p d1p d2p tim ctim
// (spec.md 3, 4.8).
func (l *Loop) appendDataLog(k int) error {
	line := io.Sf("%d %.10f %.10f %.6e %.6e %.6e %.6f %.6f\n",
		k, l.Hist.Pnu[k], l.Hist.Pop[k], l.Hist.D0p[k], l.Hist.D1p[k], l.Hist.D2p[k], l.Hist.Tim[k], l.Hist.Ctim[k])
	f, err := os.OpenFile(l.Cfg.NameData, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return chk.Err("optim: cannot open data log %q: %v", l.Cfg.NameData, err)
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return chk.Err("optim: cannot append to data log %q: %v", l.Cfg.NameData, err)
	}
	return nil
}
