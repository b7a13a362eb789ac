// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/ISCDtoolbox/MPD-sub003/chem"
	"github.com/ISCDtoolbox/MPD-sub003/config"
)

// loadChemicalSystem reads the wave-function file named by name_chem and
// applies the orb_rhf flag from the .info file, since the .wfn format
// itself carries no closed-shell marker.
func loadChemicalSystem(cfg *config.Params) (*chem.ChemicalSystem, error) {
	chm, err := chem.ReadWFN(cfg.NameChem)
	if err != nil {
		return nil, err
	}
	chm.OrbRhf = cfg.OrbRhf
	if err := chm.Validate(); err != nil {
		return nil, err
	}
	return chm, nil
}
