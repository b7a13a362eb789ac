// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mpdsolve is the thin CLI entry point wiring config, meshio, chem
// and optim together: an out-of-scope driver kept minimal, in the teacher's
// main.go idiom (spec.md section 1, "Out of scope").
package main

import (
	"flag"

	"github.com/ISCDtoolbox/MPD-sub003/config"
	"github.com/ISCDtoolbox/MPD-sub003/meshio"
	"github.com/ISCDtoolbox/MPD-sub003/optim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.Pf("\nmpdsolve -- Maximum Probability Domain optimization engine\n\n")

	flag.Parse()
	var infoPath string
	if len(flag.Args()) > 0 {
		infoPath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide an .info filename. Ex.: water.info")
	}

	cfg, err := config.ReadInfo(infoPath)
	if err != nil {
		chk.Panic("%v", err)
	}

	chm, err := loadChemicalSystem(cfg)
	if err != nil {
		chk.Panic("%v", err)
	}

	msh, err := meshio.ReadMedit(cfg.NameMesh)
	if err != nil {
		chk.Panic("%v", err)
	}

	loop, err := optim.NewLoop(cfg, chm, msh)
	if err != nil {
		chk.Panic("%v", err)
	}
	if err := loop.Run(); err != nil {
		chk.Panic("%v", err)
	}

	io.Pfgreen("\nmpdsolve: done\n")
}
