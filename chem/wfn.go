// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// the core never parses a .wfn file on its own during an iteration; this
// loader is a convenience for tests and the thin command-line driver, the
// way spec.md section 2 hands a pre-built ChemicalSystem to the core.

var nucleusLineRe = regexp.MustCompile(
	`^\s*\S+\s+\d+\s+\(CENTRE\s*\d+\)\s+(\S+)\s+(\S+)\s+(\S+)\s+CHARGE\s*=\s*(\S+)`)

// ReadWFN parses a Gaussian .wfn file into a ChemicalSystem.
//
// Supported records: the nuclei block (one line per atom matching
// "AtomName index (CENTRE index) x y z CHARGE = z"), the "CENTRE ASSIGNMENTS"
// primitive-to-nucleus map, the "TYPE ASSIGNMENTS" angular-type map, the
// "EXPONENTS" list, and one "MO" header plus coefficient block per orbital.
func ReadWFN(path string) (chm *ChemicalSystem, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("chem: cannot open wfn file %q: %v", path, err)
	}
	defer f.Close()

	chm = new(ChemicalSystem)
	var centres []int
	var types []AngularType
	var exps []float64
	var nprim int

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1<<20), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		up := strings.ToUpper(line)

		if m := nucleusLineRe.FindStringSubmatch(line); m != nil {
			x, _ := strconv.ParseFloat(m[1], 64)
			y, _ := strconv.ParseFloat(m[2], 64)
			z, _ := strconv.ParseFloat(m[3], 64)
			q, _ := strconv.ParseFloat(m[4], 64)
			chm.Nuclei = append(chm.Nuclei, Nucleus{X: x, Y: y, Z: z, Charge: int(q)})
			continue
		}

		switch {
		case strings.HasPrefix(up, "CENTRE ASSIGNMENTS"):
			centres = append(centres, parseInts(line[strings.Index(up, ")")+1:])...)
		case strings.HasPrefix(up, "TYPE ASSIGNMENTS"):
			for _, v := range parseInts(line[strings.Index(up, ")")+1:]) {
				types = append(types, AngularType(v))
			}
		case strings.HasPrefix(up, "EXPONENTS"):
			exps = append(exps, parseFloatsD(line[strings.Index(up, "EXPONENTS")+9:])...)
		case strings.HasPrefix(up, "MO "):
			nprim = len(centres)
			coeffs := make([]float64, 0, nprim)
			spin := 1
			if strings.Contains(up, "BETA") {
				spin = -1
			}
			for len(coeffs) < nprim && sc.Scan() {
				coeffs = append(coeffs, parseFloatsD(sc.Text())...)
			}
			orb := MolecularOrbital{Spin: spin, NPrimitive: nprim}
			orb.Primitives = make([]Primitive, nprim)
			for k := 0; k < nprim; k++ {
				orb.Primitives[k] = Primitive{
					Orbital: len(chm.Orb),
					Nucleus: centres[k],
					Coeff:   coeffs[k],
					Alpha:   exps[k],
					Type:    types[k],
				}
			}
			chm.Orb = append(chm.Orb, orb)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, chk.Err("chem: error scanning wfn file %q: %v", path, err)
	}

	chm.N = len(chm.Orb)
	chm.K = nprim
	if err = chm.Validate(); err != nil {
		return nil, err
	}
	return chm, nil
}

func parseInts(s string) (out []int) {
	for _, f := range strings.Fields(s) {
		v, err := strconv.Atoi(f)
		if err == nil {
			out = append(out, v)
		}
	}
	return
}

// parseFloatsD parses Fortran-style "D" exponent floats in addition to
// ordinary ones, as .wfn files emit e.g. 0.123456789D+02.
func parseFloatsD(s string) (out []float64) {
	for _, f := range strings.Fields(s) {
		f = strings.ReplaceAll(strings.ReplaceAll(f, "D+", "E+"), "D-", "E-")
		v, err := strconv.ParseFloat(f, 64)
		if err == nil {
			out = append(out, v)
		}
	}
	return
}
