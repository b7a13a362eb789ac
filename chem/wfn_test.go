// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const sampleWfn = `TEST TITLE
GAUSSIAN              1 MOL ORBITALS      1 PRIMITIVES      1 NUCLEI
H     1    (CENTRE  1)   0.00000000  0.00000000  0.00000000  CHARGE =  1.0
CENTRE ASSIGNMENTS    1
TYPE ASSIGNMENTS      1
EXPONENTS        0.100000000D+01
MO    1                     OCC NO =    1.00000000  ORB. ENERGY =   -1.000000
 0.100000000D+01
END DATA
`

func Test_ReadWFN_synthetic_roundtrip(tst *testing.T) {

	chk.PrintTitle("ReadWFN_synthetic_roundtrip")

	path := filepath.Join(os.TempDir(), "mpd_test_sample.wfn")
	if err := os.WriteFile(path, []byte(sampleWfn), 0644); err != nil {
		tst.Errorf("setup failed: %v\n", err)
		return
	}
	defer os.Remove(path)

	chm, err := ReadWFN(path)
	if err != nil {
		tst.Errorf("ReadWFN failed: %v\n", err)
		return
	}

	chk.IntAssert(chm.N, 1)
	chk.IntAssert(chm.K, 1)
	chk.IntAssert(len(chm.Nuclei), 1)
	chk.Scalar(tst, "nucleus charge", 1e-14, float64(chm.Nuclei[0].Charge), 1.0)

	chk.IntAssert(len(chm.Orb), 1)
	chk.IntAssert(chm.Orb[0].Spin, 1)
	chk.IntAssert(len(chm.Orb[0].Primitives), 1)

	p := chm.Orb[0].Primitives[0]
	chk.Scalar(tst, "primitive coefficient", 1e-14, p.Coeff, 1.0)
	chk.Scalar(tst, "primitive exponent", 1e-14, p.Alpha, 1.0)
	if p.Type != S1s {
		tst.Errorf("expected angular type S1s, got %d\n", p.Type)
	}
}
