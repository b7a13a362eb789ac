// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_Sol_scalar_roundtrip(tst *testing.T) {

	chk.PrintTitle("Sol_scalar_roundtrip")

	path := filepath.Join(os.TempDir(), "mpd_test_scalar.sol")
	defer os.Remove(path)

	values := []float64{0.1, -0.2, 3.4}
	if err := WriteSolScalar(path, values); err != nil {
		tst.Errorf("WriteSolScalar failed: %v\n", err)
		return
	}
	scalar, vector, err := ReadSol(path)
	if err != nil {
		tst.Errorf("ReadSol failed: %v\n", err)
		return
	}
	if vector != nil {
		tst.Errorf("expected a nil vector field for a scalar .sol file\n")
	}
	chk.IntAssert(len(scalar), len(values))
	for i, v := range values {
		chk.Scalar(tst, "scalar value", 1e-14, scalar[i], v)
	}
}

func Test_Sol_vector_roundtrip(tst *testing.T) {

	chk.PrintTitle("Sol_vector_roundtrip")

	path := filepath.Join(os.TempDir(), "mpd_test_vector.sol")
	defer os.Remove(path)

	values := [][3]float64{{1, 0, 0}, {0, 1, 0.5}}
	if err := WriteSolVector(path, values); err != nil {
		tst.Errorf("WriteSolVector failed: %v\n", err)
		return
	}
	scalar, vector, err := ReadSol(path)
	if err != nil {
		tst.Errorf("ReadSol failed: %v\n", err)
		return
	}
	if scalar != nil {
		tst.Errorf("expected a nil scalar field for a vector .sol file\n")
	}
	chk.IntAssert(len(vector), len(values))
	for i, v := range values {
		for k := 0; k < 3; k++ {
			chk.Scalar(tst, "vector component", 1e-14, vector[i][k], v[k])
		}
	}
}
