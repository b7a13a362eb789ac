// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlap

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_Mirror_symmetry(tst *testing.T) {

	chk.PrintTitle("Mirror_symmetry")

	m := NewMatrix(3)
	m.Coef[0][0] = 1.0
	m.Coef[1][0] = 0.2
	m.Coef[1][1] = 0.9
	m.Coef[2][0] = 0.1
	m.Coef[2][1] = 0.05
	m.Coef[2][2] = 0.8
	m.Mirror()

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "symmetric", 1e-15, m.Coef[i][j], m.Coef[j][i])
		}
	}
}

func Test_MaxAbs(tst *testing.T) {

	chk.PrintTitle("MaxAbs")

	m := NewMatrix(2)
	m.Coef[0][0] = -0.7
	m.Coef[0][1] = 0.3
	m.Coef[1][1] = 0.5
	chk.Scalar(tst, "max abs", 1e-15, m.MaxAbs(), 0.7)
}
