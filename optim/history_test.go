// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optim

import (
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"
)

func Test_NewHistory_preallocates_iterMax_plus_one(tst *testing.T) {

	chk.PrintTitle("NewHistory_preallocates_iterMax_plus_one")

	h := NewHistory(5)
	chk.IntAssert(len(h.Pnu), 6)
	chk.IntAssert(len(h.Pop), 6)
	chk.IntAssert(len(h.D0p), 6)
	chk.IntAssert(len(h.D1p), 6)
	chk.IntAssert(len(h.D2p), 6)
	chk.IntAssert(len(h.Tim), 6)
	chk.IntAssert(len(h.Ctim), 6)
}

func Test_RecordIteration_d0p_d2p(tst *testing.T) {

	chk.PrintTitle("RecordIteration_d0p_d2p")

	h := NewHistory(2)
	h.Start()

	t0 := time.Now()
	h.RecordIteration(0, 0.80, 1.0, 0.05, t0)
	chk.Scalar(tst, "d0p[0] must stay zero (no previous iteration)", 1e-14, h.D0p[0], 0.0)
	chk.Scalar(tst, "d2p[0] must stay zero (no previous iteration)", 1e-14, h.D2p[0], 0.0)

	t1 := time.Now()
	h.RecordIteration(1, 0.83, 1.0, 0.02, t1)
	chk.Scalar(tst, "d0p[1] = |pnu[1]-pnu[0]|", 1e-14, h.D0p[1], 0.03)
	chk.Scalar(tst, "d2p[1] = |d1p[1]-d1p[0]|", 1e-14, h.D2p[1], 0.03)

	if h.Ctim[1] < h.Ctim[0] {
		tst.Errorf("cumulative time must be non-decreasing\n")
	}
}

func Test_abs(tst *testing.T) {

	chk.PrintTitle("abs")

	chk.Scalar(tst, "abs(-3)", 1e-14, abs(-3.0), 3.0)
	chk.Scalar(tst, "abs(3)", 1e-14, abs(3.0), 3.0)
	chk.Scalar(tst, "abs(0)", 1e-14, abs(0.0), 0.0)
}
