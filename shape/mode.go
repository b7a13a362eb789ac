// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/cpmech/gosl/chk"

// Mode is the tagged variant encoding of opt_mode (spec.md 9, "Mode
// dispatch"): the integer form is retained only at the configuration
// boundary, via ModeFromInt/Int.
type Mode int

const (
	ExhaustiveHex    Mode = -2
	DirectHex        Mode = -1
	LineSearch       Mode = 1
	EulerianLevelSet Mode = 2
	Lagrangian       Mode = 3
	PositivePart     Mode = 4 // experimental
)

// ModeFromInt validates and converts the raw opt_mode integer.
func ModeFromInt(n int) (Mode, error) {
	switch Mode(n) {
	case ExhaustiveHex, DirectHex, LineSearch, EulerianLevelSet, Lagrangian, PositivePart:
		return Mode(n), nil
	}
	return 0, chk.Err("shape: unrecognised opt_mode %d", n)
}

// Int returns the raw integer form stored in the .info file.
func (m Mode) Int() int { return int(m) }

func (m Mode) String() string {
	switch m {
	case ExhaustiveHex:
		return "exhaustive-hex"
	case DirectHex:
		return "direct-hex"
	case LineSearch:
		return "line-search"
	case EulerianLevelSet:
		return "eulerian-level-set"
	case Lagrangian:
		return "lagrangian"
	case PositivePart:
		return "positive-part"
	}
	return "unknown"
}

// IsTetrahedral reports whether this mode operates on a tetrahedral mesh
// via an external mesh-adaptation tool, as opposed to flipping hex labels
// directly in-process.
func (m Mode) IsTetrahedral() bool {
	return m == EulerianLevelSet || m == Lagrangian || m == LineSearch || m == PositivePart
}
