// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Cowper's 7-point degree-5 symmetric rule on the reference triangle
// (area 1/2), used by C7 to integrate the squared shape gradient over the
// Omega boundary (spec.md 4.7, "shape residual").
var (
	cowperA1 = 0.0597158717897698
	cowperA2 = 0.7974269853530873
	cowperW0 = 0.225
	cowperW1 = 0.1323941527885062
	cowperW2 = 0.1259391805448271
)

type cowperPoint struct {
	l1, l2, l3 float64
	w          float64
}

var cowper7 = buildCowper7()

func buildCowper7() []cowperPoint {
	b1 := (1 - cowperA1) / 2
	b2 := (1 - cowperA2) / 2
	return []cowperPoint{
		{1.0 / 3, 1.0 / 3, 1.0 / 3, cowperW0},
		{b1, b1, cowperA1, cowperW1},
		{b1, cowperA1, b1, cowperW1},
		{cowperA1, b1, b1, cowperW1},
		{b2, b2, cowperA2, cowperW2},
		{b2, cowperA2, b2, cowperW2},
		{cowperA2, b2, b2, cowperW2},
	}
}

// TriangleIntegral integrates f (given the physical coordinates at a
// barycentric quadrature point) over the triangle with vertices v1,v2,v3,
// using the Cowper 7-point rule. The rule's weights sum to 1, so the result
// scales with the triangle's area (not twice the area).
func TriangleIntegral(v1, v2, v3 [3]float64, f func(x, y, z float64) float64) float64 {
	area := triangleArea(v1, v2, v3)
	sum := 0.0
	for _, p := range cowper7 {
		x := p.l1*v1[0] + p.l2*v2[0] + p.l3*v3[0]
		y := p.l1*v1[1] + p.l2*v2[1] + p.l3*v3[1]
		z := p.l1*v1[2] + p.l2*v2[2] + p.l3*v3[2]
		sum += p.w * f(x, y, z)
	}
	return sum * area
}

func triangleArea(v1, v2, v3 [3]float64) float64 {
	u := []float64{v2[0] - v1[0], v2[1] - v1[1], v2[2] - v1[2]}
	w := []float64{v3[0] - v1[0], v3[1] - v1[1], v3[2] - v1[2]}
	c := make([]float64, 3)
	utl.Cross3d(c, u, w)
	return 0.5 * math.Sqrt(utl.Dot3d(c, c))
}
