// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

// hexToTetPattern lists the six positively oriented tetrahedra a hex cell
// decomposes into, as 1-based local vertex indices (spec.md section 6).
var hexToTetPattern = [6][4]int{
	{1, 5, 2, 4},
	{6, 2, 5, 4},
	{2, 3, 4, 6},
	{7, 8, 3, 6},
	{6, 4, 8, 3},
	{8, 6, 5, 4},
}

// TetMirror builds a read-only tetrahedral mirror of a hex mesh, for
// diagnostic visualisation of the current Omega; no shape mode or other
// part of the optimization pipeline calls it.
func TetMirror(m *Mesh) []Tetrahedron {
	if !m.IsHex() {
		return nil
	}
	tets := make([]Tetrahedron, 0, len(m.Hexes)*6)
	for _, h := range m.Hexes {
		for _, p := range hexToTetPattern {
			tets = append(tets, Tetrahedron{
				V:     [4]int{h.V[p[0]-1], h.V[p[1]-1], h.V[p[2]-1], h.V[p[3]-1]},
				Label: h.Label,
			})
		}
	}
	return tets
}
