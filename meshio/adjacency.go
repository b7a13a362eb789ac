// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import "sort"

// hexFaces lists the 6 faces of a hexahedron as 1-based local vertex
// indices, using the same vertex ordering (bottom 1-2-3-4, top 5-6-7-8,
// vertical edges i/i+4) that hexToTetPattern assumes.
var hexFaces = [6][4]int{
	{1, 2, 3, 4},
	{5, 6, 7, 8},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 4, 8, 7},
	{4, 1, 5, 8},
}

func faceKey(v [4]int) [4]int {
	s := append([]int(nil), v[:]...)
	sort.Ints(s)
	return [4]int{s[0], s[1], s[2], s[3]}
}

func quadKey(q Quadrilateral) [4]int {
	return faceKey(q.V)
}

// BuildAdjacency rebuilds the hex/quad adjacency table from scratch by
// matching every boundary Quadrilateral's vertex set against the hex faces
// that expose it, classifying the two sides by their current label
// (spec.md 3, "Adjacency"; spec.md 9, "Cyclic adjacency"). Any Quadrilateral
// with fewer than two or more than two matching hex faces is skipped; this
// should not happen for a consistent boundary mesh.
func BuildAdjacency(m *Mesh) []Adjacency {
	faceToHex := make(map[[4]int][]int, len(m.Hexes)*6)
	for hi, h := range m.Hexes {
		for _, f := range hexFaces {
			key := faceKey([4]int{h.V[f[0]-1], h.V[f[1]-1], h.V[f[2]-1], h.V[f[3]-1]})
			faceToHex[key] = append(faceToHex[key], hi)
		}
	}

	adj := make([]Adjacency, 0, len(m.Quads))
	for qi, q := range m.Quads {
		hexes := faceToHex[quadKey(q)]
		if len(hexes) != 2 {
			continue
		}
		a, b := hexes[0], hexes[1]
		hexIn, hexOut := a, b
		if m.Hexes[a].Label == LabelExterior {
			hexIn, hexOut = b, a
		}
		adj = append(adj, Adjacency{Quad: int32(qi), HexIn: int32(hexIn), HexOut: int32(hexOut)})
	}
	return adj
}
