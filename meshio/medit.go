// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadMedit reads an ASCII Medit INRIA (.mesh) file (spec.md section 6).
func ReadMedit(path string) (m *Mesh, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("meshio: cannot open mesh file %q: %v", path, err)
	}
	defer f.Close()

	m = new(Mesh)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1<<20), 1<<20)

	nextInt := func() int {
		for sc.Scan() {
			t := strings.TrimSpace(sc.Text())
			if t == "" {
				continue
			}
			v, e := strconv.Atoi(t)
			if e != nil {
				return 0
			}
			return v
		}
		return 0
	}
	nextFields := func() []string {
		for sc.Scan() {
			t := strings.TrimSpace(sc.Text())
			if t == "" {
				continue
			}
			return strings.Fields(t)
		}
		return nil
	}

	for sc.Scan() {
		kw := strings.TrimSpace(sc.Text())
		switch kw {
		case "":
			continue
		case "MeshVersionFormatted", "MeshVersionFormatted 2":
			continue
		case "Dimension", "Dimension 3":
			continue
		case "End":
			return m, nil
		case "Vertices":
			n := nextInt()
			m.Verts = make([]Point, n)
			for i := 0; i < n; i++ {
				fl := nextFields()
				m.Verts[i] = Point{
					X:     atof(fl[0]),
					Y:     atof(fl[1]),
					Z:     atof(fl[2]),
					Label: atoi(fl[3]),
				}
			}
		case "Edges":
			n := nextInt()
			m.Edges = make([]Edge, n)
			for i := 0; i < n; i++ {
				fl := nextFields()
				m.Edges[i] = Edge{V: [2]int{atoi(fl[0]), atoi(fl[1])}, Label: atoi(fl[2])}
			}
		case "Triangles":
			n := nextInt()
			m.Triangles = make([]Triangle, n)
			for i := 0; i < n; i++ {
				fl := nextFields()
				m.Triangles[i] = Triangle{V: [3]int{atoi(fl[0]), atoi(fl[1]), atoi(fl[2])}, Label: atoi(fl[3])}
			}
		case "Quadrilaterals":
			n := nextInt()
			m.Quads = make([]Quadrilateral, n)
			for i := 0; i < n; i++ {
				fl := nextFields()
				m.Quads[i] = Quadrilateral{V: [4]int{atoi(fl[0]), atoi(fl[1]), atoi(fl[2]), atoi(fl[3])}, Label: atoi(fl[4])}
			}
		case "Tetrahedra":
			n := nextInt()
			m.Tets = make([]Tetrahedron, n)
			for i := 0; i < n; i++ {
				fl := nextFields()
				m.Tets[i] = Tetrahedron{V: [4]int{atoi(fl[0]), atoi(fl[1]), atoi(fl[2]), atoi(fl[3])}, Label: atoi(fl[4])}
			}
		case "Hexahedra":
			n := nextInt()
			m.Hexes = make([]Hexahedron, n)
			for i := 0; i < n; i++ {
				fl := nextFields()
				var v [8]int
				for j := 0; j < 8; j++ {
					v[j] = atoi(fl[j])
				}
				m.Hexes[i] = Hexahedron{V: v, Label: atoi(fl[8])}
			}
		case "Ridges":
			n := nextInt()
			m.Ridges = make([]int, n)
			for i := 0; i < n; i++ {
				m.Ridges[i] = nextInt()
			}
		case "Corners":
			n := nextInt()
			m.Corners = make([]int, n)
			for i := 0; i < n; i++ {
				m.Corners[i] = nextInt()
			}
		case "RequiredVertices":
			n := nextInt()
			m.Required = make([]int, n)
			for i := 0; i < n; i++ {
				m.Required[i] = nextInt()
			}
		case "Normals":
			n := nextInt()
			m.Normals = make([][3]float64, n)
			for i := 0; i < n; i++ {
				fl := nextFields()
				m.Normals[i] = [3]float64{atof(fl[0]), atof(fl[1]), atof(fl[2])}
			}
		case "NormalAtVertices":
			n := nextInt()
			m.NormalAtVertices = make([]int, n)
			for i := 0; i < n; i++ {
				fl := nextFields()
				m.NormalAtVertices[i] = atoi(fl[0])
			}
		case "Tangents":
			n := nextInt()
			m.Tangents = make([][3]float64, n)
			for i := 0; i < n; i++ {
				fl := nextFields()
				m.Tangents[i] = [3]float64{atof(fl[0]), atof(fl[1]), atof(fl[2])}
			}
		case "TangentAtVertices":
			n := nextInt()
			m.TangentAtVertices = make([]int, n)
			for i := 0; i < n; i++ {
				fl := nextFields()
				m.TangentAtVertices[i] = atoi(fl[0])
			}
		default:
			// unknown keyword: ignore (forward compatibility with fields
			// not needed by the optimization core)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, chk.Err("meshio: error scanning mesh file %q: %v", path, err)
	}
	return m, nil
}

// WriteMedit writes m to path in ASCII Medit INRIA format.
func WriteMedit(path string, m *Mesh) (err error) {
	var b bytes.Buffer
	b.WriteString("MeshVersionFormatted 2\n\nDimension 3\n\n")

	io.Ff(&b, "Vertices\n%d\n", len(m.Verts))
	for _, v := range m.Verts {
		io.Ff(&b, "%23.15e %23.15e %23.15e %d\n", v.X, v.Y, v.Z, v.Label)
	}
	b.WriteString("\n")

	if len(m.Edges) > 0 {
		io.Ff(&b, "Edges\n%d\n", len(m.Edges))
		for _, e := range m.Edges {
			io.Ff(&b, "%d %d %d\n", e.V[0], e.V[1], e.Label)
		}
		b.WriteString("\n")
	}
	if len(m.Triangles) > 0 {
		io.Ff(&b, "Triangles\n%d\n", len(m.Triangles))
		for _, t := range m.Triangles {
			io.Ff(&b, "%d %d %d %d\n", t.V[0], t.V[1], t.V[2], t.Label)
		}
		b.WriteString("\n")
	}
	if len(m.Quads) > 0 {
		io.Ff(&b, "Quadrilaterals\n%d\n", len(m.Quads))
		for _, q := range m.Quads {
			io.Ff(&b, "%d %d %d %d %d\n", q.V[0], q.V[1], q.V[2], q.V[3], q.Label)
		}
		b.WriteString("\n")
	}
	if len(m.Tets) > 0 {
		io.Ff(&b, "Tetrahedra\n%d\n", len(m.Tets))
		for _, t := range m.Tets {
			io.Ff(&b, "%d %d %d %d %d\n", t.V[0], t.V[1], t.V[2], t.V[3], t.Label)
		}
		b.WriteString("\n")
	}
	if len(m.Hexes) > 0 {
		io.Ff(&b, "Hexahedra\n%d\n", len(m.Hexes))
		for _, h := range m.Hexes {
			io.Ff(&b, "%d %d %d %d %d %d %d %d %d\n",
				h.V[0], h.V[1], h.V[2], h.V[3], h.V[4], h.V[5], h.V[6], h.V[7], h.Label)
		}
		b.WriteString("\n")
	}
	if len(m.Ridges) > 0 {
		io.Ff(&b, "Ridges\n%d\n", len(m.Ridges))
		for _, r := range m.Ridges {
			io.Ff(&b, "%d\n", r)
		}
		b.WriteString("\n")
	}
	if len(m.Corners) > 0 {
		io.Ff(&b, "Corners\n%d\n", len(m.Corners))
		for _, c := range m.Corners {
			io.Ff(&b, "%d\n", c)
		}
		b.WriteString("\n")
	}
	if len(m.Required) > 0 {
		io.Ff(&b, "RequiredVertices\n%d\n", len(m.Required))
		for _, r := range m.Required {
			io.Ff(&b, "%d\n", r)
		}
		b.WriteString("\n")
	}
	b.WriteString("End\n")

	return io.WriteFileV(path, &b)
}

func atof(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
