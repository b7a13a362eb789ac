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

// ReadSol reads a companion .sol file: a scalar field ("SolAtVertices n 1 1")
// or a 3-component vector field ("SolAtVertices n 1 2").
func ReadSol(path string) (scalar []float64, vector [][3]float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, chk.Err("meshio: cannot open sol file %q: %v", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1<<20), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "SolAtVertices") {
			continue
		}
		sc.Scan()
		n, _ := strconv.Atoi(strings.TrimSpace(sc.Text()))
		sc.Scan()
		hdr := strings.Fields(sc.Text())
		ncomp := 1
		if len(hdr) >= 2 {
			ncomp, _ = strconv.Atoi(hdr[1])
		}
		if ncomp == 1 {
			scalar = make([]float64, n)
			for i := 0; i < n; i++ {
				sc.Scan()
				scalar[i] = atof(strings.TrimSpace(sc.Text()))
			}
		} else {
			vector = make([][3]float64, n)
			for i := 0; i < n; i++ {
				sc.Scan()
				fl := strings.Fields(sc.Text())
				vector[i] = [3]float64{atof(fl[0]), atof(fl[1]), atof(fl[2])}
			}
		}
		return
	}
	return nil, nil, chk.Err("meshio: no SolAtVertices record in %q", path)
}

// WriteSolScalar writes a per-vertex scalar field (e.g. the shape gradient).
func WriteSolScalar(path string, values []float64) error {
	var b bytes.Buffer
	b.WriteString("MeshVersionFormatted 2\n\nDimension 3\n\n")
	io.Ff(&b, "SolAtVertices\n%d\n1 1\n", len(values))
	for _, v := range values {
		io.Ff(&b, "%23.15e\n", v)
	}
	b.WriteString("\nEnd\n")
	return io.WriteFileV(path, &b)
}

// WriteSolVector writes a per-vertex 3-component vector field.
func WriteSolVector(path string, values [][3]float64) error {
	var b bytes.Buffer
	b.WriteString("MeshVersionFormatted 2\n\nDimension 3\n\n")
	io.Ff(&b, "SolAtVertices\n%d\n1 2\n", len(values))
	for _, v := range values {
		io.Ff(&b, "%23.15e %23.15e %23.15e\n", v[0], v[1], v[2])
	}
	b.WriteString("\nEnd\n")
	return io.WriteFileV(path, &b)
}
