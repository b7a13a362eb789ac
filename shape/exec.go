// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"os"
	"os/exec"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// formatDeltaT renders delta_t the way the external tools expect it on
// their command line: a plain high-precision decimal.
func formatDeltaT(dt float64) string {
	return io.Sf("%.15e", dt)
}

// Tools names the three external binaries C7's tetrahedral branches invoke
// (spec.md 6, "External commands"), plus the visualisation command. Field
// names match the flag each command expects.
type Tools struct {
	Adapter      string // mesh-adaptation command, takes -lag or -ls
	Renormaliser string // signed-distance renormaliser, takes -dom or -sol
	Extension    string // linear-elasticity extension solver
	Viewer       string // visualisation command
}

// DefaultTools returns the conventional binary names. No .info keyword sets
// them; name_elas only names the extension solver's output file.
func DefaultTools() Tools {
	return Tools{
		Adapter:      "mshdist_adapt",
		Renormaliser: "mshdist",
		Extension:    "elastic",
		Viewer:       "medit",
	}
}

// run executes name with args, suspending the pipeline synchronously until
// the child exits (spec.md 5, "Cancellation": no parallelism crosses an
// external-tool invocation). A non-zero exit is fatal, per spec.md 7.
func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return chk.Err("shape: external command %q failed: %v", name, err)
	}
	return nil
}

// withScopedMesh runs fn against a temporary *.chi.mesh copy of meshPath and
// guarantees, on every exit path including error, that meshPath still names
// the original file afterwards (spec.md 9, "Scoped resources").
func withScopedMesh(meshPath string, fn func(chiPath string) error) error {
	chiPath := meshPath + ".chi.mesh"
	if err := copyFile(meshPath, chiPath); err != nil {
		return err
	}
	defer os.Remove(chiPath)
	return fn(chiPath)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return chk.Err("shape: cannot read %q: %v", src, err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return chk.Err("shape: cannot write %q: %v", dst, err)
	}
	io.Pf("shape: scoped copy %s -> %s\n", src, dst)
	return nil
}
