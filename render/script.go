// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/biogo/external"
)

const (
	engine = "Rscript"

	lineScriptName = "endcomp_line.R"
	logoScriptName = "endcomp_logo.R"
)

// plotCmd invokes the external plotting engine. Values are passed as
// key=value arguments so that empty optional values cannot shift the
// positional interpretation on the script side.
type plotCmd struct {
	// Usage: Rscript [options] script [args]
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}Rscript{{end}}"` // Rscript

	Vanilla bool `buildarg:"{{if .}}--vanilla{{end}}"` // --vanilla

	Script string `buildarg:"{{.}}"` // plotting script

	Table  string `buildarg:"{{with .}}table={{.}}{{end}}"`  // table=<file>
	Out    string `buildarg:"{{with .}}out={{.}}{{end}}"`    // out=<file>
	YMax   string `buildarg:"{{with .}}ymax={{.}}{{end}}"`   // ymax=<value>
	Labels string `buildarg:"{{with .}}labels={{.}}{{end}}"` // labels=<csv>
	Title  string `buildarg:"{{with .}}title={{.}}{{end}}"`  // title=<text>
}

// BuildCommand builds a command line for the call.
func (p plotCmd) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(p)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}

// Logo renders the PWM table as a sequence-logo-style image through the
// external engine. labels annotates the logical columns, comma separated
// with blanks for unmarked columns. scripts names a directory providing
// the plotting scripts; when empty the embedded script is used.
func Logo(table, labels string, p Params, scripts string) error {
	script, cleanup, err := scriptFile(scripts, logoScriptName, logoScript)
	if err != nil {
		return err
	}
	defer cleanup()
	return runScript(script, table, labels, p)
}

// LineScript renders the per-position table through the external engine
// instead of the native plotter.
func LineScript(table string, p Params, scripts string) error {
	script, cleanup, err := scriptFile(scripts, lineScriptName, lineScript)
	if err != nil {
		return err
	}
	defer cleanup()
	return runScript(script, table, "", p)
}

// Check confirms the renderer's external requirements: the plotting
// engine when it will be invoked, and the plotting scripts when a
// scripts directory is configured.
func Check(scripts string, needEngine bool) error {
	if needEngine {
		if _, err := exec.LookPath(engine); err != nil {
			return fmt.Errorf("render: %s not found in PATH", engine)
		}
	}
	if scripts != "" {
		for _, n := range []string{lineScriptName, logoScriptName} {
			if _, err := os.Stat(filepath.Join(scripts, n)); err != nil {
				return fmt.Errorf("render: missing plotting script: %v", err)
			}
		}
	}
	return nil
}

func runScript(script, table, labels string, p Params) error {
	cmd, err := plotCmd{
		Vanilla: true,
		Script:  script,
		Table:   table,
		Out:     p.Out,
		YMax:    strconv.FormatFloat(p.YMax, 'g', -1, 64),
		Labels:  labels,
		Title:   p.Title,
	}.BuildCommand()
	if err != nil {
		return err
	}
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// scriptFile resolves the plotting script to run, materialising the
// embedded fallback to a temporary file when no scripts directory is
// configured.
func scriptFile(dir, name, fallback string) (path string, cleanup func(), err error) {
	if dir != "" {
		return filepath.Join(dir, name), func() {}, nil
	}
	f, err := os.CreateTemp("", "endcomp-*.R")
	if err != nil {
		return "", nil, err
	}
	if _, err = f.WriteString(fallback); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, err
	}
	if err = f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, err
	}
	return f.Name(), func() { os.Remove(f.Name()) }, nil
}
