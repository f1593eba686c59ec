// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/bed"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/endcomp/ends"
	"github.com/biogo/endcomp/fetch"
	"github.com/biogo/endcomp/render"
)

// logoLimit caps the per-end window size renderable as a logo.
const logoLimit = 20

func run(cfg config) error {
	if cfg.DepOnly {
		return checkDeps(cfg)
	}
	if err := validate(cfg); err != nil {
		return err
	}
	if err := checkDeps(cfg); err != nil {
		return err
	}

	ivs, err := readRegions(cfg.Regions)
	if err != nil {
		return err
	}

	var left, right []ends.Window
	for _, iv := range ivs {
		for _, w := range ends.Flanks(iv, cfg.NumOut, cfg.NumIn) {
			if w.Side == ends.Left {
				left = append(left, w)
			} else {
				right = append(right, w)
			}
		}
	}
	if len(left)+len(right) == 0 {
		return InputError{Path: cfg.Regions, Err: errors.New("no usable flank windows")}
	}

	if fi, err := os.Stat(cfg.Genome); err != nil {
		return InputError{Path: cfg.Genome, Err: err}
	} else if fi.Size() == 0 {
		return InputError{Path: cfg.Genome, Err: errors.New("file is empty")}
	}
	src, err := fetch.Open(cfg.Genome)
	if err != nil {
		return InputError{Path: cfg.Genome, Err: err}
	}
	defer src.Close()

	leftSeqs, err := fetch.Sequences(src, left)
	if err != nil {
		return CollaboratorFailure{Stage: "sequence fetch", Err: err}
	}
	rightSeqs, err := fetch.Sequences(src, right)
	if err != nil {
		return CollaboratorFailure{Stage: "sequence fetch", Err: err}
	}

	files := artifacts{prefix: cfg.Prefix}
	defer files.cleanup(cfg.Keep)
	if err := files.writeSeqs(leftSeqs, rightSeqs); err != nil {
		return err
	}

	var lp, rp ends.Profile
	for _, s := range leftSeqs {
		lp.Add(s)
	}
	for _, s := range rightSeqs {
		rp.Add(s)
	}

	params := render.Params{Title: cfg.Title, YMax: cfg.YMax, Out: cfg.Prefix + "_plot.png"}
	if cfg.Logo {
		files.table = cfg.Prefix + "_pwm.txt"
		err = writeFile(files.table, func(w io.Writer) error {
			return ends.WritePWM(w, &lp, &rp)
		})
		if err != nil {
			return err
		}
		ncol := lp.Len() + 1 + rp.Len()
		labels := strings.Join(ends.Labels(ncol, cfg.NumOut, cfg.NumIn), ",")
		if err := render.Logo(files.table, labels, params, cfg.Scripts); err != nil {
			return CollaboratorFailure{Stage: "logo render", Err: err}
		}
		return nil
	}

	files.table = cfg.Prefix + "_perpos.txt"
	err = writeFile(files.table, func(w io.Writer) error {
		return ends.WriteTable(w, ends.Unified(&lp, &rp))
	})
	if err != nil {
		return err
	}
	if cfg.Scripts != "" {
		err = render.LineScript(files.table, params, cfg.Scripts)
	} else {
		err = render.Line(files.table, params)
	}
	if err != nil {
		return CollaboratorFailure{Stage: "line render", Err: err}
	}
	return nil
}

func validate(cfg config) error {
	switch {
	case cfg.Regions == "":
		return ConfigurationError("missing -r regions file")
	case cfg.Genome == "":
		return ConfigurationError("missing -g reference genome")
	case cfg.Prefix == "":
		return ConfigurationError("missing -o output prefix")
	}
	if cfg.NumOut < 0 || cfg.NumIn < 0 {
		return ConfigurationError("-O and -I must be non-negative")
	}
	if cfg.Logo && cfg.NumOut+cfg.NumIn > logoLimit {
		return ConstraintViolation{NumOut: cfg.NumOut, NumIn: cfg.NumIn, Limit: logoLimit}
	}
	if !cfg.Force {
		if _, err := os.Stat(cfg.Prefix + "_plot.png"); err == nil {
			return ConfigurationError(fmt.Sprintf("%s_plot.png exists; use -R to overwrite", cfg.Prefix))
		}
	}
	return nil
}

func checkDeps(cfg config) error {
	err := render.Check(cfg.Scripts, cfg.Logo || cfg.Scripts != "")
	if err != nil {
		return DependencyError{Err: err}
	}
	return nil
}

func readRegions(path string) ([]ends.Interval, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, InputError{Path: path, Err: err}
	}
	if fi.Size() == 0 {
		return nil, InputError{Path: path, Err: errors.New("file is empty")}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, InputError{Path: path, Err: err}
	}
	defer f.Close()

	r, err := bed.NewReader(f, 6)
	if err != nil {
		return nil, InputError{Path: path, Err: err}
	}
	var ivs []ends.Interval
	sc := featio.NewScanner(r)
	for sc.Next() {
		b := sc.Feat().(*bed.Bed6)
		iv := ends.Interval{
			Chrom:  b.Chrom,
			Start:  b.ChromStart,
			End:    b.ChromEnd,
			Name:   b.FeatName,
			Strand: b.FeatStrand,
		}
		iv.Score = float64(b.FeatScore)
		ivs = append(ivs, iv)
	}
	if err := sc.Error(); err != nil {
		return nil, InputError{Path: path, Err: err}
	}
	return ivs, nil
}

// artifacts tracks the intermediate files of one run so they are
// released on success and failure alike.
type artifacts struct {
	prefix      string
	table       string
	left, right string
}

func (a *artifacts) writeSeqs(left, right []*linear.Seq) error {
	a.left = a.prefix + "_left.fa"
	a.right = a.prefix + "_right.fa"
	if err := writeFasta(a.left, left); err != nil {
		return err
	}
	return writeFasta(a.right, right)
}

// cleanup removes the run's intermediates. With keep set the per-side
// sequence files are instead merged into the preserved artifact.
func (a *artifacts) cleanup(keep bool) {
	if a.table != "" {
		os.Remove(a.table)
	}
	if a.left == "" {
		return
	}
	if !keep {
		os.Remove(a.left)
		os.Remove(a.right)
		return
	}
	if err := mergeFiles(a.prefix+"_sequences.fa", a.left, a.right); err != nil {
		fmt.Fprintf(os.Stderr, "endcomp: failed to keep sequences: %v\n", err)
	}
}

func mergeFiles(dst string, srcs ...string) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	for _, s := range srcs {
		in, err := os.Open(s)
		if err != nil {
			out.Close()
			return err
		}
		_, err = io.Copy(out, in)
		in.Close()
		if err != nil {
			out.Close()
			return err
		}
		os.Remove(s)
	}
	return out.Close()
}

func writeFasta(path string, ss []*linear.Seq) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := fasta.NewWriter(f, 60)
	for _, s := range ss {
		if _, err := w.Write(s); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
