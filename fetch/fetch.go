// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fetch retrieves strand-corrected sequence for flank windows
// from a reference genome.
package fetch

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/biogo/seq/sequtils"

	"github.com/biogo/endcomp/ends"
)

// Source provides reference sequence in plus-strand orientation.
type Source interface {
	// Get returns the sequence of [start,end) on chrom. Coordinates
	// outside the reference are an error.
	Get(chrom string, start, end int) (*linear.Seq, error)
	Close() error
}

// Open returns a Source for the genome at path. Files named *.2bit are
// read with random access; anything else is treated as FASTA, gzipped
// when named *.gz.
func Open(path string) (Source, error) {
	if filepath.Ext(path) == ".2bit" {
		return openTwoBit(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if filepath.Ext(path) == ".gz" {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read reference: %v", err)
		}
		defer gz.Close()
		r = gz
	}
	return ReadFasta(r)
}

// Sequences fetches one strand-corrected sequence per window, preserving
// window order. Records are named after the window's feature and side.
// Any failed fetch aborts the whole set.
func Sequences(src Source, ws []ends.Window) ([]*linear.Seq, error) {
	ss := make([]*linear.Seq, 0, len(ws))
	for _, w := range ws {
		s, err := src.Get(w.Chrom, w.Start, w.End)
		if err != nil {
			return nil, err
		}
		s.ID = fmt.Sprintf("%s_%v", w.Name, w.Side)
		s.Desc = fmt.Sprintf("%s:%d-%d", w.Chrom, w.Start, w.End)
		if w.Strand == seq.Minus {
			s.RevComp()
		}
		ss = append(ss, s)
	}
	return ss, nil
}

type fastaSource struct {
	seqs map[string]*linear.Seq
}

// ReadFasta builds a Source from the FASTA data held in r, keeping all
// sequences in memory.
func ReadFasta(r io.Reader) (Source, error) {
	seqs := map[string]*linear.Seq{}
	sc := seqio.NewScanner(fasta.NewReader(r, &linear.Seq{Annotation: seq.Annotation{Alpha: alphabet.DNA}}))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		seqs[s.Name()] = s
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("failed to read reference: %v", err)
	}
	return &fastaSource{seqs: seqs}, nil
}

func (f *fastaSource) Get(chrom string, start, end int) (*linear.Seq, error) {
	ref, ok := f.seqs[chrom]
	if !ok {
		return nil, fmt.Errorf("fetch: no sequence %q in reference", chrom)
	}
	s := *ref
	if err := sequtils.Truncate(&s, ref, start, end); err != nil {
		return nil, fmt.Errorf("fetch: %s:%d-%d: %v", chrom, start, end, err)
	}
	// Callers reverse complement in place; do not alias the reference.
	s.Seq = append(alphabet.Letters(nil), s.Seq...)
	return &s, nil
}

func (f *fastaSource) Close() error { return nil }
