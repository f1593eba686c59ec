// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fetch

import (
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
	"github.com/mendelics/twobit"
)

type twoBitSource struct {
	f *os.File
	r *twobit.Reader
}

func openTwoBit(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := twobit.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read 2bit reference: %v", err)
	}
	return &twoBitSource{f: f, r: r}, nil
}

func (t *twoBitSource) Get(chrom string, start, end int) (*linear.Seq, error) {
	b, err := t.r.ReadRange(chrom, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch: %s:%d-%d: %v", chrom, start, end, err)
	}
	// ReadRange quietly truncates ranges running past the sequence end;
	// a short read here is out of range.
	if len(b) < end-start {
		return nil, fmt.Errorf("fetch: %s:%d-%d: out of range", chrom, start, end)
	}
	s := linear.NewSeq("", alphabet.BytesToLetters(b), alphabet.DNA)
	s.Offset = start
	return s, nil
}

func (t *twoBitSource) Close() error { return t.f.Close() }
