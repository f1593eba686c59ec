// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ends

import (
	"bufio"
	"fmt"
	"io"
)

// Bases is the fixed base-column order used by the formatted tables.
var Bases = [4]byte{'A', 'C', 'G', 'T'}

// WriteTable writes the line-plot table for the unified axis: one
// pos/frac/base record per position and base, grouped by base and then
// by ascending position within each base.
func WriteTable(w io.Writer, pos []PosCount) error {
	buf := bufio.NewWriter(w)
	fmt.Fprintln(buf, "pos\tfrac\tbase")
	for _, b := range Bases {
		for _, p := range pos {
			fmt.Fprintf(buf, "%d\t%.6f\t%c\n", p.Pos, p.Frac(b), b)
		}
	}
	return buf.Flush()
}

// WritePWM writes the position weight matrix consumed by logo rendering.
// Rows are in ascending position order with an all-zero sentinel row
// between the two sides marking the feature boundary; right-side rows are
// shifted one unit past the sentinel.
func WritePWM(w io.Writer, left, right *Profile) error {
	buf := bufio.NewWriter(w)
	fmt.Fprintln(buf, "PO\tA\tC\tG\tT")
	row := func(p PosCount) {
		fmt.Fprintf(buf, "%d\t%.6f\t%.6f\t%.6f\t%.6f\n",
			p.Pos, p.Frac('A'), p.Frac('C'), p.Frac('G'), p.Frac('T'))
	}
	for _, p := range left.Positions(0) {
		row(p)
	}
	l := left.Len()
	row(PosCount{Pos: l + 1})
	for _, p := range right.Positions(l + 1) {
		row(p)
	}
	return buf.Flush()
}

// Labels returns one label per logical column for the logo layout. All
// columns are blank except six landmarks: the window start and end, the
// base on each side of the two feature boundaries, and the innermost base
// of each window. Landmarks falling outside the axis are omitted.
func Labels(ncol, numOut, numIn int) []string {
	marks := []struct {
		col   int
		label string
	}{
		{0, fmt.Sprintf("-%dbp", numOut)},
		{numOut - 1, "-1bp"},
		{numOut + numIn - 1, fmt.Sprintf("+%dbp", numIn)},
		{numOut + numIn + 1, fmt.Sprintf("-%dbp", numIn)},
		{numOut + 2*numIn + 1, "+1bp"},
		{ncol - 1, fmt.Sprintf("+%dbp", numOut)},
	}
	l := make([]string, ncol)
	for _, m := range marks {
		if 0 <= m.col && m.col < ncol {
			l[m.col] = m.label
		}
	}
	return l
}
