// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ends

import "github.com/biogo/biogo/seq/linear"

// PosCount holds the base counts observed at one logical position.
type PosCount struct {
	Pos        int
	A, C, G, T int
	Total      int
}

// Frac returns the fraction of sequences carrying base b at the position.
// Characters other than upper-case A, C, G and T contribute to Total only,
// so the four fractions need not sum to one.
func (p PosCount) Frac(b byte) float64 {
	if p.Total == 0 {
		return 0
	}
	var n int
	switch b {
	case 'A':
		n = p.A
	case 'C':
		n = p.C
	case 'G':
		n = p.G
	case 'T':
		n = p.T
	}
	return float64(n) / float64(p.Total)
}

// Profile accumulates per-column base counts for the sequences of one
// window side. Columns are 1-based. Ragged sequence lengths are
// tolerated: a column's total reflects only the sequences long enough to
// reach it, so fractions stay meaningful without uniform lengths.
type Profile struct {
	counts []PosCount
}

// Add accumulates the bases of s into the profile.
func (p *Profile) Add(s *linear.Seq) {
	for i, l := range s.Seq {
		if i == len(p.counts) {
			p.counts = append(p.counts, PosCount{Pos: i + 1})
		}
		c := &p.counts[i]
		c.Total++
		switch byte(l) {
		case 'A':
			c.A++
		case 'C':
			c.C++
		case 'G':
			c.G++
		case 'T':
			c.T++
		}
	}
}

// Len returns the number of columns in the profile.
func (p *Profile) Len() int { return len(p.counts) }

// Positions returns the profile's per-position counts with logical
// positions offset by shift.
func (p *Profile) Positions(shift int) []PosCount {
	pc := make([]PosCount, len(p.counts))
	for i, c := range p.counts {
		c.Pos += shift
		pc[i] = c
	}
	return pc
}

// Unified concatenates left and right onto a single logical axis,
// right-side positions following the last left-side position.
func Unified(left, right *Profile) []PosCount {
	return append(left.Positions(0), right.Positions(left.Len())...)
}
