// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ends

import (
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
	check "gopkg.in/check.v1"
)

func dna(s string) *linear.Seq {
	return linear.NewSeq("", alphabet.BytesToLetters([]byte(s)), alphabet.DNA)
}

func (s *S) TestProfileAdd(c *check.C) {
	var p Profile
	for _, t := range []string{"ACGT", "AAGT", "ACGA"} {
		p.Add(dna(t))
	}
	c.Check(p.Positions(0), check.DeepEquals, []PosCount{
		{Pos: 1, A: 3, Total: 3},
		{Pos: 2, A: 1, C: 2, Total: 3},
		{Pos: 3, G: 3, Total: 3},
		{Pos: 4, A: 1, T: 2, Total: 3},
	})

	// With uniform lengths the column totals sum to length x count.
	var sum int
	for _, pc := range p.Positions(0) {
		sum += pc.Total
	}
	c.Check(sum, check.Equals, 4*3)

	c.Check(p.Positions(0)[0].Frac('A'), check.Equals, 1.0)
	c.Check(p.Positions(0)[1].Frac('C'), check.Equals, 2.0/3.0)
}

func (s *S) TestProfileRagged(c *check.C) {
	var p Profile
	p.Add(dna("ACGT"))
	p.Add(dna("AC"))
	c.Check(p.Positions(0), check.DeepEquals, []PosCount{
		{Pos: 1, A: 2, Total: 2},
		{Pos: 2, C: 2, Total: 2},
		{Pos: 3, G: 1, Total: 1},
		{Pos: 4, T: 1, Total: 1},
	})
}

func (s *S) TestProfileAmbiguous(c *check.C) {
	// Non-ACGT characters, including lower case, count toward the
	// column total only, so fractions need not sum to one.
	var p Profile
	p.Add(dna("ANgT"))
	pc := p.Positions(0)
	c.Check(pc[1], check.Equals, PosCount{Pos: 2, Total: 1})
	c.Check(pc[2], check.Equals, PosCount{Pos: 3, Total: 1})
	var frac float64
	for _, b := range Bases {
		frac += pc[1].Frac(b)
	}
	c.Check(frac, check.Equals, 0.0)
}

func (s *S) TestProfileOrderIndependence(c *check.C) {
	in := []string{"ACGTAC", "TTGA", "CCCCCC", "AG"}
	var fwd, rev Profile
	for _, t := range in {
		fwd.Add(dna(t))
	}
	for i := len(in) - 1; i >= 0; i-- {
		rev.Add(dna(in[i]))
	}
	c.Check(fwd.Positions(0), check.DeepEquals, rev.Positions(0))
}

func (s *S) TestUnified(c *check.C) {
	var lp, rp Profile
	lp.Add(dna("AC"))
	lp.Add(dna("AC"))
	rp.Add(dna("GGT"))

	u := Unified(&lp, &rp)
	c.Assert(len(u), check.Equals, 5)
	for i, pc := range u {
		c.Check(pc.Pos, check.Equals, i+1)
	}
	// Right-side positions are the side-local positions shifted by the
	// left extent.
	c.Check(u[2:], check.DeepEquals, rp.Positions(lp.Len()))

	// An empty left side leaves right positions unshifted.
	var empty Profile
	u = Unified(&empty, &rp)
	c.Assert(len(u), check.Equals, 3)
	c.Check(u[0].Pos, check.Equals, 1)
}

func (s *S) TestFracZeroTotal(c *check.C) {
	c.Check(PosCount{}.Frac('A'), check.Equals, 0.0)
}
