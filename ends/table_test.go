// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ends

import (
	"bufio"
	"bytes"
	"math"
	"strconv"
	"strings"

	check "gopkg.in/check.v1"
)

func (s *S) TestWriteTable(c *check.C) {
	var lp, rp Profile
	lp.Add(dna("AC"))
	lp.Add(dna("AC"))
	rp.Add(dna("GT"))

	var buf bytes.Buffer
	err := WriteTable(&buf, Unified(&lp, &rp))
	c.Assert(err, check.Equals, nil)
	c.Check(buf.String(), check.Equals, `pos	frac	base
1	1.000000	A
2	0.000000	A
3	0.000000	A
4	0.000000	A
1	0.000000	C
2	1.000000	C
3	0.000000	C
4	0.000000	C
1	0.000000	G
2	0.000000	G
3	1.000000	G
4	0.000000	G
1	0.000000	T
2	0.000000	T
3	0.000000	T
4	1.000000	T
`)
}

func (s *S) TestWritePWM(c *check.C) {
	var lp, rp Profile
	lp.Add(dna("AC"))
	rp.Add(dna("GT"))

	var buf bytes.Buffer
	err := WritePWM(&buf, &lp, &rp)
	c.Assert(err, check.Equals, nil)
	c.Check(buf.String(), check.Equals, `PO	A	C	G	T
1	1.000000	0.000000	0.000000	0.000000
2	0.000000	1.000000	0.000000	0.000000
3	0.000000	0.000000	0.000000	0.000000
4	0.000000	0.000000	1.000000	0.000000
5	0.000000	0.000000	0.000000	1.000000
`)
}

func (s *S) TestLabels(c *check.C) {
	l := Labels(17, 5, 3)
	c.Assert(len(l), check.Equals, 17)
	want := map[int]string{
		0:  "-5bp",
		4:  "-1bp",
		7:  "+3bp",
		9:  "-3bp",
		12: "+1bp",
		16: "+5bp",
	}
	var marked int
	for i, lab := range l {
		if w, ok := want[i]; ok {
			c.Check(lab, check.Equals, w, check.Commentf("column %d", i))
			marked++
		} else {
			c.Check(lab, check.Equals, "", check.Commentf("column %d", i))
		}
	}
	c.Check(marked, check.Equals, 6)

	// Landmarks beyond a short axis are dropped rather than panicking.
	c.Check(len(Labels(5, 5, 3)), check.Equals, 5)
}

// Re-aggregating the emitted line table, weighting fractions by the
// known per-side totals, reproduces the original counts.
func (s *S) TestTableRoundTrip(c *check.C) {
	var lp, rp Profile
	for _, t := range []string{"ACGT", "ACGG", "TCGA"} {
		lp.Add(dna(t))
	}
	for _, t := range []string{"GGTA", "CGTA", "AGTA"} {
		rp.Add(dna(t))
	}
	const total = 3

	var buf bytes.Buffer
	err := WriteTable(&buf, Unified(&lp, &rp))
	c.Assert(err, check.Equals, nil)

	counts := map[int]map[byte]int{}
	sc := bufio.NewScanner(&buf)
	sc.Scan() // header
	for sc.Scan() {
		f := strings.Split(sc.Text(), "\t")
		c.Assert(len(f), check.Equals, 3)
		pos, err := strconv.Atoi(f[0])
		c.Assert(err, check.Equals, nil)
		frac, err := strconv.ParseFloat(f[1], 64)
		c.Assert(err, check.Equals, nil)
		if counts[pos] == nil {
			counts[pos] = map[byte]int{}
		}
		counts[pos][f[2][0]] = int(math.Round(frac * total))
	}

	for _, pc := range Unified(&lp, &rp) {
		c.Check(counts[pc.Pos][byte('A')], check.Equals, pc.A, check.Commentf("position %d", pc.Pos))
		c.Check(counts[pc.Pos][byte('C')], check.Equals, pc.C, check.Commentf("position %d", pc.Pos))
		c.Check(counts[pc.Pos][byte('G')], check.Equals, pc.G, check.Commentf("position %d", pc.Pos))
		c.Check(counts[pc.Pos][byte('T')], check.Equals, pc.T, check.Commentf("position %d", pc.Pos))
	}
}
