// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ends provides the coordinate transformations and per-position
// aggregation used to profile nucleotide composition around the ends of
// oriented genomic features.
package ends

import "github.com/biogo/biogo/seq"

// Side marks which end of the feature a flank window samples. Sides are
// feature-relative: the LEFT side of a minus-strand feature lies at the
// genomic right of its interval.
type Side int8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "L"
	}
	return "R"
}

// Interval is a strand-annotated input feature in 0-based half-open
// genomic coordinates.
type Interval struct {
	Chrom  string
	Start  int
	End    int
	Name   string
	Score  float64
	Strand seq.Strand
}

// Window is a flank window derived from one end of an Interval.
type Window struct {
	Chrom  string
	Start  int
	End    int
	Name   string
	Score  float64
	Strand seq.Strand
	Side   Side
}

// Flanks returns the flank windows of iv, covering numOut bases outside
// and up to numIn bases inside each interval boundary. Inward extension
// is clamped at the interval midpoint; on odd-length intervals the
// genomic-right window clamps one base later so the two windows cannot
// meet. A window is dropped when its outer bound would reach the origin
// or its extent is empty after clamping; no error is reported for a
// dropped window.
func Flanks(iv Interval, numOut, numIn int) []Window {
	length := iv.End - iv.Start
	mid := iv.Start + length/2
	alt := mid
	if length&1 == 1 {
		alt++
	}

	var ws []Window

	ls, le := iv.Start-numOut, iv.Start+numIn
	if le > mid {
		le = mid
	}
	if ls > 0 && le > ls {
		ws = append(ws, Window{
			Chrom: iv.Chrom, Start: ls, End: le,
			Name: iv.Name, Score: iv.Score, Strand: iv.Strand,
			Side: sideOf(iv.Strand, Left),
		})
	}

	// The genomic-right outer bound is not guarded; coordinates past the
	// end of the reference surface at fetch time.
	rs, re := iv.End-numIn, iv.End+numOut
	if rs < alt {
		rs = alt
	}
	if re > rs {
		ws = append(ws, Window{
			Chrom: iv.Chrom, Start: rs, End: re,
			Name: iv.Name, Score: iv.Score, Strand: iv.Strand,
			Side: sideOf(iv.Strand, Right),
		})
	}

	return ws
}

// sideOf maps a genomic side to a feature side under the given strand.
func sideOf(s seq.Strand, genomic Side) Side {
	if s != seq.Minus {
		return genomic
	}
	if genomic == Left {
		return Right
	}
	return Left
}
