// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// endcomp profiles nucleotide composition around the ends of a set of
// strand-oriented genomic intervals. Each interval contributes a
// left-end and a right-end flank window covering a fixed number of bases
// outside and inside its boundaries, and the per-position A/C/G/T
// fractions over all windows are rendered either as a line plot or as a
// sequence-logo-style image.
package main

import (
	"flag"
	"fmt"
	"os"
)

type config struct {
	Regions string
	Genome  string
	Prefix  string
	NumOut  int
	NumIn   int
	YMax    float64
	Title   string
	Scripts string
	Logo    bool
	Keep    bool
	Force   bool
	DepOnly bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.Regions, "r", "", "BED6 file of regions to profile (required).")
	flag.StringVar(&cfg.Genome, "g", "", "Reference genome: fasta, gzipped fasta or 2bit (required).")
	flag.StringVar(&cfg.Prefix, "o", "", "Prefix for output files (required).")
	flag.IntVar(&cfg.NumOut, "O", 1000, "Bases outside each interval boundary to include.")
	flag.IntVar(&cfg.NumIn, "I", 1000, "Bases inside each interval boundary to include.")
	flag.Float64Var(&cfg.YMax, "u", 1, "Upper limit for the y axis; <=0 autoscales.")
	flag.StringVar(&cfg.Title, "t", "", "Plot title.")
	flag.StringVar(&cfg.Scripts, "s", "", "Directory holding external plotting scripts.")
	flag.BoolVar(&cfg.Logo, "W", false, "Render a sequence logo instead of a line plot.")
	flag.BoolVar(&cfg.Keep, "S", false, "Keep the fetched sequences as <prefix>_sequences.fa.")
	flag.BoolVar(&cfg.Force, "R", false, "Allow overwriting an existing plot.")
	flag.BoolVar(&cfg.DepOnly, "0", false, "Only check that collaborating programs are available.")
	help := flag.Bool("h", false, "Print this usage message.")
	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "endcomp: %v\n", err)
		os.Exit(1)
	}
}
