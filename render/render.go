// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws the composition plots from the formatted
// per-position tables, either natively or through an external plotting
// engine.
package render

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Params carries the display configuration shared by both plot modes.
type Params struct {
	Title string
	YMax  float64 // <=0 autoscales to the data.
	Out   string  // Output image path.
}

var baseColors = map[string]color.RGBA{
	"A": {R: 0x33, G: 0xa0, B: 0x2c, A: 0xff},
	"C": {R: 0x1f, G: 0x78, B: 0xb4, A: 0xff},
	"G": {R: 0xff, G: 0xb3, B: 0x00, A: 0xff},
	"T": {R: 0xe3, G: 0x1a, B: 0x1c, A: 0xff},
}

// Line renders the per-position fraction table at table as a line plot,
// one series per base over the whole logical axis.
func Line(table string, p Params) error {
	series, err := readTable(table)
	if err != nil {
		return err
	}

	plt := plot.New()
	plt.Title.Text = p.Title
	plt.X.Label.Text = "position"
	plt.Y.Label.Text = "fraction"
	plt.Y.Min = 0
	plt.Y.Max = yMax(p, series)
	plt.Legend.Top = true

	for _, b := range []string{"A", "C", "G", "T"} {
		xys, ok := series[b]
		if !ok {
			continue
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		l.Color = baseColors[b]
		plt.Add(l)
		plt.Legend.Add(b, l)
	}

	return plt.Save(20*vg.Centimeter, 10*vg.Centimeter, p.Out)
}

func yMax(p Params, series map[string]plotter.XYs) float64 {
	if p.YMax > 0 {
		return p.YMax
	}
	max := 0.0
	for _, xys := range series {
		ys := make([]float64, len(xys))
		for i, xy := range xys {
			ys[i] = xy.Y
		}
		if len(ys) != 0 && floats.Max(ys) > max {
			max = floats.Max(ys)
		}
	}
	if max == 0 {
		return 1
	}
	return max
}

func readTable(path string) (map[string]plotter.XYs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	series := make(map[string]plotter.XYs)
	sc := bufio.NewScanner(f)
	header := true
	for sc.Scan() {
		if header {
			header = false
			continue
		}
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("render: bad record %q", sc.Text())
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("render: bad position %q: %v", fields[0], err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("render: bad fraction %q: %v", fields[1], err)
		}
		series[fields[2]] = append(series[fields[2]], plotter.XY{X: x, Y: y})
	}
	return series, sc.Err()
}
