// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dotplot renders a whole-genome dot plot from PAF alignments, with all
// reference sequences concatenated along the x axis and all query
// sequences along the y axis.
package main

import (
	"flag"
	"image/color"
	"log"
	"os"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"circompare/karyotype"
	"circompare/paf"
)

var (
	inf     = flag.String("in", "", "input PAF file name [*].")
	outf    = flag.String("out", "dotplot.png", "output image file name.")
	minLen  = flag.Int("minlen", 1000, "minimum alignment block length.")
	minQual = flag.Int("minqual", 30, "minimum mapping quality.")
	size    = flag.Float64("size", 8, "image width and height in inches.")
	help    = flag.Bool("help", false, "help prints this message.")
)

var (
	forward = color.RGBA{B: 196, A: 255}
	reverse = color.RGBA{R: 196, A: 255}
)

// offsets returns the cumulative start offset of each sequence when the
// named sequences are laid end to end in karyotype name order.
func offsets(lengths map[string]int) map[string]int {
	names := make([]string, 0, len(lengths))
	for n := range lengths {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return karyotype.NameLess(names[i], names[j]) })
	off := make(map[string]int, len(names))
	var cum int
	for _, n := range names {
		off[n] = cum
		cum += lengths[n]
	}
	return off
}

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *inf == "" {
		flag.Usage()
		os.Exit(1)
	}

	in, err := os.Open(*inf)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *inf, err)
	}
	recs, err := paf.ReadAll(in)
	in.Close()
	if err != nil {
		log.Fatalf("failed to read alignments: %v", err)
	}
	recs = paf.Filter(recs, *minLen, *minQual)
	if len(recs) == 0 {
		log.Fatal("no alignments passed filtering")
	}

	tLen := make(map[string]int)
	qLen := make(map[string]int)
	for _, r := range recs {
		tLen[r.Target] = r.TLen
		qLen[r.Query] = r.QLen
	}
	tOff := offsets(tLen)
	qOff := offsets(qLen)

	p, err := plot.New()
	if err != nil {
		log.Fatalf("failed to create plot: %v", err)
	}
	p.Title.Text = *inf
	p.X.Label.Text = "reference"
	p.Y.Label.Text = "query"

	for _, r := range recs {
		xs, xe := float64(tOff[r.Target]+r.TStart), float64(tOff[r.Target]+r.TEnd)
		ys, ye := float64(qOff[r.Query]+r.QStart), float64(qOff[r.Query]+r.QEnd)
		col := forward
		if r.Strand == '-' {
			ys, ye = ye, ys
			col = reverse
		}
		l, err := plotter.NewLine(plotter.XYs{{X: xs, Y: ys}, {X: xe, Y: ye}})
		if err != nil {
			log.Fatalf("failed to plot alignment: %v", err)
		}
		l.Color = col
		p.Add(l)
	}

	if err := p.Save(vg.Length(*size)*vg.Inch, vg.Length(*size)*vg.Inch, *outf); err != nil {
		log.Fatalf("failed to save %q: %v", *outf, err)
	}
	log.Printf("plotted %d alignments to %s", len(recs), *outf)
}
