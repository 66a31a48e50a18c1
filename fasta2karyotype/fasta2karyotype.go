// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fasta2karyotype writes a karyotype file with one band per sequence in
// the input FASTA.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"circompare/karyotype"
)

var (
	inf    = flag.String("in", "", "input FASTA file name. Defaults to stdin.")
	outf   = flag.String("out", "", "output file name. Defaults to stdout.")
	color  = flag.String("color", karyotype.DefaultColor, "band color for all chromosomes.")
	sorted = flag.Bool("sort", false, "sort chromosomes in numeric-aware name order.")
	cycle  = flag.Bool("cycle", false, "cycle band colors through the standard palette instead of -color.")
	help   = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	var in *os.File = os.Stdin
	var err error
	if *inf != "" {
		if in, err = os.Open(*inf); err != nil {
			log.Fatalf("failed to open %q: %v", *inf, err)
		}
		defer in.Close()
	}

	kar, err := karyotype.FromFasta(in, *color)
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	if *sorted {
		kar.Sort()
	}
	if *cycle {
		kar.CycleColors(nil)
	}

	var out *os.File = os.Stdout
	if *outf != "" {
		if out, err = os.Create(*outf); err != nil {
			log.Fatalf("failed to open %q: %v", *outf, err)
		}
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	if err = kar.WriteTo(w); err != nil {
		log.Fatalf("failed to write karyotype: %v", err)
	}
	if err = w.Flush(); err != nil {
		log.Fatalf("failed to write karyotype: %v", err)
	}
}
