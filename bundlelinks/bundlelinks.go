// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bundlelinks merges adjacent link records into coarser bundles, joining
// links whose reference and query intervals both lie within a maximum
// gap of another member.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"circompare/links"
)

var (
	inf    = flag.String("in", "", "input link file name. Defaults to stdin.")
	outf   = flag.String("out", "", "output file name. Defaults to stdout.")
	maxGap = flag.Int("maxgap", 10000, "maximum gap joining two links into a bundle (bp).")
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
	ls, err := links.ReadAll(in)
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}

	bs := links.BundleLinks(ls, *maxGap)
	log.Printf("bundled %d links into %d bundles", len(ls), len(bs))

	var out *os.File = os.Stdout
	if *outf != "" {
		if out, err = os.Create(*outf); err != nil {
			log.Fatalf("failed to open %q: %v", *outf, err)
		}
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	if err := links.WriteBundles(w, bs); err != nil {
		log.Fatalf("failed to write bundles: %v", err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("failed to write bundles: %v", err)
	}
}
