// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// paf2links converts minimap2 PAF alignments to link records, filtering
// short and low-quality alignments and optionally dropping links wholly
// contained within longer ones.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"circompare/links"
	"circompare/paf"
)

var (
	inf     = flag.String("in", "", "input PAF file name. Defaults to stdin.")
	outf    = flag.String("out", "", "output file name. Defaults to stdout.")
	minLen  = flag.Int("minlen", 1000, "minimum alignment block length (bp).")
	minQual = flag.Int("minqual", 30, "minimum mapping quality.")
	bed     = flag.Bool("bed", false, "write BED6 of target intervals instead of links.")
	nested  = flag.Bool("keep-nested", false, "keep links contained within longer links.")
	help    = flag.Bool("help", false, "help prints this message.")
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
	recs, err := paf.ReadAll(in)
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	kept := paf.Filter(recs, *minLen, *minQual)
	log.Printf("kept %d of %d alignments", len(kept), len(recs))

	var out *os.File = os.Stdout
	if *outf != "" {
		if out, err = os.Create(*outf); err != nil {
			log.Fatalf("failed to open %q: %v", *outf, err)
		}
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	if *bed {
		for _, r := range kept {
			if _, err := w.WriteString(r.BED6() + "\n"); err != nil {
				log.Fatalf("failed to write BED: %v", err)
			}
		}
	} else {
		ls := make([]links.Link, len(kept))
		for i, r := range kept {
			ls[i] = links.FromPAF(r)
		}
		if !*nested {
			n := len(ls)
			ls = links.FilterContained(ls)
			log.Printf("dropped %d contained links", n-len(ls))
		} else {
			links.Sort(ls)
		}
		if err := links.WriteAll(w, ls); err != nil {
			log.Fatalf("failed to write links: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}
}
