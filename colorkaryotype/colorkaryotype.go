// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// colorkaryotype recolors karyotype bands for the chromosomes named in a
// list file, highlighting contigs of interest in the rendered plot.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strings"

	"circompare/karyotype"
)

var (
	inf   = flag.String("in", "", "input karyotype file name [*].")
	outf  = flag.String("out", "", "output file name. Defaults to stdout.")
	listf = flag.String("names", "", "file listing chromosome names to recolor, one per line [*].")
	from  = flag.String("from", karyotype.DefaultColor, "only recolor bands with this color; empty matches any.")
	to    = flag.String("to", "red", "color applied to listed chromosomes.")
	help  = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *inf == "" || *listf == "" {
		flag.Usage()
		os.Exit(1)
	}

	in, err := os.Open(*inf)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *inf, err)
	}
	kar, err := karyotype.ReadFrom(in)
	in.Close()
	if err != nil {
		log.Fatalf("failed to read karyotype %q: %v", *inf, err)
	}

	lf, err := os.Open(*listf)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *listf, err)
	}
	names := make(map[string]bool)
	sc := bufio.NewScanner(lf)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name != "" {
			names[name] = true
		}
	}
	lf.Close()
	if sc.Err() != nil {
		log.Fatalf("failed to read %q: %v", *listf, sc.Err())
	}

	n := kar.Recolor(names, *from, *to)
	log.Printf("recolored %d of %d listed chromosomes", n, len(names))

	var out *os.File = os.Stdout
	if *outf != "" {
		if out, err = os.Create(*outf); err != nil {
			log.Fatalf("failed to open %q: %v", *outf, err)
		}
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	if err := kar.WriteTo(w); err != nil {
		log.Fatalf("failed to write karyotype: %v", err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("failed to write karyotype: %v", err)
	}
}
