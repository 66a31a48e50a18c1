// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fasta2agp decomposes assembly scaffolds into an AGP 2.0 file and the
// matching component FASTA, splitting at runs of N.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"circompare/agp"
)

var (
	inf    = flag.String("in", "", "input scaffold FASTA file name. Defaults to stdin.")
	agpf   = flag.String("agp", "", "output AGP file name [*].")
	compf  = flag.String("components", "", "output component FASTA file name [*].")
	minGap = flag.Int("mingap", agp.DefaultMinGap, "minimum run of N treated as a scaffold gap.")
	help   = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *agpf == "" || *compf == "" {
		flag.Usage()
		os.Exit(1)
	}

	var in *os.File = os.Stdin
	var err error
	if *inf != "" {
		if in, err = os.Open(*inf); err != nil {
			log.Fatalf("failed to open %q: %v", *inf, err)
		}
		defer in.Close()
	}

	agpOut, err := os.Create(*agpf)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *agpf, err)
	}
	defer agpOut.Close()
	compOut, err := os.Create(*compf)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *compf, err)
	}
	defer compOut.Close()

	var (
		aw = bufio.NewWriter(agpOut)
		fw = fasta.NewWriter(compOut, 60)
	)
	sc := seqio.NewScanner(fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNA)))
	var scaffolds, components int
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		rows, comps := agp.Decompose(s, *minGap)
		if err := agp.Write(aw, rows); err != nil {
			log.Fatalf("failed to write AGP for %q: %v", s.Name(), err)
		}
		for _, cs := range comps {
			if _, err := fw.Write(cs); err != nil {
				log.Fatalf("failed to write component %q: %v", cs.Name(), err)
			}
		}
		scaffolds++
		components += len(comps)
	}
	if sc.Error() != nil {
		log.Fatalf("failed during read: %v", sc.Error())
	}
	if err := aw.Flush(); err != nil {
		log.Fatalf("failed to write AGP: %v", err)
	}
	log.Printf("decomposed %d scaffolds into %d components", scaffolds, components)
}
