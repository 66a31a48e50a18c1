// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// randomdata generates synthetic genomic track data for a karyotype from
// a named or ad-hoc sampling rule, for exercising plot configurations
// before real data is available.
package main

import (
	"bufio"
	"flag"
	"log"
	"math"
	"os"
	"time"

	"circompare/karyotype"
	"circompare/sampler"
)

var (
	karFile = flag.String("karyotype", "", "karyotype file defining the chromosomes to cover.")
	ruleset = flag.String("ruleset", "default", "named rule set from the catalog.")
	rule    = flag.String("rule", "", "ad-hoc rule string overriding -ruleset.")
	min     = flag.Float64("min", math.Inf(-1), "lower bound for distributed values.")
	max     = flag.Float64("max", math.Inf(1), "upper bound for distributed values.")
	seed    = flag.Int64("seed", -1, "random seed; -1 seeds from the clock.")
	outf    = flag.String("out", "", "output file name. Defaults to stdout.")
	list    = flag.Bool("rules", false, "list the rule catalog and exit.")
	help    = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if *list {
		err := sampler.ListCatalog(os.Stdout)
		if err != nil {
			log.Fatalf("failed to list rules: %v", err)
		}
		os.Exit(0)
	}

	if *karFile == "" {
		flag.Usage()
		os.Exit(1)
	}
	in, err := os.Open(*karFile)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *karFile, err)
	}
	kar, err := karyotype.ReadFrom(in)
	in.Close()
	if err != nil {
		log.Fatalf("failed to read karyotype %q: %v", *karFile, err)
	}

	rules, err := sampler.Resolve(*ruleset, *rule)
	if err != nil {
		log.Fatalf("failed to resolve rules: %v", err)
	}

	if *seed == -1 {
		*seed = time.Now().UnixNano()
	}
	g := sampler.NewGenerator(kar, rules, sampler.Config{
		Min:  *min,
		Max:  *max,
		Seed: uint64(*seed),
	})
	recs, err := g.Generate()
	if err != nil {
		log.Fatalf("failed to generate records: %v", err)
	}

	var out *os.File
	if *outf == "" {
		out = os.Stdout
	} else if out, err = os.Create(*outf); err != nil {
		log.Fatalf("failed to open %q: %v", *outf, err)
	}
	w := bufio.NewWriter(out)
	err = sampler.WriteRecords(w, recs)
	if err != nil {
		log.Fatalf("failed to write records: %v", err)
	}
	if err = w.Flush(); err != nil {
		log.Fatalf("failed to write records: %v", err)
	}
	if err = out.Close(); err != nil {
		log.Fatalf("failed to close output: %v", err)
	}
}
