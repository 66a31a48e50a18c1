// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// circompare drives the whole genome comparison pipeline: it builds a
// karyotype from the reference and assembly sequences, aligns each
// assembly to the reference with minimap2, converts and bundles the
// alignments into link tracks, and renders the comparison plot with
// circos.
package main

import (
	"flag"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"circompare/agp"
	"circompare/circosconf"
	"circompare/karyotype"
	"circompare/links"
	"circompare/paf"
	"circompare/pipeline"
)

var (
	ref = flag.String("ref", "", "reference FASTA file name [*].")
	asm = flag.String("asm", "", "assembly FASTA file names, comma separated [*].")
	out = flag.String("out", "", "working and output directory [*].")

	preset  = flag.String("preset", "asm5", "minimap2 preset.")
	threads = flag.Int("threads", runtime.NumCPU(), "number of aligner threads.")
	jobs    = flag.Int("jobs", 1, "number of concurrent aligner invocations.")

	withAGP = flag.Bool("agp", true, "decompose each assembly into AGP and component FASTA files.")
	minGap  = flag.Int("mingap", agp.DefaultMinGap, "minimum run of N treated as a scaffold gap.")

	minLen  = flag.Int("minlen", 1000, "minimum alignment block length.")
	minQual = flag.Int("minqual", 30, "minimum mapping quality.")
	nested  = flag.Bool("keep-nested", false, "keep links contained within longer links.")
	maxGap  = flag.Int("maxgap", 10000, "maximum gap when bundling adjacent links.")

	refColor = flag.String("refcolor", karyotype.DefaultColor, "band color for reference chromosomes.")
	asmColor = flag.String("asmcolor", "vlgrey", "band color for assembly contigs.")

	units  = flag.Int("units", 0, "chromosomes_units scale; 0 selects the default.")
	radius = flag.Int("radius", 0, "image radius in pixels; 0 selects the default.")
	ticks  = flag.Bool("ticks", true, "draw tick marks.")
	labels = flag.Bool("labels", true, "draw ideogram labels.")

	minimap2 = flag.String("minimap2", "minimap2", "minimap2 executable.")
	circos   = flag.String("circos", "circos", "circos executable.")
	noRender = flag.Bool("norender", false, "stop after writing the configuration; do not run circos.")

	help = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *ref == "" || *asm == "" || *out == "" {
		flag.Usage()
		os.Exit(1)
	}
	asmFiles := strings.Split(*asm, ",")

	if _, err := exec.LookPath(*minimap2); err != nil {
		log.Fatalf("failed to find aligner: %v", err)
	}
	if !*noRender {
		if _, err := exec.LookPath(*circos); err != nil {
			log.Fatalf("failed to find renderer: %v", err)
		}
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("failed to create %q: %v", *out, err)
	}

	var (
		karFile  = filepath.Join(*out, "karyotype.txt")
		linkFile = filepath.Join(*out, "links.txt")
		bunFile  = filepath.Join(*out, "bundled.txt")
		confFile = filepath.Join(*out, "circos.conf")
		imgFile  = "circos.png"

		pafFiles = make([]string, len(asmFiles))
	)
	for i, a := range asmFiles {
		pafFiles[i] = filepath.Join(*out, base(a)+".paf")
	}

	inputs := append([]string{*ref}, asmFiles...)

	p := pipeline.New(os.Stderr)

	p.Add(pipeline.Stage{
		Name:    "karyotype",
		Inputs:  inputs,
		Outputs: []string{karFile},
		Run:     func() error { return buildKaryotype(karFile, asmFiles) },
	})

	if *withAGP {
		for i, a := range asmFiles {
			a := a
			agpFile := filepath.Join(*out, base(a)+".agp")
			compFile := filepath.Join(*out, base(a)+"_components.fa")
			p.Add(pipeline.Stage{
				Name:    "agp " + base(a),
				Inputs:  []string{asmFiles[i]},
				Outputs: []string{agpFile, compFile},
				Run:     func() error { return decompose(a, agpFile, compFile) },
			})
		}
	}

	p.Add(pipeline.Stage{
		Name:    "align",
		Inputs:  inputs,
		Outputs: pafFiles,
		Run: func() error {
			cmds := make([]*exec.Cmd, len(asmFiles))
			for i, a := range asmFiles {
				cmd, err := pipeline.Minimap2{
					Cmd:     *minimap2,
					Preset:  *preset,
					Threads: *threads,
					OutFile: pafFiles[i],
					Target:  *ref,
					Query:   a,
				}.BuildCommand()
				if err != nil {
					return err
				}
				cmds[i] = cmd
			}
			return pipeline.RunCommands(cmds, *jobs, os.Stderr)
		},
	})

	p.Add(pipeline.Stage{
		Name:    "links",
		Inputs:  pafFiles,
		Outputs: []string{linkFile},
		Run:     func() error { return buildLinks(pafFiles, linkFile) },
	})

	p.Add(pipeline.Stage{
		Name:    "bundle",
		Inputs:  []string{linkFile},
		Outputs: []string{bunFile},
		Run:     func() error { return bundleLinks(linkFile, bunFile) },
	})

	p.Add(pipeline.Stage{
		Name:    "conf",
		Inputs:  []string{karFile, bunFile},
		Outputs: []string{confFile},
		Run: func() error {
			f, err := os.Create(confFile)
			if err != nil {
				return err
			}
			defer f.Close()
			return circosconf.Write(f, circosconf.Params{
				Karyotype: karFile,
				Links:     bunFile,
				Dir:       *out,
				File:      imgFile,
				Units:     *units,
				Radius:    *radius,
				Ticks:     *ticks,
				Labels:    *labels,
			})
		},
	})

	if !*noRender {
		p.Add(pipeline.Stage{
			Name:    "render",
			Inputs:  []string{confFile, karFile, bunFile},
			Outputs: []string{filepath.Join(*out, imgFile)},
			Run: func() error {
				cmd, err := pipeline.Circos{
					Cmd:        *circos,
					Conf:       confFile,
					OutDir:     *out,
					OutFile:    imgFile,
					NoParanoid: true,
				}.BuildCommand()
				if err != nil {
					return err
				}
				cmd.Stdout = os.Stderr
				cmd.Stderr = os.Stderr
				return cmd.Run()
			},
		})
	}

	if err := p.Run(); err != nil {
		log.Fatalf("failed to build comparison: %v", err)
	}
}

// base returns the file name of path with any extension removed.
func base(path string) string {
	b := filepath.Base(path)
	if ext := filepath.Ext(b); ext != "" {
		b = b[:len(b)-len(ext)]
	}
	return b
}

// buildKaryotype writes a combined karyotype of the reference and
// assembly sequences, each genome sorted into display order.
func buildKaryotype(path string, asmFiles []string) error {
	kar, err := karyotypeOf(*ref, *refColor)
	if err != nil {
		return err
	}
	kar.Sort()
	for _, a := range asmFiles {
		akar, err := karyotypeOf(a, *asmColor)
		if err != nil {
			return err
		}
		akar.Sort()
		for _, c := range akar.Chromosomes() {
			kar.Add(c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return kar.WriteTo(f)
}

func karyotypeOf(path, color string) (*karyotype.Karyotype, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return karyotype.FromFasta(f, color)
}

// decompose writes the AGP rows and component FASTA of one assembly.
func decompose(asmPath, agpPath, compPath string) error {
	in, err := os.Open(asmPath)
	if err != nil {
		return err
	}
	defer in.Close()
	agpOut, err := os.Create(agpPath)
	if err != nil {
		return err
	}
	defer agpOut.Close()
	compOut, err := os.Create(compPath)
	if err != nil {
		return err
	}
	defer compOut.Close()

	fw := fasta.NewWriter(compOut, 60)
	sc := seqio.NewScanner(fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		rows, comps := agp.Decompose(sc.Seq().(*linear.Seq), *minGap)
		if err := agp.Write(agpOut, rows); err != nil {
			return err
		}
		for _, cs := range comps {
			if _, err := fw.Write(cs); err != nil {
				return err
			}
		}
	}
	return sc.Error()
}

// buildLinks converts filtered PAF alignments to links, discarding
// contained links unless they are kept by flag.
func buildLinks(pafPaths []string, linkPath string) error {
	var ls []links.Link
	for _, p := range pafPaths {
		in, err := os.Open(p)
		if err != nil {
			return err
		}
		recs, err := paf.ReadAll(in)
		in.Close()
		if err != nil {
			return err
		}
		for _, r := range paf.Filter(recs, *minLen, *minQual) {
			ls = append(ls, links.FromPAF(r))
		}
	}
	if *nested {
		links.Sort(ls)
	} else {
		ls = links.FilterContained(ls)
	}

	out, err := os.Create(linkPath)
	if err != nil {
		return err
	}
	defer out.Close()
	return links.WriteAll(out, ls)
}

func bundleLinks(linkPath, bunPath string) error {
	in, err := os.Open(linkPath)
	if err != nil {
		return err
	}
	ls, err := links.ReadAll(in)
	in.Close()
	if err != nil {
		return err
	}
	bs := links.BundleLinks(ls, *maxGap)

	out, err := os.Create(bunPath)
	if err != nil {
		return err
	}
	defer out.Close()
	return links.WriteBundles(out, bs)
}
