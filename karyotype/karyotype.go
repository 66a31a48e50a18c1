// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package karyotype provides reading, writing and manipulation of Circos
// karyotype records, the chromosome-length canvas used by the rest of the
// pipeline.
package karyotype

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Marker is the leading token of a chromosome-defining karyotype line.
const Marker = "chr"

// Chromosome is a single karyotype band covering a whole chromosome or
// scaffold.
type Chromosome struct {
	ID    string
	Label string
	Start int
	End   int
	Color string
}

// Length returns the coordinate span of the chromosome.
func (c Chromosome) Length() int { return c.End - c.Start }

// Karyotype is an ordered collection of chromosomes indexed by ID.
type Karyotype struct {
	chr   []Chromosome
	index map[string]int
}

// New returns an empty Karyotype.
func New() *Karyotype {
	return &Karyotype{index: make(map[string]int)}
}

// Add appends a chromosome definition. A later definition for an already
// present ID replaces the earlier one in place.
func (k *Karyotype) Add(c Chromosome) {
	if i, ok := k.index[c.ID]; ok {
		k.chr[i] = c
		return
	}
	k.index[c.ID] = len(k.chr)
	k.chr = append(k.chr, c)
}

// Len returns the number of chromosomes held.
func (k *Karyotype) Len() int { return len(k.chr) }

// Chromosomes returns the chromosomes in definition order.
func (k *Karyotype) Chromosomes() []Chromosome { return k.chr }

// Chromosome returns the chromosome with the given ID.
func (k *Karyotype) Chromosome(id string) (Chromosome, bool) {
	i, ok := k.index[id]
	if !ok {
		return Chromosome{}, false
	}
	return k.chr[i], true
}

// Length returns the coordinate span of the named chromosome.
func (k *Karyotype) Length(id string) (int, bool) {
	c, ok := k.Chromosome(id)
	if !ok {
		return 0, false
	}
	return c.Length(), true
}

// Names returns the chromosome IDs in definition order.
func (k *Karyotype) Names() []string {
	n := make([]string, len(k.chr))
	for i, c := range k.chr {
		n[i] = c.ID
	}
	return n
}

// Recolor sets the color of every chromosome whose ID or label is present
// in names. When from is not empty only chromosomes currently colored from
// are changed. It returns the number of chromosomes recolored.
func (k *Karyotype) Recolor(names map[string]bool, from, to string) int {
	var n int
	for i, c := range k.chr {
		if !names[c.ID] && !names[c.Label] {
			continue
		}
		if from != "" && c.Color != from {
			continue
		}
		k.chr[i].Color = to
		n++
	}
	return n
}

// Palette is the default band color cycle, using the renderer's
// standard chromosome color names.
var Palette = []string{
	"chr1", "chr2", "chr3", "chr4", "chr5", "chr6",
	"chr7", "chr8", "chr9", "chr10", "chr11", "chr12",
	"chr13", "chr14", "chr15", "chr16", "chr17", "chr18",
	"chr19", "chr20", "chr21", "chr22",
}

// CycleColors assigns colors to the chromosomes in order from palette,
// wrapping when the palette is exhausted. An empty palette selects
// Palette.
func (k *Karyotype) CycleColors(palette []string) {
	if len(palette) == 0 {
		palette = Palette
	}
	for i := range k.chr {
		k.chr[i].Color = palette[i%len(palette)]
	}
}

// ReadFrom parses karyotype records from r. Lines whose first field is not
// the chromosome marker, and marker lines that do not parse, are skipped.
func ReadFrom(r io.Reader) (*Karyotype, error) {
	k := New()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		c, ok := parseLine(sc.Text())
		if !ok {
			continue
		}
		k.Add(c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return k, nil
}

func parseLine(line string) (Chromosome, bool) {
	f := strings.Fields(line)
	if len(f) < 7 || f[0] != Marker {
		return Chromosome{}, false
	}
	start, err := strconv.Atoi(f[4])
	if err != nil {
		return Chromosome{}, false
	}
	end, err := strconv.Atoi(f[5])
	if err != nil {
		return Chromosome{}, false
	}
	return Chromosome{ID: f[2], Label: f[3], Start: start, End: end, Color: f[6]}, true
}

// WriteTo writes the karyotype in Circos karyotype format.
func (k *Karyotype) WriteTo(w io.Writer) error {
	for _, c := range k.chr {
		_, err := fmt.Fprintf(w, "%s - %s %s %d %d %s\n", Marker, c.ID, c.Label, c.Start, c.End, c.Color)
		if err != nil {
			return err
		}
	}
	return nil
}
