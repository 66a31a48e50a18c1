// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package karyotype

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// DefaultColor is the band color given to chromosomes built from sequence
// data. The recoloring step rewrites it for chromosomes of interest.
const DefaultColor = "vvlgrey"

// FromFasta builds a karyotype from the sequences in r, one chromosome per
// sequence spanning [0, length) and colored color. An empty color selects
// DefaultColor.
func FromFasta(r io.Reader, color string) (*Karyotype, error) {
	if color == "" {
		color = DefaultColor
	}
	k := New()
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq()
		k.Add(Chromosome{
			ID:    s.Name(),
			Label: s.Name(),
			Start: 0,
			End:   s.Len(),
			Color: color,
		})
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return k, nil
}
