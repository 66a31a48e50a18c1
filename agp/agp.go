// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package agp decomposes assembly scaffolds into AGP 2.0 component and
// gap rows, splitting at runs of N, and derives the component sequences.
package agp

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// DefaultMinGap is the minimum run of N considered a scaffold gap rather
// than sequence ambiguity.
const DefaultMinGap = 10

// Gap row constants per the AGP 2.0 specification.
const (
	gapType  = "scaffold"
	linkage  = "yes"
	evidence = "paired-ends"
)

// Row is one AGP line. Component rows (Type 'W') describe a piece of
// sequence; gap rows (Type 'N') describe a gap of known length.
type Row struct {
	Object    string
	ObjectBeg int // 1-based, inclusive
	ObjectEnd int
	Part      int
	Type      byte

	// Component row fields.
	ComponentID  string
	ComponentBeg int
	ComponentEnd int
	Orientation  byte

	// Gap row fields.
	GapLength int
}

// String renders the row as a tab-separated AGP line.
func (r Row) String() string {
	if r.Type == 'N' {
		return fmt.Sprintf("%s\t%d\t%d\t%d\t%c\t%d\t%s\t%s\t%s",
			r.Object, r.ObjectBeg, r.ObjectEnd, r.Part, r.Type,
			r.GapLength, gapType, linkage, evidence)
	}
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%c\t%s\t%d\t%d\t%c",
		r.Object, r.ObjectBeg, r.ObjectEnd, r.Part, r.Type,
		r.ComponentID, r.ComponentBeg, r.ComponentEnd, r.Orientation)
}

// Decompose splits a scaffold at runs of at least minGap N into component
// and gap rows, returning the rows and the component sequences named
// <scaffold>_<n>. A minGap of zero or less selects DefaultMinGap.
func Decompose(s *linear.Seq, minGap int) ([]Row, []*linear.Seq) {
	if minGap <= 0 {
		minGap = DefaultMinGap
	}
	letters := s.Seq
	var (
		rows  []Row
		comps []*linear.Seq
		part  int
		n     int
	)
	emit := func(start, end int) {
		// [start, end) is a maximal non-gap run.
		n++
		part++
		id := fmt.Sprintf("%s_%d", s.Name(), n)
		rows = append(rows, Row{
			Object:    s.Name(),
			ObjectBeg: start + 1,
			ObjectEnd: end,
			Part:      part,
			Type:      'W',

			ComponentID:  id,
			ComponentBeg: 1,
			ComponentEnd: end - start,
			Orientation:  '+',
		})
		cs := linear.NewSeq(id, append([]alphabet.Letter(nil), letters[start:end]...), s.Alphabet())
		comps = append(comps, cs)
	}
	emitGap := func(start, end int) {
		part++
		rows = append(rows, Row{
			Object:    s.Name(),
			ObjectBeg: start + 1,
			ObjectEnd: end,
			Part:      part,
			Type:      'N',
			GapLength: end - start,
		})
	}

	compStart := 0
	i := 0
	for i < len(letters) {
		if !isN(letters[i]) {
			i++
			continue
		}
		gapStart := i
		for i < len(letters) && isN(letters[i]) {
			i++
		}
		if i-gapStart < minGap {
			continue
		}
		if gapStart > compStart {
			emit(compStart, gapStart)
		}
		emitGap(gapStart, i)
		compStart = i
	}
	if compStart < len(letters) {
		emit(compStart, len(letters))
	}
	return rows, comps
}

func isN(l alphabet.Letter) bool { return l == 'n' || l == 'N' }

// Write writes AGP rows one per line to w.
func Write(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
