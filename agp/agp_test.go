// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agp

import (
	"bytes"
	"strings"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func seq(id, s string) *linear.Seq {
	return linear.NewSeq(id, alphabet.BytesToLetters([]byte(s)), alphabet.DNA)
}

func (s *S) TestDecompose(c *check.C) {
	// Two components split by a 12N gap; the 3N run stays inside its
	// component.
	sc := seq("scaf1", "ACGTACGTAC"+strings.Repeat("N", 12)+"GGGNNNCCC")
	rows, comps := Decompose(sc, 10)

	c.Assert(len(rows), check.Equals, 3)
	c.Check(rows[0].String(), check.Equals, "scaf1\t1\t10\t1\tW\tscaf1_1\t1\t10\t+")
	c.Check(rows[1].String(), check.Equals, "scaf1\t11\t22\t2\tN\t12\tscaffold\tyes\tpaired-ends")
	c.Check(rows[2].String(), check.Equals, "scaf1\t23\t31\t3\tW\tscaf1_2\t1\t9\t+")

	c.Assert(len(comps), check.Equals, 2)
	c.Check(comps[0].Name(), check.Equals, "scaf1_1")
	c.Check(comps[0].Len(), check.Equals, 10)
	c.Check(comps[1].Name(), check.Equals, "scaf1_2")
	c.Check(comps[1].Len(), check.Equals, 9)
}

func (s *S) TestDecomposeNoGap(c *check.C) {
	rows, comps := Decompose(seq("tig1", "ACGTACGT"), 0)
	c.Assert(len(rows), check.Equals, 1)
	c.Check(rows[0].Type, check.Equals, byte('W'))
	c.Check(rows[0].ObjectBeg, check.Equals, 1)
	c.Check(rows[0].ObjectEnd, check.Equals, 8)
	c.Assert(len(comps), check.Equals, 1)
	c.Check(comps[0].Name(), check.Equals, "tig1_1")
}

func (s *S) TestDecomposeEdgeGaps(c *check.C) {
	// Leading and trailing gaps produce gap rows without empty
	// components.
	sc := seq("scaf2", strings.Repeat("N", 10)+"ACGT"+strings.Repeat("N", 10))
	rows, comps := Decompose(sc, 10)
	c.Assert(len(rows), check.Equals, 3)
	c.Check(rows[0].Type, check.Equals, byte('N'))
	c.Check(rows[1].Type, check.Equals, byte('W'))
	c.Check(rows[2].Type, check.Equals, byte('N'))
	c.Assert(len(comps), check.Equals, 1)
	c.Check(comps[0].Len(), check.Equals, 4)
}

func (s *S) TestWrite(c *check.C) {
	rows, _ := Decompose(seq("tig1", "ACGT"), 0)
	var buf bytes.Buffer
	err := Write(&buf, rows)
	c.Assert(err, check.Equals, nil)
	c.Check(buf.String(), check.Equals, "tig1\t1\t4\t1\tW\ttig1_1\t1\t4\t+\n")
}
