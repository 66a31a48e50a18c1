// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package karyotype

import (
	"bytes"
	"strings"
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestReadFrom(c *check.C) {
	in := `# comment line
chr - chr1 chr1 0 1000 vvlgrey
band chr1 p1 p1 0 500 grey
chr - chr2 chr2 0 800 vvlgrey
chr - chr1 chr1 0 1200 red
chr - broken broken zero 1200 red
`
	k, err := ReadFrom(strings.NewReader(in))
	c.Assert(err, check.Equals, nil)
	c.Check(k.Len(), check.Equals, 2)

	// Last definition for a duplicate ID wins.
	l, ok := k.Length("chr1")
	c.Check(ok, check.Equals, true)
	c.Check(l, check.Equals, 1200)
	chr1, _ := k.Chromosome("chr1")
	c.Check(chr1.Color, check.Equals, "red")

	l, ok = k.Length("chr2")
	c.Check(ok, check.Equals, true)
	c.Check(l, check.Equals, 800)

	_, ok = k.Length("broken")
	c.Check(ok, check.Equals, false)
}

func (s *S) TestWriteTo(c *check.C) {
	k := New()
	k.Add(Chromosome{ID: "chr1", Label: "chr1", Start: 0, End: 100, Color: "vvlgrey"})
	k.Add(Chromosome{ID: "tig4", Label: "tig4", Start: 0, End: 42, Color: "red"})
	var buf bytes.Buffer
	err := k.WriteTo(&buf)
	c.Assert(err, check.Equals, nil)
	c.Check(buf.String(), check.Equals, "chr - chr1 chr1 0 100 vvlgrey\nchr - tig4 tig4 0 42 red\n")
}

func (s *S) TestRecolor(c *check.C) {
	k := New()
	k.Add(Chromosome{ID: "tig1", Label: "tig1", End: 10, Color: "vvlgrey"})
	k.Add(Chromosome{ID: "tig2", Label: "tig2", End: 10, Color: "vvlgrey"})
	k.Add(Chromosome{ID: "tig3", Label: "tig3", End: 10, Color: "blue"})

	n := k.Recolor(map[string]bool{"tig1": true, "tig3": true}, "vvlgrey", "red")
	c.Check(n, check.Equals, 1)
	tig1, _ := k.Chromosome("tig1")
	c.Check(tig1.Color, check.Equals, "red")
	tig2, _ := k.Chromosome("tig2")
	c.Check(tig2.Color, check.Equals, "vvlgrey")
	tig3, _ := k.Chromosome("tig3")
	c.Check(tig3.Color, check.Equals, "blue")
}

func (s *S) TestCycleColors(c *check.C) {
	k := New()
	k.Add(Chromosome{ID: "tig1", Label: "tig1", End: 10})
	k.Add(Chromosome{ID: "tig2", Label: "tig2", End: 10})
	k.Add(Chromosome{ID: "tig3", Label: "tig3", End: 10})

	k.CycleColors([]string{"red", "blue"})
	var got []string
	for _, c := range k.Chromosomes() {
		got = append(got, c.Color)
	}
	c.Check(got, check.DeepEquals, []string{"red", "blue", "red"})

	k.CycleColors(nil)
	tig1, _ := k.Chromosome("tig1")
	c.Check(tig1.Color, check.Equals, Palette[0])
}

func (s *S) TestNameOrder(c *check.C) {
	names := []string{"scaffold_x", "chr10", "chr2", "chr1"}
	SortNames(names)
	c.Check(names, check.DeepEquals, []string{"chr1", "chr2", "chr10", "scaffold_x"})

	for i, t := range []struct {
		a, b string
		want bool
	}{
		{"chr1", "chr2", true},
		{"chr2", "chr10", true},
		{"chr10", "chr2", false},
		{"chr10", "scaffold_x", true},
		{"scaffold_x", "chr1", false},
		{"alpha", "beta", true},
	} {
		c.Check(NameLess(t.a, t.b), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestFromFasta(c *check.C) {
	in := ">tig1 first contig\nACGTACGTAC\n>tig2\nACGT\n"
	k, err := FromFasta(strings.NewReader(in), "")
	c.Assert(err, check.Equals, nil)
	c.Assert(k.Len(), check.Equals, 2)
	l, _ := k.Length("tig1")
	c.Check(l, check.Equals, 10)
	l, _ = k.Length("tig2")
	c.Check(l, check.Equals, 4)
	tig1, _ := k.Chromosome("tig1")
	c.Check(tig1.Color, check.Equals, DefaultColor)
}
