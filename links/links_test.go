// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package links

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	check "gopkg.in/check.v1"

	"circompare/paf"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestParseAndString(c *check.C) {
	l, err := Parse("chr1 100 200 tig1 0 100 color=red")
	c.Assert(err, check.Equals, nil)
	c.Check(l, check.DeepEquals, Link{
		Ref: "chr1", RefStart: 100, RefEnd: 200,
		Query: "tig1", QStart: 0, QEnd: 100,
		Options: "color=red",
	})
	c.Check(l.String(), check.Equals, "chr1 100 200 tig1 0 100 color=red")

	bare, err := Parse("chr1 100 200 tig1 0 100")
	c.Assert(err, check.Equals, nil)
	c.Check(bare.String(), check.Equals, "chr1 100 200 tig1 0 100")

	for i, bad := range []string{"chr1 100 200", "chr1 x 200 tig1 0 100", "chr1 1 2 tig1 0 1 a b"} {
		_, err := Parse(bad)
		c.Check(errors.Is(err, ErrBadLink), check.Equals, true, check.Commentf("Test %d", i))
	}
}

func (s *S) TestReadWrite(c *check.C) {
	in := "# header\nchr1 100 200 tig1 0 100\n\nchr2 0 50 tig2 10 60 nlinks=3\n"
	ls, err := ReadAll(strings.NewReader(in))
	c.Assert(err, check.Equals, nil)
	c.Assert(len(ls), check.Equals, 2)

	var buf bytes.Buffer
	err = WriteAll(&buf, ls)
	c.Assert(err, check.Equals, nil)
	c.Check(buf.String(), check.Equals, "chr1 100 200 tig1 0 100\nchr2 0 50 tig2 10 60 nlinks=3\n")
}

func (s *S) TestFromPAF(c *check.C) {
	l := FromPAF(paf.Record{
		Query: "tig1", QStart: 5, QEnd: 105,
		Target: "chr2", TStart: 1000, TEnd: 1100,
	})
	c.Check(l, check.Equals, Link{Ref: "chr2", RefStart: 1000, RefEnd: 1100, Query: "tig1", QStart: 5, QEnd: 105})
}

func (s *S) TestSort(c *check.C) {
	ls := []Link{
		{Ref: "scaffold_x", RefStart: 0, Query: "t", QEnd: 1, RefEnd: 1},
		{Ref: "chr10", RefStart: 0, Query: "t", QEnd: 1, RefEnd: 1},
		{Ref: "chr2", RefStart: 500, Query: "t", QEnd: 1, RefEnd: 501},
		{Ref: "chr2", RefStart: 100, Query: "t", QEnd: 1, RefEnd: 101},
	}
	Sort(ls)
	c.Check(ls[0].Ref, check.Equals, "chr2")
	c.Check(ls[0].RefStart, check.Equals, 100)
	c.Check(ls[1].Ref, check.Equals, "chr2")
	c.Check(ls[1].RefStart, check.Equals, 500)
	c.Check(ls[2].Ref, check.Equals, "chr10")
	c.Check(ls[3].Ref, check.Equals, "scaffold_x")
}

func (s *S) TestFilterContained(c *check.C) {
	ls := []Link{
		{Ref: "chr1", RefStart: 0, RefEnd: 1000, Query: "tig1", QStart: 0, QEnd: 1000},
		// Contained within the link above.
		{Ref: "chr1", RefStart: 100, RefEnd: 200, Query: "tig2", QStart: 0, QEnd: 100},
		// Overlapping but not contained.
		{Ref: "chr1", RefStart: 900, RefEnd: 1200, Query: "tig3", QStart: 0, QEnd: 300},
		// Same span on a different chromosome survives.
		{Ref: "chr2", RefStart: 100, RefEnd: 200, Query: "tig4", QStart: 0, QEnd: 100},
	}
	kept := FilterContained(ls)
	var queries []string
	for _, l := range kept {
		queries = append(queries, l.Query)
	}
	c.Check(queries, check.DeepEquals, []string{"tig1", "tig3", "tig4"})
}

func (s *S) TestGap(c *check.C) {
	c.Check(gap(0, 100, 150, 200), check.Equals, 50)
	c.Check(gap(150, 200, 0, 100), check.Equals, 50)
	c.Check(gap(0, 100, 50, 200), check.Equals, 0)
	c.Check(gap(0, 100, 100, 200), check.Equals, 0)
}

func (s *S) TestBundleLinks(c *check.C) {
	ls := []Link{
		// Three adjacent links chained within a 100b gap on both sides.
		{Ref: "chr1", RefStart: 0, RefEnd: 1000, Query: "tig1", QStart: 0, QEnd: 1000},
		{Ref: "chr1", RefStart: 1050, RefEnd: 2000, Query: "tig1", QStart: 1080, QEnd: 2000},
		{Ref: "chr1", RefStart: 2090, RefEnd: 3000, Query: "tig1", QStart: 2050, QEnd: 3000},
		// Too far on the reference side.
		{Ref: "chr1", RefStart: 10000, RefEnd: 11000, Query: "tig1", QStart: 3050, QEnd: 4000},
		// Different query: never bundled with the others.
		{Ref: "chr1", RefStart: 1000, RefEnd: 2000, Query: "tig2", QStart: 0, QEnd: 1000},
	}
	bs := BundleLinks(ls, 100)
	c.Assert(len(bs), check.Equals, 3)

	c.Check(bs[0].Link, check.Equals, Link{Ref: "chr1", RefStart: 0, RefEnd: 3000, Query: "tig1", QStart: 0, QEnd: 3000})
	c.Check(bs[0].Links, check.Equals, 3)

	c.Check(bs[1].Query, check.Equals, "tig2")
	c.Check(bs[1].Links, check.Equals, 1)

	c.Check(bs[2].RefStart, check.Equals, 10000)
	c.Check(bs[2].Links, check.Equals, 1)

	var buf bytes.Buffer
	err := WriteBundles(&buf, bs[:1])
	c.Assert(err, check.Equals, nil)
	c.Check(buf.String(), check.Equals, "chr1 0 3000 tig1 0 3000 nlinks=3\n")
}
