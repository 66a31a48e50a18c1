// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paf

import (
	"errors"
	"strings"
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const line = "tig1\t50000\t100\t4100\t+\tchr1\t100000\t2000\t6000\t3600\t4000\t60\ttp:A:P\tcm:i:320"

func (s *S) TestParse(c *check.C) {
	r, err := Parse(line)
	c.Assert(err, check.Equals, nil)
	c.Check(r, check.DeepEquals, Record{
		Query: "tig1", QLen: 50000, QStart: 100, QEnd: 4100,
		Strand: '+',
		Target: "chr1", TLen: 100000, TStart: 2000, TEnd: 6000,
		Matches: 3600, BlockLen: 4000, MapQ: 60,
		Tags: []string{"tp:A:P", "cm:i:320"},
	})
	c.Check(r.Identity(), check.Equals, 0.9)
	c.Check(r.BED6(), check.Equals, "chr1\t2000\t6000\ttig1\t60\t+")

	for i, bad := range []string{
		"tig1\t50000\t100",
		strings.Replace(line, "+", "*", 1),
		strings.Replace(line, "50000", "a lot", 1),
	} {
		_, err := Parse(bad)
		c.Check(errors.Is(err, ErrBadRecord), check.Equals, true, check.Commentf("Test %d: %v", i, err))
	}
}

func (s *S) TestReadAll(c *check.C) {
	in := line + "\n\n" + strings.Replace(line, "tig1", "tig2", 1) + "\n"
	recs, err := ReadAll(strings.NewReader(in))
	c.Assert(err, check.Equals, nil)
	c.Assert(len(recs), check.Equals, 2)
	c.Check(recs[0].Query, check.Equals, "tig1")
	c.Check(recs[1].Query, check.Equals, "tig2")
}

func (s *S) TestFilter(c *check.C) {
	recs := []Record{
		{Query: "a", BlockLen: 5000, MapQ: 60},
		{Query: "b", BlockLen: 400, MapQ: 60},
		{Query: "c", BlockLen: 5000, MapQ: 10},
	}
	out := Filter(recs, 1000, 30)
	c.Assert(len(out), check.Equals, 1)
	c.Check(out[0].Query, check.Equals, "a")

	c.Check(len(Filter(recs, 0, 0)), check.Equals, 3)
}
