// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circosconf

import (
	"bytes"
	"strings"
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestWrite(c *check.C) {
	var buf bytes.Buffer
	err := Write(&buf, Params{
		Karyotype: "ref.karyotype",
		Links:     "asm.bundled",
		Dir:       "out",
		File:      "asm.png",
		Ticks:     true,
		Labels:    true,
	})
	c.Assert(err, check.Equals, nil)
	out := buf.String()
	for _, want := range []string{
		"karyotype = ref.karyotype",
		"file          = asm.bundled",
		"chromosomes_units = 100000",
		"show_label       = yes",
		"show_ticks       = yes",
		"dir    = out",
		"file   = asm.png",
		"radius = 1500p",
	} {
		c.Check(strings.Contains(out, want), check.Equals, true, check.Commentf("missing %q", want))
	}
}

func (s *S) TestWriteMinimal(c *check.C) {
	var buf bytes.Buffer
	err := Write(&buf, Params{Karyotype: "k", Links: "l"})
	c.Assert(err, check.Equals, nil)
	out := buf.String()
	c.Check(strings.Contains(out, "show_ticks"), check.Equals, false)
	c.Check(strings.Contains(out, "show_label       = no"), check.Equals, true)
	c.Check(strings.Contains(out, "file   = circos.png"), check.Equals, true)
	c.Check(strings.Contains(out, "dir    = ."), check.Equals, true)
}
