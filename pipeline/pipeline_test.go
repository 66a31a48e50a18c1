// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func touch(c *check.C, path string, t time.Time) {
	err := os.WriteFile(path, []byte("x"), 0o644)
	c.Assert(err, check.Equals, nil)
	err = os.Chtimes(path, t, t)
	c.Assert(err, check.Equals, nil)
}

func (s *S) TestRunAndSkip(c *check.C) {
	dir := c.MkDir()
	in := filepath.Join(dir, "in.fa")
	out := filepath.Join(dir, "out.paf")
	now := time.Now()
	touch(c, in, now.Add(-time.Hour))

	var ran int
	var log bytes.Buffer
	p := New(&log)
	p.Add(Stage{
		Name:    "align",
		Inputs:  []string{in},
		Outputs: []string{out},
		Run: func() error {
			ran++
			touch(c, out, now)
			return nil
		},
	})
	err := p.Run()
	c.Assert(err, check.Equals, nil)
	c.Check(ran, check.Equals, 1)

	// A second run is a no-op: the output is newer than the input.
	err = p.Run()
	c.Assert(err, check.Equals, nil)
	c.Check(ran, check.Equals, 1)
	c.Check(strings.Contains(log.String(), "up to date"), check.Equals, true)

	// Touching the input forces the stage to run again.
	touch(c, in, now.Add(time.Hour))
	err = p.Run()
	c.Assert(err, check.Equals, nil)
	c.Check(ran, check.Equals, 2)
}

func (s *S) TestMissingInput(c *check.C) {
	p := New(nil)
	p.Add(Stage{
		Name:    "align",
		Inputs:  []string{filepath.Join(c.MkDir(), "nope.fa")},
		Outputs: []string{"out"},
		Run:     func() error { return nil },
	})
	err := p.Run()
	c.Check(errors.Is(err, ErrMissingInput), check.Equals, true, check.Commentf("got %v", err))
}

func (s *S) TestMissingOutput(c *check.C) {
	dir := c.MkDir()
	in := filepath.Join(dir, "in.fa")
	touch(c, in, time.Now())
	p := New(nil)
	p.Add(Stage{
		Name:    "convert",
		Inputs:  []string{in},
		Outputs: []string{filepath.Join(dir, "never-made")},
		Run:     func() error { return nil },
	})
	err := p.Run()
	c.Check(err, check.Not(check.Equals), nil)
}

func (s *S) TestStageError(c *check.C) {
	dir := c.MkDir()
	in := filepath.Join(dir, "in.fa")
	touch(c, in, time.Now())
	boom := errors.New("boom")
	p := New(nil)
	p.Add(Stage{
		Name:   "fail",
		Inputs: []string{in},
		Run:    func() error { return boom },
	})
	err := p.Run()
	c.Check(errors.Is(err, boom), check.Equals, true)
}

func (s *S) TestRunCommands(c *check.C) {
	cmds := []*exec.Cmd{
		exec.Command("true"),
		exec.Command("true"),
		exec.Command("true"),
	}
	err := RunCommands(cmds, 2, nil)
	c.Check(err, check.Equals, nil)

	cmds = []*exec.Cmd{
		exec.Command("true"),
		exec.Command("false"),
	}
	err = RunCommands(cmds, 1, nil)
	c.Check(err, check.Not(check.Equals), nil)
}

func (s *S) TestMinimap2Command(c *check.C) {
	cmd, err := Minimap2{
		Preset:  "asm5",
		Threads: 4,
		OutFile: "out.paf",
		Target:  "ref.fa",
		Query:   "asm.fa",
	}.BuildCommand()
	c.Assert(err, check.Equals, nil)
	c.Check(cmd.Args, check.DeepEquals, []string{
		"minimap2", "-x", "asm5", "-t", "4", "-o", "out.paf", "ref.fa", "asm.fa",
	})
}

func (s *S) TestCircosCommand(c *check.C) {
	cmd, err := Circos{
		Conf:       "circos.conf",
		OutDir:     "out",
		NoParanoid: true,
	}.BuildCommand()
	c.Assert(err, check.Equals, nil)
	c.Check(cmd.Args, check.DeepEquals, []string{
		"circos", "-conf", "circos.conf", "-outputdir", "out", "-noparanoid",
	})
}
