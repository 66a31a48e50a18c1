// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline runs the file-based build graph of the comparison
// plot: stages declare their input and output files and are skipped when
// their outputs are already newer than their inputs.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ErrMissingInput is returned when a stage's input does not exist and no
// earlier stage produces it.
var ErrMissingInput = errors.New("pipeline: missing input")

// A Stage is one node of the build graph.
type Stage struct {
	// Name identifies the stage in progress output.
	Name string

	// Inputs and Outputs are the files the stage consumes and produces.
	Inputs  []string
	Outputs []string

	// Run produces Outputs from Inputs.
	Run func() error
}

// Pipeline is an ordered set of stages. Stages run in the order added;
// the order must be a topological order of the file dependencies.
type Pipeline struct {
	stages []Stage
	log    io.Writer
}

// New returns a Pipeline logging progress to log. A nil log discards
// progress output.
func New(log io.Writer) *Pipeline {
	if log == nil {
		log = io.Discard
	}
	return &Pipeline{log: log}
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(s Stage) { p.stages = append(p.stages, s) }

// Run executes the stages in order, skipping any whose outputs are all
// newer than all inputs. The first stage error aborts the run.
func (p *Pipeline) Run() error {
	for _, s := range p.stages {
		ok, err := p.upToDate(s)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(p.log, "%s: up to date, skipping\n", s.Name)
			continue
		}
		fmt.Fprintf(p.log, "%s ...\n", s.Name)
		start := time.Now()
		if err := s.Run(); err != nil {
			return fmt.Errorf("pipeline: stage %s: %w", s.Name, err)
		}
		for _, out := range s.Outputs {
			if _, err := os.Stat(out); err != nil {
				return fmt.Errorf("pipeline: stage %s did not produce %q", s.Name, out)
			}
		}
		fmt.Fprintf(p.log, "%s done in %v\n", s.Name, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// upToDate reports whether every output of s exists and is no older than
// the newest input. Missing inputs are an error: the stage order must
// provide them.
func (p *Pipeline) upToDate(s Stage) (bool, error) {
	var newest time.Time
	for _, in := range s.Inputs {
		fi, err := os.Stat(in)
		if os.IsNotExist(err) {
			return false, fmt.Errorf("%w: %q for stage %s", ErrMissingInput, in, s.Name)
		}
		if err != nil {
			return false, err
		}
		if fi.ModTime().After(newest) {
			newest = fi.ModTime()
		}
	}
	if len(s.Outputs) == 0 {
		return false, nil
	}
	for _, out := range s.Outputs {
		fi, err := os.Stat(out)
		if os.IsNotExist(err) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if fi.ModTime().Before(newest) {
			return false, nil
		}
	}
	return true, nil
}
