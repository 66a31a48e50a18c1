// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sampler generates synthetic genomic track data for a karyotype
// from a small declarative rule grammar. Interval sizes, spacing, values
// and options may each be constant, normally distributed or drawn from a
// discrete set, and candidates may be down-sampled.
package sampler

import (
	"fmt"
	"io"
	"math"
	"strings"

	"circompare/karyotype"
)

// Record is one generated interval. Value and Options are empty when the
// rule carries no value or options spec.
type Record struct {
	Chr     string
	Start   int
	End     int
	Value   string
	Options string
}

// String renders the record as space-joined output tokens.
func (r Record) String() string {
	s := fmt.Sprintf("%s %d %d", r.Chr, r.Start, r.End)
	if r.Value != "" {
		s += " " + r.Value
	}
	if r.Options != "" {
		s += " " + r.Options
	}
	return s
}

// Config carries the immutable per-run generation parameters.
type Config struct {
	// Min and Max bound all normal draws. Leaving both zero, or using
	// ±Inf, leaves draws unbounded.
	Min, Max float64

	// MaxRetries caps the rejection loop of bounded draws; zero selects
	// DefaultMaxRetries.
	MaxRetries int

	// Seed seeds the random source.
	Seed uint64
}

// Generator produces records for a karyotype under a rule set.
type Generator struct {
	kar   *karyotype.Karyotype
	rules []Rule
	d     *drawer
}

// NewGenerator returns a Generator over k applying rules under cfg.
func NewGenerator(k *karyotype.Karyotype, rules []Rule, cfg Config) *Generator {
	if cfg.Min == 0 && cfg.Max == 0 {
		cfg.Min, cfg.Max = math.Inf(-1), math.Inf(1)
	}
	return &Generator{
		kar:   k,
		rules: rules,
		d:     newDrawer(cfg.Seed, cfg.Min, cfg.Max, cfg.MaxRetries),
	}
}

// Generate runs every rule over its matching chromosomes and returns the
// kept records grouped by chromosome in numeric-aware name order, in
// generation order within each chromosome.
func (g *Generator) Generate() ([]Record, error) {
	names := g.kar.Names()
	byChr := make(map[string][]Record)
	for _, r := range orderRules(g.rules, names) {
		for _, c := range g.kar.Chromosomes() {
			if !r.Selector.MatchString(c.ID) {
				continue
			}
			recs, err := g.walk(r, c.ID, c.Length())
			if err != nil {
				return nil, err
			}
			byChr[c.ID] = append(byChr[c.ID], recs...)
		}
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	karyotype.SortNames(sorted)
	var out []Record
	for _, n := range sorted {
		out = append(out, byChr[n]...)
	}
	return out, nil
}

// walk generates the candidate intervals of one rule on one chromosome of
// length l, applying sampling and resolving values and options for kept
// candidates. The walk is strictly sequential and never backtracks.
func (g *Generator) walk(r Rule, chr string, l int) ([]Record, error) {
	var out []Record
	for pos := 0; pos < l; {
		var start, end int
		if r.Spacing != nil {
			size, space, err := g.drawPair(r)
			if err != nil {
				return nil, err
			}
			start = pos
			if size == 0 {
				end = start
			} else {
				end = start + size - 1
			}
			pos = end + 1 + space
		} else {
			size, err := g.drawSize(r)
			if err != nil {
				return nil, err
			}
			start = pos
			if size == 0 {
				end = start
			} else {
				end = start + size - 1
			}
			pos = end + 1
		}
		if end > l-1 {
			end = l - 1
		}
		if !g.d.keep(r.Sampling) {
			continue
		}
		rec := Record{Chr: chr, Start: start, End: end}
		var err error
		rec.Value, err = g.resolveValue(r.Value)
		if err != nil {
			return nil, err
		}
		rec.Options, err = g.resolveOptions(r.Options)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// drawSize draws an interval length for abutting mode, discarding negative
// draws but keeping zero.
func (g *Generator) drawSize(r Rule) (int, error) {
	for i := 0; i < g.d.retries; i++ {
		size, err := g.d.intScalar(r.Size)
		if err != nil {
			return 0, err
		}
		if size >= 0 {
			return size, nil
		}
	}
	return 0, fmt.Errorf("%w: no non-negative size from %v after %d tries",
		ErrBoundsUnsatisfiable, r.Size, g.d.retries)
}

// drawPair draws a size and spacing for spaced mode, discarding draws
// where either is negative or both are zero. An all-zero pair would stall
// the walk.
func (g *Generator) drawPair(r Rule) (size, space int, err error) {
	for i := 0; i < g.d.retries; i++ {
		size, err = g.d.intScalar(r.Size)
		if err != nil {
			return 0, 0, err
		}
		space, err = g.d.intScalar(r.Spacing)
		if err != nil {
			return 0, 0, err
		}
		if size < 0 || space < 0 || (size == 0 && space == 0) {
			continue
		}
		return size, space, nil
	}
	return 0, 0, fmt.Errorf("%w: no usable size/spacing pair from %v,%v after %d tries",
		ErrBoundsUnsatisfiable, r.Size, r.Spacing, g.d.retries)
}

// resolveValue renders a record's value field: nothing for a nil spec, a
// uniform literal pick for a Choice, and comma-joined bounded normal draws
// for scalar lists.
func (g *Generator) resolveValue(sp Spec) (string, error) {
	switch sp := sp.(type) {
	case nil:
		return "", nil
	case Choice:
		return g.d.pick(sp), nil
	case List:
		cols := make([]string, len(sp))
		for i, e := range sp {
			v, err := g.d.scalar(e)
			if err != nil {
				return "", err
			}
			cols[i] = formatValue(v)
		}
		return strings.Join(cols, ","), nil
	}
	panic(fmt.Sprintf("sampler: unresolvable value spec %T", sp))
}

// resolveOptions picks each option's alternative and resolves avg/sd
// alternatives by a bounded draw, reassembling key=value pairs.
func (g *Generator) resolveOptions(opts []Option) (string, error) {
	if len(opts) == 0 {
		return "", nil
	}
	parts := make([]string, len(opts))
	for i, o := range opts {
		alt := g.d.pick(o.Alts)
		if n, ok := parseOptNormal(alt); ok {
			v, err := g.d.normal(n.Avg, n.SD)
			if err != nil {
				return "", err
			}
			alt = formatValue(v)
		}
		parts[i] = o.Key + "=" + alt
	}
	return strings.Join(parts, ","), nil
}

// parseOptNormal reports whether an option alternative encodes avg/sd.
func parseOptNormal(s string) (Normal, bool) {
	if !strings.Contains(s, "/") {
		return Normal{}, false
	}
	sp, err := ParseSpec(s)
	if err != nil {
		return Normal{}, false
	}
	n, ok := sp.(Normal)
	return n, ok
}

// WriteRecords writes one record per line to w.
func WriteRecords(w io.Writer, recs []Record) error {
	for _, r := range recs {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
