// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package links handles Circos link records derived from pairwise
// alignments, including containment filtering and bundling of adjacent
// links into coarser visual links.
package links

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"circompare/karyotype"
	"circompare/paf"
)

// ErrBadLink is returned for lines that do not parse as link records.
var ErrBadLink = errors.New("links: malformed link record")

// Link joins an interval on the reference to an interval on the query
// assembly. Options is an optional trailing key=value[,key=value] token.
type Link struct {
	Ref      string
	RefStart int
	RefEnd   int

	Query  string
	QStart int
	QEnd   int

	Options string
}

// RefSpan returns the length of the link's reference interval.
func (l Link) RefSpan() int { return l.RefEnd - l.RefStart }

// String renders the link in one-line Circos link format.
func (l Link) String() string {
	s := fmt.Sprintf("%s %d %d %s %d %d", l.Ref, l.RefStart, l.RefEnd, l.Query, l.QStart, l.QEnd)
	if l.Options != "" {
		s += " " + l.Options
	}
	return s
}

// FromPAF converts an alignment record to a link.
func FromPAF(r paf.Record) Link {
	return Link{
		Ref:      r.Target,
		RefStart: r.TStart,
		RefEnd:   r.TEnd,
		Query:    r.Query,
		QStart:   r.QStart,
		QEnd:     r.QEnd,
	}
}

// Parse parses a one-line link record.
func Parse(line string) (Link, error) {
	f := strings.Fields(line)
	if len(f) < 6 || len(f) > 7 {
		return Link{}, fmt.Errorf("%w: %d fields", ErrBadLink, len(f))
	}
	var (
		l   = Link{Ref: f[0], Query: f[3]}
		err error
	)
	for _, c := range []struct {
		dst *int
		s   string
	}{
		{&l.RefStart, f[1]}, {&l.RefEnd, f[2]},
		{&l.QStart, f[4]}, {&l.QEnd, f[5]},
	} {
		*c.dst, err = strconv.Atoi(c.s)
		if err != nil {
			return Link{}, fmt.Errorf("%w: %v", ErrBadLink, err)
		}
	}
	if len(f) == 7 {
		l.Options = f[6]
	}
	return l, nil
}

// ReadAll reads link records from r, one per line, skipping blank lines
// and # comments.
func ReadAll(r io.Reader) ([]Link, error) {
	var out []Link
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l, err := Parse(line)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteAll writes one link per line to w.
func WriteAll(w io.Writer, ls []Link) error {
	for _, l := range ls {
		if _, err := fmt.Fprintln(w, l.String()); err != nil {
			return err
		}
	}
	return nil
}

// Sort orders links by reference chromosome in numeric-aware name order,
// then by reference start, then by query name and start.
func Sort(ls []Link) {
	sort.SliceStable(ls, func(i, j int) bool {
		a, b := ls[i], ls[j]
		if a.Ref != b.Ref {
			return karyotype.NameLess(a.Ref, b.Ref)
		}
		if a.RefStart != b.RefStart {
			return a.RefStart < b.RefStart
		}
		if a.Query != b.Query {
			return karyotype.NameLess(a.Query, b.Query)
		}
		return a.QStart < b.QStart
	})
}
