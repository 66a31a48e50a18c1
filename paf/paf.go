// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paf reads minimap2 PAF pairwise alignment records and converts
// them to the track formats consumed by the renderer.
package paf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadRecord is returned for lines that do not carry the 12 mandatory
// PAF columns.
var ErrBadRecord = errors.New("paf: malformed record")

// Record is one PAF alignment line. Tags holds any optional SAM-like
// fields beyond the mandatory twelve, unparsed.
type Record struct {
	Query  string
	QLen   int
	QStart int
	QEnd   int

	Strand byte

	Target string
	TLen   int
	TStart int
	TEnd   int

	Matches  int
	BlockLen int
	MapQ     int

	Tags []string
}

// Identity returns the fraction of matching bases in the aligned block.
func (r Record) Identity() float64 {
	if r.BlockLen == 0 {
		return 0
	}
	return float64(r.Matches) / float64(r.BlockLen)
}

// BED6 renders the record's target interval as a BED6 line with the query
// name, mapping quality and strand.
func (r Record) BED6() string {
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%d\t%c", r.Target, r.TStart, r.TEnd, r.Query, r.MapQ, r.Strand)
}

// Parse parses a single PAF line.
func Parse(line string) (Record, error) {
	f := strings.Split(line, "\t")
	if len(f) < 12 {
		return Record{}, fmt.Errorf("%w: %d columns", ErrBadRecord, len(f))
	}
	if len(f[4]) != 1 || (f[4][0] != '+' && f[4][0] != '-') {
		return Record{}, fmt.Errorf("%w: strand %q", ErrBadRecord, f[4])
	}
	var (
		r   = Record{Query: f[0], Strand: f[4][0], Target: f[5]}
		err error
	)
	for _, c := range []struct {
		dst *int
		s   string
	}{
		{&r.QLen, f[1]}, {&r.QStart, f[2]}, {&r.QEnd, f[3]},
		{&r.TLen, f[6]}, {&r.TStart, f[7]}, {&r.TEnd, f[8]},
		{&r.Matches, f[9]}, {&r.BlockLen, f[10]}, {&r.MapQ, f[11]},
	} {
		*c.dst, err = strconv.Atoi(c.s)
		if err != nil {
			return Record{}, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
	}
	if len(f) > 12 {
		r.Tags = f[12:]
	}
	return r, nil
}

// Reader reads PAF records from a stream.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader returns a Reader for r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<22)
	return &Reader{sc: sc}
}

// Read returns the next record, io.EOF at end of input. Blank lines are
// skipped.
func (r *Reader) Read() (Record, error) {
	for r.sc.Scan() {
		line := strings.TrimRight(r.sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		return Parse(line)
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, err
	}
	return Record{}, io.EOF
}

// ReadAll reads records until EOF.
func ReadAll(rd io.Reader) ([]Record, error) {
	r := NewReader(rd)
	var recs []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

// Filter returns the records whose alignment block length and mapping
// quality meet the given minima.
func Filter(recs []Record, minLen, minQual int) []Record {
	var out []Record
	for _, r := range recs {
		if r.BlockLen >= minLen && r.MapQ >= minQual {
			out = append(out, r)
		}
	}
	return out
}
