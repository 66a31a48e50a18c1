// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampler

import (
	"fmt"
	"strconv"
	"strings"
)

// A Spec describes how a single field of a generated record is produced.
// The concrete types are Constant, Normal, Choice and List.
type Spec interface {
	isSpec()
}

// Constant is a fixed numeric value.
type Constant float64

// Normal is a value drawn from a normal distribution, subject to the
// generator's global bounds.
type Normal struct {
	Avg, SD float64
}

// Choice is a uniformly random pick among literal alternatives.
type Choice []string

// List is an ordered set of independently resolved specs, used for
// multi-column values and for size/spacing pairs.
type List []Spec

func (Constant) isSpec() {}
func (Normal) isSpec()   {}
func (Choice) isSpec()   {}
func (List) isSpec()     {}

// ParseSpec parses the distribution spec grammar:
//
//	N      constant
//	a/s    normal with mean a and standard deviation s
//	x,y,z  list of specs
//	p|q|r  uniform choice among literals
//
// Alternation binds loosest, then lists, then normal specs.
func ParseSpec(s string) (Spec, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty spec", ErrInvalidRule)
	}
	if strings.Contains(s, "|") {
		alts := strings.Split(s, "|")
		for _, a := range alts {
			if a == "" {
				return nil, fmt.Errorf("%w: empty alternative in %q", ErrInvalidRule, s)
			}
		}
		return Choice(alts), nil
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		l := make(List, len(parts))
		for i, p := range parts {
			sub, err := ParseSpec(p)
			if err != nil {
				return nil, err
			}
			l[i] = sub
		}
		return l, nil
	}
	if strings.Contains(s, "/") {
		parts := strings.SplitN(s, "/", 2)
		avg, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad mean in %q", ErrInvalidRule, s)
		}
		sd, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad deviation in %q", ErrInvalidRule, s)
		}
		return Normal{Avg: avg, SD: sd}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: not a number: %q", ErrInvalidRule, s)
	}
	return Constant(v), nil
}

// parseNum restricts a spec to the scalar numeric forms.
func parseNum(s string) (Spec, error) {
	sp, err := ParseSpec(s)
	if err != nil {
		return nil, err
	}
	switch sp.(type) {
	case Constant, Normal:
		return sp, nil
	}
	return nil, fmt.Errorf("%w: %q is not a scalar spec", ErrInvalidRule, s)
}
