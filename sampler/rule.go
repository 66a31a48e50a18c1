// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampler

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrInvalidRule is returned for rule strings that do not follow the
	// selector/bin/value/sampling/options grammar.
	ErrInvalidRule = errors.New("sampler: invalid rule specification")

	// ErrBoundsUnsatisfiable is returned when a bounded normal draw cannot
	// produce a value within the configured bounds in the retry budget.
	ErrBoundsUnsatisfiable = errors.New("sampler: bounds unsatisfiable")
)

// NoValue is the value-spec sentinel indicating that records carry no
// value field.
const NoValue = "-"

// Option is a single key=value option attached to generated records. The
// value spec is a Choice, Constant or Normal; Choice alternatives that
// themselves read as avg/sd are resolved by a bounded normal draw.
type Option struct {
	Key  string
	Alts []string
}

// Rule describes how intervals are generated on the chromosomes its
// selector matches.
type Rule struct {
	// Selector matches chromosome identifiers the rule applies to.
	Selector *regexp.Regexp

	// Size is the interval length distribution. Spacing is nil for
	// abutting intervals, otherwise the inter-interval gap distribution.
	Size    Spec
	Spacing Spec

	// Value is nil for valueless records, a Choice for categorical
	// values, or a List of scalar specs for multi-column values.
	Value Spec

	// Options are resolved per record and emitted as a key=value,... field.
	Options []Option

	// Sampling is the per-candidate keep probability in (0, 1].
	Sampling float64

	// Raw is the rule string the rule was parsed from.
	Raw string
}

// ParseRule parses a whitespace-separated rule string of the form
//
//	selector bin value [sampling] [options]
//
// where bin is either a size spec or size,spacing and options is a
// key=value[,key=value...] string.
func ParseRule(raw string) (Rule, error) {
	f := strings.Fields(raw)
	if len(f) < 3 || len(f) > 5 {
		return Rule{}, fmt.Errorf("%w: want 3-5 fields, got %d in %q", ErrInvalidRule, len(f), raw)
	}
	sel, err := regexp.Compile(f[0])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: bad selector %q: %v", ErrInvalidRule, f[0], err)
	}
	r := Rule{Selector: sel, Sampling: 1, Raw: raw}

	if err := r.setBin(f[1]); err != nil {
		return Rule{}, err
	}
	if err := r.setValue(f[2]); err != nil {
		return Rule{}, err
	}
	if len(f) > 3 {
		p, err := strconv.ParseFloat(f[3], 64)
		if err != nil {
			return Rule{}, fmt.Errorf("%w: bad sampling %q", ErrInvalidRule, f[3])
		}
		if p <= 0 || p > 1 {
			return Rule{}, fmt.Errorf("%w: sampling %v outside (0,1]", ErrInvalidRule, p)
		}
		r.Sampling = p
	}
	if len(f) > 4 {
		opts, err := parseOptions(f[4])
		if err != nil {
			return Rule{}, err
		}
		r.Options = opts
	}
	return r, nil
}

func (r *Rule) setBin(s string) error {
	sp, err := ParseSpec(s)
	if err != nil {
		return err
	}
	switch sp := sp.(type) {
	case Constant, Normal:
		r.Size = sp
	case List:
		if len(sp) != 2 {
			return fmt.Errorf("%w: bin spec %q wants size or size,spacing", ErrInvalidRule, s)
		}
		for _, e := range sp {
			switch e.(type) {
			case Constant, Normal:
			default:
				return fmt.Errorf("%w: bin spec %q components must be scalar", ErrInvalidRule, s)
			}
		}
		r.Size, r.Spacing = sp[0], sp[1]
	default:
		return fmt.Errorf("%w: bin spec %q must be scalar or pair", ErrInvalidRule, s)
	}
	return nil
}

func (r *Rule) setValue(s string) error {
	if s == NoValue {
		return nil
	}
	sp, err := ParseSpec(s)
	if err != nil {
		return err
	}
	switch sp := sp.(type) {
	case Choice:
		r.Value = sp
	case Constant, Normal:
		r.Value = List{sp}
	case List:
		for _, e := range sp {
			switch e.(type) {
			case Constant, Normal:
			default:
				return fmt.Errorf("%w: value spec %q components must be scalar", ErrInvalidRule, s)
			}
		}
		r.Value = sp
	}
	return nil
}

func parseOptions(s string) ([]Option, error) {
	var opts []Option
	for _, kv := range strings.Split(s, ",") {
		i := strings.Index(kv, "=")
		if i <= 0 || i == len(kv)-1 {
			return nil, fmt.Errorf("%w: option %q is not key=value", ErrInvalidRule, kv)
		}
		opts = append(opts, Option{Key: kv[:i], Alts: strings.Split(kv[i+1:], "|")})
	}
	return opts, nil
}

// ParseRules parses each rule string in raw.
func ParseRules(raw []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(raw))
	for _, s := range raw {
		r, err := ParseRule(s)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// orderRules sorts rules for evaluation: descending chromosome match count
// first, descending sampling rate on ties.
func orderRules(rules []Rule, names []string) []Rule {
	type ranked struct {
		Rule
		matches int
	}
	rk := make([]ranked, len(rules))
	for i, r := range rules {
		rk[i] = ranked{Rule: r}
		for _, n := range names {
			if r.Selector.MatchString(n) {
				rk[i].matches++
			}
		}
	}
	sort.SliceStable(rk, func(i, j int) bool {
		if rk[i].matches != rk[j].matches {
			return rk[i].matches > rk[j].matches
		}
		return rk[i].Sampling > rk[j].Sampling
	})
	out := make([]Rule, len(rk))
	for i, r := range rk {
		out[i] = r.Rule
	}
	return out
}
