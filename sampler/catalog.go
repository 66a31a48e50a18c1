// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampler

import (
	"fmt"
	"io"
)

// RuleSet is a named preset of rule strings.
type RuleSet struct {
	Name        string
	Description string
	Rules       []string
}

// Catalog lists the predefined rule sets in presentation order.
var Catalog = []RuleSet{
	{
		Name:        "default",
		Description: "abutting ~1kb bins with a normally distributed value",
		Rules:       []string{". 1000/250 50/10"},
	},
	{
		Name:        "fine",
		Description: "abutting ~250b bins, noisy value",
		Rules:       []string{". 250/50 50/25"},
	},
	{
		Name:        "coarse",
		Description: "abutting ~5kb bins, noisy value",
		Rules:       []string{". 5000/1000 50/25"},
	},
	{
		Name:        "exp",
		Description: "three-column values spanning orders of magnitude",
		Rules:       []string{". 1000/250 1/0.5,10/5,100/50"},
	},
	{
		Name:        "stacked",
		Description: "four stacked value columns per bin",
		Rules:       []string{". 1000/250 25/10,25/10,25/10,25/10"},
	},
	{
		Name:        "cnv",
		Description: "spaced segments with a copy-number-like value, half kept",
		Rules:       []string{". 2000/500,5000/2000 2/0.5 0.5"},
	},
	{
		Name:        "aberration",
		Description: "sparse large intervals labeled with an aberration class",
		Rules:       []string{". 1e6/5e5,2e6/1e6 del|dup|inv 0.8 color=red|blue|green"},
	},
	{
		Name:        "spaced",
		Description: "randomly spaced ~1kb intervals with a value",
		Rules:       []string{". 1000/250,500/250 50/10"},
	},
	{
		Name:        "spaced-coarse",
		Description: "randomly spaced ~5kb intervals with a value",
		Rules:       []string{". 5000/1000,5000/2500 50/25"},
	},
	{
		Name:        "binary",
		Description: "abutting bins valued 0 or 1",
		Rules:       []string{". 1000/250 0|1"},
	},
	{
		Name:        "unit",
		Description: "abutting bins with unit value",
		Rules:       []string{". 1000/250 1"},
	},
}

// LookupRuleSet returns the named preset.
func LookupRuleSet(name string) (RuleSet, bool) {
	for _, rs := range Catalog {
		if rs.Name == name {
			return rs, true
		}
	}
	return RuleSet{}, false
}

// Resolve returns the active parsed rule set: the ad-hoc rule string when
// not empty, otherwise the named preset from the catalog.
func Resolve(ruleset, adhoc string) ([]Rule, error) {
	if adhoc != "" {
		r, err := ParseRule(adhoc)
		if err != nil {
			return nil, err
		}
		return []Rule{r}, nil
	}
	rs, ok := LookupRuleSet(ruleset)
	if !ok {
		return nil, fmt.Errorf("%w: no rule set named %q", ErrInvalidRule, ruleset)
	}
	return ParseRules(rs.Rules)
}

// ListCatalog writes each preset's name, rule strings and description,
// one preset per stanza.
func ListCatalog(w io.Writer) error {
	for _, rs := range Catalog {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", rs.Name, rs.Description); err != nil {
			return err
		}
		for _, r := range rs.Rules {
			if _, err := fmt.Fprintf(w, "\t%s\n", r); err != nil {
				return err
			}
		}
	}
	return nil
}
