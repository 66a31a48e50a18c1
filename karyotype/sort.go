// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package karyotype

import (
	"regexp"
	"sort"
	"strconv"
)

var trailingInt = regexp.MustCompile(`(\d+)$`)

// NameLess orders chromosome names numerically by any trailing integer in
// the name. Names carrying a number sort before names without one;
// unnumbered names order lexically among themselves.
func NameLess(a, b string) bool {
	am := trailingInt.FindString(a)
	bm := trailingInt.FindString(b)
	switch {
	case am == "" && bm == "":
		return a < b
	case am == "":
		return false
	case bm == "":
		return true
	}
	an, _ := strconv.Atoi(am)
	bn, _ := strconv.Atoi(bm)
	if an != bn {
		return an < bn
	}
	return a < b
}

// SortNames sorts chromosome names in place using NameLess.
func SortNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool { return NameLess(names[i], names[j]) })
}

// Sort orders the karyotype's chromosomes using NameLess on their IDs.
func (k *Karyotype) Sort() {
	sort.SliceStable(k.chr, func(i, j int) bool { return NameLess(k.chr[i].ID, k.chr[j].ID) })
	for i, c := range k.chr {
		k.index[c.ID] = i
	}
}
