// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package links

import (
	"sort"

	"github.com/biogo/store/interval"
)

// span is an interval tree entry for a kept link's reference interval.
type span struct {
	start, end int
	id         uintptr
}

func (s span) Overlap(b interval.IntRange) bool {
	return s.end > b.Start && s.start < b.End
}
func (s span) ID() uintptr              { return s.id }
func (s span) Range() interval.IntRange { return interval.IntRange{Start: s.start, End: s.end} }

// FilterContained drops links whose reference interval is wholly contained
// within the reference interval of a longer kept link on the same
// chromosome. Longer links are considered first, so a containment chain
// keeps only its outermost member. The returned links are in Sort order.
func FilterContained(ls []Link) []Link {
	ordered := make([]Link, len(ls))
	copy(ordered, ls)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].RefSpan() > ordered[j].RefSpan() })

	trees := make(map[string]*interval.IntTree)
	var kept []Link
	var id uintptr
	for _, l := range ordered {
		t, ok := trees[l.Ref]
		if !ok {
			t = &interval.IntTree{}
			trees[l.Ref] = t
		}
		q := span{start: l.RefStart, end: l.RefEnd}
		contained := false
		t.DoMatching(func(e interval.IntInterface) (done bool) {
			r := e.Range()
			if r.Start <= l.RefStart && l.RefEnd <= r.End {
				contained = true
			}
			return contained
		}, q)
		if contained {
			continue
		}
		id++
		q.id = id
		if err := t.Insert(q, false); err != nil {
			// Degenerate interval; keep the link but do not index it.
			kept = append(kept, l)
			continue
		}
		kept = append(kept, l)
	}
	Sort(kept)
	return kept
}
