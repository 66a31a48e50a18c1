// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package links

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"circompare/karyotype"
)

// Bundle is a merged group of adjacent links between one reference
// chromosome and one query sequence.
type Bundle struct {
	Link
	// Links is the number of member links merged into the bundle.
	Links int
}

// gap returns the distance between two intervals, zero when they overlap.
func gap(aStart, aEnd, bStart, bEnd int) int {
	switch {
	case aEnd < bStart:
		return bStart - aEnd
	case bEnd < aStart:
		return aStart - bEnd
	}
	return 0
}

// adjacent reports whether two links sit within maxGap on both their
// reference and query intervals.
func adjacent(a, b Link, maxGap int) bool {
	return gap(a.RefStart, a.RefEnd, b.RefStart, b.RefEnd) <= maxGap &&
		gap(a.QStart, a.QEnd, b.QStart, b.QEnd) <= maxGap
}

// BundleLinks merges links between the same reference/query pair whose
// reference and query intervals both lie within maxGap of another member,
// transitively. Each connected component of the adjacency graph becomes
// one bundle spanning the extremes of its members. Bundles are returned
// in Sort order of their merged links.
func BundleLinks(ls []Link, maxGap int) []Bundle {
	type pair struct{ ref, query string }
	groups := make(map[pair][]Link)
	var order []pair
	for _, l := range ls {
		p := pair{l.Ref, l.Query}
		if _, ok := groups[p]; !ok {
			order = append(order, p)
		}
		groups[p] = append(groups[p], l)
	}

	var bundles []Bundle
	for _, p := range order {
		member := groups[p]
		g := simple.NewUndirectedGraph()
		for i := range member {
			g.AddNode(simple.Node(i))
		}
		for i := 0; i < len(member); i++ {
			for j := i + 1; j < len(member); j++ {
				if adjacent(member[i], member[j], maxGap) {
					g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
				}
			}
		}
		for _, cc := range topo.ConnectedComponents(g) {
			b := Bundle{Link: member[int(cc[0].ID())], Links: len(cc)}
			for _, n := range cc[1:] {
				m := member[int(n.ID())]
				if m.RefStart < b.RefStart {
					b.RefStart = m.RefStart
				}
				if m.RefEnd > b.RefEnd {
					b.RefEnd = m.RefEnd
				}
				if m.QStart < b.QStart {
					b.QStart = m.QStart
				}
				if m.QEnd > b.QEnd {
					b.QEnd = m.QEnd
				}
			}
			b.Options = ""
			bundles = append(bundles, b)
		}
	}

	sort.SliceStable(bundles, func(i, j int) bool {
		a, b := bundles[i].Link, bundles[j].Link
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
	return bundles
}

// WriteBundles writes bundles one per line, tagging each with an
// nlinks=N option recording its membership count.
func WriteBundles(w io.Writer, bs []Bundle) error {
	for _, b := range bs {
		l := b.Link
		l.Options = fmt.Sprintf("nlinks=%d", b.Links)
		if _, err := fmt.Fprintln(w, l.String()); err != nil {
			return err
		}
	}
	return nil
}
