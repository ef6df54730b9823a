// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

package aig

import (
	"math"
	"sort"

	"github.com/hexdigits/aigcuts/internal/bitset"
)

// Cut is an unordered set of leaf Edges (inversion always cleared — a cut
// identifies nodes, not polarised signals) together with the two scalar
// annotations the dynamic-programming pass derives from it.
//
// Membership is stored as a [bitset.BitSet] keyed by the leaf's canonical
// (non-inverted) Edge value, so PI and node leaves share one key space
// without colliding (the is-PI flag is part of the key) and subset tests
// reduce to a single intersection-cardinality comparison instead of an
// O(K^2) slice scan.
type Cut struct {
	refs     bitset.BitSet
	Arrival  uint32
	AreaFlow float64
}

func leafKey(e Edge) uint { return uint(e.ClearInvert()) }

func keyToEdge(k uint) Edge { return Edge(k) }

// singletonCut builds the trivial one-leaf cut of a signal: {clear_invert(e)}.
func singletonCut(e Edge) Cut {
	c := Cut{AreaFlow: math.Inf(1)}
	c.refs.Set(leafKey(e))
	return c
}

// Len returns the cut's cardinality.
func (c Cut) Len() int { return c.refs.Count() }

// Leaves returns the cut's leaves in ascending key order (PIs interleaved
// with nodes by their packed Edge value — stable and deterministic, not
// meaningful beyond that).
func (c Cut) Leaves() []Edge {
	out := make([]Edge, 0, c.Len())
	for k := range c.refs.All() {
		out = append(out, keyToEdge(k))
	}
	return out
}

// union returns a new cut whose leaf set is the union of a and b's. The
// two scalar annotations are left unscored (Arrival 0, AreaFlow +Inf) —
// callers compute them fresh once the leaf set is final.
func (a Cut) union(b Cut) Cut {
	refs := a.refs.Clone()
	refs.InPlaceUnion(b.refs)
	return Cut{refs: refs, AreaFlow: math.Inf(1)}
}

// subsetOf reports whether a's leaf set is a (non-strict) subset of b's.
func (a Cut) subsetOf(b Cut) bool {
	if a.Len() > b.Len() {
		return false
	}
	return a.refs.IntersectionCardinality(b.refs) == uint(a.Len())
}

// equalRefs reports whether a and b have identical leaf sets.
func (a Cut) equalRefs(b Cut) bool {
	return a.Len() == b.Len() && a.subsetOf(b)
}

// sortedKeyString returns a stable key for deduplication: the leaves in
// ascending order. Used only to dedupe equal-leaf-set cuts before the
// dominance pass (§9 — ties would otherwise mutually annihilate under a
// non-strict subset test).
func (c Cut) sortedKeyString() string {
	ls := c.Leaves()
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
	b := make([]byte, 0, len(ls)*9)
	for _, e := range ls {
		b = append(b, byte(e), byte(e>>8), byte(e>>16), byte(e>>24),
			byte(e>>32), byte(e>>40), byte(e>>48), byte(e>>56), '|')
	}
	return string(b)
}

// filterDominated keeps only the minimal cuts under subset order: cut ci
// is dropped when some other cut cj (after deduplicating equal leaf sets)
// is a strict subset of ci. See spec §4.E step 3 and §9.
func filterDominated(cuts []Cut) []Cut {
	deduped := dedupeByLeafSet(cuts)

	keep := make([]Cut, 0, len(deduped))
	for i, ci := range deduped {
		dominated := false
		for j, cj := range deduped {
			if i == j {
				continue
			}
			if cj.Len() < ci.Len() && cj.subsetOf(ci) {
				dominated = true
				break
			}
		}
		if !dominated {
			keep = append(keep, ci)
		}
	}
	return keep
}

// dedupeByLeafSet collapses cuts with identical leaf sets to one
// representative, keeping the first occurrence.
func dedupeByLeafSet(cuts []Cut) []Cut {
	seen := make(map[string]bool, len(cuts))
	out := make([]Cut, 0, len(cuts))
	for _, c := range cuts {
		key := c.sortedKeyString()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
