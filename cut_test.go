// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

package aig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutUnionAndLen(t *testing.T) {
	pi0 := MakeEdge(0, false, true)
	pi1 := MakeEdge(1, false, true)

	a := singletonCut(pi0)
	b := singletonCut(pi1)
	u := a.union(b)

	require.Equal(t, 2, u.Len())
	assert.ElementsMatch(t, []Edge{pi0, pi1}, u.Leaves())
}

func TestSingletonCutDropsInversionOnLeaves(t *testing.T) {
	pi0 := MakeEdge(0, true, true) // inverted PI reference
	u := singletonCut(pi0)
	assert.False(t, u.Leaves()[0].IsInvert(), "cut leaves must have inversion cleared")
}

func TestCutSubsetOf(t *testing.T) {
	pi0, pi1, pi2 := MakeEdge(0, false, true), MakeEdge(1, false, true), MakeEdge(2, false, true)

	small := singletonCut(pi0).union(singletonCut(pi1))
	big := small.union(singletonCut(pi2))

	assert.True(t, small.subsetOf(big))
	assert.False(t, big.subsetOf(small))
	assert.True(t, small.subsetOf(small))
}

// TestDominanceStrictSubsetTiesSurvive pins down the §9 open question:
// two cuts with equal leaf sets must not mutually annihilate under the
// dominance filter, and a non-strict subset test applied without
// deduplication would do exactly that.
func TestDominanceStrictSubsetTiesSurvive(t *testing.T) {
	pi0, pi1 := MakeEdge(0, false, true), MakeEdge(1, false, true)

	c1 := singletonCut(pi0).union(singletonCut(pi1))
	c2 := singletonCut(pi1).union(singletonCut(pi0)) // same leaf set, built in the other order

	kept := filterDominated([]Cut{c1, c2})
	require.Len(t, kept, 1, "equal-leaf-set cuts must collapse to exactly one representative, not zero")
}

func TestDominanceRemovesStrictSupersets(t *testing.T) {
	pi0, pi1, pi2 := MakeEdge(0, false, true), MakeEdge(1, false, true), MakeEdge(2, false, true)

	small := singletonCut(pi0).union(singletonCut(pi1))
	big := small.union(singletonCut(pi2))

	kept := filterDominated([]Cut{small, big})
	require.Len(t, kept, 1)
	assert.Equal(t, 2, kept[0].Len())
}

func TestDominanceKeepsIncomparableCuts(t *testing.T) {
	pi0, pi1, pi2 := MakeEdge(0, false, true), MakeEdge(1, false, true), MakeEdge(2, false, true)

	cutA := singletonCut(pi0).union(singletonCut(pi1))
	cutB := singletonCut(pi1).union(singletonCut(pi2))

	kept := filterDominated([]Cut{cutA, cutB})
	assert.Len(t, kept, 2)
}
