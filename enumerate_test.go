// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

package aig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildAOI builds y = a.b + c.d, the four-input AOI seed scenario from §8.
func buildAOI() *AIG {
	a := &AIG{}
	pa := a.AddPI("a")
	pb := a.AddPI("b")
	pc := a.AddPI("c")
	pd := a.AddPI("d")

	ab := a.AddAnd(pa, pb, "ab")
	cd := a.AddAnd(pc, pd, "cd")
	y := a.AddAnd(ab.Invert(), cd.Invert(), "nor").Invert()

	a.AddPO("y", y)
	a.Topo()
	return a
}

func TestEnumerateCutsEveryCutWithinK(t *testing.T) {
	a := buildAOI()
	EnumerateCuts(a, 4)

	for i, n := range a.Nodes {
		for _, c := range n.Cuts {
			assert.LessOrEqualf(t, c.Len(), 4, "node %d has an oversized cut", i)
		}
	}
}

func TestEnumerateCutsTopNodeHasWholeInputCut(t *testing.T) {
	a := buildAOI()
	EnumerateCuts(a, 4)

	top := a.Nodes[len(a.Nodes)-1]
	require.NotEmpty(t, top.Cuts)

	found := false
	for _, c := range top.Cuts {
		if c.Len() == 4 {
			found = true
		}
	}
	assert.True(t, found, "expected the top node to retain the full 4-leaf input cut at K=4")
}

// TestCandidateCutsIncludesTrivialCutForBothFaninFlavours checks §4.E step
// 1 directly: a fan-in's candidate list always includes its own trivial,
// single-leaf cut, whether the fan-in is a PI or a previously built node —
// not that a node ever stores a self-referencing cut among its own Cuts,
// which the K-feasibility/acyclic-leaf invariant (spec §3) forbids.
func TestCandidateCutsIncludesTrivialCutForBothFaninFlavours(t *testing.T) {
	a := buildAOI()
	EnumerateCuts(a, 4)

	nodeFanin := MakeEdge(0, false, false) // the "ab" node, non-inverted
	cands := candidateCuts(a, nodeFanin)
	trivialNode := singletonCut(nodeFanin.ClearInvert())
	hasNodeTrivial := false
	for _, c := range cands {
		if c.equalRefs(trivialNode) {
			hasNodeTrivial = true
		}
	}
	assert.True(t, hasNodeTrivial, "candidate cuts for a node fan-in must include its own trivial cut")

	piFanin := MakeEdge(0, false, true) // PI "a"
	piCands := candidateCuts(a, piFanin)
	require.Len(t, piCands, 1, "a PI fan-in has no stored cuts of its own, only its trivial cut")
	assert.True(t, piCands[0].equalRefs(singletonCut(piFanin.ClearInvert())))
}

func TestEnumerateCutsDeterministic(t *testing.T) {
	a1 := buildAOI()
	EnumerateCuts(a1, 4)
	a2 := buildAOI()
	EnumerateCuts(a2, 4)

	require.Equal(t, len(a1.Nodes), len(a2.Nodes))
	for i := range a1.Nodes {
		assert.Equal(t, len(a1.Nodes[i].Cuts), len(a2.Nodes[i].Cuts))
		assert.Equal(t, a1.Nodes[i].Arrival, a2.Nodes[i].Arrival)
	}
}

// TestEnumerateCutsArrivalIsMinimumOverCuts: the cut {ab, cd} through both
// fan-in nodes arrives at 1 + max(1, 1) = 2, but the whole-input cut
// {a, b, c, d} has only PI leaves and arrives at 1; the node keeps the
// minimum over its cuts.
func TestEnumerateCutsArrivalIsMinimumOverCuts(t *testing.T) {
	a := buildAOI()
	EnumerateCuts(a, 4)

	abNode := a.Nodes[0]
	cdNode := a.Nodes[1]
	norNode := a.Nodes[2]

	throughFanins := 1 + maxUint32(abNode.Arrival, cdNode.Arrival)
	assert.Equal(t, uint32(2), throughFanins)
	assert.Equal(t, uint32(1), norNode.Arrival)
}

// TestEnumerateCutsReconvergence is the §8 seed scenario (a.b).(a+b) at
// K=3: it must produce at least two non-trivial cuts for the top node.
func TestEnumerateCutsReconvergence(t *testing.T) {
	a := &AIG{}
	pa := a.AddPI("a")
	pb := a.AddPI("b")

	ab := a.AddAnd(pa, pb, "ab")
	orIn := a.AddAnd(pa.Invert(), pb.Invert(), "nor_in")
	top := a.AddAnd(ab, orIn.Invert(), "top")

	a.AddPO("y", top)
	a.Topo()
	EnumerateCuts(a, 3)

	topNode := a.Nodes[top.Idx()]
	nonTrivial := 0
	for _, c := range topNode.Cuts {
		if c.Len() > 1 {
			nonTrivial++
		}
	}
	assert.GreaterOrEqual(t, nonTrivial, 2)
}
