// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

package aig

import "math"

// DefaultK is the K-feasibility bound used when the caller has no
// reason to override it (spec §3: "a compile-time or configuration
// constant, default 4").
const DefaultK = 4

// EnumerateCuts fills in Cuts, Arrival and AreaFlow for every node in
// a.TopoOrder, which must already be populated (call Topo first). It
// visits nodes strictly in topological order so that a node's fan-ins
// are fully annotated before the node itself is processed.
func EnumerateCuts(a *AIG, k int) {
	for _, idx := range a.TopoOrder {
		n := &a.Nodes[idx]

		cands0 := candidateCuts(a, n.In0)
		cands1 := candidateCuts(a, n.In1)

		var raw []Cut
		for _, c0 := range cands0 {
			for _, c1 := range cands1 {
				u := c0.union(c1)
				if u.Len() <= k {
					raw = append(raw, u)
				}
			}
		}

		cuts := filterDominated(raw)
		annotate(a, cuts, n.NumFanouts)

		n.Cuts = cuts
		n.Arrival = minArrival(cuts)
		n.AreaFlow = minAreaFlow(cuts)
	}
}

// candidateCuts returns the per-fan-in candidate list of §4.E step 1:
// the fan-in's own stored cuts (empty for a PI) plus its trivial,
// single-leaf cut.
func candidateCuts(a *AIG, f Edge) []Cut {
	var cands []Cut
	if !f.IsPI() {
		src := a.Nodes[f.Idx()].Cuts
		cands = make([]Cut, len(src), len(src)+1)
		copy(cands, src)
	}
	return append(cands, singletonCut(f.ClearInvert()))
}

// annotate computes each cut's arrival time and area flow (§4.E steps
// 4-5) against the already-annotated fan-in nodes. numFanouts is the
// owning node's own fan-out count, not any leaf's — see spec §9: at
// this stage in the pipeline it is always zero, so the max(1, ·) guard
// makes the divisor degenerate to 1.
func annotate(a *AIG, cuts []Cut, numFanouts uint32) {
	divisor := float64(maxUint32(1, numFanouts))
	for i := range cuts {
		c := &cuts[i]

		var maxLeafArrival uint32
		var areaSum float64
		for _, leaf := range c.Leaves() {
			if leaf.IsPI() {
				continue
			}
			ln := a.Nodes[leaf.Idx()]
			if ln.Arrival > maxLeafArrival {
				maxLeafArrival = ln.Arrival
			}
			areaSum += ln.AreaFlow
		}
		c.Arrival = 1 + maxLeafArrival
		c.AreaFlow = (1 + areaSum) / divisor
	}
}

func minArrival(cuts []Cut) uint32 {
	if len(cuts) == 0 {
		return 0
	}
	best := cuts[0].Arrival
	for _, c := range cuts[1:] {
		if c.Arrival < best {
			best = c.Arrival
		}
	}
	return best
}

func minAreaFlow(cuts []Cut) float64 {
	best := math.Inf(1)
	for _, c := range cuts {
		if c.AreaFlow < best {
			best = c.AreaFlow
		}
	}
	return best
}

func maxUint32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
