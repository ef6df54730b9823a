// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

package aig

import "math"

// Node is a single two-input AND gate in the AIG. Polarity lives on the
// fan-in Edges, never on the node itself; a node's own output is always
// the non-inverted signal that its index denotes.
type Node struct {
	// Name is diagnostic only — it has no bearing on AIG semantics.
	Name string

	// In0, In1 are the fan-in edges. Both must resolve, at the time this
	// node is appended, to either a PI or an already-created node: the
	// store is append-only and acyclic by construction.
	In0, In1 Edge

	// NumFanouts counts consumers of this node's output. It doubles as the
	// 0/1 DFS mark during topological ordering (§4.D) and must read back
	// as zero both before and after that pass.
	NumFanouts uint32

	// Cuts holds the K-feasible, dominance-filtered cuts computed for this
	// node by the cut enumerator. Empty until that pass runs.
	Cuts []Cut

	// Arrival is the minimum, over Cuts, of each cut's arrival time.
	Arrival uint32

	// AreaFlow is the minimum, over Cuts, of each cut's area flow. +Inf
	// until at least one cut has been scored.
	AreaFlow float64
}

func newNode(in0, in1 Edge, name string) Node {
	return Node{
		Name:     name,
		In0:      in0,
		In1:      in1,
		AreaFlow: math.Inf(1),
	}
}
