// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

package aig

// Topo computes a.TopoOrder: a post-order DFS from every PO's target
// node, visiting both fan-ins before a node is pushed, so that every
// node appears strictly after both of its fan-in nodes. PIs are never
// pushed and polarity is ignored — the walk is over the underlying AND
// DAG. Nodes unreachable from any PO are excluded.
//
// NumFanouts is abused as the 0/1 visited mark for the duration of the
// walk (§4.D) and is guaranteed to read back as zero on every node, PI
// or not, once Topo returns.
func (a *AIG) Topo() {
	order := make([]uint32, 0, len(a.Nodes))
	inProgress := make([]bool, len(a.Nodes))

	var visit func(idx uint32)
	visit = func(idx uint32) {
		if a.Nodes[idx].NumFanouts != 0 {
			return
		}
		if inProgress[idx] {
			panic("aig: cycle detected during topological walk")
		}
		inProgress[idx] = true

		n := &a.Nodes[idx]
		if !n.In0.IsPI() {
			visit(n.In0.Idx())
		}
		if !n.In1.IsPI() {
			visit(n.In1.Idx())
		}

		inProgress[idx] = false
		n.NumFanouts = 1
		order = append(order, idx)
	}

	for _, po := range a.POs {
		if po.Edge.IsPI() {
			continue
		}
		visit(po.Edge.Idx())
	}

	for _, idx := range order {
		a.Nodes[idx].NumFanouts = 0
	}

	a.TopoOrder = order
}
