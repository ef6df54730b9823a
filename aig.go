// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

package aig

// PO is a single primary output: a diagnostic name and the edge it drives.
type PO struct {
	Name string
	Edge Edge
}

// AIG is the whole And-Inverter Graph: an append-only node list, an
// ordered PI name table, an ordered PO list, and — once computed — a
// topological schedule over the nodes reachable from some PO.
//
// The zero value is a valid, empty AIG ready for AddPI/AddAnd.
type AIG struct {
	Nodes     []Node
	PIs       []string
	POs       []PO
	TopoOrder []uint32 // set by Topo; node indices, fan-ins before fan-outs
}

// AddPI registers a new primary input and returns a non-inverted Edge to it.
func (a *AIG) AddPI(name string) Edge {
	idx := uint32(len(a.PIs))
	a.PIs = append(a.PIs, name)
	return MakeEdge(idx, false, true)
}

// AddAnd appends a new AND node with the given fan-ins and returns a
// non-inverted Edge to it. Both fan-ins must already resolve to a PI or a
// previously appended node — violating this is a programming error, not a
// recoverable input error, since it can only arise from a bug in the
// lowering pass that calls AddAnd.
func (a *AIG) AddAnd(in0, in1 Edge, name string) Edge {
	idx := uint32(len(a.Nodes))
	assertResolvable(a, in0, idx)
	assertResolvable(a, in1, idx)
	a.Nodes = append(a.Nodes, newNode(in0, in1, name))
	return MakeEdge(idx, false, false)
}

// AddPO registers a primary output driven by e.
func (a *AIG) AddPO(name string, e Edge) {
	a.POs = append(a.POs, PO{Name: name, Edge: e})
}

func assertResolvable(a *AIG, e Edge, newIdx uint32) {
	if e.IsPI() {
		if e.PIIdx() >= uint32(len(a.PIs)) {
			panic("aig: fan-in references an unregistered PI")
		}
		return
	}
	if e.Idx() >= newIdx {
		panic("aig: fan-in references a node that does not yet exist")
	}
}
