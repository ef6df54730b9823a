// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

package aig

import (
	"fmt"
	"io"
	"strings"
)

// errWriter accumulates the first write error across a sequence of
// Fprintf calls so the caller only has to check it once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// DumpDOT writes a is a directed graph to w: PIs are triangles, POs are
// inverted triangles, AND nodes are rectangles, and inverting edges are
// coloured blue. label, if non-nil, overrides the default "n<idx>" body
// of an AND node's box. Nothing about this function is load-bearing for
// correctness — it exists purely as a development aid.
func DumpDOT(w io.Writer, a *AIG, label func(idx uint32) string) error {
	ew := &errWriter{w: w}

	ew.printf("digraph aig {\n")
	ew.printf("  rankdir=BT;\n")

	for i, name := range a.PIs {
		ew.printf("  pi%d [shape=triangle,label=%q];\n", i, name)
	}

	for idx := range a.Nodes {
		lbl := fmt.Sprintf("n%d", idx)
		if label != nil {
			lbl = label(uint32(idx))
		}
		ew.printf("  n%d [shape=box,label=%q];\n", idx, lbl)
	}

	for idx, n := range a.Nodes {
		writeFanin(ew, n.In0, uint32(idx))
		writeFanin(ew, n.In1, uint32(idx))
	}

	for i, po := range a.POs {
		ew.printf("  po%d [shape=invtriangle,label=%q];\n", i, po.Name)
		writePO(ew, po.Edge, i)
	}

	ew.printf("}\n")
	return ew.err
}

func writeFanin(ew *errWriter, src Edge, dstIdx uint32) {
	ew.printf("  %s -> n%d%s;\n", edgeNodeName(src), dstIdx, edgeStyle(src))
}

func writePO(ew *errWriter, src Edge, poIdx int) {
	ew.printf("  %s -> po%d%s;\n", edgeNodeName(src), poIdx, edgeStyle(src))
}

func edgeNodeName(e Edge) string {
	if e.IsPI() {
		return fmt.Sprintf("pi%d", e.PIIdx())
	}
	return fmt.Sprintf("n%d", e.Idx())
}

func edgeStyle(e Edge) string {
	if e.IsInvert() {
		return " [color=blue]"
	}
	return ""
}

// CutLabel returns a per-node DOT label callback rendering a node's cut
// set and its (arrival, area_flow) scalars, for use against an AIG that
// has already been through EnumerateCuts.
func CutLabel(a *AIG) func(idx uint32) string {
	return func(idx uint32) string {
		n := a.Nodes[idx]
		var cuts []string
		for _, c := range n.Cuts {
			leaves := make([]string, 0, c.Len())
			for _, l := range c.Leaves() {
				leaves = append(leaves, l.String())
			}
			cuts = append(cuts, "{"+strings.Join(leaves, ",")+"}")
		}
		return fmt.Sprintf("n%d\\n%s\\n(%d, %.3f)", idx, strings.Join(cuts, " "), n.Arrival, n.AreaFlow)
	}
}
