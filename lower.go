// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

package aig

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hexdigits/aigcuts/internal/netlist"
)

// Build lowers mod's gate library cells into AND+invert form and returns
// the resulting AIG. See spec §4.C for the per-cell-type translation
// table; this function implements it as a recursive walk driven by each
// output port, re-deriving a net's value on every reference rather than
// memoising results — duplicated, structurally identical sub-trees (e.g.
// two XORs sharing an operand) are an accepted consequence, not a bug.
func Build(mod *netlist.Module) (*AIG, error) {
	lc := &lowerCtx{
		a:           &AIG{},
		piByBit:     make(map[uint32]Edge),
		driverByBit: make(map[uint32]netlist.Cell),
	}

	for _, cell := range mod.Cells {
		y, ok := cell.Connections["Y"]
		if !ok {
			return nil, errors.Wrapf(ErrMalformedCell, "cell %q has no Y connection", cell.Name)
		}
		if prior, exists := lc.driverByBit[y]; exists {
			return nil, errors.Wrapf(ErrDoubleDriver, "bit %d driven by both %q and %q", y, prior.Name, cell.Name)
		}
		lc.driverByBit[y] = cell
	}

	for _, p := range mod.Ports {
		if p.Direction == netlist.DirInput {
			lc.piByBit[p.Bit] = lc.a.AddPI(p.Name)
		}
	}

	for _, p := range mod.Ports {
		if p.Direction != netlist.DirOutput {
			continue
		}
		e, err := lc.lower(p.Bit)
		if err != nil {
			return nil, errors.Wrapf(err, "output %q", p.Name)
		}
		lc.a.AddPO(p.Name, e)
	}

	return lc.a, nil
}

type lowerCtx struct {
	a           *AIG
	piByBit     map[uint32]Edge
	driverByBit map[uint32]netlist.Cell
}

// lower resolves bit to an Edge: a PI reference, or the result of
// recursively lowering the cell that drives it.
func (lc *lowerCtx) lower(bit uint32) (Edge, error) {
	if e, ok := lc.piByBit[bit]; ok {
		return e, nil
	}
	cell, ok := lc.driverByBit[bit]
	if !ok {
		return NilEdge, errors.Wrapf(ErrUndrivenNet, "bit %d", bit)
	}
	return lc.lowerCell(cell)
}

func (lc *lowerCtx) lowerCell(cell netlist.Cell) (Edge, error) {
	unary := func() (Edge, error) {
		abit, ok := cell.Connections["A"]
		if !ok {
			return NilEdge, errors.Wrapf(ErrMalformedCell, "cell %q has no A connection", cell.Name)
		}
		return lc.lower(abit)
	}
	binary := func() (a, b Edge, err error) {
		abit, ok := cell.Connections["A"]
		if !ok {
			return NilEdge, NilEdge, errors.Wrapf(ErrMalformedCell, "cell %q has no A connection", cell.Name)
		}
		bbit, ok := cell.Connections["B"]
		if !ok {
			return NilEdge, NilEdge, errors.Wrapf(ErrMalformedCell, "cell %q has no B connection", cell.Name)
		}
		if a, err = lc.lower(abit); err != nil {
			return NilEdge, NilEdge, err
		}
		if b, err = lc.lower(bbit); err != nil {
			return NilEdge, NilEdge, err
		}
		return a, b, nil
	}
	and := func(in0, in1 Edge, suffix string) Edge {
		return lc.a.AddAnd(in0, in1, fmt.Sprintf("%s$%s", cell.Name, suffix))
	}

	switch cell.Type {
	case "BUF":
		return unary()

	case "NOT":
		a, err := unary()
		if err != nil {
			return NilEdge, err
		}
		return a.Invert(), nil

	case "AND":
		a, b, err := binary()
		if err != nil {
			return NilEdge, err
		}
		return and(a, b, "y"), nil

	case "OR":
		a, b, err := binary()
		if err != nil {
			return NilEdge, err
		}
		return and(a.Invert(), b.Invert(), "y").Invert(), nil

	case "NAND":
		a, b, err := binary()
		if err != nil {
			return NilEdge, err
		}
		return and(a, b, "y").Invert(), nil

	case "NOR":
		a, b, err := binary()
		if err != nil {
			return NilEdge, err
		}
		return and(a.Invert(), b.Invert(), "y"), nil

	case "ANDNOT":
		a, b, err := binary()
		if err != nil {
			return NilEdge, err
		}
		return and(a, b.Invert(), "y"), nil

	case "ORNOT":
		a, b, err := binary()
		if err != nil {
			return NilEdge, err
		}
		return and(a.Invert(), b, "y").Invert(), nil

	case "XOR":
		a, b, err := binary()
		if err != nil {
			return NilEdge, err
		}
		left := and(a.Invert(), b, "xl")
		right := and(a, b.Invert(), "xr")
		return and(left.Invert(), right.Invert(), "y").Invert(), nil

	case "XNOR":
		a, b, err := binary()
		if err != nil {
			return NilEdge, err
		}
		left := and(a.Invert(), b, "xl")
		right := and(a, b.Invert(), "xr")
		return and(left.Invert(), right.Invert(), "y"), nil

	default:
		return NilEdge, errors.Wrapf(ErrUnsupportedCell, "cell %q type %q", cell.Name, cell.Type)
	}
}
