// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

package aig

import "fmt"

// Edge is a compact, polarity-encoded reference to an AIG signal: either a
// primary input or a previously created AND node, optionally inverted.
//
// Layout, low bit first:
//
//	bit 0: inversion flag
//	bit 1: is-PI flag
//	bits 2..: slot index (into the PI table when bit 1 is set, otherwise
//	          into the node store)
//
// The layout leaves 62 bits of index room; the index enters (MakeEdge)
// and leaves (Idx, PIIdx) as a uint32, so 2^32 slots are addressable.
// Two edges compare equal with == iff all three fields match, so polarity
// is part of identity.
type Edge uint64

const (
	edgeInvertBit = 1 << 0
	edgePIBit     = 1 << 1
	edgeIdxShift  = 2
)

// NilEdge is the zero value. It is bit-for-bit equal to a non-inverted
// reference to node 0, so it is not distinguishable from a real edge; this
// package returns it only alongside a non-nil error.
const NilEdge Edge = 0

// MakeEdge builds an Edge pointing at slot idx, a PI if isPI, inverted if
// invert.
func MakeEdge(idx uint32, invert, isPI bool) Edge {
	e := Edge(uint64(idx) << edgeIdxShift)
	if invert {
		e |= edgeInvertBit
	}
	if isPI {
		e |= edgePIBit
	}
	return e
}

// IsPI reports whether e refers to a primary input.
func (e Edge) IsPI() bool { return e&edgePIBit != 0 }

// IsInvert reports whether e is inverted.
func (e Edge) IsInvert() bool { return e&edgeInvertBit != 0 }

// Invert returns e with its polarity flipped.
func (e Edge) Invert() Edge { return e ^ edgeInvertBit }

// ClearInvert returns a non-inverted alias of e.
func (e Edge) ClearInvert() Edge { return e &^ edgeInvertBit }

// Idx returns the node-store slot e refers to. Panics if e is a PI edge.
func (e Edge) Idx() uint32 {
	if e.IsPI() {
		panic("aig: Idx() called on a PI edge")
	}
	return uint32(e >> edgeIdxShift)
}

// PIIdx returns the PI-table slot e refers to. Panics if e is not a PI edge.
func (e Edge) PIIdx() uint32 {
	if !e.IsPI() {
		panic("aig: PIIdx() called on a non-PI edge")
	}
	return uint32(e >> edgeIdxShift)
}

// String renders e for diagnostics, e.g. "pi3", "!n12".
func (e Edge) String() string {
	bang := ""
	if e.IsInvert() {
		bang = "!"
	}
	if e.IsPI() {
		return fmt.Sprintf("%spi%d", bang, e.PIIdx())
	}
	return fmt.Sprintf("%sn%d", bang, e.Idx())
}
