// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

package aig

import (
	"errors"

	"github.com/hexdigits/aigcuts/internal/netlist"
)

// Sentinel error kinds (§7). Every error this package returns that
// stems from malformed input, as opposed to a programming-invariant
// violation, wraps one of these with github.com/pkg/errors so callers
// can test with errors.Is while the top-level CLI still gets a
// human-readable chain to print once.
//
// The decode-time kinds are owned by internal/netlist, the boundary
// adapter that can actually detect them, and re-exported here so callers
// of this package never need to import an internal path to match errors.
var (
	ErrInputMalformed       = netlist.ErrInputMalformed
	ErrTopModuleAmbiguous   = netlist.ErrTopModuleAmbiguous
	ErrTopModuleMissing     = netlist.ErrTopModuleMissing
	ErrWidthUnsupported     = netlist.ErrWidthUnsupported
	ErrConstantNotSupported = netlist.ErrConstantNotSupported
	ErrInoutNotSupported    = netlist.ErrInoutNotSupported

	ErrUnsupportedCell = errors.New("aig: unsupported cell type")
	ErrMalformedCell   = errors.New("aig: cell is missing a required connection")
	ErrDoubleDriver    = errors.New("aig: net has more than one driver")
	ErrUndrivenNet     = errors.New("aig: net referenced by an output has no driver")
	ErrIO              = errors.New("aig: I/O error")
)
