// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

// Package aig builds an And-Inverter Graph from a gate-level netlist and
// performs K-feasible cut enumeration with arrival-time and area-flow
// dynamic programming, as the front half of a LUT technology-mapping flow.
//
// Construction (Build) lowers a [netlist.Module] into AND+invert form,
// [AIG.Topo] computes a post-order schedule (fan-ins before fan-outs) of
// the nodes reachable from the primary outputs, and [EnumerateCuts] fills in each node's K-feasible
// cut set together with its per-node arrival time and area flow.
package aig
