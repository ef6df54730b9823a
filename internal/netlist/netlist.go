// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

// Package netlist decodes the subset of the Yosys-style gate-level JSON
// netlist format this tool consumes: a single top module's ports, cells
// and netnames, each carrying exactly one bit. It is a pure boundary
// adapter — nothing here performs AND+invert lowering.
package netlist

import (
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Sentinel error kinds surfaced while decoding, independent of any
// particular cell-lowering semantics (those live in the aig package).
var (
	ErrInputMalformed       = errors.New("netlist: malformed JSON document")
	ErrTopModuleAmbiguous   = errors.New("netlist: more than one module claims top")
	ErrTopModuleMissing     = errors.New("netlist: no module claims top")
	ErrWidthUnsupported     = errors.New("netlist: signal width other than 1 is unsupported")
	ErrConstantNotSupported = errors.New("netlist: constant bit values are unsupported")
	ErrInoutNotSupported    = errors.New("netlist: inout ports are unsupported")
)

// Direction is a port's signal direction.
type Direction string

const (
	DirInput  Direction = "input"
	DirOutput Direction = "output"
	DirInout  Direction = "inout"
)

// Port is a single-bit module port.
type Port struct {
	Name      string
	Direction Direction
	Bit       uint32
}

// Cell is a gate instance: a type and its single-bit named connections
// (e.g. "A", "B", "Y").
type Cell struct {
	Name        string
	Type        string
	Connections map[string]uint32
}

// NetName is a diagnostic name bound to a single bit.
type NetName struct {
	Name string
	Bit  uint32
}

// Module is the fully decoded, single-bit-validated top module.
type Module struct {
	Name     string
	Ports    []Port
	Cells    []Cell
	Netnames []NetName
}

// rawDoc mirrors the on-disk JSON shape before bit validation.
type rawDoc struct {
	Modules map[string]rawModule `json:"modules"`
}

type rawModule struct {
	Attributes map[string]string     `json:"attributes"`
	Ports      map[string]rawPort    `json:"ports"`
	Cells      map[string]rawCell    `json:"cells"`
	Netnames   map[string]rawNetname `json:"netnames"`
}

type rawPort struct {
	Direction string                `json:"direction"`
	Bits      []jsoniter.RawMessage `json:"bits"`
}

type rawCell struct {
	Type        string                           `json:"type"`
	Connections map[string][]jsoniter.RawMessage `json:"connections"`
}

type rawNetname struct {
	Bits []jsoniter.RawMessage `json:"bits"`
}

// Load decodes data and returns the single module whose attributes declare
// it top. Exactly one module must do so.
func Load(data []byte) (*Module, error) {
	var doc rawDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(ErrInputMalformed, err.Error())
	}

	var topName string
	var top rawModule
	found := 0
	// Iterate in sorted key order so ambiguous-top detection is deterministic.
	names := make([]string, 0, len(doc.Modules))
	for name := range doc.Modules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		mod := doc.Modules[name]
		if isTop(mod.Attributes["top"]) {
			found++
			if found > 1 {
				return nil, errors.Wrapf(ErrTopModuleAmbiguous, "modules %q and %q", topName, name)
			}
			topName, top = name, mod
		}
	}
	if found == 0 {
		return nil, ErrTopModuleMissing
	}

	return decodeModule(topName, top)
}

// isTop interprets a `top` attribute value the way the Yosys JSON backend
// emits it: a string of binary digits. Any other numeric string is also
// accepted. The module is top iff the value is numeric and nonzero.
func isTop(v string) bool {
	if v == "" {
		return false
	}
	if isBinaryDigits(v) {
		n, err := strconv.ParseUint(v, 2, 64)
		return err == nil && n != 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	return err == nil && n != 0
}

func isBinaryDigits(v string) bool {
	for _, r := range v {
		if r != '0' && r != '1' {
			return false
		}
	}
	return true
}

func decodeModule(name string, raw rawModule) (*Module, error) {
	mod := &Module{Name: name}

	portNames := sortedKeys(raw.Ports)
	for _, pname := range portNames {
		rp := raw.Ports[pname]
		bit, err := singleBit(rp.Bits)
		if err != nil {
			return nil, errors.Wrapf(err, "port %q", pname)
		}
		dir := Direction(rp.Direction)
		if dir == DirInout {
			return nil, errors.Wrapf(ErrInoutNotSupported, "port %q", pname)
		}
		mod.Ports = append(mod.Ports, Port{Name: pname, Direction: dir, Bit: bit})
	}

	cellNames := sortedKeys(raw.Cells)
	for _, cname := range cellNames {
		rc := raw.Cells[cname]
		conns := make(map[string]uint32, len(rc.Connections))
		connNames := sortedKeys(rc.Connections)
		for _, pin := range connNames {
			bit, err := singleBit(rc.Connections[pin])
			if err != nil {
				return nil, errors.Wrapf(err, "cell %q pin %q", cname, pin)
			}
			conns[pin] = bit
		}
		mod.Cells = append(mod.Cells, Cell{Name: cname, Type: rc.Type, Connections: conns})
	}

	netNames := sortedKeys(raw.Netnames)
	for _, nname := range netNames {
		rn := raw.Netnames[nname]
		bit, err := singleBit(rn.Bits)
		if err != nil {
			return nil, errors.Wrapf(err, "netname %q", nname)
		}
		mod.Netnames = append(mod.Netnames, NetName{Name: nname, Bit: bit})
	}

	return mod, nil
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// singleBit validates and decodes a one-element bits array. A bit id is a
// raw JSON number; the constant markers "0", "1", "x", "z" (JSON strings)
// are rejected.
func singleBit(bits []jsoniter.RawMessage) (uint32, error) {
	if len(bits) != 1 {
		return 0, ErrWidthUnsupported
	}
	raw := strings.TrimSpace(string(bits[0]))

	if strings.HasPrefix(raw, `"`) {
		return 0, ErrConstantNotSupported
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.Wrap(ErrConstantNotSupported, raw)
	}
	return uint32(n), nil
}
