// Copyright (c) 2026 The aigcuts Authors
// SPDX-License-Identifier: MIT

// Command aigmap reads a gate-level JSON netlist, lowers it into an
// And-Inverter Graph, and runs K-feasible cut enumeration over it,
// writing nodes.dot and cuts.dot as it goes.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/hexdigits/aigcuts"
	"github.com/hexdigits/aigcuts/internal/netlist"
)

const (
	nodesDotPath = "nodes.dot"
	cutsDotPath  = "cuts.dot"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: aigmap <netlist.json>")
		os.Exit(1)
	}

	log := logrus.New()

	if err := run(os.Args[1], log); err != nil {
		log.WithError(err).Error("aigmap failed")
		os.Exit(1)
	}
}

func run(path string, log *logrus.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(ErrIO(err), "reading input")
	}

	mod, err := netlist.Load(data)
	if err != nil {
		return errors.Wrap(err, "decoding netlist")
	}

	a, err := aig.Build(mod)
	if err != nil {
		return errors.Wrap(err, "lowering netlist")
	}
	log.WithFields(logrus.Fields{
		"nodes": len(a.Nodes),
		"pis":   len(a.PIs),
		"pos":   len(a.POs),
	}).Info("AIG built")

	a.Topo()
	log.WithField("reachable", len(a.TopoOrder)).Info("topological order computed")

	if err := writeDOT(nodesDotPath, a, nil); err != nil {
		return errors.Wrap(err, "writing nodes.dot")
	}

	aig.EnumerateCuts(a, aig.DefaultK)
	log.WithField("k", aig.DefaultK).Info("cuts enumerated")

	if err := writeDOT(cutsDotPath, a, aig.CutLabel(a)); err != nil {
		return errors.Wrap(err, "writing cuts.dot")
	}

	return nil
}

func writeDOT(path string, a *aig.AIG, label func(uint32) string) error {
	f, err := os.Create(path)
	if err != nil {
		return ErrIO(err)
	}
	defer f.Close()

	if err := aig.DumpDOT(f, a, label); err != nil {
		return ErrIO(err)
	}
	return nil
}

// ErrIO wraps a filesystem error with the aig package's IO sentinel so
// it surfaces through errors.Is the same way the other pipeline error
// kinds do.
func ErrIO(cause error) error {
	return errors.Wrap(aig.ErrIO, cause.Error())
}
