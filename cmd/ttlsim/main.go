// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command ttlsim evaluates TTL chip models.
//
// List the available chips:
//
//	ttlsim -list
//
// Evaluate a chip for a set of pin values. VCC and GND are bound
// automatically:
//
//	ttlsim -chip 7447 -set "A=H, B=L, C=H, D=L, LT=H, RBI=H, BI/RBO=H"
//
// Run a test vector suite:
//
//	ttlsim -vectors suite.yaml
//
// The -v flag logs every gate evaluation.
//
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/db47h/ttlsim"
	"github.com/db47h/ttlsim/ttl"
	"github.com/db47h/ttlsim/vector"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ttlsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		list    = fs.Bool("list", false, "list available chips")
		chip    = fs.String("chip", "", "chip part number")
		set     = fs.String("set", "", "comma separated pin values, e.g. \"A=H, B=L\"")
		vectors = fs.String("vectors", "", "test vector suite file (YAML)")
		verbose = fs.Bool("v", false, "trace gate evaluations")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := hclog.Info
	if *verbose {
		level = hclog.Trace
	}
	log := hclog.New(&hclog.LoggerOptions{
		Name:   "ttlsim",
		Level:  level,
		Output: stderr,
	})
	opts := []ttlsim.Option{ttlsim.WithLogger(log)}
	if *verbose {
		opts = append(opts, ttlsim.WithTracer(ttlsim.HCLogTracer(log)))
	}

	var err error
	switch {
	case *list:
		for _, n := range ttl.Names() {
			fmt.Fprintln(stdout, n)
		}
	case *vectors != "":
		err = runVectors(stdout, log, *vectors, opts)
	case *chip != "":
		err = evalChip(stdout, *chip, *set, opts)
	default:
		fs.Usage()
		return 2
	}
	if err != nil {
		log.Error("failed", "error", err)
		return 1
	}
	return 0
}

func evalChip(w io.Writer, chip, set string, opts []ttlsim.Option) error {
	n, err := ttl.Lookup(chip)
	if err != nil {
		return err
	}
	in, err := ttlsim.ParseBindings(set)
	if err != nil {
		return err
	}
	for k, v := range ttl.PowerPins() {
		if _, ok := in[k]; !ok {
			in[k] = v
		}
	}
	out, err := n.Eval(in, opts...)
	if err != nil {
		return err
	}
	for _, p := range n.PinsByRole(ttlsim.Output) {
		fmt.Fprintf(w, "%-6s %2d %v\n", p.Name, p.Number, out[p.Name])
	}
	return nil
}

func runVectors(w io.Writer, log hclog.Logger, file string, opts []ttlsim.Option) error {
	s, err := vector.LoadFile(file)
	if err != nil {
		return err
	}
	n, err := ttl.Lookup(s.Chip)
	if err != nil {
		return errors.Wrap(err, file)
	}
	rs, err := s.Run(n, opts...)
	failed := 0
	for _, r := range rs {
		status := "PASS"
		if !r.Passed() {
			status = "FAIL"
			failed++
			log.Debug("vector failed", "vector", r.Vector, "error", r.Err)
		}
		fmt.Fprintf(w, "%s %s\n", status, r.Vector)
	}
	fmt.Fprintf(w, "%d/%d vectors passed\n", len(rs)-failed, len(rs))
	return err
}
