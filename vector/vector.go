// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vector loads and runs test vector suites for chips.
//
// A suite is a YAML document:
//
//	doc: leading zero blanking
//	chip: "7447"
//	defaults: {VCC: H, GND: L, LT: H, RBI: H, BI/RBO: H}
//	vectors:
//	  - name: zero
//	    in:   {D: L, C: L, B: L, A: L}
//	    want: {a: L, b: L, c: L, d: L, e: L, f: L, g: H}
//
// The input pins of a vector are its defaults overridden by its own in map.
// Only the output pins listed in want are checked.
//
package vector

import (
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/db47h/ttlsim"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Vector is a single test case.
//
type Vector struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Doc is optional documentation.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// In holds input, power and ground pin values. They override the
	// suite defaults.
	In map[string]ttlsim.Signal `json:"in,omitempty" yaml:"in,omitempty"`

	// Want holds the expected output pin values.
	Want map[string]ttlsim.Signal `json:"want" yaml:"want"`
}

// Suite is a list of test vectors for a chip.
//
type Suite struct {
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// Chip is the part number of the chip under test, as known to
	// ttl.Lookup.
	Chip string `json:"chip" yaml:"chip"`

	// Defaults are pin values common to all vectors.
	Defaults map[string]ttlsim.Signal `json:"defaults,omitempty" yaml:"defaults,omitempty"`

	Vectors []Vector `json:"vectors" yaml:"vectors"`
}

// MismatchError reports an output pin whose value differs from the expected
// one.
//
type MismatchError struct {
	Vector string
	Pin    string
	Want   ttlsim.Signal
	Got    ttlsim.Signal
}

func (e *MismatchError) Error() string {
	return "vector " + e.Vector + ": pin " + e.Pin + " expected " + e.Want.String() + ", got " + e.Got.String()
}

// Result is the outcome of running one vector.
//
type Result struct {
	Vector string
	// Out is the value of all output pins, nil if the evaluation failed.
	Out map[string]ttlsim.Signal
	// Err is an evaluation error or a multierror of MismatchError.
	Err error
}

// Passed reports whether the vector passed.
//
func (r *Result) Passed() bool { return r.Err == nil }

// Load reads a suite from r. Unknown fields and invalid pin values are errors.
//
func Load(r io.Reader) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decoding test suite")
	}
	if s.Chip == "" {
		return nil, errors.New("test suite: no chip")
	}
	for i := range s.Vectors {
		if s.Vectors[i].Name == "" {
			s.Vectors[i].Name = "#" + strconv.Itoa(i+1)
		}
	}
	return &s, nil
}

// LoadFile reads a suite from the named file.
//
func LoadFile(name string) (*Suite, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	s, err := Load(f)
	return s, errors.Wrap(err, name)
}

// Inputs returns the pin values for v: the suite defaults overridden by v.In.
//
func (s *Suite) Inputs(v *Vector) map[string]ttlsim.Signal {
	in := make(map[string]ttlsim.Signal, len(s.Defaults)+len(v.In))
	for k, x := range s.Defaults {
		in[k] = x
	}
	for k, x := range v.In {
		in[k] = x
	}
	return in
}

// Run runs all vectors against n. It returns one result per vector and a
// multierror holding every failure, or nil if all vectors passed.
//
func (s *Suite) Run(n *ttlsim.Netlist, opts ...ttlsim.Option) ([]Result, error) {
	if s.Chip != n.Name() {
		return nil, errors.Errorf("suite is for chip %s, got %s", s.Chip, n.Name())
	}
	var errs *multierror.Error
	c := ttlsim.NewCircuit(n, opts...)
	rs := make([]Result, len(s.Vectors))
	for i := range s.Vectors {
		rs[i] = s.run(c, &s.Vectors[i])
		if rs[i].Err != nil {
			errs = multierror.Append(errs, rs[i].Err)
		}
	}
	return rs, errs.ErrorOrNil()
}

func (s *Suite) run(c *ttlsim.Circuit, v *Vector) Result {
	r := Result{Vector: v.Name}
	if err := c.Bind(s.Inputs(v)); err != nil {
		r.Err = errors.Wrapf(err, "vector %s", v.Name)
		return r
	}
	if err := c.Process(); err != nil {
		r.Err = errors.Wrapf(err, "vector %s", v.Name)
		return r
	}
	out, err := c.Outputs()
	if err != nil {
		r.Err = errors.Wrapf(err, "vector %s", v.Name)
		return r
	}
	r.Out = out

	pins := make([]string, 0, len(v.Want))
	for p := range v.Want {
		pins = append(pins, p)
	}
	sort.Strings(pins)
	var errs *multierror.Error
	for _, p := range pins {
		got, ok := out[p]
		if !ok {
			errs = multierror.Append(errs, errors.Errorf("vector %s: no output pin %q", v.Name, p))
			continue
		}
		if want := v.Want[p]; got != want {
			errs = multierror.Append(errs, &MismatchError{Vector: v.Name, Pin: p, Want: want, Got: got})
		}
	}
	r.Err = errs.ErrorOrNil()
	return r
}
