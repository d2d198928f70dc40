// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

import (
	"sort"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// Stage is the lifecycle stage of a Circuit.
//
type Stage int

// Circuit stages.
//
const (
	// Declared: no input binding.
	Declared Stage = iota
	// InputsBound: all input, power and ground pins have a value.
	InputsBound
	// Processed: all nets are resolved and outputs can be read.
	Processed
)

func (s Stage) String() string {
	switch s {
	case Declared:
		return "Declared"
	case InputsBound:
		return "InputsBound"
	case Processed:
		return "Processed"
	}
	return "Stage(" + strconv.Itoa(int(s)) + ")"
}

// An Option configures a Circuit.
//
type Option func(c *Circuit)

// WithLogger sets the logger used to report lifecycle events (debug level).
//
func WithLogger(l hclog.Logger) Option {
	return func(c *Circuit) { c.log = l }
}

// WithTracer sets a Tracer that will receive every gate evaluation.
//
func WithTracer(t Tracer) Option {
	return func(c *Circuit) { c.tr = t }
}

// Circuit evaluates a Netlist.
//
// The evaluation cycle is Bind, Process, Outputs. A Circuit can be re-bound
// and processed again any number of times; the Netlist is never modified.
// A Circuit must not be used concurrently, but any number of Circuits can
// evaluate the same Netlist in parallel.
//
type Circuit struct {
	n     *Netlist
	s     netState
	in    map[string]Signal
	stage Stage
	log   hclog.Logger
	tr    Tracer
}

// NewCircuit returns a new Circuit for n in the Declared stage.
//
func NewCircuit(n *Netlist, opts ...Option) *Circuit {
	c := &Circuit{
		n:   n,
		s:   newNetState(len(n.nets)),
		log: hclog.NewNullLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Netlist returns the netlist evaluated by c.
//
func (c *Circuit) Netlist() *Netlist { return c.n }

// Stage returns the current stage.
//
func (c *Circuit) Stage() Stage { return c.stage }

// Bind sets the values of the input, power and ground pins. All of them must
// be given a value, power pins must be High and ground pins Low.
//
// On error, any previous binding is discarded and the circuit goes back to
// the Declared stage.
//
func (c *Circuit) Bind(in map[string]Signal) error {
	c.in = nil
	c.stage = Declared

	names := make([]string, 0, len(in))
	for name := range in {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p, ok := c.n.Pin(name)
		if !ok {
			return errors.Errorf("%s: unknown pin %q", c.n.name, name)
		}
		if !p.Role.driven() {
			return errors.Wrap(&ConflictError{Name: name, Reason: "output pins cannot be bound"}, c.n.name)
		}
	}

	var missing []string
	for _, p := range c.n.pins {
		if _, ok := in[p.Name]; !ok && p.Role.driven() {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return errors.Wrap(&MissingPinError{Pins: missing}, c.n.name)
	}

	for _, p := range c.n.pins {
		v := in[p.Name]
		if p.Role == Power && v != High || p.Role == Ground && v != Low {
			return errors.Wrap(&PowerValidationError{Pin: p.Name, Role: p.Role, Got: v}, c.n.name)
		}
	}

	c.in = make(map[string]Signal, len(in))
	for k, v := range in {
		c.in[k] = v
	}
	c.stage = InputsBound
	c.log.Debug("inputs bound", "circuit", c.n.name, "pins", len(in))
	return nil
}

// Process resolves all nets for the current binding. Each gate is evaluated
// exactly once, in topological order.
//
// Processing is idempotent: processing again without re-binding yields the
// same outputs.
//
func (c *Circuit) Process() error {
	if c.stage == Processed {
		c.stage = InputsBound
	}
	c.s.reset()
	for _, p := range c.n.pins {
		if !p.Role.driven() {
			continue
		}
		if v, ok := c.in[p.Name]; ok {
			if err := c.s.bind(p.net, v); err != nil {
				return errors.Wrap(err, c.n.name)
			}
		}
	}

	var buf [2]Signal
	for _, gi := range c.n.order {
		g := c.n.gates[gi]
		in := buf[:len(g.in)]
		for i, n := range g.in {
			v, err := c.s.read(n)
			if err != nil {
				return errors.Wrapf(err, "%s: gate %s", c.n.name, g)
			}
			in[i] = v
		}
		out, err := Evaluate(g.typ, in...)
		if err != nil {
			return errors.Wrapf(err, "%s: gate %s", c.n.name, g)
		}
		if c.tr != nil {
			c.tr.Trace(g.out.name, g.typ, in, out)
		}
		if err = c.s.bind(g.out, out); err != nil {
			return errors.Wrapf(err, "%s: gate %s", c.n.name, g)
		}
	}

	// output pins wired straight to an unbound input net
	for _, p := range c.n.pins {
		if p.Role != Output {
			continue
		}
		if _, err := c.s.read(p.net); err != nil {
			return errors.Wrapf(err, "%s: output pin %s", c.n.name, p.Name)
		}
	}

	c.stage = Processed
	c.log.Debug("processed", "circuit", c.n.name, "gates", len(c.n.order))
	return nil
}

// Outputs returns the values of the output pins. It fails with a
// NotProcessedError unless Process succeeded for the current binding.
//
func (c *Circuit) Outputs() (map[string]Signal, error) {
	if c.stage != Processed {
		return nil, errors.Wrap(&NotProcessedError{Stage: c.stage}, c.n.name)
	}
	out := make(map[string]Signal)
	for _, p := range c.n.pins {
		if p.Role == Output {
			out[p.Name] = c.s.v[p.net.id]
		}
	}
	return out, nil
}

// Output returns the value of a single output pin.
//
func (c *Circuit) Output(name string) (Signal, error) {
	if c.stage != Processed {
		return Low, errors.Wrap(&NotProcessedError{Stage: c.stage}, c.n.name)
	}
	p, ok := c.n.Pin(name)
	if !ok || p.Role != Output {
		return Low, errors.Errorf("%s: no output pin %q", c.n.name, name)
	}
	return c.s.v[p.net.id], nil
}

// Probe returns the value of any net after processing.
//
func (c *Circuit) Probe(net string) (Signal, error) {
	if c.stage != Processed {
		return Low, errors.Wrap(&NotProcessedError{Stage: c.stage}, c.n.name)
	}
	n, ok := c.n.netIdx[net]
	if !ok {
		return Low, errors.Errorf("%s: unknown net %q", c.n.name, net)
	}
	v, err := c.s.read(n)
	return v, errors.Wrap(err, c.n.name)
}
