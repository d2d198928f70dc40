// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

import (
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

type gate struct {
	typ GateType
	in  []*Net
	out *Net
}

func (g *gate) String() string {
	return g.typ.String() + "->" + g.out.name
}

// A Builder declares the pins, nets and gates of a circuit.
//
// Declaring never evaluates anything, so gates may be declared in any order
// and may read nets that are only driven by gates declared later:
//
//	b := NewBuilder("example")
//	x := b.Net("x")              // forward declaration
//	b.Output("out", 3, b.Gate(Not, x))
//	b.Drive(x, And, b.Input("a", 1), b.Input("b", 2))
//
// Declaration errors do not stop the declaration process. They are
// accumulated and reported by Build.
//
type Builder struct {
	name    string
	nets    []*Net
	netIdx  map[string]*Net
	gates   []*gate
	pins    []Pin
	pinIdx  map[string]int
	errs    *multierror.Error
	wireNum int
	built   bool
}

// NewBuilder returns a new Builder for a circuit with the given name.
//
func NewBuilder(name string) *Builder {
	return &Builder{
		name:   name,
		netIdx: make(map[string]*Net),
		pinIdx: make(map[string]int),
	}
}

// Name returns the circuit name.
//
func (b *Builder) Name() string { return b.name }

func (b *Builder) fail(err error, format string, args ...interface{}) {
	b.errs = multierror.Append(b.errs, errors.Wrapf(err, format, args...))
}

func (b *Builder) checkBuilt() {
	if b.built {
		panic("ttlsim: Builder " + b.name + " used after Build")
	}
}

// Net declares a new net. If name is empty, a unique name is generated.
// Declaring the same name twice is a ConflictError, in which case the
// existing net is returned.
//
func (b *Builder) Net(name string) *Net {
	b.checkBuilt()
	if name == "" {
		for {
			name = "__" + strconv.Itoa(b.wireNum)
			b.wireNum++
			if _, ok := b.netIdx[name]; !ok {
				break
			}
		}
	}
	if n, ok := b.netIdx[name]; ok {
		b.fail(&ConflictError{Name: name, Reason: "net declared twice"}, "%s", b.name)
		return n
	}
	n := &Net{name: name, id: len(b.nets), owner: b}
	b.nets = append(b.nets, n)
	b.netIdx[name] = n
	return n
}

// own checks that n is a net of this builder.
//
func (b *Builder) own(n *Net) error {
	if n == nil {
		return &InvalidOperandError{Value: n, Reason: "nil net"}
	}
	if n.owner != b {
		return &InvalidOperandError{Value: n.name, Reason: "net belongs to another circuit"}
	}
	return nil
}

func (b *Builder) setDriver(n *Net, d driver) error {
	if n.drv.kind != noDriver {
		by := "a pin"
		if n.drv.kind == gateDriver {
			by = "gate " + b.gates[n.drv.idx].String()
		}
		return &ConflictError{Name: n.name, Reason: "net already driven by " + by}
	}
	n.drv = d
	return nil
}

func (b *Builder) addPin(name string, number int, role Role, n *Net) bool {
	if _, ok := b.pinIdx[name]; ok {
		b.fail(&ConflictError{Name: name, Reason: "pin declared twice"}, "%s", b.name)
		return false
	}
	b.pinIdx[name] = len(b.pins)
	b.pins = append(b.pins, Pin{Name: name, Number: number, Role: role, net: n})
	return true
}

func (b *Builder) drivenPin(name string, number int, role Role) *Net {
	b.checkBuilt()
	n := b.Net(name)
	if !b.addPin(name, number, role, n) {
		return n
	}
	if err := b.setDriver(n, driver{pinDriver, len(b.pins) - 1}); err != nil {
		b.fail(err, "%s: %s pin %s", b.name, role, name)
	}
	return n
}

// Input declares an input pin and returns the net it drives. The net has the
// same name as the pin.
//
func (b *Builder) Input(name string, number int) *Net {
	return b.drivenPin(name, number, Input)
}

// Power declares a power (VCC) pin. It must be bound High before processing.
// The returned net can be used as a constant High.
//
func (b *Builder) Power(name string, number int) *Net {
	return b.drivenPin(name, number, Power)
}

// Ground declares a ground pin. It must be bound Low before processing. The
// returned net can be used as a constant Low.
//
func (b *Builder) Ground(name string, number int) *Net {
	return b.drivenPin(name, number, Ground)
}

// Output declares an output pin reading net n.
//
func (b *Builder) Output(name string, number int, n *Net) {
	b.checkBuilt()
	if err := b.own(n); err != nil {
		b.fail(err, "%s: output pin %s", b.name, name)
		return
	}
	b.addPin(name, number, Output, n)
}

// Gate declares a gate of type t reading the given nets and returns a new net
// driven by that gate.
//
func (b *Builder) Gate(t GateType, in ...*Net) *Net {
	out := b.Net("")
	b.Drive(out, t, in...)
	return out
}

// Drive declares a gate of type t reading the given nets and driving out.
//
func (b *Builder) Drive(out *Net, t GateType, in ...*Net) {
	b.checkBuilt()
	if err := b.own(out); err != nil {
		b.fail(err, "%s: %s gate output", b.name, t)
		return
	}
	if err := checkGate(t, len(in)); err != nil {
		b.fail(err, "%s: gate driving %s", b.name, out.name)
		return
	}
	for i, n := range in {
		if err := b.own(n); err != nil {
			b.fail(err, "%s: input %d of %s gate driving %s", b.name, i, t, out.name)
			return
		}
	}
	g := &gate{typ: t, in: append([]*Net(nil), in...), out: out}
	if err := b.setDriver(out, driver{gateDriver, len(b.gates)}); err != nil {
		b.fail(err, "%s: %s gate", b.name, t)
		return
	}
	gi := len(b.gates)
	b.gates = append(b.gates, g)
	for _, n := range in {
		n.readers = append(n.readers, gi)
	}
}

// Build checks the declarations and freezes them into a Netlist. The Builder
// must not be used afterwards.
//
// Build reports all declaration errors, nets that are read but never driven
// (UnboundNetError), circuits without exactly one power and one ground pin
// (PowerValidationError) and feedback loops (CyclicCircuitError).
//
func (b *Builder) Build() (*Netlist, error) {
	b.checkBuilt()
	b.built = true
	if err := b.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if err := b.checkDrivers(); err != nil {
		return nil, err
	}
	if err := b.checkPower(); err != nil {
		return nil, err
	}
	order, err := b.order()
	if err != nil {
		return nil, errors.Wrap(err, b.name)
	}
	return newNetlist(b, order), nil
}
