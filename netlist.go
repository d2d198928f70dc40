// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

// A Netlist is the frozen structure of a circuit: its pins, nets and gates,
// together with the order in which gates are evaluated. A Netlist is
// immutable and can be shared between goroutines. It is evaluated by a
// Circuit.
//
type Netlist struct {
	name   string
	nets   []*Net
	netIdx map[string]*Net
	gates  []*gate
	pins   []Pin
	pinIdx map[string]int
	order  []int
}

func newNetlist(b *Builder, order []int) *Netlist {
	return &Netlist{
		name:   b.name,
		nets:   b.nets,
		netIdx: b.netIdx,
		gates:  b.gates,
		pins:   b.pins,
		pinIdx: b.pinIdx,
		order:  order,
	}
}

// Name returns the circuit name.
//
func (n *Netlist) Name() string { return n.name }

// Pins returns the pin schema in declaration order.
//
func (n *Netlist) Pins() []Pin {
	return append([]Pin(nil), n.pins...)
}

// Pin returns the pin with the given name.
//
func (n *Netlist) Pin(name string) (Pin, bool) {
	i, ok := n.pinIdx[name]
	if !ok {
		return Pin{}, false
	}
	return n.pins[i], true
}

// PinsByRole returns the pins with role r, in declaration order.
//
func (n *Netlist) PinsByRole(r Role) []Pin {
	var ps []Pin
	for _, p := range n.pins {
		if p.Role == r {
			ps = append(ps, p)
		}
	}
	return ps
}

// Net returns the net with the given name.
//
func (n *Netlist) Net(name string) (*Net, bool) {
	nt, ok := n.netIdx[name]
	return nt, ok
}

// Size returns the gate count.
//
func (n *Netlist) Size() int { return len(n.gates) }

// Nets returns the net count.
//
func (n *Netlist) Nets() int { return len(n.nets) }

// Eval evaluates the netlist for the given pin values in a new Circuit and
// returns the output pin values.
//
func (n *Netlist) Eval(in map[string]Signal, opts ...Option) (map[string]Signal, error) {
	c := NewCircuit(n, opts...)
	if err := c.Bind(in); err != nil {
		return nil, err
	}
	if err := c.Process(); err != nil {
		return nil, err
	}
	return c.Outputs()
}
