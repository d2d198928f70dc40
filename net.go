// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

type driverKind int

const (
	noDriver driverKind = iota
	pinDriver
	gateDriver
)

// driver identifies what drives a net: a pin (index into the pin list) or a
// gate (index into the gate list).
type driver struct {
	kind driverKind
	idx  int
}

// A Net carries a single signal from its driver to its readers.
//
// Nets are created by a Builder and belong to it (and to the Netlist it
// builds). They only identify a connection; values live in the Circuit that
// evaluates the Netlist.
//
type Net struct {
	name    string
	id      int
	owner   *Builder
	drv     driver
	readers []int // gates reading this net, in declaration order
}

// Name returns the net name.
//
func (n *Net) Name() string { return n.name }

func (n *Net) String() string { return n.name }

// netState holds net values for one processing pass, indexed by net id.
//
type netState struct {
	v     []Signal
	bound []bool
}

func newNetState(count int) netState {
	return netState{
		v:     make([]Signal, count),
		bound: make([]bool, count),
	}
}

// reset unbinds all nets.
func (s *netState) reset() {
	for i := range s.bound {
		s.bound[i] = false
		s.v[i] = Low
	}
}

// bind sets the value of n. A net may only be bound once per pass.
func (s *netState) bind(n *Net, v Signal) error {
	if s.bound[n.id] {
		return &ConflictError{Name: n.name, Reason: "net bound twice in the same pass"}
	}
	s.v[n.id] = v
	s.bound[n.id] = true
	return nil
}

func (s *netState) read(n *Net) (Signal, error) {
	if !s.bound[n.id] {
		return Low, &UnboundNetError{Net: n.name}
	}
	return s.v[n.id], nil
}
