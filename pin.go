// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

import "strconv"

// Role is the role of a pin in a package.
//
type Role int

// Pin roles.
//
const (
	Input Role = iota
	Output
	Power
	Ground
)

var roleNames = [...]string{
	Input:  "INPUT",
	Output: "OUTPUT",
	Power:  "POWER",
	Ground: "GROUND",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
	return roleNames[r]
}

// driven reports whether a pin with role r is driven from outside the
// package and must be bound before processing.
//
func (r Role) driven() bool { return r != Output }

// Pin is an external attachment point of a Netlist.
//
// Number is the physical pin number in the package. Two pins may share a
// number when the physical pin is bidirectional (for example the BI/RBO pin
// of a 7447, modeled as an input and an output).
//
type Pin struct {
	Name   string
	Number int
	Role   Role
	net    *Net
}

// Net returns the net the pin is attached to.
//
func (p Pin) Net() *Net { return p.net }

func (p Pin) String() string {
	return p.Name + "(" + strconv.Itoa(p.Number) + ", " + p.Role.String() + ")"
}
