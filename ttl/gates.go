// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttl

import "github.com/db47h/ttlsim"

// gatePins gives the pin numbers of one gate in a package: inputs first, then
// the output.
type gatePins []int

// 7400 and 7408 share the same pinout.
var quadPinout = []gatePins{
	{1, 2, 3},
	{4, 5, 6},
	{9, 10, 8},
	{12, 13, 11},
}

// 7402 has the outputs before the inputs.
var norPinout = []gatePins{
	{2, 3, 1},
	{5, 6, 4},
	{8, 9, 10},
	{11, 12, 13},
}

var hexPinout = []gatePins{
	{1, 2},
	{3, 4},
	{5, 6},
	{9, 8},
	{11, 10},
	{13, 12},
}

var inputNames = [...]string{"A", "B"}

// dip14 builds a 14 pin package of independent gates of type t. Gates only
// share the power pins.
//
func dip14(name string, t ttlsim.GateType, pinout []gatePins) (*ttlsim.Netlist, error) {
	b := ttlsim.NewBuilder(name)
	b.Ground(pGND, 7)
	for i, ps := range pinout {
		n := i + 1
		ins := make([]*ttlsim.Net, len(ps)-1)
		for j := range ins {
			ins[j] = b.Input(pin(n, inputNames[j]), ps[j])
		}
		out := b.Net(pin(n, "Y"))
		b.Drive(out, t, ins...)
		b.Output(out.Name(), ps[len(ps)-1], out)
	}
	b.Power(pVCC, 14)
	return b.Build()
}

// New7400 returns a quad 2-input NAND gate.
//
//	Inputs: 1A, 1B, 2A, 2B, 3A, 3B, 4A, 4B
//	Outputs: 1Y, 2Y, 3Y, 4Y
//	Function: nY = !(nA && nB)
//
func New7400() (*ttlsim.Netlist, error) {
	return dip14("7400", ttlsim.Nand, quadPinout)
}

// New7402 returns a quad 2-input NOR gate.
//
//	Inputs: 1A, 1B, 2A, 2B, 3A, 3B, 4A, 4B
//	Outputs: 1Y, 2Y, 3Y, 4Y
//	Function: nY = !(nA || nB)
//
func New7402() (*ttlsim.Netlist, error) {
	return dip14("7402", ttlsim.Nor, norPinout)
}

// New7404 returns a hex inverter.
//
//	Inputs: 1A, 2A, 3A, 4A, 5A, 6A
//	Outputs: 1Y, 2Y, 3Y, 4Y, 5Y, 6Y
//	Function: nY = !nA
//
func New7404() (*ttlsim.Netlist, error) {
	return dip14("7404", ttlsim.Not, hexPinout)
}

// New7408 returns a quad 2-input AND gate.
//
//	Inputs: 1A, 1B, 2A, 2B, 3A, 3B, 4A, 4B
//	Outputs: 1Y, 2Y, 3Y, 4Y
//	Function: nY = nA && nB
//
func New7408() (*ttlsim.Netlist, error) {
	return dip14("7408", ttlsim.And, quadPinout)
}
