// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

import (
	"strconv"
)

// GateType identifies a primitive gate.
//
type GateType int

// Primitive gates.
//
const (
	And GateType = iota
	Or
	Not
	Nand
	Nor
	Xor
	Xnor
	Buffer
	gateTypeCount
)

type gateSpec struct {
	name  string
	arity int
	fn    func(in []Signal) Signal
}

func unary(f func(a Signal) Signal) func([]Signal) Signal {
	return func(in []Signal) Signal { return f(in[0]) }
}

func binary(f func(a, b Signal) Signal) func([]Signal) Signal {
	return func(in []Signal) Signal { return f(in[0], in[1]) }
}

var gateSpecs = [gateTypeCount]gateSpec{
	And:    {"AND", 2, binary(func(a, b Signal) Signal { return a && b })},
	Or:     {"OR", 2, binary(func(a, b Signal) Signal { return a || b })},
	Not:    {"NOT", 1, unary(func(a Signal) Signal { return !a })},
	Nand:   {"NAND", 2, binary(func(a, b Signal) Signal { return !(a && b) })},
	Nor:    {"NOR", 2, binary(func(a, b Signal) Signal { return !(a || b) })},
	Xor:    {"XOR", 2, binary(func(a, b Signal) Signal { return a && !b || !a && b })},
	Xnor:   {"XNOR", 2, binary(func(a, b Signal) Signal { return a && b || !a && !b })},
	Buffer: {"BUFFER", 1, unary(func(a Signal) Signal { return a })},
}

func (t GateType) valid() bool { return t >= 0 && t < gateTypeCount }

func (t GateType) String() string {
	if !t.valid() {
		return "GateType(" + strconv.Itoa(int(t)) + ")"
	}
	return gateSpecs[t].name
}

// Arity returns the number of inputs of a gate of type t: 1 for Not and
// Buffer, 2 for all others. It returns 0 for invalid gate types.
//
func (t GateType) Arity() int {
	if !t.valid() {
		return 0
	}
	return gateSpecs[t].arity
}

// GateTypes returns all primitive gate types.
//
func GateTypes() []GateType {
	ts := make([]GateType, gateTypeCount)
	for i := range ts {
		ts[i] = GateType(i)
	}
	return ts
}

func checkGate(t GateType, n int) error {
	if !t.valid() {
		return &InvalidOperandError{Value: t, Reason: "unknown gate type"}
	}
	if a := gateSpecs[t].arity; a != n {
		return &ArityError{Gate: t, Want: a, Got: n}
	}
	return nil
}

// Evaluate returns the output of a gate of type t for the given inputs.
//
//	Not, Buffer: exactly 1 input
//	And, Or, Nand, Nor, Xor, Xnor: exactly 2 inputs
//
func Evaluate(t GateType, in ...Signal) (Signal, error) {
	if err := checkGate(t, len(in)); err != nil {
		return Low, err
	}
	return gateSpecs[t].fn(in), nil
}

// EvaluateValues is like Evaluate but takes untyped operands. Every operand
// must be a Signal or a bool, anything else fails with an InvalidOperandError.
//
func EvaluateValues(t GateType, in ...interface{}) (Signal, error) {
	sigs := make([]Signal, len(in))
	for i, v := range in {
		s, err := SignalOf(v)
		if err != nil {
			return Low, err
		}
		sigs[i] = s
	}
	return Evaluate(t, sigs...)
}
