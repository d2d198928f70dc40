// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

import "strconv"

// expansionCore returns the associative 2-input gate used to cascade t and
// whether the cascade needs a final inversion. NAND and NOR are not
// associative: NAND(a, b, c) is NOT(AND(AND(a, b), c)), never a chain of NANDs.
//
func expansionCore(t GateType) (core GateType, invert bool, ok bool) {
	switch t {
	case And:
		return And, false, true
	case Nand:
		return And, true, true
	case Or:
		return Or, false, true
	case Nor:
		return Or, true, true
	}
	return t, false, false
}

// Expand declares an N-input AND, OR, NAND or NOR gate built from 2-input
// primitives and returns its output net. See ExpandTo.
//
func (b *Builder) Expand(t GateType, in ...*Net) *Net {
	out := b.Net("")
	b.ExpandTo(out, t, in...)
	return out
}

// ExpandTo declares an N-input AND, OR, NAND or NOR gate driving out.
//
// Inputs are combined left to right: in[0] and in[1] feed the first gate,
// whose output is combined with in[2] and so on, for a total of N-1 gates.
// NAND and NOR use the AND and OR cascade followed by a single NOT gate.
// Intermediate nets are named after out with a ".k" suffix.
//
// Less than two inputs is an ArityError.
//
func (b *Builder) ExpandTo(out *Net, t GateType, in ...*Net) {
	b.checkBuilt()
	core, invert, ok := expansionCore(t)
	if !ok {
		b.fail(&InvalidOperandError{Value: t, Reason: "only AND, OR, NAND and NOR can be expanded"}, "%s: expansion", b.name)
		return
	}
	if len(in) < 2 {
		b.fail(&ArityError{Gate: t, Want: 2, Got: len(in), AtLeast: true}, "%s: expansion", b.name)
		return
	}
	if err := b.own(out); err != nil {
		b.fail(err, "%s: %s expansion output", b.name, t)
		return
	}
	acc := in[0]
	for k := 1; k < len(in); k++ {
		dst := out
		if k < len(in)-1 || invert {
			dst = b.Net(out.name + "." + strconv.Itoa(k))
		}
		b.Drive(dst, core, acc, in[k])
		acc = dst
	}
	if invert {
		b.Drive(out, Not, acc)
	}
}
