// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttl

import (
	"strconv"
	"strings"

	"github.com/db47h/ttlsim"
)

// 7447 pin numbers. BI/RBO is a wired-AND pin: its input side is BI/RBO, its
// output side is RBO.
var pins7447 = [...]struct {
	name   string
	number int
}{
	{"B", 1}, {"C", 2}, {"LT", 3}, {"BI/RBO", 4}, {"RBI", 5}, {"D", 6}, {"A", 7},
	{"e", 9}, {"d", 10}, {"c", 11}, {"b", 12}, {"a", 13}, {"g", 14}, {"f", 15},
}

// product terms shared by the segment equations. A literal is a BCD input
// letter, optionally negated with a leading '!'.
var products7447 = [...]string{
	"!D!CB", "!DCA", "D!BA", "!C!B!A", "!D!C", "!DBA", "!C!B", "!B!A", "!DC",
	"!CA", "!CB", "!C!A", "C!BA", "B!A", "D!B", "C!B", "C!A", "D!C",
}

// segments lists, for each segment, the (1-based) products it is the sum of.
var segments7447 = [...]struct {
	name  string
	terms []int
}{
	{"a", []int{1, 2, 3, 4}},
	{"b", []int{5, 6, 7, 8}},
	{"c", []int{9, 7, 10}},
	{"d", []int{11, 12, 13, 14}},
	{"e", []int{12, 14}},
	{"f", []int{15, 16, 17, 8}},
	{"g", []int{18, 11, 16, 17}},
}

// New7447 returns a BCD to 7-segment decoder/driver with active low outputs.
//
//	Inputs: A, B, C, D (BCD, A is the LSB), LT, RBI, BI/RBO
//	Outputs: a, b, c, d, e, f, g, RBO
//	Function:
//		BI/RBO low: all segments off (High).
//		LT low: all segments on (Low).
//		RBI low and BCD 0: all segments off and RBO low.
//		otherwise segments show the BCD digit. Codes 10 to 15 show the
//		datasheet symbols, 15 is blank.
//
// Internal nets are named after their function (lineA..lineJ, zero, ripple,
// lamp, enable, p1..p18, on_a.., pre_a..) and can be read with Circuit.Probe.
//
func New7447() (*ttlsim.Netlist, error) {
	b := ttlsim.NewBuilder("7447")

	// pins, in package order
	in := make(map[string]*ttlsim.Net)
	seg := make(map[string]*ttlsim.Net)
	for _, p := range pins7447 {
		switch {
		case p.number == 4:
			in[p.name] = b.Input(p.name, p.number)
			seg["RBO"] = b.Net("RBO")
			b.Output("RBO", p.number, seg["RBO"])
		case p.number > 8:
			seg[p.name] = b.Net(p.name)
			b.Output(p.name, p.number, seg[p.name])
		default:
			in[p.name] = b.Input(p.name, p.number)
		}
		if p.number == 7 {
			b.Ground(pGND, 8)
		}
	}
	b.Power(pVCC, 16)

	// input conditioning: true and complemented BCD lines, active lamp test
	// and ripple blanking requests.
	line := func(name string, t ttlsim.GateType, n *ttlsim.Net) *ttlsim.Net {
		l := b.Net(name)
		b.Drive(l, t, n)
		return l
	}
	lit := make(map[string]*ttlsim.Net, 8)
	for i, x := range []string{"A", "B", "C", "D"} {
		lit[x] = line("line"+string(rune('A'+2*i)), ttlsim.Buffer, in[x])
		lit["!"+x] = line("line"+string(rune('B'+2*i)), ttlsim.Not, in[x])
	}
	lampTest := line("lineI", ttlsim.Not, in["LT"])
	rippleReq := line("lineJ", ttlsim.Not, in["RBI"])

	// blanking and control
	zero := b.Net("zero")
	b.ExpandTo(zero, ttlsim.Nor, lit["A"], lit["B"], lit["C"], lit["D"])
	ripple := b.Net("ripple")
	b.ExpandTo(ripple, ttlsim.And, rippleReq, in["LT"], zero)
	noRipple := line("noripple", ttlsim.Not, ripple)
	b.Drive(seg["RBO"], ttlsim.And, in["BI/RBO"], noRipple)
	lamp := b.Net("lamp")
	b.Drive(lamp, ttlsim.And, in["BI/RBO"], lampTest)
	enable := b.Net("enable")
	b.Drive(enable, ttlsim.And, in["BI/RBO"], noRipple)

	// product terms, active low
	prod := make([]*ttlsim.Net, len(products7447))
	for i, term := range products7447 {
		ls := literals(term)
		ins := make([]*ttlsim.Net, len(ls))
		for j, l := range ls {
			ins[j] = lit[l]
		}
		prod[i] = b.Net("p" + strconv.Itoa(i+1))
		if len(ins) == 2 {
			b.Drive(prod[i], ttlsim.Nand, ins...)
		} else {
			b.ExpandTo(prod[i], ttlsim.Nand, ins...)
		}
	}

	// segment pre-drivers and output stage
	for _, s := range segments7447 {
		ins := make([]*ttlsim.Net, len(s.terms))
		for i, t := range s.terms {
			ins[i] = prod[t-1]
		}
		on := b.Net("on_" + s.name)
		b.ExpandTo(on, ttlsim.Nand, ins...)
		pre := b.Net("pre_" + s.name)
		b.Drive(pre, ttlsim.And, on, enable)
		b.Drive(seg[s.name], ttlsim.Nor, lamp, pre)
	}

	return b.Build()
}

// literals splits a product term like "!D!CB" into its literals.
func literals(term string) []string {
	var ls []string
	for len(term) > 0 {
		n := 1
		if strings.HasPrefix(term, "!") {
			n = 2
		}
		ls = append(ls, term[:n])
		term = term[n:]
	}
	return ls
}
