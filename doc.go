/*
Package ttlsim simulates combinational logic at gate level and provides the
tools to compose primitive gates into integrated circuit models.

The simulation is ideal: no propagation delays, no electrical effects, and no
state held between evaluations. Signals are either High or Low.

Building a circuit happens in two clearly separated steps. First, a Builder is
used to declare pins, nets and gates. Nothing is evaluated at that point, so
a gate may read a net that a gate declared later will drive. Build then freezes
the declaration into an immutable Netlist, rejecting floating nets, multiple
drivers and feedback loops, and computes the order in which gates will be
evaluated.

A Netlist is then evaluated through a Circuit:

	b := ttlsim.NewBuilder("XOR")
	b.Power("VCC", 3)
	b.Ground("GND", 4)
	a, c := b.Input("a", 1), b.Input("b", 2)
	nand := b.Gate(ttlsim.Nand, a, c)
	w0 := b.Gate(ttlsim.Nand, a, nand)
	w1 := b.Gate(ttlsim.Nand, c, nand)
	b.Output("out", 5, b.Gate(ttlsim.Nand, w0, w1))
	n, err := b.Build()
	// ...
	out, err := n.Eval(map[string]ttlsim.Signal{
		"VCC": ttlsim.High, "GND": ttlsim.Low, "a": ttlsim.High, "b": ttlsim.Low,
	})

A Netlist is safe for concurrent use. A Circuit is not: Bind, Process and
Outputs must be sequenced by a single caller.

Ready made chips (7400, 7402, 7404, 7408 and the 7447 BCD to 7-segment
decoder) are in the ttl sub-package.
*/
package ttlsim
