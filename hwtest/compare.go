// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/db47h/ttlsim"
)

// MaxExhaustive is the input pin count above which Compare functions switch
// from exhaustive to random testing.
//
const MaxExhaustive = 12

// RefFunc computes the expected output pin values for the given pin values.
//
type RefFunc func(in map[string]ttlsim.Signal) map[string]ttlsim.Signal

// inputNames returns the names of the input pins of n.
func inputNames(n *ttlsim.Netlist) []string {
	var names []string
	for _, p := range n.PinsByRole(ttlsim.Input) {
		names = append(names, p.Name)
	}
	return names
}

func inString(in map[string]ttlsim.Signal) string {
	names := make([]string, 0, len(in))
	for n := range in {
		names = append(names, n)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, n := range names {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(in[n].String())
	}
	return b.String()
}

func errString(in map[string]ttlsim.Signal, oname string, ex, got ttlsim.Signal) string {
	return fmt.Sprintf("\nExpected %s => %s=%v\nGot %v", inString(in), oname, ex, got)
}

// ForEachInput calls fn with pin maps covering the input space of n. Power
// pins are bound High and ground pins Low. If n has at most MaxExhaustive
// input pins, all combinations are tried in binary order, the first input
// pin being the least significant bit. Otherwise fn gets all Low, all High
// and 1<<MaxExhaustive random combinations.
//
// The map passed to fn is reused between calls. Iteration stops as soon as fn
// returns false.
//
func ForEachInput(n *ttlsim.Netlist, fn func(in map[string]ttlsim.Signal) bool) {
	names := inputNames(n)
	in := make(map[string]ttlsim.Signal, len(names)+2)
	for _, p := range n.PinsByRole(ttlsim.Power) {
		in[p.Name] = ttlsim.High
	}
	for _, p := range n.PinsByRole(ttlsim.Ground) {
		in[p.Name] = ttlsim.Low
	}

	if len(names) <= MaxExhaustive {
		for v := 0; v < 1<<uint(len(names)); v++ {
			for i, name := range names {
				in[name] = v&(1<<uint(i)) != 0
			}
			if !fn(in) {
				return
			}
		}
		return
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, s := range []ttlsim.Signal{ttlsim.Low, ttlsim.High} {
		for _, name := range names {
			in[name] = s
		}
		if !fn(in) {
			return
		}
	}
	for i := 0; i < 1<<MaxExhaustive; i++ {
		for _, name := range names {
			in[name] = r.Int63()&(1<<62) != 0
		}
		if !fn(in) {
			return
		}
	}
}

// CompareFunc checks the outputs of n against the reference function ref over
// the input space of n (see ForEachInput). Only the output pins returned by
// ref are checked.
//
func CompareFunc(t *testing.T, n *ttlsim.Netlist, ref RefFunc) {
	t.Helper()

	c := ttlsim.NewCircuit(n)
	count := 0
	start := time.Now()
	ForEachInput(n, func(in map[string]ttlsim.Signal) bool {
		count++
		out := eval(t, c, in)
		for name, ex := range ref(in) {
			got, ok := out[name]
			if !ok {
				t.Fatalf("%s: reference output %q is not an output pin", n.Name(), name)
			}
			if got != ex {
				t.Fatal(errString(in, name, ex, got))
			}
		}
		return true
	})
	t.Logf("%s: %d gates. %d input combinations in %v", n.Name(), n.Size(), count, time.Since(start))
}

// CompareNetlist takes two netlists and compares their outputs given the same
// inputs. Both netlists must have the same pin names and roles.
//
func CompareNetlist(t *testing.T, n1, n2 *ttlsim.Netlist) {
	t.Helper()

	ps1, ps2 := n1.Pins(), n2.Pins()
	if len(ps1) != len(ps2) {
		t.Fatalf("%s has %d pins, %s has %d", n1.Name(), len(ps1), n2.Name(), len(ps2))
	}
	for _, p1 := range ps1 {
		p2, ok := n2.Pin(p1.Name)
		if !ok {
			t.Fatalf("pin %s of %s not found in %s", p1.Name, n1.Name(), n2.Name())
		}
		if p1.Role != p2.Role {
			t.Fatalf("pin %s is %s in %s and %s in %s", p1.Name, p1.Role, n1.Name(), p2.Role, n2.Name())
		}
	}

	c2 := ttlsim.NewCircuit(n2)
	CompareFunc(t, n1, func(in map[string]ttlsim.Signal) map[string]ttlsim.Signal {
		return eval(t, c2, in)
	})
}

func eval(t *testing.T, c *ttlsim.Circuit, in map[string]ttlsim.Signal) map[string]ttlsim.Signal {
	t.Helper()
	if err := c.Bind(in); err != nil {
		t.Fatal(err)
	}
	if err := c.Process(); err != nil {
		t.Fatal(err)
	}
	out, err := c.Outputs()
	if err != nil {
		t.Fatal(err)
	}
	return out
}
