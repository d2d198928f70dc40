package ttl_test

import (
	"strings"
	"testing"

	"github.com/db47h/ttlsim"
	"github.com/db47h/ttlsim/hwtest"
	"github.com/db47h/ttlsim/ttl"
	"github.com/google/go-cmp/cmp"
)

type sig = ttlsim.Signal

const (
	lo = ttlsim.Low
	hi = ttlsim.High
)

func mustBuild(t *testing.T, fn func() (*ttlsim.Netlist, error)) *ttlsim.Netlist {
	t.Helper()
	n, err := fn()
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestGates(t *testing.T) {
	data := []struct {
		name string
		fn   func() (*ttlsim.Netlist, error)
		gate func(a, b sig) sig
		n    int
	}{
		{"7400", ttl.New7400, func(a, b sig) sig { return !(a && b) }, 4},
		{"7402", ttl.New7402, func(a, b sig) sig { return !(a || b) }, 4},
		{"7404", ttl.New7404, func(a, _ sig) sig { return !a }, 6},
		{"7408", ttl.New7408, func(a, b sig) sig { return a && b }, 4},
	}
	for _, d := range data {
		d := d
		t.Run(d.name, func(t *testing.T) {
			n := mustBuild(t, d.fn)
			if n.Name() != d.name {
				t.Fatalf("got name %q", n.Name())
			}
			hwtest.CompareFunc(t, n, func(in map[string]sig) map[string]sig {
				out := make(map[string]sig, d.n)
				for i := 1; i <= d.n; i++ {
					p := string(rune('0' + i))
					out[p+"Y"] = d.gate(in[p+"A"], in[p+"B"])
				}
				return out
			})
		})
	}
}

func pinNumbers(n *ttlsim.Netlist) map[string]int {
	m := make(map[string]int)
	for _, p := range n.Pins() {
		m[p.Name] = p.Number
	}
	return m
}

func TestPinouts(t *testing.T) {
	quad := map[string]int{
		"1A": 1, "1B": 2, "1Y": 3, "2A": 4, "2B": 5, "2Y": 6, "GND": 7,
		"3Y": 8, "3A": 9, "3B": 10, "4Y": 11, "4A": 12, "4B": 13, "VCC": 14,
	}
	data := []struct {
		fn   func() (*ttlsim.Netlist, error)
		pins map[string]int
	}{
		{ttl.New7400, quad},
		{ttl.New7408, quad},
		{ttl.New7402, map[string]int{
			"1Y": 1, "1A": 2, "1B": 3, "2Y": 4, "2A": 5, "2B": 6, "GND": 7,
			"3A": 8, "3B": 9, "3Y": 10, "4A": 11, "4B": 12, "4Y": 13, "VCC": 14,
		}},
		{ttl.New7404, map[string]int{
			"1A": 1, "1Y": 2, "2A": 3, "2Y": 4, "3A": 5, "3Y": 6, "GND": 7,
			"4Y": 8, "4A": 9, "5Y": 10, "5A": 11, "6Y": 12, "6A": 13, "VCC": 14,
		}},
		{ttl.New7447, map[string]int{
			"B": 1, "C": 2, "LT": 3, "BI/RBO": 4, "RBO": 4, "RBI": 5, "D": 6, "A": 7, "GND": 8,
			"e": 9, "d": 10, "c": 11, "b": 12, "a": 13, "g": 14, "f": 15, "VCC": 16,
		}},
	}
	for _, d := range data {
		n := mustBuild(t, d.fn)
		if diff := cmp.Diff(d.pins, pinNumbers(n)); diff != "" {
			t.Errorf("%s pinout mismatch (-want +got):\n%s", n.Name(), diff)
		}
	}
}

// a single gate toggling must not affect the others.
func TestQuadIsolation(t *testing.T) {
	n := mustBuild(t, ttl.New7400)
	c := ttlsim.NewCircuit(n)
	in := ttl.PowerPins()
	for _, p := range n.PinsByRole(ttlsim.Input) {
		in[p.Name] = hi
	}
	for _, a := range []sig{lo, hi, lo} {
		in["2A"] = a
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
		want := map[string]sig{"1Y": lo, "2Y": !a, "3Y": lo, "4Y": lo}
		if diff := cmp.Diff(want, out); diff != "" {
			t.Fatalf("2A=%v (-want +got):\n%s", a, diff)
		}
	}
}

// lit segments for BCD codes 0 to 15.
var digits = [16]string{
	"abcdef", "bc", "abdeg", "abcdg", "bcfg", "acdfg", "cdefg", "abc",
	"abcdefg", "abcfg", "deg", "cdg", "bfg", "adfg", "defg", "",
}

func ref7447(in map[string]sig) map[string]sig {
	code := 0
	for i, p := range []string{"A", "B", "C", "D"} {
		if in[p] {
			code |= 1 << uint(i)
		}
	}
	lit := digits[code]
	// BI/RBO is a wired-AND pin: pulling it low also reads low on RBO.
	rbo := hi
	switch {
	case !bool(in["BI/RBO"]):
		lit = ""
		rbo = lo
	case !bool(in["LT"]):
		lit = "abcdefg"
	case !bool(in["RBI"]) && code == 0:
		lit = ""
		rbo = lo
	}
	out := map[string]sig{"RBO": rbo}
	for _, s := range "abcdefg" {
		// active low
		out[string(s)] = !sig(strings.ContainsRune(lit, s))
	}
	return out
}

func Test7447(t *testing.T) {
	n := mustBuild(t, ttl.New7447)
	if got := len(n.PinsByRole(ttlsim.Input)); got != 7 {
		t.Fatalf("expected 7 input pins, got %d", got)
	}
	hwtest.CompareFunc(t, n, ref7447)
}

func bcd(code int) map[string]sig {
	in := ttl.PowerPins()
	for i, p := range []string{"A", "B", "C", "D"} {
		in[p] = code&(1<<uint(i)) != 0
	}
	in["LT"], in["RBI"], in["BI/RBO"] = hi, hi, hi
	return in
}

func Test7447Sections(t *testing.T) {
	n := mustBuild(t, ttl.New7447)
	c := ttlsim.NewCircuit(n)
	read := func(in map[string]sig, nets ...string) map[string]sig {
		t.Helper()
		if err := c.Bind(in); err != nil {
			t.Fatal(err)
		}
		if err := c.Process(); err != nil {
			t.Fatal(err)
		}
		m := make(map[string]sig)
		for _, name := range nets {
			v, err := c.Probe(name)
			if err != nil {
				t.Fatal(err)
			}
			m[name] = v
		}
		return m
	}
	nets := []string{"zero", "ripple", "lamp", "enable", "RBO"}

	// ripple blanking of a leading zero
	in := bcd(0)
	in["RBI"] = lo
	want := map[string]sig{"zero": hi, "ripple": hi, "lamp": lo, "enable": lo, "RBO": lo}
	if diff := cmp.Diff(want, read(in, nets...)); diff != "" {
		t.Errorf("RBI low, BCD 0 (-want +got):\n%s", diff)
	}

	// no blanking on a non-zero digit
	in = bcd(5)
	in["RBI"] = lo
	want = map[string]sig{"zero": lo, "ripple": lo, "lamp": lo, "enable": hi, "RBO": hi}
	if diff := cmp.Diff(want, read(in, nets...)); diff != "" {
		t.Errorf("RBI low, BCD 5 (-want +got):\n%s", diff)
	}

	// lamp test overrides ripple blanking
	in = bcd(0)
	in["RBI"], in["LT"] = lo, lo
	want = map[string]sig{"zero": hi, "ripple": lo, "lamp": hi, "enable": hi, "RBO": hi}
	if diff := cmp.Diff(want, read(in, nets...)); diff != "" {
		t.Errorf("LT low, RBI low, BCD 0 (-want +got):\n%s", diff)
	}

	// blanking input overrides lamp test and reads back low on RBO
	in = bcd(3)
	in["BI/RBO"], in["LT"] = lo, lo
	want = map[string]sig{"zero": lo, "ripple": lo, "lamp": lo, "enable": lo, "RBO": lo}
	if diff := cmp.Diff(want, read(in, nets...)); diff != "" {
		t.Errorf("BI/RBO low, LT low, BCD 3 (-want +got):\n%s", diff)
	}

	// input conditioning lines for BCD 6 = DCBA 0110
	lines := []string{"lineA", "lineB", "lineC", "lineD", "lineE", "lineF", "lineG", "lineH", "lineI", "lineJ"}
	want = map[string]sig{
		"lineA": lo, "lineB": hi, "lineC": hi, "lineD": lo, "lineE": hi,
		"lineF": lo, "lineG": lo, "lineH": hi, "lineI": lo, "lineJ": lo,
	}
	if diff := cmp.Diff(want, read(bcd(6), lines...)); diff != "" {
		t.Errorf("BCD 6 lines (-want +got):\n%s", diff)
	}
}

func Test7447ZeroWithRBIHigh(t *testing.T) {
	n := mustBuild(t, ttl.New7447)
	out, err := n.Eval(bcd(0))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]sig{"a": lo, "b": lo, "c": lo, "d": lo, "e": lo, "f": lo, "g": hi, "RBO": hi}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestRegistry(t *testing.T) {
	if diff := cmp.Diff([]string{"7400", "7402", "7404", "7408", "7447"}, ttl.Names()); diff != "" {
		t.Fatalf("Names (-want +got):\n%s", diff)
	}
	for _, name := range ttl.Names() {
		n, err := ttl.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if n.Name() != name {
			t.Errorf("Lookup(%q) returned %q", name, n.Name())
		}
	}
	if _, err := ttl.Lookup("74181"); err == nil {
		t.Fatal("expected an error for an unknown chip")
	}
}
