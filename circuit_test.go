package ttlsim_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/db47h/ttlsim"
	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
)

// halfAdder returns a half adder in a small package with power pins.
func halfAdder(t *testing.T) *ttlsim.Netlist {
	t.Helper()
	b := ttlsim.NewBuilder("half_adder")
	a := b.Input("a", 1)
	c := b.Input("b", 2)
	b.Ground("GND", 3)
	sum := b.Net("sum")
	b.Drive(sum, ttlsim.Xor, a, c)
	b.Output("s", 4, sum)
	carry := b.Net("carry")
	b.Drive(carry, ttlsim.And, a, c)
	b.Output("c", 5, carry)
	b.Power("VCC", 6)
	n, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func pins(a, b ttlsim.Signal) map[string]ttlsim.Signal {
	return map[string]ttlsim.Signal{"VCC": hi, "GND": lo, "a": a, "b": b}
}

func TestCircuit_lifecycle(t *testing.T) {
	c := ttlsim.NewCircuit(halfAdder(t))
	if c.Stage() != ttlsim.Declared {
		t.Fatalf("new circuit in stage %v", c.Stage())
	}
	var npe *ttlsim.NotProcessedError
	if _, err := c.Outputs(); !errors.As(err, &npe) {
		t.Fatalf("expected NotProcessedError, got %v", err)
	}

	if err := c.Bind(pins(hi, hi)); err != nil {
		t.Fatal(err)
	}
	if c.Stage() != ttlsim.InputsBound {
		t.Fatalf("stage %v after Bind", c.Stage())
	}
	if _, err := c.Outputs(); !errors.As(err, &npe) || npe.Stage != ttlsim.InputsBound {
		t.Fatalf("expected NotProcessedError in InputsBound stage, got %v", err)
	}
	if err := c.Process(); err != nil {
		t.Fatal(err)
	}
	if c.Stage() != ttlsim.Processed {
		t.Fatalf("stage %v after Process", c.Stage())
	}
	out, err := c.Outputs()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]ttlsim.Signal{"s": lo, "c": hi}, out); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	// re-binding invalidates outputs
	if err := c.Bind(pins(hi, lo)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Outputs(); !errors.As(err, &npe) {
		t.Fatalf("expected NotProcessedError after re-bind, got %v", err)
	}
}

func TestCircuit_idempotent(t *testing.T) {
	c := ttlsim.NewCircuit(halfAdder(t))
	if err := c.Bind(pins(hi, lo)); err != nil {
		t.Fatal(err)
	}
	var first map[string]ttlsim.Signal
	for i := 0; i < 3; i++ {
		if err := c.Process(); err != nil {
			t.Fatal(err)
		}
		out, err := c.Outputs()
		if err != nil {
			t.Fatal(err)
		}
		if first == nil {
			first = out
			continue
		}
		if diff := cmp.Diff(first, out); diff != "" {
			t.Fatalf("pass %d (-first +got):\n%s", i, diff)
		}
	}
}

func TestCircuit_bindErrors(t *testing.T) {
	n := halfAdder(t)
	data := []struct {
		name  string
		in    map[string]ttlsim.Signal
		check func(err error) bool
	}{
		{"missing", map[string]ttlsim.Signal{"a": hi}, func(err error) bool {
			var e *ttlsim.MissingPinError
			return errors.As(err, &e) && cmp.Equal(e.Pins, []string{"b", "GND", "VCC"})
		}},
		{"power low", map[string]ttlsim.Signal{"VCC": lo, "GND": lo, "a": hi, "b": hi}, func(err error) bool {
			var e *ttlsim.PowerValidationError
			return errors.As(err, &e) && e.Pin == "VCC" && e.Role == ttlsim.Power
		}},
		{"ground high", map[string]ttlsim.Signal{"VCC": hi, "GND": hi, "a": hi, "b": hi}, func(err error) bool {
			var e *ttlsim.PowerValidationError
			return errors.As(err, &e) && e.Pin == "GND" && e.Role == ttlsim.Ground
		}},
		{"output pin", map[string]ttlsim.Signal{"VCC": hi, "GND": lo, "a": hi, "b": hi, "s": hi}, isConflict},
		{"unknown pin", map[string]ttlsim.Signal{"VCC": hi, "GND": lo, "a": hi, "b": hi, "x": hi}, func(err error) bool {
			return strings.Contains(err.Error(), `unknown pin "x"`)
		}},
	}
	for _, d := range data {
		c := ttlsim.NewCircuit(n)
		// a failed Bind discards any previous binding
		if err := c.Bind(pins(lo, lo)); err != nil {
			t.Fatal(err)
		}
		err := c.Bind(d.in)
		if err == nil {
			t.Errorf("%s: expected an error", d.name)
			continue
		}
		if !d.check(err) {
			t.Errorf("%s: unexpected error %v", d.name, err)
		}
		if c.Stage() != ttlsim.Declared {
			t.Errorf("%s: stage %v after failed Bind", d.name, c.Stage())
		}
		if err = c.Process(); !isUnbound(err) {
			t.Errorf("%s: Process after failed Bind: expected UnboundNetError, got %v", d.name, err)
		}
	}
}

func TestCircuit_processWithoutBind(t *testing.T) {
	c := ttlsim.NewCircuit(halfAdder(t))
	err := c.Process()
	if !isUnbound(err) {
		t.Fatalf("expected UnboundNetError, got %v", err)
	}
	if _, err = c.Outputs(); err == nil {
		t.Fatal("got outputs from a failed Process")
	}
}

func TestCircuit_netValues(t *testing.T) {
	c := ttlsim.NewCircuit(halfAdder(t))
	if _, err := c.Probe("sum"); err == nil {
		t.Fatal("expected an error before Process")
	}
	if err := c.Bind(pins(lo, hi)); err != nil {
		t.Fatal(err)
	}
	if err := c.Process(); err != nil {
		t.Fatal(err)
	}
	for net, want := range map[string]ttlsim.Signal{"sum": hi, "carry": lo, "a": lo, "VCC": hi} {
		got, err := c.Probe(net)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("net %s = %v, expected %v", net, got, want)
		}
	}
	if _, err := c.Probe("nope"); err == nil {
		t.Error("expected an error for an unknown net")
	}
	if v, err := c.Output("c"); err != nil || v != lo {
		t.Errorf("Output(c) = %v, %v", v, err)
	}
	if _, err := c.Output("a"); err == nil {
		t.Error("Output on an input pin should fail")
	}
}

// a constant net fed by power pins.
func TestCircuit_powerNets(t *testing.T) {
	b := ttlsim.NewBuilder("const")
	vcc := b.Power("VCC", 2)
	gnd := b.Ground("GND", 1)
	b.Output("one", 3, b.Gate(ttlsim.Or, vcc, gnd))
	b.Output("zero", 4, b.Gate(ttlsim.And, vcc, gnd))
	n, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	out, err := n.Eval(map[string]ttlsim.Signal{"VCC": hi, "GND": lo})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]ttlsim.Signal{"one": hi, "zero": lo}, out); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestCircuit_trace(t *testing.T) {
	var buf bytes.Buffer
	l := hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Level:  hclog.Trace,
		Output: &buf,
	})
	n := halfAdder(t)
	if _, err := n.Eval(pins(hi, lo), ttlsim.WithLogger(l), ttlsim.WithTracer(ttlsim.HCLogTracer(l))); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	for _, want := range []string{"net=sum", "type=XOR", "net=carry", "type=AND", "inputs bound", "processed"} {
		if !strings.Contains(s, want) {
			t.Errorf("%q not found in log output:\n%s", want, s)
		}
	}

	// trace level off: no gate records
	buf.Reset()
	l.SetLevel(hclog.Info)
	if _, err := n.Eval(pins(hi, lo), ttlsim.WithTracer(ttlsim.HCLogTracer(l))); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output:\n%s", buf.String())
	}
}

// independent circuits can evaluate a shared netlist concurrently.
func TestCircuit_concurrent(t *testing.T) {
	n := halfAdder(t)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		a := ttlsim.Signal(i&1 != 0)
		go func() {
			for j := 0; j < 100; j++ {
				out, err := n.Eval(pins(a, hi))
				if err == nil && out["s"] != !a {
					err = errors.New("bad sum")
				}
				if err != nil {
					errs <- err
					return
				}
			}
			errs <- nil
		}()
	}
	for i := 0; i < 4; i++ {
		if err := <-errs; err != nil {
			t.Fatal(err)
		}
	}
}
