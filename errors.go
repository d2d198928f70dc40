// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidOperandError is returned when a value that is not a Signal is used
// as a gate operand or a pin value. There is no implicit conversion from
// numbers or text.
//
type InvalidOperandError struct {
	Value interface{}
	// Reason is an optional explanation.
	Reason string
}

func (e *InvalidOperandError) Error() string {
	s := fmt.Sprintf("invalid operand %#v of type %T", e.Value, e.Value)
	if e.Reason != "" {
		s += ": " + e.Reason
	}
	return s
}

// ArityError is returned when a gate or an expansion gets the wrong number of
// inputs.
//
type ArityError struct {
	Gate GateType
	Want int
	Got  int
	// AtLeast is set when Want is a minimum (fan-in expansion).
	AtLeast bool
}

func (e *ArityError) Error() string {
	w := strconv.Itoa(e.Want)
	if e.AtLeast {
		w = "at least " + w
	}
	return e.Gate.String() + ": expected " + w + " input(s), got " + strconv.Itoa(e.Got)
}

// UnboundNetError is returned when a net is read before anything drove it.
//
type UnboundNetError struct {
	Net string
}

func (e *UnboundNetError) Error() string {
	return "net " + strconv.Quote(e.Net) + " read before being bound"
}

// ConflictError is returned when a net or pin gets a second driver or is
// declared twice.
//
type ConflictError struct {
	Name   string
	Reason string
}

func (e *ConflictError) Error() string {
	return strconv.Quote(e.Name) + ": " + e.Reason
}

// CyclicCircuitError is returned by Build when the gates form a feedback loop.
// Nets lists the nets found on the loop.
//
type CyclicCircuitError struct {
	Nets []string
}

func (e *CyclicCircuitError) Error() string {
	return "feedback loop through nets " + strings.Join(e.Nets, " -> ")
}

// MissingPinError is returned by Bind when input, power or ground pins have
// no value.
//
type MissingPinError struct {
	Pins []string
}

func (e *MissingPinError) Error() string {
	return "unbound pin(s): " + strings.Join(e.Pins, ", ")
}

// PowerValidationError is returned by Bind when a power pin is not High or a
// ground pin is not Low, and by Build when a circuit does not have exactly
// one power and one ground pin. In the latter case, Pin is empty and Count
// is the number of pins with the given Role.
//
type PowerValidationError struct {
	Pin   string
	Role  Role
	Got   Signal
	Count int
}

func (e *PowerValidationError) Error() string {
	if e.Pin == "" {
		return strconv.Itoa(e.Count) + " " + e.Role.String() + " pin(s), expected exactly 1"
	}
	want := High
	if e.Role == Ground {
		want = Low
	}
	return e.Role.String() + " pin " + e.Pin + " is " + e.Got.String() + ", expected " + want.String()
}

// NotProcessedError is returned when outputs are read before a successful
// Process for the current binding.
//
type NotProcessedError struct {
	Stage Stage
}

func (e *NotProcessedError) Error() string {
	return "outputs not available in stage " + e.Stage.String()
}
