// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

import (
	"strings"

	"github.com/pkg/errors"
)

// Signal is a logic level.
//
type Signal bool

// Logic levels.
//
const (
	Low  Signal = false
	High Signal = true
)

func (s Signal) String() string {
	if s {
		return "HIGH"
	}
	return "LOW"
}

// Not returns the complement of s.
//
func (s Signal) Not() Signal { return !s }

// SignalOf returns v as a Signal. Only bool and Signal values are accepted.
//
func SignalOf(v interface{}) (Signal, error) {
	switch s := v.(type) {
	case Signal:
		return s, nil
	case bool:
		return Signal(s), nil
	}
	return Low, &InvalidOperandError{Value: v}
}

// ParseSignal parses one of H, L, HIGH or LOW (case insensitive).
//
func ParseSignal(s string) (Signal, error) {
	switch strings.ToUpper(s) {
	case "H", "HIGH":
		return High, nil
	case "L", "LOW":
		return Low, nil
	}
	return Low, &InvalidOperandError{Value: s, Reason: "expected H, L, HIGH or LOW"}
}

// MarshalYAML implements yaml.Marshaler.
//
func (s Signal) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The booleans true and false
// and the strings accepted by ParseSignal are valid. Anything else, numbers
// and the YAML 1.1 booleans on, off, yes, no, y and n included, is an
// InvalidOperandError.
//
func (s *Signal) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		// raw scalar text
		var raw string
		if err := unmarshal(&raw); err != nil {
			return err
		}
		if l := strings.ToLower(raw); l != "true" && l != "false" {
			return errors.WithStack(&InvalidOperandError{Value: raw, Reason: "expected true, false or H/L"})
		}
		*s = Signal(t)
		return nil
	case string:
		sig, err := ParseSignal(t)
		if err != nil {
			return err
		}
		*s = sig
		return nil
	}
	return errors.WithStack(&InvalidOperandError{Value: v, Reason: "expected a boolean or H/L"})
}
