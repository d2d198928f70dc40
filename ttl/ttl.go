// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package ttl provides gate level models of 74xx series TTL chips.
//
// Every constructor returns a frozen *ttlsim.Netlist whose pins follow the
// datasheet pinout. Power pins are named VCC and GND and must be bound High
// and Low respectively.
//
package ttl

import (
	"sort"
	"strconv"

	"github.com/db47h/ttlsim"
	"github.com/pkg/errors"
)

// common pin names
const (
	pVCC = "VCC"
	pGND = "GND"
)

// gate pin name, e.g. pin(2, "A") == "2A".
func pin(n int, suffix string) string {
	return strconv.Itoa(n) + suffix
}

var chips = map[string]func() (*ttlsim.Netlist, error){
	"7400": New7400,
	"7402": New7402,
	"7404": New7404,
	"7408": New7408,
	"7447": New7447,
}

// Names returns the part numbers known to Lookup, in ascending order.
//
func Names() []string {
	ns := make([]string, 0, len(chips))
	for n := range chips {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// Lookup returns a new netlist for the given part number, e.g. "7447".
//
func Lookup(name string) (*ttlsim.Netlist, error) {
	fn, ok := chips[name]
	if !ok {
		return nil, errors.Errorf("unknown chip %q", name)
	}
	return fn()
}

// PowerPins returns a pin map with VCC set High and GND set Low, ready to be
// completed with input values.
//
func PowerPins() map[string]ttlsim.Signal {
	return map[string]ttlsim.Signal{pVCC: ttlsim.High, pGND: ttlsim.Low}
}
