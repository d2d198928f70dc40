// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

import (
	"github.com/db47h/ttlsim/internal/hdl"
	"github.com/pkg/errors"
)

// ParseBindings parses a comma separated list of pin assignments into a pin
// value map. Values are parsed with ParseSignal. For example:
//
//	ParseBindings("VCC=H, GND=L, A=HIGH, BI/RBO=low")
//
func ParseBindings(s string) (map[string]Signal, error) {
	as, err := hdl.Parse(s)
	if err != nil {
		return nil, err
	}
	m := make(map[string]Signal, len(as))
	for _, a := range as {
		if _, ok := m[a.Pin]; ok {
			return nil, errors.Wrapf(&ConflictError{Name: a.Pin, Reason: "pin assigned twice"}, "in %q at pos %d", s, a.Pos+1)
		}
		v, err := ParseSignal(a.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "in %q at pos %d", s, a.Pos+1)
		}
		m[a.Pin] = v
	}
	return m, nil
}
