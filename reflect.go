// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

import (
	"reflect"
	"sort"

	"github.com/pkg/errors"
)

var signalType = reflect.TypeOf(Signal(false))

// pinFields returns the pin name to field index mapping for struct type typ.
//
// Only exported fields of type Signal are considered. The pin name is given
// by the field tag `pin:"NAME"` and defaults to the field name. A tag of "-"
// skips the field.
//
func pinFields(typ reflect.Type) (map[string]int, error) {
	fs := make(map[string]int)
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		if f.PkgPath != "" {
			continue
		}
		pin := f.Name
		tag, ok := f.Tag.Lookup("pin")
		if ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				pin = tag
			}
		}
		if f.Type != signalType {
			if ok {
				return nil, errors.Errorf("unsupported type %q for pin field %q in %q", f.Type, f.Name, typ.Name())
			}
			continue
		}
		if _, dup := fs[pin]; dup {
			return nil, errors.Wrapf(&ConflictError{Name: pin, Reason: "pin mapped twice"}, "field %q in %q", f.Name, typ.Name())
		}
		fs[pin] = i
	}
	return fs, nil
}

func structValue(v interface{}, settable bool) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return rv, &InvalidOperandError{Value: v, Reason: "nil pointer"}
		}
		rv = rv.Elem()
	} else if settable {
		return rv, &InvalidOperandError{Value: v, Reason: "not a pointer to a struct"}
	}
	if rv.Kind() != reflect.Struct {
		return rv, &InvalidOperandError{Value: v, Reason: "not a struct"}
	}
	return rv, nil
}

// PinMap returns the pin values held by the Signal fields of struct v (or a
// pointer to it). For example:
//
//	type bcd struct {
//		VCC, GND   ttlsim.Signal
//		A, B, C, D ttlsim.Signal
//		BI         ttlsim.Signal `pin:"BI/RBO"`
//	}
//
//	m, err := ttlsim.PinMap(bcd{VCC: ttlsim.High, A: ttlsim.High})
//
func PinMap(v interface{}) (map[string]Signal, error) {
	rv, err := structValue(v, false)
	if err != nil {
		return nil, err
	}
	fs, err := pinFields(rv.Type())
	if err != nil {
		return nil, err
	}
	m := make(map[string]Signal, len(fs))
	for pin, i := range fs {
		m[pin] = Signal(rv.Field(i).Bool())
	}
	return m, nil
}

// ScanPins copies the values in m into the Signal fields of the struct pointed
// to by v. Every mapped field must have a value in m. Extra values in m are
// ignored, so the result of Outputs can be scanned into a struct that only
// holds the pins of interest.
//
func ScanPins(m map[string]Signal, v interface{}) error {
	rv, err := structValue(v, true)
	if err != nil {
		return err
	}
	fs, err := pinFields(rv.Type())
	if err != nil {
		return err
	}
	var missing []string
	for pin, i := range fs {
		s, ok := m[pin]
		if !ok {
			missing = append(missing, pin)
			continue
		}
		rv.Field(i).SetBool(bool(s))
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errors.Wrapf(&MissingPinError{Pins: missing}, "scanning into %s", rv.Type())
	}
	return nil
}
