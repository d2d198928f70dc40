// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

import (
	"strings"

	"github.com/hashicorp/go-hclog"
)

// A Tracer receives one record per gate evaluation. The in slice is only
// valid for the duration of the call.
//
type Tracer interface {
	Trace(gate string, t GateType, in []Signal, out Signal)
}

// TracerFunc adapts a function to the Tracer interface.
//
type TracerFunc func(gate string, t GateType, in []Signal, out Signal)

// Trace implements Tracer.
//
func (f TracerFunc) Trace(gate string, t GateType, in []Signal, out Signal) {
	f(gate, t, in, out)
}

type hclogTracer struct {
	l hclog.Logger
}

func (t hclogTracer) Trace(gate string, typ GateType, in []Signal, out Signal) {
	if !t.l.IsTrace() {
		return
	}
	t.l.Trace("gate", "net", gate, "type", typ.String(), "in", signals(in), "out", out.String())
}

// HCLogTracer returns a Tracer that logs every gate evaluation at trace level.
//
func HCLogTracer(l hclog.Logger) Tracer {
	return hclogTracer{l}
}

func signals(in []Signal) string {
	var b strings.Builder
	for i, s := range in {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
