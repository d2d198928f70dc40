// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttlsim

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// checkDrivers reports nets that are read by a gate or an output pin but have
// no driver.
//
func (b *Builder) checkDrivers() error {
	var errs *multierror.Error
	used := make([]bool, len(b.nets))
	for _, p := range b.pins {
		if p.Role == Output {
			used[p.net.id] = true
		}
	}
	for _, n := range b.nets {
		if n.drv.kind != noDriver {
			continue
		}
		if len(n.readers) > 0 || used[n.id] {
			errs = multierror.Append(errs, errors.Wrapf(&UnboundNetError{Net: n.name}, "%s: net has no driver", b.name))
		}
	}
	return errs.ErrorOrNil()
}

// checkPower reports circuits without exactly one power and one ground pin.
//
func (b *Builder) checkPower() error {
	var errs *multierror.Error
	for _, r := range []Role{Power, Ground} {
		count := 0
		for _, p := range b.pins {
			if p.Role == r {
				count++
			}
		}
		if count != 1 {
			errs = multierror.Append(errs, errors.Wrap(&PowerValidationError{Role: r, Count: count}, b.name))
		}
	}
	return errs.ErrorOrNil()
}

// order returns the gate evaluation order: a gate comes after all the gates
// driving its inputs. Among ready gates, declaration order wins, which makes
// the order deterministic.
//
func (b *Builder) order() ([]int, error) {
	// pending[g] is the number of inputs of gate g driven by a gate that has
	// not been ordered yet.
	pending := make([]int, len(b.gates))
	for gi, g := range b.gates {
		for _, n := range g.in {
			if n.drv.kind == gateDriver {
				pending[gi]++
			}
		}
	}
	order := make([]int, 0, len(b.gates))
	for gi := range b.gates {
		if pending[gi] == 0 {
			order = append(order, gi)
		}
	}
	for i := 0; i < len(order); i++ {
		g := b.gates[order[i]]
		for _, r := range g.out.readers {
			pending[r]--
			if pending[r] == 0 {
				order = append(order, r)
			}
		}
	}
	if len(order) < len(b.gates) {
		return nil, &CyclicCircuitError{Nets: b.loop(pending)}
	}
	return order, nil
}

// loop finds one feedback loop among the gates left with pending inputs and
// returns the names of the nets on it, in signal flow order.
//
// Every such gate has at least one input driven by another such gate, so
// walking backwards from any of them must eventually come back to a gate
// already visited.
//
func (b *Builder) loop(pending []int) []string {
	start := -1
	for gi, p := range pending {
		if p > 0 {
			start = gi
			break
		}
	}
	seen := make(map[int]int) // gate -> position in path
	var path []int
	for gi := start; ; {
		if pos, ok := seen[gi]; ok {
			path = path[pos:]
			break
		}
		seen[gi] = len(path)
		path = append(path, gi)
		for _, n := range b.gates[gi].in {
			if n.drv.kind == gateDriver && pending[n.drv.idx] > 0 {
				gi = n.drv.idx
				break
			}
		}
	}
	// path follows signals backwards.
	nets := make([]string, len(path))
	for i, gi := range path {
		nets[len(path)-1-i] = b.gates[gi].out.name
	}
	return nets
}
