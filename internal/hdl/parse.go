// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"github.com/pkg/errors"
)

// Assignment is a pin=value pair.
//
type Assignment struct {
	Pin   string
	Value string
	Pos   Pos
}

// Parser is a simplistic parser for comma separated pin assignments.
//
type Parser struct {
	Input string
	l     *Lexer
	done  bool
}

// Next returns the next assignment in the input. It returns nil, nil once the
// input is exhausted.
//
func (p *Parser) Next() (*Assignment, error) {
	if p.done {
		return nil, nil
	}
	if p.l == nil {
		p.l = NewLexer(p.Input)
	}

	i := p.l.Lex()
	if i.Type == EOF {
		p.done = true
		return nil, nil
	}
	if i.Type != Ident {
		return nil, p.fail(i.Pos, "expected pin name, got "+i.String())
	}
	a := &Assignment{Pin: i.Value, Pos: i.Pos}

	if i = p.l.Lex(); i.Type != Equal {
		return nil, p.fail(i.Pos, "expected '=' after "+a.Pin+", got "+i.String())
	}
	if i = p.l.Lex(); i.Type != Ident {
		return nil, p.fail(i.Pos, "expected value for "+a.Pin+", got "+i.String())
	}
	a.Value = i.Value

	switch i = p.l.Lex(); i.Type {
	case EOF:
		p.done = true
	case Comma:
	default:
		return nil, p.fail(i.Pos, "expected ',' or end of input, got "+i.String())
	}
	return a, nil
}

func (p *Parser) fail(pos Pos, msg string) error {
	p.done = true
	return parseError(p.Input, pos, msg)
}

// Parse returns all the assignments in input.
//
func Parse(input string) ([]Assignment, error) {
	var as []Assignment
	p := &Parser{Input: input}
	for {
		a, err := p.Next()
		if err != nil {
			return nil, err
		}
		if a == nil {
			return as, nil
		}
		as = append(as, *a)
	}
}

func parseError(in string, pos Pos, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
