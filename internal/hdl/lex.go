// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdl implements the lexer and parser for pin assignment lists like
// "A=H, B=L, BI/RBO=HIGH".
//
package hdl

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Type is a token type.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	Comma
	Equal
)

// Pos is a byte offset in the input.
//
type Pos int

// Item is a token.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value string
}

func (i Item) String() string {
	switch i.Type {
	case EOF:
		return "end of input"
	case Ident:
		return "identifier " + strconv.Quote(i.Value)
	}
	return strconv.Quote(i.Value)
}

// stateFn is a lexer state. It returns the next state, or nil to return to
// lexInit.
//
type stateFn func(l *Lexer) stateFn

// Lexer splits its input into tokens.
//
type Lexer struct {
	input string
	start int
	pos   int
	width int
	item  *Item
	state stateFn
}

// NewLexer returns a new lexer for the given input.
//
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, state: lexInit}
}

// Lex returns the next token.
//
func (l *Lexer) Lex() Item {
	for l.item == nil {
		next := l.state(l)
		if next == nil {
			next = lexInit
		}
		l.state = next
	}
	i := *l.item
	l.item = nil
	return i
}

const eof = -1

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

func (l *Lexer) backup() { l.pos -= l.width }

func (l *Lexer) ignore() { l.start = l.pos }

func (l *Lexer) emit(t Type) {
	l.item = &Item{Type: t, Pos: Pos(l.start), Value: l.input[l.start:l.pos]}
	l.start = l.pos
}

func isIdent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '/'
}

func lexInit(l *Lexer) stateFn {
	r := l.next()
	switch {
	case r == eof:
		return lexEOF
	case unicode.IsSpace(r):
		for unicode.IsSpace(r) {
			r = l.next()
		}
		l.backup()
		l.ignore()
	case isIdent(r):
		return lexIdent
	case r == ',':
		l.emit(Comma)
	case r == '=':
		l.emit(Equal)
	default:
		l.emit(Raw)
		return lexEOF
	}
	return nil
}

func lexIdent(l *Lexer) stateFn {
	r := l.next()
	for isIdent(r) {
		r = l.next()
	}
	l.backup()
	l.emit(Ident)
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *Lexer) stateFn {
	l.start = l.pos
	l.emit(EOF)
	return lexEOF
}
