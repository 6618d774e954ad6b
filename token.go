// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalid

import (
	"fmt"

	"github.com/creachadair/jvalid/internal/escape"
	"github.com/creachadair/mds/mapset"
	"go4.org/mem"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Empty Kind = iota // uninitialized token, never produced by the scanner

	// Layout and control.
	EOF            // end of input
	Space          // space " "
	LineFeed       // line feed "\n"
	CarriageReturn // carriage return "\r"
	Tab            // horizontal tab "\t"

	// Punctuation.
	LBrace       // left brace "{"
	RBrace       // right brace "}"
	LSquare      // left square bracket "["
	RSquare      // right square bracket "]"
	Colon        // colon ":"
	Comma        // comma ","
	DecimalPoint // a decimal point "." outside a number

	// Literals and keywords.
	String // quoted string
	Number // number: digits with an optional fraction
	True   // constant: true
	False  // constant: false
	Null   // constant: null
)

var kindStr = [...]string{
	Empty:          "empty",
	EOF:            "end of input",
	Space:          "space",
	LineFeed:       "line feed",
	CarriageReturn: "carriage return",
	Tab:            "tab",
	LBrace:         `"{"`,
	RBrace:         `"}"`,
	LSquare:        `"["`,
	RSquare:        `"]"`,
	Colon:          `":"`,
	Comma:          `","`,
	DecimalPoint:   `"."`,
	String:         "string",
	Number:         "number",
	True:           "true",
	False:          "false",
	Null:           "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", v)
	}
	return kindStr[v]
}

// layout is the set of kinds that carry no grammatical meaning.
var layout = mapset.New(Space, LineFeed, CarriageReturn, Tab)

// IsLayout reports whether k is one of the whitespace kinds.
func (k Kind) IsLayout() bool { return layout.Has(k) }

// IsKeyword reports whether k is one of the reserved words true, false, null.
func (k Kind) IsKeyword() bool { return k == True || k == False || k == Null }

// A Token is a single lexical unit of the input: the raw text of the token
// together with its kind. Tokens are immutable.
//
// The text of a String token excludes its enclosing quotation marks, and no
// escape sequences are interpreted.
type Token struct {
	Kind Kind
	Span Span // location of the token text in the input
	Line int  // 1-based line on which the token begins

	text mem.RO
}

// Text returns a copy of the raw text of t.
func (t Token) Text() string { return t.text.StringCopy() }

// String renders t in the form (kind: "text") for debugging.
func (t Token) String() string {
	return fmt.Sprintf("(%v: %s)", t.Kind, escape.Quote(t.text))
}
