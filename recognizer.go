// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalid

import (
	"io"

	"github.com/creachadair/mds/mapset"
)

// A Recognizer checks that the tokens produced by a Scanner conform to the
// JSON grammar. It holds a window of two tokens: the current token, which is
// the subject of each grammar decision, and one token of lookahead.
//
// A Recognizer is good for one call to Parse.
type Recognizer struct {
	s         *Scanner
	cur, next Token
	trace     func(Token)
	used      bool
}

// NewRecognizer constructs a new Recognizer that consumes tokens from s.
func NewRecognizer(s *Scanner) *Recognizer { return &Recognizer{s: s} }

// SetTrace configures r to call f with each token it reads from the scanner.
// If f == nil, tracing is disabled.
func (r *Recognizer) SetTrace(f func(Token)) { r.trace = f }

// Parse reports whether the input is a valid JSON text. It returns nil if so;
// otherwise it returns an error of concrete type [*Error] describing the first
// problem found.
//
// If the first token of the input does not open an object or an array, it is
// accepted as a scalar value without further inspection.
//
// Parse panics if it is called more than once.
func (r *Recognizer) Parse() (err error) {
	if r.used {
		panic("jvalid: Parse called twice on the same Recognizer")
	}
	r.used = true
	defer r.recoverParseError(&err)

	r.advance()
	r.advance()
	switch r.cur.Kind {
	case LBrace:
		r.object()
	case LSquare:
		r.array()
	}
	return nil
}

func (r *Recognizer) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		if err, ok := perr.(*Error); ok {
			*errp = err
			return
		}
		panic(perr)
	}
}

// object consumes an object, including its closing brace.
// Precondition: cur == LBrace.
func (r *Recognizer) object() {
	r.require(LBrace)
	r.whitespace()
	if r.cur.Kind == RBrace {
		r.advance()
		return // empty object
	}
	if r.cur.Kind != String {
		r.syntaxError(ErrExpectedString, String)
	}
	r.member()

	for r.cur.Kind == Comma {
		r.advance()
		r.whitespace()
		switch r.cur.Kind {
		case String:
			r.member()
		case RBrace:
			r.syntaxError(ErrTrailingComma, String)
		default:
			r.syntaxError(ErrExpectedString, String)
		}
	}
	r.require(RBrace)
}

// member consumes a single "key": value member of an object.
// Precondition: cur == String.
func (r *Recognizer) member() {
	r.advance()
	r.whitespace()
	r.require(Colon)
	r.value()
}

// array consumes an array, including its closing bracket.
// Precondition: cur == LSquare.
func (r *Recognizer) array() {
	r.require(LSquare)
	if r.cur.Kind.IsLayout() && r.next.Kind == RSquare {
		// An empty array padded with a single layout token. Only space and
		// line feed are skipped here; a lone tab or carriage return fails.
		r.whitespace()
		r.require(RSquare)
		return
	}
	r.whitespace()
	if r.cur.Kind == RSquare {
		r.advance()
		return // empty array
	}
	for {
		r.value()
		if r.cur.Kind == RSquare {
			r.advance()
			return // end of array
		}
		r.require(Comma)
	}
}

// value consumes a single value of any type, with surrounding layout.
func (r *Recognizer) value() {
	r.whitespace()
	switch r.cur.Kind {
	case String, Number, True, False, Null:
		r.advance()
	case LBrace:
		r.object()
	case LSquare:
		r.array()
	default:
		r.syntaxError(ErrExpectedString, Empty)
	}
	r.whitespace()
}

// skippable is the set of layout kinds discarded between tokens. Carriage
// returns and tabs are layout, but are not skipped.
var skippable = mapset.New(Space, LineFeed)

// whitespace advances past skippable layout tokens.
func (r *Recognizer) whitespace() {
	for skippable.Has(r.cur.Kind) {
		r.advance()
	}
}

// require consumes the current token, which must have the given kind.
func (r *Recognizer) require(kind Kind) {
	if r.cur.Kind != kind {
		r.syntaxError(ErrExpectedString, kind)
	}
	r.advance()
}

// advance shifts the lookahead token into the current position and reads a
// new lookahead token from the scanner.
func (r *Recognizer) advance() {
	tok, err := r.s.Next()
	if err != nil {
		panic(err)
	}
	if r.trace != nil {
		r.trace(tok)
	}
	r.cur, r.next = r.next, tok
}

func (r *Recognizer) syntaxError(kind ErrorKind, want Kind) {
	panic(&Error{
		Kind:   kind,
		Line:   r.cur.Line,
		Offset: r.cur.Span.Pos,
		Text:   r.cur.Text(),
		Want:   want,
		Got:    r.cur.Kind,
	})
}

// Check reads the whole of r and reports whether it is a valid JSON text.
// It returns nil if so, an error of concrete type [*Error] if the text is
// not valid, or any error from reading r.
func Check(r io.Reader) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return NewRecognizer(NewScanner(src)).Parse()
}

// CheckString reports whether src is a valid JSON text, as [Check].
func CheckString(src string) error {
	return NewRecognizer(NewScannerString(src)).Parse()
}
