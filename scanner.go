// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalid

import (
	"strings"
	"unicode"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an input held in memory. Each call to
// Next returns the next token of the input, or reports an error.
//
// A line feed is appended to the input when the scanner is constructed, so
// every construct in the input is followed by at least one character. Once
// the input is exhausted, Next reports EOF tokens indefinitely.
type Scanner struct {
	src   mem.RO // input, including the trailing line feed
	pos   int    // offset of cur in src
	width int    // size in bytes of cur; 0 past the end of src
	cur   rune   // current character, or 0 past the end of src
	lines int    // line feeds scanned so far
	err   error
}

// NewScanner constructs a new lexical scanner that consumes src. The scanner
// does not retain src.
func NewScanner(src []byte) *Scanner {
	buf := make([]byte, len(src)+1)
	copy(buf, src)
	buf[len(src)] = '\n'
	return newScanner(mem.B(buf))
}

// NewScannerString constructs a new lexical scanner that consumes src.
func NewScannerString(src string) *Scanner { return newScanner(mem.S(src + "\n")) }

func newScanner(src mem.RO) *Scanner {
	s := &Scanner{src: src}
	s.advance()
	return s
}

// Line reports the 1-based line number of the scanner, counting the line
// feed tokens scanned so far. Line feeds inside string literals do not count.
func (s *Scanner) Line() int { return s.lines + 1 }

// Err returns the error that terminated scanning, or nil.
func (s *Scanner) Err() error { return s.err }

// Next returns the next token of the input and advances past it. After an
// error, Next reports the same error on every subsequent call.
func (s *Scanner) Next() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	tok, err := s.scan()
	if err != nil {
		s.err = err
		return Token{}, err
	}
	s.advance()
	return tok, nil
}

// scan classifies the current character and consumes the rest of its token,
// leaving the cursor on the last character of the token.
func (s *Scanner) scan() (Token, error) {
	line := s.Line()
	switch ch := s.cur; {
	case ch == ' ':
		return s.single(Space, line), nil
	case ch == '\n':
		s.lines++
		return s.single(LineFeed, line), nil
	case ch == '\r':
		return s.single(CarriageReturn, line), nil
	case ch == '\t':
		return s.single(Tab, line), nil
	case ch == 0:
		return s.single(EOF, line), nil
	case ch == '.':
		next, ok := s.peek()
		if !ok {
			return Token{}, s.fail(ErrPeekFailed, ".")
		} else if isDigit(next) {
			return Token{}, s.fail(ErrMalformedNumber, "")
		}
		return s.single(DecimalPoint, line), nil
	case ch == '"':
		return s.scanString(line)
	case isDigit(ch):
		return s.scanNumber(line)
	case unicode.IsLetter(ch):
		return s.scanName(line)
	}
	if kind, ok := selfDelim(s.cur); ok {
		return s.single(kind, line), nil
	}
	return Token{}, s.fail(ErrUnknownCharacter, string(s.cur))
}

// scanString consumes a quoted string. The text of the token excludes the
// quotation marks; backslash has no special meaning.
func (s *Scanner) scanString(line int) (Token, error) {
	s.advance() // skip the opening quote
	start := s.pos
	for s.cur != '"' {
		if s.pos >= s.src.Len() {
			return Token{}, s.fail(ErrUnterminatedString, "")
		}
		s.advance()
	}
	return s.token(String, start, s.pos, line), nil
}

// scanNumber consumes a maximal run of digits and decimal points.
func (s *Scanner) scanNumber(line int) (Token, error) {
	start := s.pos
	s.readWhile(isNumRune)
	tok := s.token(Number, start, s.pos+s.width, line)
	if !validNumber(tok.text) {
		return Token{}, s.fail(ErrMalformedNumber, "")
	}
	return tok, nil
}

// scanName consumes a maximal run of letters, which must spell one of the
// reserved words, ignoring case.
func (s *Scanner) scanName(line int) (Token, error) {
	start := s.pos
	s.readWhile(unicode.IsLetter)
	tok := s.token(Empty, start, s.pos+s.width, line)
	for _, kw := range keywords {
		if mem.EqualFold(tok.text, kw.name) {
			tok.Kind = kw.kind
			return tok, nil
		}
	}
	return Token{}, s.fail(ErrUnknownKeyword, tok.Text())
}

var keywords = [...]struct {
	name mem.RO
	kind Kind
}{
	{mem.S("true"), True},
	{mem.S("false"), False},
	{mem.S("null"), Null},
}

// advance moves the cursor to the next character of the input.
func (s *Scanner) advance() {
	s.pos += s.width
	if s.pos >= s.src.Len() {
		s.pos, s.cur, s.width = s.src.Len(), 0, 0
		return
	}
	s.cur, s.width = mem.DecodeRune(s.src.SliceFrom(s.pos))
}

// peek returns the character following the cursor without consuming it.
// It reports false if the cursor is on the last character of the input.
func (s *Scanner) peek() (rune, bool) {
	next := s.pos + s.width
	if next >= s.src.Len() {
		return 0, false
	}
	ch, _ := mem.DecodeRune(s.src.SliceFrom(next))
	return ch, true
}

// readWhile advances the cursor while the character following it matches f.
func (s *Scanner) readWhile(f func(rune) bool) {
	for {
		ch, ok := s.peek()
		if !ok || !f(ch) {
			return
		}
		s.advance()
	}
}

func (s *Scanner) single(kind Kind, line int) Token {
	return s.token(kind, s.pos, s.pos+s.width, line)
}

func (s *Scanner) token(kind Kind, pos, end, line int) Token {
	return Token{
		Kind: kind,
		Span: Span{Pos: pos, End: end},
		Line: line,
		text: s.src.Slice(pos, end),
	}
}

func (s *Scanner) fail(kind ErrorKind, text string) error {
	return &Error{Kind: kind, Line: s.Line(), Offset: s.pos, Text: text}
}

func isDigit(ch rune) bool   { return unicode.IsDigit(ch) }
func isNumRune(ch rune) bool { return ch == '.' || isDigit(ch) }

// validNumber reports whether a decimal point in text, if any, is unique and
// is neither the first nor the last character.
func validNumber(text mem.RO) bool {
	i := mem.IndexByte(text, '.')
	if i < 0 {
		return true
	} else if mem.IndexByte(text.SliceFrom(i+1), '.') >= 0 {
		return false
	}
	return i > 0 && i < text.Len()-1
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Empty, false
}
