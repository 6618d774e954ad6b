// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalid

import "fmt"

// ErrorKind identifies one of the conditions that cause recognition to fail.
// An ErrorKind is itself an error, so that callers may write:
//
//	if errors.Is(err, jvalid.ErrTrailingComma) { ... }
type ErrorKind int

// Constants defining the valid ErrorKind values.
const (
	// Lexical errors, reported by the Scanner.
	ErrMalformedNumber    ErrorKind = iota + 1 // a misplaced or repeated decimal point
	ErrUnterminatedString                      // no closing quotation mark
	ErrUnknownKeyword                          // a bareword other than true, false, null
	ErrUnknownCharacter                        // a character that begins no token
	ErrPeekFailed                              // no input following a decimal point

	// Grammar errors, reported by the Recognizer.
	ErrExpectedString // an unexpected token
	ErrTrailingComma  // a comma before the closing brace of an object
)

var errorKindStr = [...]string{
	ErrMalformedNumber:    "malformed number",
	ErrUnterminatedString: "unterminated string",
	ErrUnknownKeyword:     "unknown keyword",
	ErrUnknownCharacter:   "unknown character",
	ErrPeekFailed:         "peek failed",
	ErrExpectedString:     "unexpected token",
	ErrTrailingComma:      "trailing comma",
}

func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(errorKindStr) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return errorKindStr[k]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// IsGrammar reports whether k is reported by the Recognizer rather than the
// Scanner.
func (k ErrorKind) IsGrammar() bool { return k == ErrExpectedString || k == ErrTrailingComma }

// Error is the concrete type of errors reported by the Scanner and the
// Recognizer. The Error method renders the diagnostic line for the kind.
type Error struct {
	Kind   ErrorKind
	Line   int    // 1-based line number, counting line feeds scanned so far
	Offset int    // byte offset in the input where the error was detected
	Text   string // the offending text, for unknown keywords and characters

	// For grammar errors, the kind of token required (Empty if any value
	// would have been accepted) and the kind of token found.
	Want, Got Kind
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrMalformedNumber:
		return fmt.Sprintf("Malformed floating point number at line number: %d", e.Line)
	case ErrUnterminatedString:
		return fmt.Sprintf("Missing quotation mark for string at line number: %d", e.Line)
	case ErrUnknownKeyword:
		return "Unknown keyword: " + e.Text
	case ErrUnknownCharacter:
		return "Unknown character: " + e.Text
	case ErrPeekFailed:
		return `Failed to peek after "."`
	case ErrExpectedString:
		return "Parse error: Expected a string."
	case ErrTrailingComma:
		return "Parse error: Trailing comma found at end of object."
	}
	return e.Kind.String()
}

// Is reports whether target is the ErrorKind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}
