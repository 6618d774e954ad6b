// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jvalid implements a recognizer for JSON text.
//
// The recognizer reports whether its input conforms to the JSON grammar, and
// if not, describes the first problem it found. It does not construct values.
//
// # Scanning
//
// The Scanner type implements a lexical scanner over an input held in memory.
// Call its Next method to obtain each token in turn. Unlike many scanners,
// layout (spaces, line feeds, carriage returns and tabs) is reported as
// tokens, one per character:
//
//	s := jvalid.NewScanner(input)
//	for {
//	   tok, err := s.Next()
//	   if err != nil {
//	      log.Fatalf("Scanning failed: %v", err)
//	   } else if tok.Kind == jvalid.EOF {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// The scanner accepts only a subset of JSON literals: numbers are unsigned
// runs of digits with at most one decimal point, and strings are any text
// between quotation marks, with no escape processing.
//
// # Recognizing
//
// The Recognizer type pulls tokens from a Scanner and checks them against the
// grammar by recursive descent. Parse returns nil if the input is valid;
// otherwise the error has concrete type [*Error]:
//
//	r := jvalid.NewRecognizer(jvalid.NewScanner(input))
//	if err := r.Parse(); err != nil {
//	   log.Fatalf("Invalid JSON: %v", err)
//	}
//
// The Kind field of an Error identifies the condition, and each ErrorKind is
// itself an error usable with errors.Is:
//
//	if errors.Is(err, jvalid.ErrTrailingComma) {
//	   log.Print("Remove the last comma")
//	}
//
// Between tokens only spaces and line feeds are skipped. A carriage return or
// tab in those positions is reported as a grammar error.
package jvalid
