// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jvalid/internal/escape"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00", `"\0"`},
		{"\x01\x1e", `"\u0001\u001e"`},
		{`a "b" c\d`, `"a \"b\" c\\d"`},
		{"café", "\"café\""},
		{"bad\xffbyte", `"bad\xffbyte"`},
	}
	for _, test := range tests {
		got := escape.Quote(mem.S(test.input))
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}
