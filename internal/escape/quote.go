// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape renders raw token text in a form safe for diagnostics.
package escape

import (
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\x00': '0',
	'\b':   'b',
	'\f':   'f',
	'\n':   'n',
	'\r':   'r',
	'\t':   't',
	' ':    ' ', // sentinel
}

const hexDigit = "0123456789abcdef"

// Quote returns src enclosed in double quotation marks, with control
// characters, quotation marks, backslashes and invalid UTF-8 escaped.
func Quote(src mem.RO) string {
	var sb strings.Builder
	sb.Grow(src.Len() + 2)
	sb.WriteByte('"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		switch {
		case r == utf8.RuneError && n <= 1:
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigit[src.At(0)>>4])
			sb.WriteByte(hexDigit[src.At(0)&15])
			n = 1
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				sb.WriteByte('\\')
				sb.WriteByte(b)
			} else {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigit[r>>4])
				sb.WriteByte(hexDigit[r&15])
			}
		case r == '"' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(byte(r))
		default:
			sb.WriteRune(r)
		}
		src = src.SliceFrom(n)
	}
	sb.WriteByte('"')
	return sb.String()
}
