// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

// escapeASCII classifies whether an ASCII character must be escaped within
// a JSON string, where 0 means not escaped, -1 escapes with the short
// two-character sequence (e.g., \n), and +1 escapes with the six-character
// \u00XX sequence. Validity of the table is checked in TestEscapeTable.
var escapeASCII = [...]int8{
	+1, +1, +1, +1, +1, +1, +1, +1, -1, -1, -1, +1, -1, -1, +1, +1,
	+1, +1, +1, +1, +1, +1, +1, +1, +1, +1, +1, +1, +1, +1, +1, +1,
	00, 00, -1, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, -1, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
}

// NeedEscapeASCII reports whether c must be escaped.
// It assumes c < utf8.RuneSelf.
func NeedEscapeASCII(c byte) bool {
	return escapeASCII[c] != 0
}

// EscapedLen returns the length of the escape sequence for c,
// which is 2 for named escapes and 6 for \u00XX escapes.
// It assumes NeedEscapeASCII(c).
func EscapedLen(c byte) int {
	if escapeASCII[c] < 0 {
		return 2
	}
	return 6
}

// AppendEscapedASCII appends the escape sequence for c to dst.
func AppendEscapedASCII(dst []byte, c byte) []byte {
	switch c {
	case '"', '\\':
		dst = append(dst, '\\', c)
	case '\b':
		dst = append(dst, "\\b"...)
	case '\f':
		dst = append(dst, "\\f"...)
	case '\n':
		dst = append(dst, "\\n"...)
	case '\r':
		dst = append(dst, "\\r"...)
	case '\t':
		dst = append(dst, "\\t"...)
	default:
		dst = AppendEscapedUTF16(dst, uint16(c))
	}
	return dst
}

// AppendEscapedUTF16 appends x to dst as a six-character \uXXXX sequence.
func AppendEscapedUTF16(dst []byte, x uint16) []byte {
	const hex = "0123456789abcdef"
	return append(dst, '\\', 'u', hex[(x>>12)&0xf], hex[(x>>8)&0xf], hex[(x>>4)&0xf], hex[(x>>0)&0xf])
}
