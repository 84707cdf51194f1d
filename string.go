// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonw

import (
	"unicode/utf8"

	"github.com/textenc/jsonw/internal/jsonwire"
)

// WriteString appends s as a JSON string token per RFC 8259, section 7,
// escaping the quote, the backslash, and all control characters with the
// named two-character escapes where they exist and \u00XX otherwise.
//
// The scan examines each input byte exactly once and copies each
// contiguous run of ordinary characters in a single bulk operation,
// so the cost is linear in len(s) regardless of how many escapes occur.
// Bytes outside ASCII are copied verbatim; s is assumed to hold valid
// UTF-8, as with the rest of the writer's trusted-input contract.
func (w *Writer) WriteString(s string) {
	// No character shrinks under escaping,
	// so len(s)+2 is a valid lower bound on the final size.
	w.ensure(len(`"`) + len(s) + len(`"`))
	w.buf = append(w.buf, '"')
	var i, n int
	for uint(len(s)) > uint(n) {
		if c := s[n]; c < utf8.RuneSelf && jsonwire.NeedEscapeASCII(c) {
			w.buf = append(w.buf, s[i:n]...)
			// Worst case for this escape's expansion plus the lower
			// bound for everything not yet written.
			w.ensure(jsonwire.EscapedLen(c) + (len(s) - n - 1) + len(`"`))
			w.buf = jsonwire.AppendEscapedASCII(w.buf, c)
			n++
			i = n
			continue
		}
		n++
	}
	w.buf = append(w.buf, s[i:]...)
	w.buf = append(w.buf, '"')
}

// WriteRune appends r as a single-character JSON string token,
// as either a literal character, a named escape, or a \u00XX escape.
func (w *Writer) WriteRune(r rune) {
	// Quote, the worst-case escape expansion, and the closing quote.
	// The window also covers the longest UTF-8 encoding of r.
	w.ensure(len(`"`) + 6 + len(`"`))
	w.buf = append(w.buf, '"')
	switch {
	case r < utf8.RuneSelf && jsonwire.NeedEscapeASCII(byte(r)):
		w.buf = jsonwire.AppendEscapedASCII(w.buf, byte(r))
	case r < utf8.RuneSelf:
		w.buf = append(w.buf, byte(r))
	default:
		w.buf = utf8.AppendRune(w.buf, r)
	}
	w.buf = append(w.buf, '"')
}

// WriteName appends the pre-escaped object member name s wrapped in
// quotes and followed by the name separator, producing `"s":` in one
// operation.
//
// The name is trusted: WriteName performs no escaping and no validation,
// in exchange for skipping the escape scan entirely on the hot path of
// emitting known-safe field names. Passing a name that actually needs
// escaping silently produces invalid JSON. Callers without that
// guarantee should use [Writer.WriteString] followed by
// [Writer.WriteColon] instead.
func (w *Writer) WriteName(s string) {
	w.ensure(len(`"`) + len(s) + len(`":`))
	w.buf = append(w.buf, '"')
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, '"', ':')
}
