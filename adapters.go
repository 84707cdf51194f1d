// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonw

import (
	"net/url"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

const (
	// maxTimeLen bounds the quoted RFC 3339 rendering with nanoseconds
	// and a numeric zone offset. The year field is normally four digits
	// wide, but time.Time can hold years needing up to twelve plus a
	// sign, so the window carries that margin instead of erroring.
	maxTimeLen = len(`"-292277022365-12-31T23:59:59.999999999+23:59"`)

	// maxDurationLen bounds time.Duration.String output.
	maxDurationLen = len(`"-2562047h47m16.854775808s"`)

	// maxUUIDLen is the exact size of the canonical dashed hex form.
	maxUUIDLen = len(`"00000000-0000-0000-0000-000000000000"`)
)

// WriteTime appends t as a quoted RFC 3339 timestamp with up to
// nanosecond precision. RFC 3339 output never needs JSON escaping.
func (w *Writer) WriteTime(t time.Time) {
	w.ensure(maxTimeLen)
	w.buf = append(w.buf, '"')
	w.buf = t.AppendFormat(w.buf, time.RFC3339Nano)
	w.buf = append(w.buf, '"')
}

// WriteDuration appends d in Go's canonical duration form, quoted.
// The rendering uses only digits, ASCII letters, '.', and '-',
// so it never needs JSON escaping.
func (w *Writer) WriteDuration(d time.Duration) {
	w.ensure(maxDurationLen)
	w.buf = append(w.buf, '"')
	w.buf = append(w.buf, d.String()...)
	w.buf = append(w.buf, '"')
}

// WriteUUID appends u in its canonical dashed hexadecimal form, quoted.
func (w *Writer) WriteUUID(u uuid.UUID) {
	w.ensure(maxUUIDLen)
	w.buf = append(w.buf, '"')
	w.buf = append(w.buf, u.String()...)
	w.buf = append(w.buf, '"')
}

// WriteVersion appends v in dotted semantic-version form, quoted.
// The semver alphabet (digits, ASCII letters, '.', '-', '+') never
// needs JSON escaping, but its length is unbounded, so the capacity
// check sizes to the rendered string rather than a fixed window.
func (w *Writer) WriteVersion(v *semver.Version) {
	s := v.String()
	w.ensure(len(`"`) + len(s) + len(`"`))
	w.buf = append(w.buf, '"')
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, '"')
}

// WriteURL renders u to text and appends it through the string escaper,
// since URL text can itself contain characters that JSON must escape.
func (w *Writer) WriteURL(u *url.URL) {
	w.WriteString(u.String())
}
